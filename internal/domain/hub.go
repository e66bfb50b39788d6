package domain

import (
	"context"
)

type HubUseCase interface {
	Handle(ctx context.Context, client Client) error
	Session(uuid string) (Snapshot, bool)
	ActiveSessions() int64
}

// EngineUseCase is the command/query surface a UI collaborator drives.
type EngineUseCase interface {
	Apply(cmd Command) bool
	State() GameState
	ValidMoves() []Position
	ValidWallPlacements() []WallSlot
	EnclosedRegions() map[Position]Player
	IsGameOver() bool
	Winner() Winner
}

type EngineFactory func() EngineUseCase

type HealthCheckResponse struct {
	Status   string
	Sessions int64
}
