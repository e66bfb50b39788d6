package game

import (
	"github.com/kiryu-dev/wall-go/internal/domain"
	"go.uber.org/zap"
)

// useCase holds the latest committed state of a single game. It is driven by
// serialized UI actions and is not safe for concurrent use.
type useCase struct {
	state  domain.GameState
	logger *zap.Logger
}

func New(logger *zap.Logger) *useCase {
	return &useCase{
		state:  NewGameState(),
		logger: logger,
	}
}

func (u *useCase) Apply(cmd domain.Command) bool {
	prev := u.state
	next, ok := Transition(prev, cmd)
	if !ok {
		u.logger.Debug("command ignored",
			zap.String("command", cmd.Type.String()),
			zap.String("phase", string(prev.Phase)),
			zap.Uint8("player", uint8(prev.CurrentPlayer)))
		return false
	}
	u.state = next
	switch {
	case cmd.Type == domain.PlaceWallCommand && next.Phase == domain.GameOver:
		u.logger.Info("game over",
			zap.Int("player1", next.Scores.Player1),
			zap.Int("player2", next.Scores.Player2),
			zap.Stringer("winner", next.Winner))
	case cmd.Type == domain.PlaceWallCommand:
		u.logger.Info("wall placed",
			zap.Uint8("player", uint8(prev.CurrentPlayer)),
			zap.Int("walls", len(next.Walls)))
	case cmd.Type == domain.PlacePieceCommand && next.Phase == domain.Playing:
		u.logger.Info("setup finished", zap.Int("pieces", len(next.Pieces)))
	}
	return true
}

func (u *useCase) PlacePiece(pos domain.Position) bool {
	return u.Apply(domain.Command{Type: domain.PlacePieceCommand, Position: pos})
}

func (u *useCase) SelectPiece(id domain.PieceID) bool {
	return u.Apply(domain.Command{Type: domain.SelectPieceCommand, PieceID: id})
}

func (u *useCase) Deselect() bool {
	return u.Apply(domain.Command{Type: domain.DeselectCommand})
}

func (u *useCase) MovePiece(dst domain.Position) bool {
	return u.Apply(domain.Command{Type: domain.MovePieceCommand, Position: dst})
}

func (u *useCase) PlaceWall(pos domain.Position, orientation domain.Orientation) bool {
	return u.Apply(domain.Command{Type: domain.PlaceWallCommand, Position: pos, Orientation: orientation})
}

func (u *useCase) Restart() bool {
	return u.Apply(domain.Command{Type: domain.RestartCommand})
}

func (u *useCase) State() domain.GameState {
	return u.state
}

// ValidMoves is empty unless a piece is selected in the playing phase and
// the turn still has a move left.
func (u *useCase) ValidMoves() []domain.Position {
	selected, ok := u.state.Selected()
	if !ok || u.state.Phase != domain.Playing || u.state.MovesThisTurn >= maxMovesPerTurn {
		return nil
	}
	return GetValidMoves(selected, u.state.Pieces, u.state.Walls)
}

// ValidWallPlacements is empty until the selected piece has moved this turn.
func (u *useCase) ValidWallPlacements() []domain.WallSlot {
	selected, ok := u.state.Selected()
	if !ok || u.state.Phase != domain.Playing || u.state.MovesThisTurn == 0 {
		return nil
	}
	return GetValidWallPlacements(selected, u.state.Walls)
}

func (u *useCase) EnclosedRegions() map[domain.Position]domain.Player {
	return EnclosedRegions(u.state.Pieces, u.state.Walls)
}

func (u *useCase) IsGameOver() bool {
	return u.state.Phase == domain.GameOver
}

func (u *useCase) Winner() domain.Winner {
	return u.state.Winner
}
