package main

import (
	"strings"
	"testing"

	"github.com/kiryu-dev/wall-go/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestRenderSnapshot(t *testing.T) {
	s := domain.Snapshot{
		State: domain.GameState{
			Phase:         domain.Playing,
			CurrentPlayer: domain.Player1,
			Pieces: []domain.Piece{
				{ID: 1, Player: domain.Player1, Position: domain.Position{Row: 0, Col: 0}},
				{ID: 2, Player: domain.Player2, Position: domain.Position{Row: 6, Col: 6}},
			},
			Walls: []domain.Wall{
				{ID: 9, Position: domain.Position{Row: 1, Col: 0}, Orientation: domain.Horizontal},
				{ID: 10, Position: domain.Position{Row: 0, Col: 1}, Orientation: domain.Vertical},
			},
			SelectedPiece: 1,
		},
	}
	lines := strings.Split(renderSnapshot(s), "\n")
	require.Equal(t, "     0   1   2   3   4   5   6 ", lines[0])
	require.Equal(t, " 0  [X]# .   .   .   .   .   . ", lines[2])
	require.Equal(t, "   +===+   +   +   +   +   +   +", lines[3])
	require.Equal(t, " 6   .   .   .   .   .   .  O2 ", lines[14])
}

func TestPromptFor(t *testing.T) {
	s := domain.Snapshot{State: domain.GameState{Phase: domain.Setup, CurrentPlayer: domain.Player2}}
	require.Equal(t, "player 2, place a piece", promptFor(s))

	s.State.Phase = domain.Playing
	require.Equal(t, "player 2, select a piece", promptFor(s))

	s.State.SelectedPiece = 4
	require.Equal(t, "player 2, move piece 4", promptFor(s))

	s.State.MovesThisTurn = 1
	require.Equal(t, "player 2, move again or place a wall", promptFor(s))

	s.IsGameOver = true
	require.Equal(t, "game over", promptFor(s))
}

func TestStatusLine(t *testing.T) {
	s := domain.Snapshot{
		SessionUuid: "abc",
		State:       domain.GameState{Phase: domain.GameOver, CurrentPlayer: domain.Player1},
		Winner:      domain.Tie,
	}
	require.Equal(t, "session abc: phase gameOver, player 1 to act, 0 pieces, 0 walls, winner: tie", statusLine(s))
}
