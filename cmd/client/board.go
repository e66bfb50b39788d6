package main

import (
	"fmt"
	"strings"

	"github.com/kiryu-dev/wall-go/internal/domain"
)

var pieceMarks = map[domain.Player]byte{
	domain.Player1: 'X',
	domain.Player2: 'O',
}

var enclosedMarks = map[domain.Player]string{
	domain.Player1: " x ",
	domain.Player2: " o ",
}

func promptFor(s domain.Snapshot) string {
	switch {
	case s.IsGameOver:
		return "game over"
	case s.State.Phase == domain.Setup:
		return fmt.Sprintf("player %d, place a piece", s.State.CurrentPlayer)
	case s.State.SelectedPiece == 0:
		return fmt.Sprintf("player %d, select a piece", s.State.CurrentPlayer)
	case s.State.MovesThisTurn == 0:
		return fmt.Sprintf("player %d, move piece %d", s.State.CurrentPlayer, s.State.SelectedPiece)
	default:
		return fmt.Sprintf("player %d, move again or place a wall", s.State.CurrentPlayer)
	}
}

// renderSnapshot draws the board with row and column indices. A horizontal
// wall at (r, c) is drawn above cell (r, c) and a vertical one to its left.
func renderSnapshot(s domain.Snapshot) string {
	walls := make(map[domain.WallSlot]struct{}, len(s.State.Walls))
	for _, w := range s.State.Walls {
		walls[domain.WallSlot{Position: w.Position, Orientation: w.Orientation}] = struct{}{}
	}
	enclosed := make(map[domain.Position]domain.Player, len(s.Enclosed))
	for _, cell := range s.Enclosed {
		enclosed[cell.Position] = cell.Player
	}
	moves := make(map[domain.Position]struct{}, len(s.ValidMoves))
	for _, pos := range s.ValidMoves {
		moves[pos] = struct{}{}
	}

	var b strings.Builder
	b.WriteString("   ")
	for col := 0; col < domain.GridSize; col++ {
		fmt.Fprintf(&b, "  %d ", col)
	}
	b.WriteString("\n")
	for row := 0; row < domain.GridSize; row++ {
		b.WriteString("   ")
		for col := 0; col < domain.GridSize; col++ {
			pos := domain.Position{Row: row, Col: col}
			if _, ok := walls[domain.WallSlot{Position: pos, Orientation: domain.Horizontal}]; ok {
				b.WriteString("+===")
			} else {
				b.WriteString("+   ")
			}
		}
		b.WriteString("+\n")
		fmt.Fprintf(&b, " %d ", row)
		for col := 0; col < domain.GridSize; col++ {
			pos := domain.Position{Row: row, Col: col}
			if _, ok := walls[domain.WallSlot{Position: pos, Orientation: domain.Vertical}]; ok {
				b.WriteString("#")
			} else {
				b.WriteString(" ")
			}
			b.WriteString(renderCell(s, pos, enclosed, moves))
		}
		b.WriteString("\n")
	}
	b.WriteString("   ")
	b.WriteString(strings.Repeat("+   ", domain.GridSize))
	b.WriteString("+\n")

	switch {
	case s.IsGameOver:
		fmt.Fprintf(&b, "score %d:%d, winner: %s\n", s.State.Scores.Player1, s.State.Scores.Player2, s.Winner)
	case len(s.ValidWalls) > 0:
		b.WriteString("walls:")
		for _, slot := range s.ValidWalls {
			fmt.Fprintf(&b, " %d,%d,%c", slot.Position.Row, slot.Position.Col, slot.Orientation[0])
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(
	s domain.Snapshot,
	pos domain.Position,
	enclosed map[domain.Position]domain.Player,
	moves map[domain.Position]struct{},
) string {
	if piece, ok := s.State.PieceAt(pos); ok {
		if piece.ID == s.State.SelectedPiece {
			return fmt.Sprintf("[%c]", pieceMarks[piece.Player])
		}
		return fmt.Sprintf("%c%-2d", pieceMarks[piece.Player], piece.ID)
	}
	if _, ok := moves[pos]; ok {
		return " * "
	}
	if player, ok := enclosed[pos]; ok {
		return enclosedMarks[player]
	}
	return " . "
}

func statusLine(s domain.Snapshot) string {
	return fmt.Sprintf("session %s: phase %s, player %d to act, %d pieces, %d walls, winner: %s",
		s.SessionUuid, s.State.Phase, s.State.CurrentPlayer, len(s.State.Pieces), len(s.State.Walls), s.Winner)
}
