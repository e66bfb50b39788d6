package game

import (
	"github.com/kiryu-dev/wall-go/internal/domain"
)

// GetValidMoves lists the single-step destinations of piece: in range,
// unoccupied and not blocked by a wall. No diagonals.
func GetValidMoves(piece domain.Piece, pieces []domain.Piece, walls []domain.Wall) []domain.Position {
	moves := make([]domain.Position, 0, len(directions))
	for _, next := range Neighbors(piece.Position) {
		if isOccupied(pieces, next) {
			continue
		}
		if HasWallBetween(walls, piece.Position, next) {
			continue
		}
		moves = append(moves, next)
	}
	return moves
}

// GetValidWallPlacements lists the free slots on the four sides of the
// piece's cell. The board edge is never offered.
func GetValidWallPlacements(piece domain.Piece, walls []domain.Wall) []domain.WallSlot {
	pos := piece.Position
	candidates := make([]domain.WallSlot, 0, 4)
	if pos.Row > 0 {
		candidates = append(candidates, domain.WallSlot{Position: pos, Orientation: domain.Horizontal})
	}
	if pos.Row < domain.GridSize-1 {
		candidates = append(candidates, domain.WallSlot{
			Position:    domain.Position{Row: pos.Row + 1, Col: pos.Col},
			Orientation: domain.Horizontal,
		})
	}
	if pos.Col > 0 {
		candidates = append(candidates, domain.WallSlot{Position: pos, Orientation: domain.Vertical})
	}
	if pos.Col < domain.GridSize-1 {
		candidates = append(candidates, domain.WallSlot{
			Position:    domain.Position{Row: pos.Row, Col: pos.Col + 1},
			Orientation: domain.Vertical,
		})
	}
	placements := candidates[:0]
	for _, slot := range candidates {
		if !IsSlotOccupied(walls, slot.Position, slot.Orientation) {
			placements = append(placements, slot)
		}
	}
	return placements
}

func isOccupied(pieces []domain.Piece, pos domain.Position) bool {
	for _, p := range pieces {
		if p.Position == pos {
			return true
		}
	}
	return false
}

func containsPosition(positions []domain.Position, pos domain.Position) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}

func containsSlot(slots []domain.WallSlot, slot domain.WallSlot) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
