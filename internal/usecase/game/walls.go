package game

import (
	"github.com/kiryu-dev/wall-go/internal/domain"
)

// HasWallBetween reports whether a placed wall blocks the step from a to b.
// Cells that are not 4-directionally adjacent never have a wall between them.
func HasWallBetween(walls []domain.Wall, a, b domain.Position) bool {
	if !isAdjacent(a, b) {
		return false
	}
	if a.Row != b.Row {
		slot := domain.Position{Row: max(a.Row, b.Row), Col: a.Col}
		return IsSlotOccupied(walls, slot, domain.Horizontal)
	}
	slot := domain.Position{Row: a.Row, Col: max(a.Col, b.Col)}
	return IsSlotOccupied(walls, slot, domain.Vertical)
}

func IsSlotOccupied(walls []domain.Wall, pos domain.Position, orientation domain.Orientation) bool {
	for _, w := range walls {
		if w.Orientation == orientation && w.Position == pos {
			return true
		}
	}
	return false
}
