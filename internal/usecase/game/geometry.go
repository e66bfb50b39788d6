package game

import (
	"github.com/kiryu-dev/wall-go/internal/domain"
)

// up, down, left, right
var directions = [4]domain.Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

func IsValid(pos domain.Position) bool {
	return pos.Row >= 0 && pos.Row < domain.GridSize &&
		pos.Col >= 0 && pos.Col < domain.GridSize
}

// Neighbors returns the in-range cells adjacent to pos in up, down, left,
// right order.
func Neighbors(pos domain.Position) []domain.Position {
	result := make([]domain.Position, 0, len(directions))
	for _, d := range directions {
		next := domain.Position{Row: pos.Row + d.Row, Col: pos.Col + d.Col}
		if IsValid(next) {
			result = append(result, next)
		}
	}
	return result
}

func isAdjacent(a, b domain.Position) bool {
	return abs(a.Row-b.Row)+abs(a.Col-b.Col) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
