package game

import (
	"github.com/kiryu-dev/wall-go/internal/domain"
)

type region map[domain.Position]struct{}

// floodFill returns the cells reachable from start without crossing a wall.
// Cells already in visited are treated as explored and are not revisited.
func floodFill(start domain.Position, walls []domain.Wall, visited region) region {
	area := make(region)
	if !IsValid(start) {
		return area
	}
	stack := []domain.Position{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[current]; ok {
			continue
		}
		visited[current] = struct{}{}
		area[current] = struct{}{}
		for _, next := range Neighbors(current) {
			if _, ok := visited[next]; ok {
				continue
			}
			if HasWallBetween(walls, current, next) {
				continue
			}
			stack = append(stack, next)
		}
	}
	return area
}

// Region returns the connected area containing pos.
func Region(pos domain.Position, walls []domain.Wall) []domain.Position {
	area := floodFill(pos, walls, make(region))
	result := make([]domain.Position, 0, len(area))
	for row := 0; row < domain.GridSize; row++ {
		for col := 0; col < domain.GridSize; col++ {
			cell := domain.Position{Row: row, Col: col}
			if _, ok := area[cell]; ok {
				result = append(result, cell)
			}
		}
	}
	return result
}

func IsIsolated(piece domain.Piece, pieces []domain.Piece, walls []domain.Wall) bool {
	return isolatedIn(piece, pieces, floodFill(piece.Position, walls, make(region)))
}

func isolatedIn(piece domain.Piece, pieces []domain.Piece, area region) bool {
	for _, other := range pieces {
		if other.ID == piece.ID {
			continue
		}
		if _, ok := area[other.Position]; ok {
			return false
		}
	}
	return true
}

// AllIsolated is the game-over predicate.
func AllIsolated(pieces []domain.Piece, walls []domain.Wall) bool {
	for _, p := range pieces {
		if !IsIsolated(p, pieces, walls) {
			return false
		}
	}
	return true
}

// CalculateScores credits every region to the player of the first piece that
// reaches it.
func CalculateScores(pieces []domain.Piece, walls []domain.Wall) domain.Scores {
	var scores domain.Scores
	visited := make(region)
	for _, p := range pieces {
		if _, ok := visited[p.Position]; ok {
			continue
		}
		area := floodFill(p.Position, walls, make(region))
		for cell := range area {
			visited[cell] = struct{}{}
		}
		switch p.Player {
		case domain.Player1:
			scores.Player1 += len(area)
		case domain.Player2:
			scores.Player2 += len(area)
		}
	}
	return scores
}

// EnclosedRegions maps each cell of an isolated piece's region to that
// piece's player, but only when walls actually shrink the region below the
// full board. Used for shading; scoring does not apply the size threshold.
func EnclosedRegions(pieces []domain.Piece, walls []domain.Wall) map[domain.Position]domain.Player {
	enclosed := make(map[domain.Position]domain.Player)
	if len(walls) == 0 {
		return enclosed
	}
	for _, p := range pieces {
		area := floodFill(p.Position, walls, make(region))
		if !isolatedIn(p, pieces, area) {
			continue
		}
		if len(area) >= domain.BoardArea {
			continue
		}
		for cell := range area {
			enclosed[cell] = p.Player
		}
	}
	return enclosed
}

func DetermineWinner(scores domain.Scores) domain.Winner {
	switch {
	case scores.Player1 > scores.Player2:
		return domain.WinnerPlayer1
	case scores.Player2 > scores.Player1:
		return domain.WinnerPlayer2
	default:
		return domain.Tie
	}
}
