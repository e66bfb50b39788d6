package game

import (
	"github.com/kiryu-dev/wall-go/internal/domain"
)

const maxMovesPerTurn = 2

func NewGameState() domain.GameState {
	return domain.GameState{
		Phase:         domain.Setup,
		CurrentPlayer: domain.Player1,
		CanDeselect:   true,
	}
}

// Transition applies cmd to state and returns the next state. Illegal
// commands leave the state untouched and report false.
func Transition(state domain.GameState, cmd domain.Command) (domain.GameState, bool) {
	switch cmd.Type {
	case domain.PlacePieceCommand:
		return placePiece(state, cmd.Position)
	case domain.SelectPieceCommand:
		return selectPiece(state, cmd.PieceID)
	case domain.DeselectCommand:
		return deselect(state)
	case domain.MovePieceCommand:
		return movePiece(state, cmd.Position)
	case domain.PlaceWallCommand:
		return placeWall(state, domain.WallSlot{Position: cmd.Position, Orientation: cmd.Orientation})
	case domain.RestartCommand:
		return NewGameState(), true
	default:
		return state, false
	}
}

func placePiece(state domain.GameState, pos domain.Position) (domain.GameState, bool) {
	if state.Phase != domain.Setup || !IsValid(pos) {
		return state, false
	}
	if _, ok := state.PieceAt(pos); ok {
		return state, false
	}
	counters := state.SetupPlaced
	switch state.CurrentPlayer {
	case domain.Player1:
		counters.Player1++
	case domain.Player2:
		counters.Player2++
	default:
		return state, false
	}
	if counters.Player1 > domain.PiecesPerPlayer || counters.Player2 > domain.PiecesPerPlayer {
		return state, false
	}
	next := state
	next.LastID++
	next.Pieces = appendPiece(state.Pieces, domain.Piece{
		ID:       domain.PieceID(next.LastID),
		Player:   state.CurrentPlayer,
		Position: pos,
	})
	next.SetupPlaced = counters
	if counters.Total() == 2*domain.PiecesPerPlayer {
		next.Phase = domain.Playing
		next.CurrentPlayer = domain.Player1
		return next, true
	}
	next.CurrentPlayer = state.CurrentPlayer.Opponent()
	return next, true
}

func selectPiece(state domain.GameState, id domain.PieceID) (domain.GameState, bool) {
	if state.Phase != domain.Playing {
		return state, false
	}
	piece, ok := state.PieceByID(id)
	if !ok || piece.Player != state.CurrentPlayer {
		return state, false
	}
	if id == state.SelectedPiece {
		return deselect(state)
	}
	if state.HasMoved {
		return state, false
	}
	next := state
	next.SelectedPiece = id
	origin := piece.Position
	next.OriginalPosition = &origin
	next.CanDeselect = true
	return next, true
}

func deselect(state domain.GameState) (domain.GameState, bool) {
	if state.Phase != domain.Playing || state.SelectedPiece == 0 || !state.CanDeselect {
		return state, false
	}
	next := state
	next.SelectedPiece = 0
	next.OriginalPosition = nil
	return next, true
}

func movePiece(state domain.GameState, dst domain.Position) (domain.GameState, bool) {
	if state.Phase != domain.Playing || state.MovesThisTurn >= maxMovesPerTurn {
		return state, false
	}
	selected, ok := state.Selected()
	if !ok {
		return state, false
	}
	if !containsPosition(GetValidMoves(selected, state.Pieces, state.Walls), dst) {
		return state, false
	}
	next := state
	next.Pieces = make([]domain.Piece, len(state.Pieces))
	for i, p := range state.Pieces {
		if p.ID == selected.ID {
			p.Position = dst
		}
		next.Pieces[i] = p
	}
	next.MovesThisTurn++
	next.HasMoved = true
	next.CanDeselect = false
	return next, true
}

func placeWall(state domain.GameState, slot domain.WallSlot) (domain.GameState, bool) {
	if state.Phase != domain.Playing || state.MovesThisTurn < 1 {
		return state, false
	}
	selected, ok := state.Selected()
	if !ok {
		return state, false
	}
	if !containsSlot(GetValidWallPlacements(selected, state.Walls), slot) {
		return state, false
	}
	next := state
	next.LastID++
	next.Walls = appendWall(state.Walls, domain.Wall{
		ID:          domain.WallID(next.LastID),
		Position:    slot.Position,
		Orientation: slot.Orientation,
		PlacedBy:    state.CurrentPlayer,
		PieceID:     selected.ID,
	})
	next.SelectedPiece = 0
	next.MovesThisTurn = 0
	next.HasMoved = false
	next.OriginalPosition = nil
	next.CanDeselect = true
	if AllIsolated(next.Pieces, next.Walls) {
		next.Scores = CalculateScores(next.Pieces, next.Walls)
		next.Winner = DetermineWinner(next.Scores)
		next.Phase = domain.GameOver
		return next, true
	}
	next.CurrentPlayer = state.CurrentPlayer.Opponent()
	return next, true
}

func appendPiece(pieces []domain.Piece, p domain.Piece) []domain.Piece {
	result := make([]domain.Piece, len(pieces), len(pieces)+1)
	copy(result, pieces)
	return append(result, p)
}

func appendWall(walls []domain.Wall, w domain.Wall) []domain.Wall {
	result := make([]domain.Wall, len(walls), len(walls)+1)
	copy(result, walls)
	return append(result, w)
}
