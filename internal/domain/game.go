package domain

const (
	GridSize        = 7
	PiecesPerPlayer = 4
	BoardArea       = GridSize * GridSize
)

type Player byte

const (
	NoPlayer = Player(iota)
	Player1
	Player2
)

func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

type Phase string

const (
	Setup    = Phase("setup")
	Playing  = Phase("playing")
	GameOver = Phase("gameOver")
)

type Orientation string

const (
	Horizontal = Orientation("horizontal")
	Vertical   = Orientation("vertical")
)

type Winner byte

const (
	Undecided = Winner(iota)
	WinnerPlayer1
	WinnerPlayer2
	Tie
)

func (w Winner) String() string {
	switch w {
	case WinnerPlayer1:
		return "player 1"
	case WinnerPlayer2:
		return "player 2"
	case Tie:
		return "tie"
	default:
		return "undecided"
	}
}

type Position struct {
	Row int
	Col int
}

type PieceID uint64

type Piece struct {
	ID       PieceID
	Player   Player
	Position Position
}

type WallID uint64

// Wall occupies a grid-line slot. A horizontal wall at (r, c) separates
// (r-1, c) from (r, c); a vertical wall at (r, c) separates (r, c-1) from (r, c).
type Wall struct {
	ID          WallID
	Position    Position
	Orientation Orientation
	PlacedBy    Player
	PieceID     PieceID
}

type WallSlot struct {
	Position    Position
	Orientation Orientation
}

type Scores struct {
	Player1 int
	Player2 int
}

type SetupCounters struct {
	Player1 int
	Player2 int
}

func (c SetupCounters) Total() int {
	return c.Player1 + c.Player2
}

// GameState is replaced as a whole on every committed command; slices are
// never modified once a state value has been published.
type GameState struct {
	Phase            Phase
	CurrentPlayer    Player
	Pieces           []Piece
	Walls            []Wall
	SetupPlaced      SetupCounters
	SelectedPiece    PieceID
	MovesThisTurn    int
	HasMoved         bool
	OriginalPosition *Position
	CanDeselect      bool
	Winner           Winner
	Scores           Scores
	LastID           uint64
}

func (s GameState) PieceByID(id PieceID) (Piece, bool) {
	if id == 0 {
		return Piece{}, false
	}
	for _, p := range s.Pieces {
		if p.ID == id {
			return p, true
		}
	}
	return Piece{}, false
}

func (s GameState) Selected() (Piece, bool) {
	return s.PieceByID(s.SelectedPiece)
}

func (s GameState) PieceAt(pos Position) (Piece, bool) {
	for _, p := range s.Pieces {
		if p.Position == pos {
			return p, true
		}
	}
	return Piece{}, false
}

// CommandType starts at one so a zero-valued Command is never a real action.
type CommandType byte

const (
	PlacePieceCommand = CommandType(iota + 1)
	SelectPieceCommand
	DeselectCommand
	MovePieceCommand
	PlaceWallCommand
	RestartCommand
)

func (t CommandType) String() string {
	switch t {
	case PlacePieceCommand:
		return "place piece"
	case SelectPieceCommand:
		return "select piece"
	case DeselectCommand:
		return "deselect"
	case MovePieceCommand:
		return "move piece"
	case PlaceWallCommand:
		return "place wall"
	case RestartCommand:
		return "restart"
	default:
		return "unknown"
	}
}

type Command struct {
	Type        CommandType
	Position    Position
	PieceID     PieceID
	Orientation Orientation
}

type EnclosedCell struct {
	Position Position
	Player   Player
}

// Snapshot is the read model sent to UI collaborators: the committed state
// plus the derived queries evaluated against it.
type Snapshot struct {
	SessionUuid string
	State       GameState
	ValidMoves  []Position
	ValidWalls  []WallSlot
	Enclosed    []EnclosedCell
	IsGameOver  bool
	Winner      Winner
}
