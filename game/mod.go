package game

const (
	Size          = 5 // Rows and columns of the board
	PiecesPerSide = 4
	MaxMarkers    = 2 * PiecesPerSide // Drop phase ends once this many pieces are placed
)

// Piece is the content of a single cell.
type Piece int8

const (
	Empty Piece = iota
	Black
	Red
)

// Pieces lists the two playable pieces; Black moves first.
var Pieces = [2]Piece{Black, Red}

// Opponent returns the complementary piece. Empty has no opponent.
func (p Piece) Opponent() Piece {
	switch p {
	case Black:
		return Red
	case Red:
		return Black
	default:
		return Empty
	}
}

func (p Piece) String() string {
	switch p {
	case Black:
		return "b"
	case Red:
		return "r"
	default:
		return " "
	}
}

// Evaluates a non-terminal board to a score between -1 and 1 indicating how
// favorable the position is to self (positive) versus its opponent (negative).
type Evaluate func(b Board, self Piece) float64
