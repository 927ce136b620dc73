package game

import (
	"fmt"

	"teeko/utils"
)

// Coord addresses a cell by row and column, both in [0, Size).
type Coord struct {
	Row int
	Col int
}

func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Distance is the Chebyshev distance between two cells; 8-adjacent cells are
// at distance 1.
func (c Coord) Distance(o Coord) int {
	return max(utils.Abs(c.Row-o.Row), utils.Abs(c.Col-o.Col))
}

// String renders the coordinate as column letter followed by row digit,
// e.g. Coord{Row: 3, Col: 1} is "B3".
func (c Coord) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", 'A'+c.Col, c.Row)
}

// ParseCoord reads the "B3" notation: column letters A-E, row digits 0-4.
func ParseCoord(text string) (Coord, error) {
	if len(text) != 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoordinate, text)
	}
	col := int(text[0] - 'A')
	if text[0] >= 'a' && text[0] <= 'z' {
		col = int(text[0] - 'a')
	}
	c := Coord{Row: int(text[1]) - '0', Col: col}
	if !c.InBounds() {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoordinate, text)
	}
	return c, nil
}
