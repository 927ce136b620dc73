package game

import "fmt"

// Board is a row-major 5x5 grid. It is a value type: assigning or passing a
// Board copies every cell, so successors never alias their parent.
type Board [Size][Size]Piece

func (b Board) At(c Coord) Piece {
	return b[c.Row][c.Col]
}

func (b *Board) Set(c Coord, p Piece) {
	b[c.Row][c.Col] = p
}

// Markers counts the occupied cells.
func (b Board) Markers() int {
	count := 0
	for row := range b {
		for col := range b[row] {
			if b[row][col] != Empty {
				count++
			}
		}
	}
	return count
}

// IsDropPhase reports whether pieces are still being placed, i.e. fewer than
// MaxMarkers cells are occupied. A board holding more markers can never arise
// from legal play and yields ErrMarkerOverflow.
func (b Board) IsDropPhase() (bool, error) {
	markers := b.Markers()
	if markers > MaxMarkers {
		return false, fmt.Errorf("%w: found %d", ErrMarkerOverflow, markers)
	}
	return markers < MaxMarkers, nil
}

func (b Board) mustDropPhase() bool {
	drop, err := b.IsDropPhase()
	if err != nil {
		panic(err)
	}
	return drop
}

// Locate returns the cells holding self's pieces and the cells holding the
// opponent's pieces, each in row-major scan order.
func (b Board) Locate(self Piece) (mine []Coord, theirs []Coord) {
	opponent := self.Opponent()
	for row := range b {
		for col := range b[row] {
			switch b[row][col] {
			case self:
				mine = append(mine, Coord{Row: row, Col: col})
			case opponent:
				theirs = append(theirs, Coord{Row: row, Col: col})
			}
		}
	}
	return mine, theirs
}

// Swap exchanges Black and Red on every cell.
func (b Board) Swap() Board {
	for row := range b {
		for col := range b[row] {
			b[row][col] = b[row][col].Opponent()
		}
	}
	return b
}
