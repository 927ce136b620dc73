package game

// Window is four cells that form a winning pattern when they hold the same
// piece.
type Window [4]Coord

// Family groups the windows of one winning shape.
type Family struct {
	Name    string
	Windows []Window
}

// Families are the five winning shapes: rows, columns, both diagonals and
// 2x2 boxes.
var Families = []Family{
	{Name: "horizontal", Windows: lineWindows(Coord{Row: 0, Col: 1}, 0, Size-1, 0, 1)},
	{Name: "vertical", Windows: lineWindows(Coord{Row: 1, Col: 0}, 0, 1, 0, Size-1)},
	{Name: "diagonal", Windows: lineWindows(Coord{Row: 1, Col: 1}, 0, 1, 0, 1)},
	{Name: "anti-diagonal", Windows: lineWindows(Coord{Row: 1, Col: -1}, 0, 1, 3, 4)},
	{Name: "box", Windows: boxWindows()},
}

// lineWindows builds four-cell lines stepping by d from every start cell in
// rows [r0, r1] and columns [c0, c1].
func lineWindows(d Coord, r0, r1, c0, c1 int) []Window {
	var windows []Window
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			var w Window
			c := Coord{Row: row, Col: col}
			for k := range w {
				w[k] = c
				c = c.Add(d)
			}
			windows = append(windows, w)
		}
	}
	return windows
}

func boxWindows() []Window {
	var windows []Window
	for row := 0; row < Size-1; row++ {
		for col := 0; col < Size-1; col++ {
			windows = append(windows, Window{
				{Row: row, Col: col},
				{Row: row, Col: col + 1},
				{Row: row + 1, Col: col},
				{Row: row + 1, Col: col + 1},
			})
		}
	}
	return windows
}

// owner returns the piece filling every cell of w, or Empty.
func (b Board) owner(w Window) Piece {
	p := b.At(w[0])
	for _, c := range w[1:] {
		if b.At(c) != p {
			return Empty
		}
	}
	return p
}

// Winner returns the piece that completed a winning pattern, or Empty if no
// one has yet.
func (b Board) Winner() Piece {
	for _, family := range Families {
		for _, w := range family.Windows {
			if p := b.owner(w); p != Empty {
				return p
			}
		}
	}
	return Empty
}

// WinValue scores b from self's perspective: 1 if self has won, -1 if the
// opponent has, 0 otherwise.
func (b Board) WinValue(self Piece) int {
	switch b.Winner() {
	case Empty:
		return 0
	case self:
		return 1
	default:
		return -1
	}
}
