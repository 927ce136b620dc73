package game

// EvaluateLines estimates how close each side is to completing a winning
// pattern. Every window of every family is scanned and the largest number of
// self pieces found in any one window is compared with the largest number of
// opponent pieces found in any one window. The leading side scores its count
// over PiecesPerSide (negated for the opponent); a tie scores 0.
//
// Only meaningful on boards without a winner, where a window holds at most 3
// pieces of one side and the score stays within [-0.75, 0.75].
func EvaluateLines(b Board, self Piece) float64 {
	opponent := self.Opponent()
	mine, theirs := 0, 0
	for _, family := range Families {
		for _, w := range family.Windows {
			m, t := b.tally(w, self, opponent)
			mine = max(mine, m)
			theirs = max(theirs, t)
		}
	}

	switch {
	case mine > theirs:
		return float64(mine) / PiecesPerSide
	case theirs > mine:
		return -float64(theirs) / PiecesPerSide
	default:
		return 0
	}
}

func (b Board) tally(w Window, self, opponent Piece) (mine, theirs int) {
	for _, c := range w {
		switch b.At(c) {
		case self:
			mine++
		case opponent:
			theirs++
		}
	}
	return mine, theirs
}
