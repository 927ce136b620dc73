package game

// Directions a piece may step in, in generation order:
// N, S, E, W, NW, NE, SE, SW.
var Directions = [8]Coord{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
	{Row: -1, Col: -1},
	{Row: -1, Col: 1},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
}

// LegalMoves lists side's moves on b. In the drop phase every empty cell is a
// target, in row-major order. In the move phase each piece (in Locate order)
// tries every direction (in Directions order) and keeps in-bounds empty
// targets. Panics if b holds more than MaxMarkers pieces.
func (b Board) LegalMoves(side Piece) []Move {
	if b.mustDropPhase() {
		moves := make([]Move, 0, Size*Size-b.Markers())
		for row := range b {
			for col := range b[row] {
				if b[row][col] == Empty {
					moves = append(moves, Drop(Coord{Row: row, Col: col}))
				}
			}
		}
		return moves
	}

	pieces, _ := b.Locate(side)
	moves := make([]Move, 0, len(pieces)*len(Directions))
	for _, from := range pieces {
		for _, d := range Directions {
			to := from.Add(d)
			if to.InBounds() && b.At(to) == Empty {
				moves = append(moves, Relocate(from, to))
			}
		}
	}
	return moves
}

// Successors returns one independent copy of b per legal move of side, in
// LegalMoves order.
func (b Board) Successors(side Piece) []Board {
	moves := b.LegalMoves(side)
	boards := make([]Board, len(moves))
	for i, m := range moves {
		next := b
		next.Apply(m, side)
		boards[i] = next
	}
	return boards
}
