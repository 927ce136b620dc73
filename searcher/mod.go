package searcher

import "teeko/game"

// Scores of decided games, from the searching side's perspective
const WIN = 1.0
const LOSS = -WIN

type Searcher interface {
	Search(state game.Board, self game.Piece) (Outcome, SearchMetrics)
}

// Outcome pairs the minimax value of a state with the successor achieving it.
// For terminal and depth-limited states, State is the evaluated state itself.
type Outcome struct {
	Score float64
	State game.Board
}
