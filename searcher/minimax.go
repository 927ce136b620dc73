package searcher

import (
	"math"
	"sync"

	"teeko/game"
	"teeko/meta"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a depth-limited minimax search without pruning or memoization.
// Successors scoring equal to the running best replace it, so the last
// successor (in generation order) achieving the best score is chosen.
type Minimax struct {
	depth      int
	goroutines int
	evaluate   game.Evaluate
	metrics    MetricsCollector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines evaluates the root's successors in parallel. Deeper levels
// are always searched sequentially.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// WithEvaluationFn replaces the leaf evaluation. The function must be safe for
// concurrent use when combined with WithGoroutines.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      meta.DEPTH,
		goroutines: meta.GO_ROUTINES,
		evaluate:   game.EvaluateLines,
		metrics:    NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// Search runs maximize from state with self to move. The board must hold at
// most game.MaxMarkers pieces.
func (m *Minimax) Search(state game.Board, self game.Piece) (Outcome, SearchMetrics) {
	m.metrics.Start(m.depth, m.goroutines)
	outcome := m.maximize(state, self, 0)
	metric := m.metrics.Complete()

	log.Debug().
		Str("piece", self.String()).
		Float64("score", outcome.Score).
		Int64("nodes", metric.Nodes).
		Int64("leaves", metric.Leaves).
		Dur("duration", metric.Duration).
		Msg("search complete")
	return outcome, metric
}

func (m *Minimax) maximize(state game.Board, self game.Piece, depth int) Outcome {
	if outcome, done := m.cutoff(state, self, depth); done {
		return outcome
	}

	children := state.Successors(self)
	if len(children) == 0 { // Every piece is blocked
		return m.leaf(state, self)
	}
	scores := m.expand(children, depth, func(child game.Board) Outcome {
		return m.minimize(child, self, depth+1)
	})

	best := Outcome{Score: math.Inf(-1), State: state}
	for i, score := range scores {
		if score >= best.Score {
			best = Outcome{Score: score, State: children[i]}
		}
	}
	return best
}

func (m *Minimax) minimize(state game.Board, self game.Piece, depth int) Outcome {
	if outcome, done := m.cutoff(state, self, depth); done {
		return outcome
	}

	children := state.Successors(self.Opponent())
	if len(children) == 0 {
		return m.leaf(state, self)
	}
	scores := m.expand(children, depth, func(child game.Board) Outcome {
		return m.maximize(child, self, depth+1)
	})

	best := Outcome{Score: math.Inf(1), State: state}
	for i, score := range scores {
		if score <= best.Score {
			best = Outcome{Score: score, State: children[i]}
		}
	}
	return best
}

// cutoff stops the search at decided states and at the depth limit.
func (m *Minimax) cutoff(state game.Board, self game.Piece, depth int) (Outcome, bool) {
	m.metrics.AddNode()
	switch state.WinValue(self) {
	case 1:
		m.metrics.AddTerminal()
		return Outcome{Score: WIN, State: state}, true
	case -1:
		m.metrics.AddTerminal()
		return Outcome{Score: LOSS, State: state}, true
	}
	if depth >= m.depth {
		return m.leaf(state, self), true
	}
	return Outcome{}, false
}

func (m *Minimax) leaf(state game.Board, self game.Piece) Outcome {
	m.metrics.AddLeaf()
	return Outcome{Score: m.evaluate(state, self), State: state}
}

// expand scores every child with next, keeping the children's order. Only the
// root fans out over goroutines.
func (m *Minimax) expand(children []game.Board, depth int, next func(game.Board) Outcome) []float64 {
	scores := make([]float64, len(children))
	if depth > 0 || m.goroutines <= 1 {
		for i, child := range children {
			scores[i] = next(child).Score
		}
		return scores
	}

	task := make(chan int, len(children))
	for i := range children {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(m.goroutines, len(children)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := range task {
				scores[j] = next(children[j]).Score
			}
		}()
	}

	wg.Wait()
	return scores
}
