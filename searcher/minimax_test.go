package searcher

import (
	"testing"

	"teeko/game"

	"github.com/stretchr/testify/require"
)

func boardOf(rows ...string) game.Board {
	var b game.Board
	for row, line := range rows {
		for col, ch := range line {
			switch ch {
			case 'b':
				b[row][col] = game.Black
			case 'r':
				b[row][col] = game.Red
			}
		}
	}
	return b
}

func constant(score float64) game.Evaluate {
	return func(game.Board, game.Piece) float64 { return score }
}

var scattered = boardOf(
	"b.b.r",
	".r...",
	"b....",
	"...r.",
	"r...b",
)

func TestNewMinimax(t *testing.T) {
	t.Run("defaults to a three ply sequential search", func(t *testing.T) {
		m := NewMinimax()
		require.Equal(t, 3, m.Depth())
		require.Equal(t, 1, m.goroutines)
		require.NotNil(t, m.evaluate)
	})

	t.Run("ignores non-positive options", func(t *testing.T) {
		m := NewMinimax(WithDepth(0), WithGoroutines(-1), WithEvaluationFn(nil))
		require.Equal(t, 3, m.Depth())
		require.Equal(t, 1, m.goroutines)
		require.NotNil(t, m.evaluate)
	})
}

func TestSearchTieBreak(t *testing.T) {
	t.Run("maximize keeps the last successor achieving the best score", func(t *testing.T) {
		m := NewMinimax(WithDepth(1), WithEvaluationFn(constant(0)))

		outcome, _ := m.Search(game.Board{}, game.Black)

		expected := game.Board{}
		expected[4][4] = game.Black
		require.Equal(t, 0.0, outcome.Score)
		require.Equal(t, expected, outcome.State, "Last empty cell in scan order should win the tie")
	})

	t.Run("minimize keeps the last successor achieving the best score", func(t *testing.T) {
		m := NewMinimax(WithDepth(1), WithEvaluationFn(constant(0)))

		outcome := m.minimize(game.Board{}, game.Black, 0)

		expected := game.Board{}
		expected[4][4] = game.Red
		require.Equal(t, expected, outcome.State, "Minimize should move for the opponent")
	})

	t.Run("a strictly better earlier successor is kept", func(t *testing.T) {
		center := game.Coord{Row: 2, Col: 2}
		evaluate := func(b game.Board, self game.Piece) float64 {
			if b.At(center) == self {
				return 0.5
			}
			return 0
		}
		m := NewMinimax(WithDepth(1), WithEvaluationFn(evaluate))

		outcome, _ := m.Search(game.Board{}, game.Black)

		require.Equal(t, 0.5, outcome.Score)
		require.Equal(t, game.Black, outcome.State.At(center))
		require.Equal(t, 1, outcome.State.Markers())
	})
}

func TestSearchTerminal(t *testing.T) {
	t.Run("a won state is returned as is", func(t *testing.T) {
		won := boardOf(
			"bbbb.",
			"rrr..",
			"....r",
		)

		outcome, _ := NewMinimax().Search(won, game.Black)
		require.Equal(t, WIN, outcome.Score)
		require.Equal(t, won, outcome.State)

		outcome, _ = NewMinimax().Search(won, game.Red)
		require.Equal(t, LOSS, outcome.Score)
		require.Equal(t, won, outcome.State)
	})

	t.Run("completes four in a row when possible", func(t *testing.T) {
		state := boardOf(
			"bbb..",
			".....",
			".....",
			".....",
			"rrr..",
		)

		outcome, _ := NewMinimax().Search(state, game.Black)

		require.Equal(t, WIN, outcome.Score)
		require.Equal(t, game.Black, outcome.State.At(game.Coord{Row: 0, Col: 3}))
	})
}

func TestSearchDeterminism(t *testing.T) {
	t.Run("repeated searches agree", func(t *testing.T) {
		m := NewMinimax()
		first, _ := m.Search(scattered, game.Red)
		second, _ := m.Search(scattered, game.Red)
		require.Equal(t, first, second)
	})

	t.Run("parallel root evaluation matches sequential search", func(t *testing.T) {
		sequential, _ := NewMinimax().Search(scattered, game.Black)
		parallel, _ := NewMinimax(WithGoroutines(4)).Search(scattered, game.Black)
		require.Equal(t, sequential, parallel)
	})

	t.Run("the input state is not modified", func(t *testing.T) {
		state := scattered
		NewMinimax(WithGoroutines(2)).Search(state, game.Black)
		require.Equal(t, scattered, state)
	})
}

func TestSearchMetrics(t *testing.T) {
	t.Run("counts nodes and leaves", func(t *testing.T) {
		m := NewMinimax(WithDepth(1), WithMetrics())

		_, metric := m.Search(game.Board{}, game.Black)

		require.Equal(t, 1, metric.Depth)
		require.Equal(t, int64(1+25), metric.Nodes, "Root plus one node per drop")
		require.Equal(t, int64(25), metric.Leaves)
		require.Equal(t, int64(0), metric.Terminals)
	})

	t.Run("restarts counting on every search", func(t *testing.T) {
		m := NewMinimax(WithDepth(1), WithMetrics())

		m.Search(game.Board{}, game.Black)
		_, metric := m.Search(game.Board{}, game.Black)

		require.Equal(t, int64(26), metric.Nodes)
	})

	t.Run("no metrics by default", func(t *testing.T) {
		_, metric := NewMinimax(WithDepth(1)).Search(game.Board{}, game.Black)
		require.Equal(t, SearchMetrics{}, metric)
	})
}
