package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuccessorsDropPhase(t *testing.T) {
	t.Run("one successor per empty cell in row-major order", func(t *testing.T) {
		b := boardOf(
			"b....",
			"..r..",
		)

		succ := b.Successors(Red)

		require.Len(t, succ, Size*Size-2)
		require.Equal(t, Red, succ[0].At(Coord{Row: 0, Col: 1}), "First successor should fill the first empty cell")
		require.Equal(t, Red, succ[len(succ)-1].At(Coord{Row: 4, Col: 4}), "Last successor should fill the last empty cell")
		for _, s := range succ {
			require.Equal(t, 3, s.Markers(), "Each successor should add exactly one piece")
		}
	})

	t.Run("successors do not alias the input or each other", func(t *testing.T) {
		b := Board{}
		succ := b.Successors(Black)

		succ[0].Set(Coord{Row: 2, Col: 2}, Red)

		require.Equal(t, Board{}, b, "Input board should be unchanged")
		require.Equal(t, Empty, succ[1].At(Coord{Row: 2, Col: 2}), "Siblings should be independent")
	})
}

func TestSuccessorsMovePhase(t *testing.T) {
	t.Run("each piece contributes its in-bounds empty neighbors", func(t *testing.T) {
		moves := movePhaseBoard.LegalMoves(Black)

		// (0,0): S, E; SE holds red
		// (0,2): S, E, W, SE; SW holds red
		// (2,0): N, S, E, SE; NE holds red
		// (4,4): N, W; NW holds red
		require.Len(t, moves, 2+4+4+2)
		require.Equal(t, Relocate(Coord{Row: 0, Col: 0}, Coord{Row: 1, Col: 0}), moves[0], "First piece tries south first when north is off the board")
		require.Equal(t, Relocate(Coord{Row: 4, Col: 4}, Coord{Row: 4, Col: 3}), moves[len(moves)-1])
	})

	t.Run("successors relocate without changing piece counts", func(t *testing.T) {
		for _, side := range Pieces {
			for _, s := range movePhaseBoard.Successors(side) {
				mine, theirs := s.Locate(side)
				require.Len(t, mine, PiecesPerSide)
				require.Len(t, theirs, PiecesPerSide)

				move, err := Diff(movePhaseBoard, s)
				require.NoError(t, err)
				require.Equal(t, RelocateMove, move.Kind)
				require.Equal(t, 1, move.From.Distance(move.To), "Pieces should only step to adjacent cells")
			}
		}
	})

	t.Run("a blocked piece does not block the others", func(t *testing.T) {
		b := boardOf(
			"br...",
			"rr...",
			"..b..",
			"...b.",
			"r...b",
		)

		moves := b.LegalMoves(Black)

		require.Len(t, moves, 6+6+2, "Corner piece should contribute nothing")
		for _, m := range moves {
			require.NotEqual(t, Coord{Row: 0, Col: 0}, m.From)
		}
	})
}
