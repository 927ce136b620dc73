// Package agent holds the computer player: its piece, its view of the board,
// and the search that picks its moves.
package agent

import (
	"fmt"
	"time"

	"teeko/game"
	"teeko/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(a *Agent)

type Agent struct {
	piece    game.Piece
	opponent game.Piece
	board    game.Board
	searcher searcher.Searcher
	rng      *rand.Rand
}

// WithSeed makes the random piece assignment reproducible.
func WithSeed(seed uint64) Option {
	return func(a *Agent) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPiece skips the random assignment.
func WithPiece(piece game.Piece) Option {
	return func(a *Agent) {
		if piece == game.Black || piece == game.Red {
			a.piece = piece
		}
	}
}

// WithBoard starts the agent from a position other than the empty board.
func WithBoard(board game.Board) Option {
	return func(a *Agent) {
		a.board = board
	}
}

func WithSearcher(s searcher.Searcher) Option {
	return func(a *Agent) {
		if s != nil {
			a.searcher = s
		}
	}
}

// New returns an agent on an empty board. Unless WithPiece is given, the
// agent's piece is drawn at random and kept for its lifetime.
func New(options ...Option) *Agent {
	a := &Agent{
		searcher: searcher.NewMinimax(),
	}
	for _, option := range options {
		option(a)
	}
	if a.piece == game.Empty {
		if a.rng == nil {
			a.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
		}
		a.piece = game.Pieces[a.rng.Intn(len(game.Pieces))]
	}
	a.opponent = a.piece.Opponent()

	log.Debug().Msgf("agent plays %s", a.piece)
	return a
}

func (a *Agent) Piece() game.Piece {
	return a.piece
}

func (a *Agent) Opponent() game.Piece {
	return a.opponent
}

// Board returns a copy of the agent's board.
func (a *Agent) Board() game.Board {
	return a.board
}

func (a *Agent) Winner() game.Piece {
	return a.board.Winner()
}

// FindMove proposes a move on the agent's own board.
func (a *Agent) FindMove() (game.Move, error) {
	return a.ProposeMove(a.board)
}

// ProposeMove searches state for the agent's best move. Neither state nor the
// agent's board is modified; the caller applies the move.
func (a *Agent) ProposeMove(state game.Board) (game.Move, error) {
	if _, err := state.IsDropPhase(); err != nil {
		return game.Move{}, err
	}
	if state.Winner() != game.Empty {
		return game.Move{}, game.ErrGameOver
	}

	outcome, _ := a.searcher.Search(state, a.piece)
	move, err := game.Diff(state, outcome.State)
	if err != nil {
		return game.Move{}, fmt.Errorf("%s cannot move: %w", a.piece, err)
	}

	log.Debug().Msgf("%s proposes %s (score %.2f)", a.piece, move, outcome.Score)
	return move, nil
}

// ApplyOpponentMove validates move against the agent's board and plays it for
// the opponent. On error the board is left unchanged.
func (a *Agent) ApplyOpponentMove(move game.Move) error {
	if err := a.board.Validate(move, a.opponent); err != nil {
		return err
	}
	a.ApplyMove(move, a.opponent)
	return nil
}

// ApplyMove plays move for piece without validation.
func (a *Agent) ApplyMove(move game.Move, piece game.Piece) {
	a.board.Apply(move, piece)
}
