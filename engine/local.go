package engine

import (
	"fmt"
	"time"

	"teeko/game"
	"teeko/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// LocalEngine plays two in-process players against each other on an
// authoritative board, Black first.
type LocalEngine struct {
	id       uuid.UUID
	board    game.Board
	players  [2]Player
	maxTurns int
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func NewLocalEngine(black, red Player, options ...Option) *LocalEngine {
	if black.Piece() != game.Black || red.Piece() != game.Red {
		panic("players must hold the black and red pieces respectively")
	}

	e := &LocalEngine{
		id:       uuid.New(),
		players:  [2]Player{black, red},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *LocalEngine) ID() uuid.UUID {
	return e.id
}

func (e *LocalEngine) Board() game.Board {
	return e.board
}

// Run executes the game loop until a player wins or the turn limit is
// reached. An error from a player, or a move failing validation, ends the game
// early with the partial result.
func (e *LocalEngine) Run() (Result, error) {
	result := Result{ID: e.id}
	start := time.Now()

	log.Info().Msgf("game %s: %s is starting", e.id, game.Black)

	current := 0
	for e.board.Winner() == game.Empty && result.Turns < e.maxTurns {
		player, other := e.players[current], e.players[1-current]
		piece := player.Piece()
		turn := result.Turns + 1

		moveStart := time.Now()
		move, err := player.FindMove()
		if err != nil {
			return e.finish(result, start), fmt.Errorf("turn %d: %s failed to move: %w", turn, piece, err)
		}
		if err := e.board.Validate(move, piece); err != nil {
			return e.finish(result, start), fmt.Errorf("turn %d: %s played %s: %w", turn, piece, move, err)
		}

		e.board.Apply(move, piece)
		player.ApplyMove(move, piece)
		if err := other.ApplyOpponentMove(move); err != nil {
			return e.finish(result, start), fmt.Errorf("turn %d: %s rejected %s: %w", turn, other.Piece(), move, err)
		}

		result.Turns = turn
		result.Moves = append(result.Moves, MoveRecord{
			Turn:     turn,
			Piece:    piece,
			Move:     move,
			Duration: time.Since(moveStart),
		})
		log.Info().Msgf("game %s turn %d: %s plays %s", e.id, turn, piece, move)

		current = 1 - current
	}

	result = e.finish(result, start)
	if result.Winner != game.Empty {
		log.Info().Msgf("game %s: %s wins after %d turns", e.id, result.Winner, result.Turns)
	} else {
		log.Info().Msgf("game %s: stopped after %d turns (no winner)", e.id, result.Turns)
	}
	return result, nil
}

func (e *LocalEngine) finish(result Result, start time.Time) Result {
	result.Winner = e.board.Winner()
	result.Board = e.board
	result.Duration = time.Since(start)
	return result
}
