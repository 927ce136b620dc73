package engine

import (
	"time"

	"teeko/game"

	"github.com/google/uuid"
)

// Player is a participant in a game driven by an engine. Each player keeps its
// own copy of the board in sync through ApplyMove and ApplyOpponentMove.
type Player interface {
	Piece() game.Piece
	FindMove() (game.Move, error)
	ApplyMove(move game.Move, piece game.Piece)
	ApplyOpponentMove(move game.Move) error
}

type MoveRecord struct {
	Turn     int
	Piece    game.Piece
	Move     game.Move
	Duration time.Duration
}

type Result struct {
	ID       uuid.UUID
	Winner   game.Piece // game.Empty when the turn limit was reached
	Turns    int
	Board    game.Board
	Moves    []MoveRecord
	Duration time.Duration
}
