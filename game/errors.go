package game

import "errors"

var (
	ErrOccupiedTarget  = errors.New("illegal move: target cell is occupied")
	ErrSourceOwnership = errors.New("illegal move: no piece of the mover at source")
	ErrNonAdjacentMove = errors.New("illegal move: can only move to an adjacent cell")
	ErrOutOfBounds     = errors.New("illegal move: cell is off the board")
	ErrPhaseMismatch   = errors.New("illegal move: move kind does not match the game phase")
	ErrMarkerOverflow  = errors.New("corrupted board: more than 8 markers")
	ErrNoLegalMove     = errors.New("no legal move")
	ErrGameOver        = errors.New("game is over")
	ErrBadCoordinate   = errors.New("bad coordinate")
)
