// meta/meta.go
package meta

// DEPTH defines the number of plies the minimax search looks ahead.
const DEPTH = 3

// GO_ROUTINES defines the number of goroutines evaluating root moves.
const GO_ROUTINES = 1

// MAX_TURNS defines the number of turns after which a self-play game is drawn.
const MAX_TURNS = 300

// LOG_LEVEL defines the default zerolog level.
const LOG_LEVEL = "info"
