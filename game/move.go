package game

import "fmt"

// MoveKind distinguishes placing a new piece from relocating one.
type MoveKind int

const (
	DropMove MoveKind = iota
	RelocateMove
)

// Move represents a move in the game. From is meaningful only for
// RelocateMove.
type Move struct {
	Kind MoveKind
	To   Coord
	From Coord
}

func Drop(to Coord) Move {
	return Move{Kind: DropMove, To: to}
}

func Relocate(from, to Coord) Move {
	return Move{Kind: RelocateMove, To: to, From: from}
}

// Pairs returns the move descriptor exchanged with the I/O layer:
// [target] in the drop phase, [target, source] in the move phase.
func (m Move) Pairs() []Coord {
	if m.Kind == RelocateMove {
		return []Coord{m.To, m.From}
	}
	return []Coord{m.To}
}

// MoveFromPairs is the inverse of Pairs.
func MoveFromPairs(pairs []Coord) (Move, error) {
	switch len(pairs) {
	case 1:
		return Drop(pairs[0]), nil
	case 2:
		return Relocate(pairs[1], pairs[0]), nil
	default:
		return Move{}, fmt.Errorf("move descriptor needs 1 or 2 coordinates, got %d", len(pairs))
	}
}

func (m Move) String() string {
	if m.Kind == RelocateMove {
		return fmt.Sprintf("%s->%s", m.From, m.To)
	}
	return m.To.String()
}

// Validate checks that mover may play m on b. Checks run in order: bounds,
// source ownership, adjacency, target occupancy and finally phase.
func (b Board) Validate(m Move, mover Piece) error {
	if !m.To.InBounds() {
		return fmt.Errorf("%w: target %s", ErrOutOfBounds, m.To)
	}
	if m.Kind == RelocateMove {
		if !m.From.InBounds() {
			return fmt.Errorf("%w: source %s", ErrOutOfBounds, m.From)
		}
		if b.At(m.From) != mover {
			return fmt.Errorf("%w: %s", ErrSourceOwnership, m.From)
		}
		if m.From.Distance(m.To) > 1 {
			return fmt.Errorf("%w: %s", ErrNonAdjacentMove, m)
		}
	}
	if b.At(m.To) != Empty {
		return fmt.Errorf("%w: %s", ErrOccupiedTarget, m.To)
	}

	drop, err := b.IsDropPhase()
	if err != nil {
		return err
	}
	if drop != (m.Kind == DropMove) {
		return fmt.Errorf("%w: %s", ErrPhaseMismatch, m)
	}
	return nil
}

// Apply places piece according to m without validation: the source is
// cleared for a relocation, then the target is set.
func (b *Board) Apply(m Move, piece Piece) {
	if m.Kind == RelocateMove {
		b.Set(m.From, Empty)
	}
	b.Set(m.To, piece)
}

// Diff recovers the move that turns before into after. The cell that went
// from empty to occupied is the target; a cell that went from occupied to
// empty is the relocation source.
func Diff(before, after Board) (Move, error) {
	var to, from *Coord
	for row := range before {
		for col := range before[row] {
			c := Coord{Row: row, Col: col}
			if before[row][col] == after[row][col] {
				continue
			}
			if before[row][col] == Empty && to == nil {
				to = &c
			} else if before[row][col] != Empty && from == nil {
				from = &c
			}
		}
	}

	if to == nil {
		return Move{}, ErrNoLegalMove
	}
	if from == nil {
		return Drop(*to), nil
	}
	return Relocate(*from, *to), nil
}
