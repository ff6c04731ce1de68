// Package sequence implements the Gray-code recurrence that walks a Sobol'
// sequence one index at a time.
package sequence

import (
	"errors"
	"fmt"

	"github.com/nozzle/sobol/direction"
	"github.com/nozzle/sobol/internal/bitutil"
)

// ErrSequenceExhausted is returned when a step would need a direction
// number beyond the last precomputed column.
var ErrSequenceExhausted = errors.New("sobol: requested element too far into sequence")

// State is the position of a walk through the sequence.
//
// raw always equals the XOR chain obtained by applying the recurrence index
// times to the zero vector. A State is not safe for concurrent use.
type State struct {
	m     *direction.Matrix
	index int
	raw   []uint32
}

// New returns a State positioned at index 0.
func New(m *direction.Matrix) *State {
	return &State{
		m:   m,
		raw: make([]uint32, m.Dimensions()),
	}
}

// Index returns the next unconsumed position.
func (s *State) Index() int {
	return s.index
}

// Raw returns a copy of the raw accumulator at the current position.
func (s *State) Raw() []uint32 {
	out := make([]uint32, len(s.raw))
	copy(out, s.raw)
	return out
}

// Reset moves the state back to index 0.
func (s *State) Reset() {
	clear(s.raw)
	s.index = 0
}

// Advance applies one recurrence step. On error the state is unchanged.
func (s *State) Advance() error {
	col, err := column(s.index)
	if err != nil {
		return err
	}
	for d := range s.raw {
		s.raw[d] ^= s.m.At(d, col)
	}
	s.index++
	return nil
}

// column selects the direction-number column used to step away from index.
func column(index int) (int, error) {
	l := 1
	if index != 0 {
		var err error
		if l, err = bitutil.LowBitPos(index); err != nil {
			return 0, err
		}
	}
	if l >= direction.MaxColumns {
		return 0, fmt.Errorf("%w: element %d requested but element %d is the last",
			ErrSequenceExhausted, index, direction.LastIndex)
	}
	return l - 1, nil
}

// Seek positions the state at target. A backward seek replays the whole
// sequence from index 0; rewound reports whether that happened.
//
// If a step fails partway, the state stays at the last index reached.
func (s *State) Seek(target int) (rewound bool, err error) {
	if target < 0 {
		return false, fmt.Errorf("%w: negative index %d", bitutil.ErrInvalidArgument, target)
	}

	switch {
	case target == 0:
		s.Reset()
		return false, nil
	case target == s.index:
		return false, nil
	case target < s.index:
		s.Reset()
		rewound = true
	}

	for s.index < target {
		if err := s.Advance(); err != nil {
			return rewound, err
		}
	}
	return rewound, nil
}

// ScaleInto writes the current raw value, mapped into [0, 1), to dst.
// dst must have one entry per dimension.
func (s *State) ScaleInto(dst []float64) {
	recipD := s.m.RecipD()
	for d, q := range s.raw {
		dst[d] = float64(q) * recipD
	}
}
