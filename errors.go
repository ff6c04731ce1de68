package sobol

import (
	"github.com/nozzle/sobol/direction"
	"github.com/nozzle/sobol/internal/bitutil"
	"github.com/nozzle/sobol/internal/sequence"
)

var (
	// ErrDimensionOutOfRange indicates a dimension count outside [1, 40].
	ErrDimensionOutOfRange = direction.ErrDimensionOutOfRange
	// ErrInvalidArgument indicates a negative index, seed, leap or count.
	ErrInvalidArgument = bitutil.ErrInvalidArgument
	// ErrSequenceExhausted indicates a request past the last representable
	// element of the sequence.
	ErrSequenceExhausted = sequence.ErrSequenceExhausted
)
