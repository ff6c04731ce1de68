package direction

import (
	"errors"
	"fmt"
)

// ErrDimensionOutOfRange indicates a dimension count outside
// [MinDimensions, MaxDimensions].
var ErrDimensionOutOfRange = errors.New("sobol: number of dimensions out of range")

func checkDimensions(n int) error {
	if n < MinDimensions || n > MaxDimensions {
		return fmt.Errorf("%w: %d is outside [%d, %d]",
			ErrDimensionOutOfRange, n, MinDimensions, MaxDimensions)
	}
	return nil
}
