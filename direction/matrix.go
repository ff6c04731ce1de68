// Package direction builds the Sobol' direction-number matrix.
//
// Each dimension's direction numbers come from a primitive polynomial over
// GF(2) and a short list of initial values. Both tables are frozen: changing
// any entry changes every generated sequence.
//
// Basic usage:
//
//	m, err := direction.Build(3)
//	x := float64(m.At(1, 0)) * m.RecipD() // 0.5
package direction

import (
	"fmt"

	"github.com/nozzle/sobol/internal/bitutil"
)

// Matrix holds the scaled direction numbers for a fixed dimension count.
// It is never modified after Build returns and may be shared between
// goroutines.
type Matrix struct {
	v      [][MaxColumns]uint32
	recipD float64
}

// Build constructs the direction matrix for n dimensions.
func Build(n int) (*Matrix, error) {
	if err := checkDimensions(n); err != nil {
		return nil, err
	}

	base := baseValues
	v := base[:n]

	for i := 1; i < n; i++ {
		include, err := coefficients(polynomials[i])
		if err != nil {
			return nil, fmt.Errorf("decoding polynomial %d: %w", i, err)
		}
		m := len(include)

		for j := m; j < MaxColumns; j++ {
			newV := v[i][j-m]
			l := uint32(1)
			for k := range m {
				l *= 2
				if include[k] {
					newV ^= l * v[i][j-k-1]
				}
			}
			v[i][j] = newV
		}
	}

	// Shift every column so its bits line up under the top bit of a
	// LogMax-bit value. The last column keeps a multiplier of 1.
	l := uint32(1)
	for j := MaxColumns - 2; j >= 0; j-- {
		l *= 2
		for i := range v {
			v[i][j] *= l
		}
	}

	return &Matrix{
		v:      v,
		recipD: 1.0 / float64(2*uint64(l)),
	}, nil
}

// coefficients decodes the recurrence coefficients of a primitive
// polynomial. The result has one entry per degree; include[k] is the bit
// k+1 places below the leading bit.
func coefficients(poly uint32) ([]bool, error) {
	high, err := bitutil.HighBitPos(int(poly))
	if err != nil {
		return nil, err
	}
	m := high - 1
	include := make([]bool, m)
	for k := m - 1; k >= 0; k-- {
		include[k] = poly&1 == 1
		poly >>= 1
	}
	return include, nil
}

// Dimensions returns the number of dimensions the matrix was built for.
func (m *Matrix) Dimensions() int {
	return len(m.v)
}

// At returns the scaled direction number for dimension dim and column col.
// It panics if either index is out of range.
func (m *Matrix) At(dim, col int) uint32 {
	return m.v[dim][col]
}

// Row returns a copy of the direction numbers for dimension dim.
func (m *Matrix) Row(dim int) []uint32 {
	row := m.v[dim]
	return row[:]
}

// RecipD returns the factor that maps a raw value into [0, 1).
func (m *Matrix) RecipD() float64 {
	return m.recipD
}
