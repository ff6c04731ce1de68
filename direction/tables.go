package direction

import "fmt"

const (
	// MinDimensions is the smallest supported dimension count.
	MinDimensions = 1
	// MaxDimensions is the largest supported dimension count.
	MaxDimensions = 40
	// LogMax is the number of bits in a raw sequence value.
	LogMax = 30
	// MaxIndex is the absolute sequence-length ceiling, 2^LogMax - 1.
	MaxIndex = 1<<LogMax - 1
	// MaxColumns is the number of direction numbers per dimension,
	// the high bit position of MaxIndex.
	MaxColumns = LogMax
	// LastIndex is the last element that can be produced. Stepping away
	// from LastIndex+1 would need column MaxColumns, which does not exist.
	LastIndex = 1<<(MaxColumns-1) - 2
)

// Primitive polynomials over GF(2), one per dimension. The leading bit gives
// the degree; the bits below it are the recurrence coefficients. Entry 0
// belongs to the trivial dimension and is never decoded.
var polynomials = [MaxDimensions]uint32{
	1, 3, 7, 11, 13, 19, 25, 37, 59, 47,
	61, 55, 41, 67, 97, 91, 109, 103, 115, 131,
	193, 137, 145, 143, 241, 157, 185, 167, 229, 171,
	213, 191, 253, 203, 211, 239, 247, 285, 369, 299,
}

// goodSeeds[n] is the default starting index for n dimensions.
var goodSeeds = [...]int{0, 0, 1, 3, 5, 8, 11, 15, 19, 23, 27, 31, 35}

// seedColumn holds the initial direction numbers of one column, starting at
// dimension first. Dimensions below first keep the default of zero.
type seedColumn struct {
	first  int
	values []uint32
}

// Initial direction numbers for columns 1..7. Column 0 is 1 everywhere.
var seedColumns = [...]seedColumn{
	{2, []uint32{
		1, 3, 1, 3, 1, 3, 3, 1,
		3, 1, 3, 1, 3, 1, 1, 3, 1, 3,
		1, 3, 1, 3, 3, 1, 1, 1, 3, 1,
		3, 1, 3, 3, 1, 3, 1, 1, 1, 3,
	}},
	{3, []uint32{
		7, 5, 1, 3, 3, 7, 5,
		5, 7, 7, 1, 3, 3, 7, 5, 1, 1,
		5, 3, 7, 1, 7, 5, 1, 3, 7, 7,
		1, 1, 1, 5, 7, 7, 5, 1, 3, 3,
	}},
	{5, []uint32{
		1, 7, 9, 13, 11,
		1, 3, 7, 9, 5, 13, 13, 11, 3, 15,
		5, 3, 15, 7, 9, 13, 9, 1, 11, 7,
		5, 15, 1, 15, 11, 5, 11, 1, 7, 9,
	}},
	{7, []uint32{
		9, 3, 27,
		15, 29, 21, 23, 19, 11, 25, 7, 13, 17,
		1, 25, 29, 3, 31, 11, 5, 23, 27, 19,
		21, 5, 1, 17, 13, 7, 15, 9, 31, 25,
	}},
	{13, []uint32{
		37, 33, 7, 5, 11, 39, 63,
		59, 17, 15, 23, 29, 3, 21, 13, 31, 25,
		9, 49, 33, 19, 29, 11, 19, 27, 15, 25,
	}},
	{19, []uint32{
		13,
		33, 115, 41, 79, 17, 29, 119, 75, 73, 105,
		7, 59, 65, 21, 3, 113, 61, 89, 45, 107,
	}},
	{37, []uint32{
		7, 23, 39,
	}},
}

// baseValues is the unscaled starting matrix shared by every build. It is
// an array so that each build receives its own copy.
var baseValues = expandSeedColumns()

func expandSeedColumns() [MaxDimensions][MaxColumns]uint32 {
	var v [MaxDimensions][MaxColumns]uint32
	for i := range v {
		v[i][0] = 1
	}
	for c, col := range seedColumns {
		for k, val := range col.values {
			v[col.first+k][c+1] = val
		}
	}
	// The trivial dimension is all ones before scaling.
	for j := range v[0] {
		v[0][j] = 1
	}
	return v
}

// Polynomial returns the primitive-polynomial encoding for dimension dim.
func Polynomial(dim int) (uint32, error) {
	if dim < 0 || dim >= MaxDimensions {
		return 0, fmt.Errorf("%w: dimension index %d", ErrDimensionOutOfRange, dim)
	}
	return polynomials[dim], nil
}

// GoodSeed returns the default starting index for n dimensions. Counts past
// the end of the tabulated seeds use the last tabulated value.
func GoodSeed(n int) (int, error) {
	if err := checkDimensions(n); err != nil {
		return 0, err
	}
	if n >= len(goodSeeds) {
		return goodSeeds[len(goodSeeds)-1], nil
	}
	return goodSeeds[n], nil
}
