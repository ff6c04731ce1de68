// Package sobol generates Sobol' low-discrepancy quasi-random sequences.
//
// A Sobol' sequence is a deterministic, equidistributed sequence of points
// in the unit hypercube. It replaces pseudo-random sampling in
// quasi-Monte-Carlo integration. Points are produced by the Bratley-Fox
// Gray-code recurrence: each raw point differs from the previous one by an
// XOR with a single direction number.
//
// Basic usage:
//
//	gen, err := sobol.Build(2, 0, 0)
//	points, err := gen.Generate(1000) // *mat.Dense, 1000 x 2
//	x, err := gen.Element(42)         // []float64, length 2
//
// A Generator is not safe for concurrent use. Parallel samplers should build
// one Generator per worker.
package sobol

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/nozzle/sobol/direction"
	"github.com/nozzle/sobol/internal/sequence"
)

// DefaultSeed selects the tabulated good starting index for the configured
// dimension count.
const DefaultSeed = -1

// Config configures a Generator.
type Config struct {
	// Dimensions is the number of coordinates per point, in [1, 40].
	// Default: 2
	Dimensions int

	// Seed is the index of the first point returned by Generate.
	// DefaultSeed picks direction.GoodSeed(Dimensions).
	// Default: DefaultSeed
	Seed int

	// Leap is the number of points discarded between two returned points.
	// Default: 0
	Leap int

	// Logger receives debug records about matrix builds and rewinds.
	// Default: slog.Default()
	Logger *slog.Logger
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Dimensions: 2,
		Seed:       DefaultSeed,
		Leap:       0,
	}
}

// Generator produces points of a Sobol' sequence.
type Generator struct {
	config Config
	seed   int
	logger *slog.Logger

	matrix *direction.Matrix
	state  *sequence.State
}

// Build returns a Generator for n dimensions starting at seed and keeping
// one point out of every leap+1. Every negative seed is rejected; use New
// with Config.Seed set to DefaultSeed to start at the good seed.
func Build(n, seed, leap int) (*Generator, error) {
	if seed < 0 {
		return nil, fmt.Errorf("%w: negative seed %d", ErrInvalidArgument, seed)
	}
	config := DefaultConfig()
	config.Dimensions = n
	config.Seed = seed
	config.Leap = leap
	return New(config)
}

// New returns a Generator positioned at the configured seed.
func New(config Config) (*Generator, error) {
	m, err := direction.Build(config.Dimensions)
	if err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == DefaultSeed {
		if seed, err = direction.GoodSeed(config.Dimensions); err != nil {
			return nil, err
		}
	}
	if seed < 0 {
		return nil, fmt.Errorf("%w: negative seed %d", ErrInvalidArgument, seed)
	}
	if config.Leap < 0 {
		return nil, fmt.Errorf("%w: negative leap %d", ErrInvalidArgument, config.Leap)
	}
	if seed > direction.LastIndex {
		return nil, fmt.Errorf("%w: seed %d is past the last element %d",
			ErrSequenceExhausted, seed, direction.LastIndex)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("built direction matrix",
		"dimensions", m.Dimensions(), "columns", direction.MaxColumns)

	g := &Generator{
		config: config,
		seed:   seed,
		logger: logger,
		matrix: m,
		state:  sequence.New(m),
	}
	if _, err := g.state.Seek(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// WithDimension returns a new Generator for n dimensions with the same seed
// and leap configuration. The receiver is not modified.
func (g *Generator) WithDimension(n int) (*Generator, error) {
	config := g.config
	config.Dimensions = n
	return New(config)
}

// Dimensions returns the number of coordinates per point.
func (g *Generator) Dimensions() int {
	return g.matrix.Dimensions()
}

// Seed returns the resolved starting index used by Generate.
func (g *Generator) Seed() int {
	return g.seed
}

// Leap returns the configured number of skipped points between kept points.
func (g *Generator) Leap() int {
	return g.config.Leap
}

// Index returns the position the next Element or Next call continues from.
func (g *Generator) Index() int {
	return g.state.Index()
}

// Element returns the point at index and leaves the generator positioned at
// index+1.
//
// Seeking backwards replays the sequence from index 0, so its cost grows
// with index rather than with the distance moved.
func (g *Generator) Element(index int) ([]float64, error) {
	dst := make([]float64, g.Dimensions())
	if err := g.ElementInto(index, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// ElementInto is equivalent to Element, except the point is written to dst.
// dst must have length Dimensions().
func (g *Generator) ElementInto(index int, dst []float64) error {
	if len(dst) != g.Dimensions() {
		return fmt.Errorf("%w: destination has length %d, want %d",
			ErrInvalidArgument, len(dst), g.Dimensions())
	}
	if index < 0 {
		return fmt.Errorf("%w: negative index %d", ErrInvalidArgument, index)
	}
	if index > direction.LastIndex {
		return fmt.Errorf("%w: element %d requested but element %d is the last",
			ErrSequenceExhausted, index, direction.LastIndex)
	}

	from := g.state.Index()
	rewound, err := g.state.Seek(index)
	if rewound {
		g.logger.Debug("rewinding sequence", "from", from, "to", index)
	}
	if err != nil {
		return err
	}

	g.state.ScaleInto(dst)
	return g.state.Advance()
}

// Generate returns count points starting at the configured seed and leap,
// one per row.
func (g *Generator) Generate(count int) (*mat.Dense, error) {
	return g.GenerateFrom(count, g.seed, g.config.Leap)
}

// Next returns count points continuing from the current position with the
// configured leap.
func (g *Generator) Next(count int) (*mat.Dense, error) {
	return g.GenerateFrom(count, g.state.Index(), g.config.Leap)
}

// GenerateFrom returns count points, the first at index seed, keeping one
// point out of every leap+1. Every index in between is visited, since the
// recurrence cannot skip across a gap.
func (g *Generator) GenerateFrom(count, seed, leap int) (*mat.Dense, error) {
	switch {
	case count < 0:
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidArgument, count)
	case seed < 0:
		return nil, fmt.Errorf("%w: negative seed %d", ErrInvalidArgument, seed)
	case leap < 0:
		return nil, fmt.Errorf("%w: negative leap %d", ErrInvalidArgument, leap)
	}
	if count == 0 {
		return &mat.Dense{}, nil
	}

	// The walk ends at seed + (count-1)*(leap+1), which must not pass
	// LastIndex. Divide instead of multiplying so huge arguments cannot wrap.
	if seed > direction.LastIndex ||
		uint64(count-1) > uint64(direction.LastIndex-seed)/(uint64(leap)+1) {
		return nil, fmt.Errorf("%w: %d points from %d with leap %d go past the last element %d",
			ErrSequenceExhausted, count, seed, leap, direction.LastIndex)
	}

	n := g.Dimensions()

	out := mat.NewDense(count, n, nil)
	row := make([]float64, n)
	nextOutput := seed
	for stored, index := 0, seed; stored < count; index++ {
		if err := g.ElementInto(index, row); err != nil {
			return nil, err
		}
		if index == nextOutput {
			out.SetRow(stored, row)
			nextOutput += leap + 1
			stored++
		}
	}
	return out, nil
}
