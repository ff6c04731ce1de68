package sobol_test

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/nozzle/sobol"
)

// Reference values agree with the published sequences to this tolerance.
const tol = 1e-6

// loadReference reads a whitespace-separated matrix from testdata, skipping
// lines that start with '#'.
func loadReference(t *testing.T, name string) *mat.Dense {
	t.Helper()

	file, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer file.Close()

	var data []float64
	rows, cols := 0, 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if cols == 0 {
			cols = len(fields)
		}
		require.Len(t, fields, cols, "%s row %d", name, rows)
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			require.NoError(t, err, "%s row %d", name, rows)
			data = append(data, v)
		}
		rows++
	}
	require.NoError(t, scanner.Err())

	return mat.NewDense(rows, cols, data)
}

// requireRowsEqual compares two matrices row by row to tol.
func requireRowsEqual(t *testing.T, want, got *mat.Dense) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, wr, gr, "row count")
	require.Equal(t, wc, gc, "column count")
	for i := 0; i < wr; i++ {
		if !floats.EqualApprox(want.RawRowView(i), got.RawRowView(i), tol) {
			t.Fatalf("row %d: got %v, want %v", i, got.RawRowView(i), want.RawRowView(i))
		}
	}
}

func TestReferenceSequences(t *testing.T) {
	for _, n := range []int{2, 7, 16} {
		t.Run(fmt.Sprintf("%dD", n), func(t *testing.T) {
			want := loadReference(t, fmt.Sprintf("%dd.txt", n))

			gen, err := sobol.Build(n, 0, 0)
			require.NoError(t, err)

			got, err := gen.Generate(1000)
			require.NoError(t, err)
			requireRowsEqual(t, want, got)
			require.True(t, mat.EqualApprox(want, got, tol))
		})
	}
}

// TestElementRandomAccess visits indices in random order so that both the
// forward walk and the full-replay rewind are exercised.
func TestElementRandomAccess(t *testing.T) {
	ref := loadReference(t, "2d.txt")
	gen, err := sobol.Build(2, 0, 0)
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(42, 1337))
	for _, i := range rng.Perm(1000) {
		got, err := gen.Element(i)
		require.NoError(t, err)
		if !floats.EqualApprox(ref.RawRowView(i), got, tol) {
			t.Fatalf("Element(%d) = %v; want %v", i, got, ref.RawRowView(i))
		}
		require.Equal(t, i+1, gen.Index())

		fresh, err := sobol.Build(2, i, 0)
		require.NoError(t, err)
		first, err := fresh.Generate(1)
		require.NoError(t, err)
		require.Equal(t, got, first.RawRowView(0), "fresh generator seeded at %d", i)
	}
}

func TestLeap(t *testing.T) {
	ref := loadReference(t, "2d.txt")

	for _, leap := range []int{2, 3, 7} {
		t.Run(fmt.Sprintf("leap=%d", leap), func(t *testing.T) {
			gen, err := sobol.Build(2, 0, leap)
			require.NoError(t, err)

			nPoints := 1000 / (leap + 1)
			got, err := gen.Generate(nPoints)
			require.NoError(t, err)

			want := mat.NewDense(nPoints, 2, nil)
			for k := 0; k < nPoints; k++ {
				want.SetRow(k, ref.RawRowView(k*(leap+1)))
			}
			requireRowsEqual(t, want, got)
		})
	}
}

func TestSkipAndLeap(t *testing.T) {
	ref := loadReference(t, "2d.txt")

	for _, leap := range []int{2, 3, 7} {
		for _, skip := range []int{1, 3, 20, 50} {
			t.Run(fmt.Sprintf("leap=%d/skip=%d", leap, skip), func(t *testing.T) {
				gen, err := sobol.Build(2, skip, leap)
				require.NoError(t, err)

				nPoints := (1000 - skip) / (leap + 1)
				got, err := gen.Generate(nPoints)
				require.NoError(t, err)

				want := mat.NewDense(nPoints, 2, nil)
				for k := 0; k < nPoints; k++ {
					want.SetRow(k, ref.RawRowView(k*(leap+1)+skip))
				}
				requireRowsEqual(t, want, got)

				again, err := sobol.Build(2, 0, 0)
				require.NoError(t, err)
				explicit, err := again.GenerateFrom(nPoints, skip, leap)
				require.NoError(t, err)
				require.True(t, mat.Equal(got, explicit))
			})
		}
	}
}

func TestDefaultSeedMatchesReference(t *testing.T) {
	ref := loadReference(t, "7d.txt")

	config := sobol.DefaultConfig()
	config.Dimensions = 7
	gen, err := sobol.New(config)
	require.NoError(t, err)
	require.Equal(t, 15, gen.Seed())

	got, err := gen.Generate(100)
	require.NoError(t, err)

	want := mat.NewDense(100, 7, nil)
	for k := 0; k < 100; k++ {
		want.SetRow(k, ref.RawRowView(k+15))
	}
	requireRowsEqual(t, want, got)
}

func TestNextContinues(t *testing.T) {
	ref := loadReference(t, "2d.txt")

	gen, err := sobol.Build(2, 0, 2)
	require.NoError(t, err)

	_, err = gen.Generate(5) // indices 0, 3, 6, 9, 12
	require.NoError(t, err)
	require.Equal(t, 13, gen.Index())

	got, err := gen.Next(3) // indices 13, 16, 19
	require.NoError(t, err)
	want := mat.NewDense(3, 2, nil)
	for k, index := range []int{13, 16, 19} {
		want.SetRow(k, ref.RawRowView(index))
	}
	requireRowsEqual(t, want, got)
}
