package direction

import (
	"reflect"
	"testing"
)

func TestCoefficients(t *testing.T) {
	cases := []struct {
		poly uint32
		want []bool
	}{
		{3, []bool{true}},                             // x + 1
		{7, []bool{true, true}},                       // x^2 + x + 1
		{11, []bool{false, true, true}},               // x^3 + x + 1
		{13, []bool{true, false, true}},               // x^3 + x^2 + 1
		{37, []bool{false, false, true, false, true}}, // x^5 + x^2 + 1
	}
	for _, tc := range cases {
		got, err := coefficients(tc.poly)
		if err != nil {
			t.Fatalf("coefficients(%d) error: %v", tc.poly, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("coefficients(%d) = %v; want %v", tc.poly, got, tc.want)
		}
	}
}

func TestBaseValuesUntouchedByBuild(t *testing.T) {
	before := baseValues
	if _, err := Build(MaxDimensions); err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if before != baseValues {
		t.Fatal("Build modified the shared base table")
	}
}
