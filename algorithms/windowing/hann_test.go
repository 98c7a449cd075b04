package windowing

import (
	"math"
	"testing"
)

func TestHannCoefficients(t *testing.T) {
	want := []float64{0, 0.146447, 0.5, 0.853553, 1, 0.853553, 0.5, 0.146447}

	got := NewHann(8, false).GetCoefficients()
	if !almostEqual(got, want, 1e-6) {
		t.Errorf("periodic coefficients = %v, want %v", got, want)
	}
}

func TestHannSymmetric(t *testing.T) {
	got := NewHann(9, true).GetCoefficients()

	if got[0] != 0 || math.Abs(got[8]) > 1e-12 {
		t.Errorf("symmetric window should vanish at both ends, got %v and %v", got[0], got[8])
	}
	if math.Abs(got[4]-1) > 1e-12 {
		t.Errorf("symmetric window should peak at the center, got %v", got[4])
	}
	for i := 0; i < 4; i++ {
		if math.Abs(got[i]-got[8-i]) > 1e-12 {
			t.Errorf("coefficients are not symmetric: got[%d]=%v, got[%d]=%v", i, got[i], 8-i, got[8-i])
		}
	}
}
