package windowing

import (
	"testing"
)

func TestRectangular(t *testing.T) {
	w := NewRectangular(4)

	for i, c := range w.GetCoefficients() {
		if c != 1 {
			t.Errorf("coefficient %d = %v, want 1", i, c)
		}
	}

	signal := []float64{1, -2, 3, -4}
	got := w.Apply(signal)
	if !almostEqual(got, signal, 0) {
		t.Errorf("rectangular window changed the signal: %v", got)
	}

	if w.GetType() != "rectangular" {
		t.Errorf("GetType = %q, want rectangular", w.GetType())
	}
}
