package common

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{3}, 3},
		{"mixed", []float64{1, 2, 3, 4}, 2.5},
		{"negative", []float64{-2, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.data); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Mean(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestRMS(t *testing.T) {
	if got := RMS(nil); got != 0 {
		t.Errorf("RMS(nil) = %v, want 0", got)
	}
	if got := RMS([]float64{3, 4}); math.Abs(got-math.Sqrt(12.5)) > 1e-12 {
		t.Errorf("RMS([3 4]) = %v, want %v", got, math.Sqrt(12.5))
	}
}

func TestDiff(t *testing.T) {
	if got := Diff([]float64{5}); got != nil {
		t.Errorf("Diff of one sample = %v, want nil", got)
	}

	got := Diff([]float64{0, 0.5, 1.0, 1.5})
	want := []float64{0.5, 0.5, 0.5}
	if len(got) != len(want) {
		t.Fatalf("Diff length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Diff[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFiniteRange(t *testing.T) {
	rows := [][]float64{
		{math.Inf(-1), -3, 7},
		{math.NaN(), 2, math.Inf(1)},
	}

	min, max, ok := FiniteRange(rows)
	if !ok {
		t.Fatal("FiniteRange reported no finite values")
	}
	if min != -3 || max != 7 {
		t.Errorf("FiniteRange = (%v, %v), want (-3, 7)", min, max)
	}

	_, _, ok = FiniteRange([][]float64{{math.Inf(-1), math.NaN()}})
	if ok {
		t.Error("FiniteRange reported ok for a matrix without finite values")
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{1000, 1024},
		{1024, 1024},
	}

	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
