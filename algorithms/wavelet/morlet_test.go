package wavelet

import (
	"fmt"
	"math"
	"testing"
)

func TestMorletPsi(t *testing.T) {
	m := Morlet{}

	if got := m.Psi(0); math.Abs(got-1) > 1e-12 {
		t.Errorf("Psi(0) = %v, want 1", got)
	}

	// The real Morlet wavelet is even.
	for _, x := range []float64{0.5, 1, 2.5, 7} {
		if math.Abs(m.Psi(x)-m.Psi(-x)) > 1e-12 {
			t.Errorf("Psi(%v) = %v, Psi(%v) = %v, want equal", x, m.Psi(x), -x, m.Psi(-x))
		}
	}

	// The Gaussian envelope makes the tails negligible at the support edge.
	if math.Abs(m.Psi(8)) > 1e-12 {
		t.Errorf("Psi(8) = %v, want ~0", m.Psi(8))
	}
}

func TestSample(t *testing.T) {
	psi, x := Sample(Morlet{}, 8)

	if len(psi) != 256 || len(x) != 256 {
		t.Fatalf("sampled %d points, want 256", len(psi))
	}
	if x[0] != -8 || x[len(x)-1] != 8 {
		t.Errorf("support sampled over [%v, %v], want [-8, 8]", x[0], x[len(x)-1])
	}

	step := x[1] - x[0]
	for i := 1; i < len(x); i++ {
		if math.Abs((x[i]-x[i-1])-step) > 1e-9 {
			t.Fatalf("sample positions are not evenly spaced at %d", i)
		}
	}
}

func TestCentralFrequency(t *testing.T) {
	got := CentralFrequency(Morlet{}, DefaultPrecision)

	// The spectrum of exp(-t²/2)·cos(5t) peaks at 5/2π ≈ 0.796 cycles;
	// the discrete estimate lands on the nearest bin of the 16-unit domain.
	if math.Abs(got-0.8125) > 1e-12 {
		t.Errorf("CentralFrequency = %v, want 0.8125", got)
	}
}

func ExampleCentralFrequency() {
	fmt.Printf("%.4f\n", CentralFrequency(Morlet{}, DefaultPrecision))
	// Output:
	// 0.8125
}
