package windowing

import (
	"fmt"
	"math"
)

// Tukey represents a Tukey (tapered cosine) window function.
// alpha is the fraction of the window occupied by the cosine tapers:
// 0 degenerates to rectangular, 1 to a Hann window.
type Tukey struct {
	size         int
	alpha        float64
	symmetric    bool
	coefficients []float64
}

// NewTukey creates a new Tukey window. The non-symmetric (periodic) variant is
// the one used for spectral analysis.
func NewTukey(size int, alpha float64, symmetric bool) *Tukey {
	t := &Tukey{
		size:      size,
		alpha:     alpha,
		symmetric: symmetric,
	}
	t.generate()
	return t
}

// generate creates Tukey window coefficients
func (t *Tukey) generate() {
	t.coefficients = make([]float64, t.size)

	span := float64(t.size)
	if t.symmetric {
		span = float64(t.size - 1)
	}

	// Rectangular middle section with cosine tapers on the sides
	taper := t.alpha * span / 2.0

	for i := 0; i < t.size; i++ {
		x := float64(i)
		switch {
		case taper <= 0:
			t.coefficients[i] = 1.0
		case x < taper:
			// Rising cosine taper
			t.coefficients[i] = 0.5 * (1.0 + math.Cos(math.Pi*(x/taper-1.0)))
		case x > span-taper:
			// Falling cosine taper
			t.coefficients[i] = 0.5 * (1.0 + math.Cos(math.Pi*(x-(span-taper))/taper))
		default:
			t.coefficients[i] = 1.0
		}
	}
}

// Apply applies the window to a signal (creates new array)
func (t *Tukey) Apply(signal []float64) []float64 {
	if len(signal) != t.size {
		return nil
	}

	windowed := make([]float64, t.size)
	for i := 0; i < t.size; i++ {
		windowed[i] = signal[i] * t.coefficients[i]
	}

	return windowed
}

// ApplyInPlace applies the window to a signal in-place
func (t *Tukey) ApplyInPlace(signal []float64) error {
	if len(signal) != t.size {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), t.size)
	}

	for i := 0; i < t.size; i++ {
		signal[i] *= t.coefficients[i]
	}

	return nil
}

// GetCoefficients returns a copy of the window coefficients
func (t *Tukey) GetCoefficients() []float64 {
	coeffs := make([]float64, len(t.coefficients))
	copy(coeffs, t.coefficients)
	return coeffs
}

// GetSize returns the window size
func (t *Tukey) GetSize() int {
	return t.size
}

// GetType returns the window type
func (t *Tukey) GetType() string {
	return "tukey"
}

// GetAlpha returns the Tukey alpha parameter
func (t *Tukey) GetAlpha() float64 {
	return t.alpha
}
