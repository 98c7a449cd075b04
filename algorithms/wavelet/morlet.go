package wavelet

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// DefaultPrecision controls how finely mother wavelets are sampled:
// 2^DefaultPrecision points across the support.
const DefaultPrecision = 10

// Wavelet is a real-valued mother wavelet defined on a finite support.
type Wavelet interface {
	// Name returns the wavelet family name
	Name() string

	// Support returns the effective domain [lower, upper] of the wavelet
	Support() (lower, upper float64)

	// Psi evaluates the mother wavelet at t
	Psi(t float64) float64
}

// Morlet is the real Morlet wavelet, a cosine modulated by a Gaussian
// envelope: exp(-t²/2)·cos(5t) on [-8, 8].
type Morlet struct{}

// Name returns "morl"
func (Morlet) Name() string { return "morl" }

// Support returns the effective domain of the Morlet wavelet
func (Morlet) Support() (float64, float64) { return -8, 8 }

// Psi evaluates the Morlet wavelet at t
func (Morlet) Psi(t float64) float64 {
	return math.Exp(-t*t/2) * math.Cos(5*t)
}

// Sample evaluates the wavelet on 2^precision evenly spaced points across
// its support. Returns the sampled values and the sample positions.
func Sample(w Wavelet, precision int) (psi, x []float64) {
	n := 1 << precision
	lower, upper := w.Support()

	x = floats.Span(make([]float64, n), lower, upper)
	psi = make([]float64, n)
	for i, xi := range x {
		psi[i] = w.Psi(xi)
	}
	return psi, x
}

// CentralFrequency estimates the dominant frequency of the wavelet, in
// cycles per unit of its support, by locating the peak magnitude bin of
// the sampled wavelet's spectrum. For the Morlet wavelet this is 0.8125
// at the default precision.
func CentralFrequency(w Wavelet, precision int) float64 {
	psi, x := Sample(w, precision)
	domain := x[len(x)-1] - x[0]

	fft := fourier.NewFFT(len(psi))
	coeffs := fft.Coefficients(nil, psi)

	// Skip the DC bin when picking the peak
	peak := 1
	for k := 2; k < len(coeffs); k++ {
		if cmplx.Abs(coeffs[k]) > cmplx.Abs(coeffs[peak]) {
			peak = k
		}
	}

	return float64(peak) / domain
}
