package spectral

import (
	"github.com/mjibson/go-dsp/fft"

	"github.com/mrldupuis/scalogramify/algorithms/common"
)

// FFT provides Fast Fourier Transform functionality
type FFT struct{}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes the FFT of a real-valued signal using mjibson/go-dsp.
// Returns the full complex spectrum with len(signal) bins.
func (f *FFT) Compute(signal []float64) []complex128 {
	if len(signal) == 0 {
		return []complex128{}
	}

	// mjibson/go-dsp handles all sizes efficiently, including non-power-of-2
	return fft.FFTReal(signal)
}

// ConvolveReal computes the full linear convolution of x and h, producing
// len(x)+len(h)-1 samples. Both sequences are zero-padded to a power of two
// before the frequency-domain product so the circular convolution cannot
// wrap into the result.
func (f *FFT) ConvolveReal(x, h []float64) []float64 {
	if len(x) == 0 || len(h) == 0 {
		return nil
	}

	n := len(x) + len(h) - 1
	size := common.NextPowerOfTwo(n)

	xc := make([]complex128, size)
	for i, v := range x {
		xc[i] = complex(v, 0)
	}
	hc := make([]complex128, size)
	for i, v := range h {
		hc[i] = complex(v, 0)
	}

	product := fft.Convolve(xc, hc)

	result := make([]float64, n)
	for i := range result {
		result[i] = real(product[i])
	}
	return result
}
