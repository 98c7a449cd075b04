package wavelet

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/mrldupuis/scalogramify/algorithms/spectral"
)

// Method selects how the per-scale convolution is evaluated.
type Method string

const (
	// MethodAuto picks direct evaluation for short filters and the FFT
	// path for everything else.
	MethodAuto Method = "auto"

	// MethodConv always evaluates the convolution directly.
	MethodConv Method = "conv"

	// MethodFFT always evaluates the convolution in the frequency domain.
	MethodFFT Method = "fft"
)

// Direct convolution wins below this filter length; beyond it the FFT
// path is cheaper.
const directFilterMax = 64

// ParseMethod resolves a convolution method name. The empty string means
// MethodAuto.
func ParseMethod(name string) (Method, error) {
	switch Method(name) {
	case "":
		return MethodAuto, nil
	case MethodAuto, MethodConv, MethodFFT:
		return Method(name), nil
	default:
		return "", fmt.Errorf("unknown convolution method %q (want auto, conv or fft)", name)
	}
}

// CWT performs continuous wavelet transforms with a configured mother
// wavelet.
type CWT struct {
	wavelet   Wavelet
	precision int
	method    Method
	fft       *spectral.FFT
}

// CWTResult holds the result of a continuous wavelet transform
type CWTResult struct {
	Coefficients   [][]complex128 `json:"-"`               // Scale x Time coefficient matrix
	Scales         []float64      `json:"scales"`          // Analyzed scales
	Frequencies    []float64      `json:"frequencies"`     // Pseudo-frequency per scale (Hz)
	SamplingPeriod float64        `json:"sampling_period"` // Sampling period the frequencies assume
	WaveletName    string         `json:"wavelet"`         // Mother wavelet family name
}

// Magnitude returns |coefficients| as a Scale x Time matrix.
func (r *CWTResult) Magnitude() [][]float64 {
	mag := make([][]float64, len(r.Coefficients))
	for s, row := range r.Coefficients {
		mag[s] = make([]float64, len(row))
		for t, c := range row {
			mag[s][t] = cmplx.Abs(c)
		}
	}
	return mag
}

// NewCWT creates a CWT calculator. A nil wavelet defaults to Morlet.
func NewCWT(w Wavelet) *CWT {
	if w == nil {
		w = Morlet{}
	}
	return &CWT{
		wavelet:   w,
		precision: DefaultPrecision,
		method:    MethodAuto,
		fft:       spectral.NewFFT(),
	}
}

// SetMethod overrides the convolution method used by Compute.
func (c *CWT) SetMethod(m Method) {
	c.method = m
}

// Scales returns the integer scale ladder 1, 2, ..., maxScale.
func Scales(maxScale int) []float64 {
	if maxScale < 1 {
		return nil
	}
	if maxScale == 1 {
		return []float64{1}
	}
	return floats.Span(make([]float64, maxScale), 1, float64(maxScale))
}

// DefaultScales returns the stock scale ladder 1..127.
func DefaultScales() []float64 {
	return Scales(127)
}

// Compute runs the continuous wavelet transform of the signal over the
// given scales. Each scale resamples the integrated mother wavelet at the
// signal's spacing, convolves it with the signal, and differentiates the
// result, so the coefficient rows come out in the signal's length.
//
// The sampling period only calibrates the pseudo-frequency axis; the
// coefficients themselves are independent of it.
func (c *CWT) Compute(signal []float64, scales []float64, samplingPeriod float64) (*CWTResult, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("empty signal")
	}

	if len(scales) == 0 {
		return nil, fmt.Errorf("no scales given")
	}

	if samplingPeriod <= 0 {
		return nil, fmt.Errorf("sampling period must be positive, got %v", samplingPeriod)
	}

	psi, x := Sample(c.wavelet, c.precision)
	step := x[1] - x[0]

	// Integrate the wavelet once; every scale resamples this table.
	intPsi := make([]float64, len(psi))
	sum := 0.0
	for i, v := range psi {
		sum += v * step
		intPsi[i] = sum
	}

	centralFreq := CentralFrequency(c.wavelet, c.precision)
	domain := x[len(x)-1] - x[0]

	coefficients := make([][]complex128, len(scales))
	frequencies := make([]float64, len(scales))

	for si, scale := range scales {
		filt, err := scaleFilter(intPsi, scale, step, domain)
		if err != nil {
			return nil, err
		}

		conv := c.convolve(signal, filt)

		// coef = -sqrt(scale)·diff(conv): differentiating the convolution
		// with the integrated wavelet recovers the wavelet response.
		coef := make([]float64, len(conv)-1)
		k := -math.Sqrt(scale)
		for i := range coef {
			coef[i] = k * (conv[i+1] - conv[i])
		}

		// Center-trim the full convolution back to the signal length.
		d := float64(len(coef)-len(signal)) / 2.0
		lo := int(math.Floor(d))
		hi := len(coef) - int(math.Ceil(d))
		if lo < 0 || hi > len(coef) {
			return nil, fmt.Errorf("scale %v is too small for the wavelet resolution", scale)
		}

		row := make([]complex128, len(signal))
		for i, v := range coef[lo:hi] {
			row[i] = complex(v, 0)
		}

		coefficients[si] = row
		frequencies[si] = centralFreq / (scale * samplingPeriod)
	}

	return &CWTResult{
		Coefficients:   coefficients,
		Scales:         scales,
		Frequencies:    frequencies,
		SamplingPeriod: samplingPeriod,
		WaveletName:    c.wavelet.Name(),
	}, nil
}

// scaleFilter resamples the integrated wavelet at the given scale and
// reverses it, producing the convolution filter for that scale.
func scaleFilter(intPsi []float64, scale, step, domain float64) ([]float64, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %v", scale)
	}

	n := int(math.Ceil(scale*domain + 1))

	filt := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		j := int(float64(i) / (scale * step))
		if j >= len(intPsi) {
			break
		}
		filt = append(filt, intPsi[j])
	}

	if len(filt) < 2 {
		return nil, fmt.Errorf("scale %v is too small for the wavelet resolution", scale)
	}

	for i, j := 0, len(filt)-1; i < j; i, j = i+1, j-1 {
		filt[i], filt[j] = filt[j], filt[i]
	}

	return filt, nil
}

// convolve evaluates the full linear convolution of the signal with a
// per-scale filter.
func (c *CWT) convolve(signal, filt []float64) []float64 {
	method := c.method
	if method == MethodAuto {
		if len(filt) <= directFilterMax {
			method = MethodConv
		} else {
			method = MethodFFT
		}
	}

	if method == MethodFFT {
		return c.fft.ConvolveReal(signal, filt)
	}
	return convolveDirect(signal, filt)
}

// convolveDirect is the time-domain evaluation of the full convolution.
func convolveDirect(x, h []float64) []float64 {
	out := make([]float64, len(x)+len(h)-1)
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		for j, hj := range h {
			out[i+j] += xi * hj
		}
	}
	return out
}
