package render

import (
	"fmt"
	"strings"

	"github.com/mrldupuis/scalogramify/algorithms/wavelet"
	"github.com/mrldupuis/scalogramify/logging"
)

// Scalogram renders continuous wavelet transform scalograms as PNG
// images.
type Scalogram struct {
	params ScalogramParams
	opts   Options
}

// NewScalogram creates a scalogram renderer. Zero-valued params fall back
// to the stock policy.
func NewScalogram(params ScalogramParams, opts Options) *Scalogram {
	defaults := DefaultScalogramParams()
	if params.Wavelet == "" {
		params.Wavelet = defaults.Wavelet
	}
	if params.MaxScale <= 0 {
		params.MaxScale = defaults.MaxScale
	}
	if params.SamplingPeriod <= 0 {
		params.SamplingPeriod = defaults.SamplingPeriod
	}
	return &Scalogram{params: params, opts: opts}
}

// Render computes the wavelet coefficient magnitudes of one signal and
// writes the scalogram image to outputPath. The vertical axis is the
// scale ladder, ascending from the bottom.
func (s *Scalogram) Render(times, values []float64, outputPath string) error {
	logger := logging.WithFields(logging.Fields{
		"component": "scalogram_renderer",
		"output":    outputPath,
	})

	if len(times) != len(values) {
		return fmt.Errorf("time and value sequences differ in length: %d vs %d", len(times), len(values))
	}
	if len(values) == 0 {
		return fmt.Errorf("empty signal")
	}

	mother, err := waveletForName(s.params.Wavelet)
	if err != nil {
		return err
	}

	method, err := wavelet.ParseMethod(s.params.Method)
	if err != nil {
		return err
	}

	cwt := wavelet.NewCWT(mother)
	cwt.SetMethod(method)

	scales := wavelet.Scales(s.params.MaxScale)
	result, err := cwt.Compute(values, scales, s.params.SamplingPeriod)
	if err != nil {
		return fmt.Errorf("compute wavelet transform: %w", err)
	}

	mag := result.Magnitude()

	logger.Debug("rendering scalogram", logging.Fields{
		"wavelet": result.WaveletName,
		"scales":  len(scales),
		"samples": len(values),
		"method":  string(method),
	})

	opts := s.opts.merged(Options{
		Title:         titleFromFilename(outputPath),
		XLabel:        "Time (s)",
		YLabel:        "Scale",
		ColorbarLabel: "Magnitude",
	})

	grid := &scalogramGrid{times: times, scales: scales, mag: mag}
	cm := colorMapByName(opts.CMap)
	rangeColorMap(cm, mag)

	return writePNG(grid, cm, opts, outputPath)
}

// waveletForName resolves a mother wavelet family name.
func waveletForName(name string) (wavelet.Wavelet, error) {
	switch strings.ToLower(name) {
	case "", "morl", "morlet":
		return wavelet.Morlet{}, nil
	default:
		return nil, fmt.Errorf("unknown wavelet %q (want morl)", name)
	}
}
