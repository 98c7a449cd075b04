package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/mrldupuis/scalogramify/algorithms/common"
	"github.com/mrldupuis/scalogramify/algorithms/spectral"
	"github.com/mrldupuis/scalogramify/algorithms/windowing"
	"github.com/mrldupuis/scalogramify/logging"
)

// Tukey taper fraction for spectral analysis.
const tukeyAlpha = 0.25

// Spectrogram renders short-time Fourier power spectrograms as PNG
// images.
type Spectrogram struct {
	params SpectrogramParams
	opts   Options
}

// NewSpectrogram creates a spectrogram renderer. Zero-valued params fall
// back to the stock policy.
func NewSpectrogram(params SpectrogramParams, opts Options) *Spectrogram {
	defaults := DefaultSpectrogramParams()
	if params.SegmentLength <= 0 {
		params.SegmentLength = defaults.SegmentLength
	}
	if params.Window == "" {
		params.Window = defaults.Window
	}
	return &Spectrogram{params: params, opts: opts}
}

// Render computes the log-power surface of one evenly sampled signal and
// writes the spectrogram image to outputPath. The sampling rate is
// re-derived from the time vector as the reciprocal of the mean step.
func (s *Spectrogram) Render(times, values []float64, outputPath string) error {
	logger := logging.WithFields(logging.Fields{
		"component": "spectrogram_renderer",
		"output":    outputPath,
	})

	if len(times) != len(values) {
		return fmt.Errorf("time and value sequences differ in length: %d vs %d", len(times), len(values))
	}
	if len(values) == 0 {
		return fmt.Errorf("empty signal")
	}

	steps := common.Diff(times)
	if len(steps) == 0 {
		return fmt.Errorf("need at least two samples, got %d", len(values))
	}
	meanStep := common.Mean(steps)
	if meanStep <= 0 {
		return fmt.Errorf("time vector is not increasing")
	}
	sampleRate := 1 / meanStep

	segment := s.params.SegmentLength
	if segment > len(values) {
		logger.Warn("segment length exceeds signal, clamping", logging.Fields{
			"segment_length": segment,
			"samples":        len(values),
		})
		segment = len(values)
	}

	window, err := windowForName(s.params.Window, segment)
	if err != nil {
		return err
	}

	result, err := spectral.NewSpectrogram(segment, window).Compute(values, sampleRate)
	if err != nil {
		return fmt.Errorf("compute spectrogram: %w", err)
	}

	var db [][]float64
	if math.IsNaN(s.params.FloorDB) {
		db = spectral.Decibels(result.Power)
	} else {
		db = spectral.DecibelsWithFloor(result.Power, s.params.FloorDB)
	}

	logger.Debug("rendering spectrogram", logging.Fields{
		"sample_rate":    sampleRate,
		"segment_length": segment,
		"window":         s.params.Window,
		"time_frames":    result.TimeFrames,
		"freq_bins":      result.FreqBins,
	})

	opts := s.opts.merged(Options{
		Title:         titleFromFilename(outputPath),
		XLabel:        "Time (s)",
		YLabel:        "Frequency (Hz)",
		ColorbarLabel: "Power (dB)",
	})

	grid := &spectrogramGrid{times: result.Times, freqs: result.Freqs, db: db}
	cm := colorMapByName(opts.CMap)
	rangeColorMap(cm, db)

	return writePNG(grid, cm, opts, outputPath)
}

// windowForName builds the named analysis window. Spectral analysis uses
// the periodic window variants.
func windowForName(name string, size int) (spectral.Window, error) {
	switch strings.ToLower(name) {
	case "", "tukey":
		return windowing.NewTukey(size, tukeyAlpha, false), nil
	case "hann":
		return windowing.NewHann(size, false), nil
	case "hamming":
		return windowing.NewHamming(size, false), nil
	case "blackman":
		return windowing.NewBlackman(size, false), nil
	case "blackmanharris":
		return windowing.NewBlackmanHarris(size, false), nil
	case "bartlett", "triangular":
		return windowing.NewBartlett(size, false), nil
	case "rectangular", "boxcar":
		return windowing.NewRectangular(size), nil
	default:
		return nil, fmt.Errorf("unknown window %q", name)
	}
}
