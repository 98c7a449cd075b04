package render

import (
	"math"
	"path/filepath"
	"strings"
)

// Options is the recognized set of plot customizations. Empty fields take
// renderer-specific defaults; set fields are applied as given, without
// validation.
type Options struct {
	Title         string `yaml:"title" json:"title"`
	XLabel        string `yaml:"xlabel" json:"xlabel"`
	YLabel        string `yaml:"ylabel" json:"ylabel"`
	CMap          string `yaml:"cmap" json:"cmap"`
	ColorbarLabel string `yaml:"colorbar_label" json:"colorbar_label"`
}

// merged fills every empty field from the given defaults.
func (o Options) merged(defaults Options) Options {
	if o.Title == "" {
		o.Title = defaults.Title
	}
	if o.XLabel == "" {
		o.XLabel = defaults.XLabel
	}
	if o.YLabel == "" {
		o.YLabel = defaults.YLabel
	}
	if o.CMap == "" {
		o.CMap = defaults.CMap
	}
	if o.ColorbarLabel == "" {
		o.ColorbarLabel = defaults.ColorbarLabel
	}
	return o
}

// SpectrogramParams configures the short-time Fourier spectrogram.
type SpectrogramParams struct {
	// SegmentLength is the number of samples per FFT segment. Signals
	// shorter than one segment are analyzed with a single full-length
	// segment instead.
	SegmentLength int `yaml:"segment_length" json:"segment_length"`

	// Window names the analysis window: tukey, hann, hamming, blackman,
	// blackmanharris, bartlett or rectangular.
	Window string `yaml:"window" json:"window"`

	// FloorDB clamps the log-power surface from below when set. NaN, the
	// default, disables the clamp and lets silent bins render as -Inf.
	FloorDB float64 `yaml:"floor_db" json:"floor_db"`
}

// DefaultSpectrogramParams returns the stock spectrogram policy:
// 256-sample segments, a periodic Tukey window, no decibel floor.
func DefaultSpectrogramParams() SpectrogramParams {
	return SpectrogramParams{
		SegmentLength: 256,
		Window:        "tukey",
		FloorDB:       math.NaN(),
	}
}

// ScalogramParams configures the continuous wavelet transform.
type ScalogramParams struct {
	// Wavelet names the mother wavelet family. Only "morl" is recognized.
	Wavelet string `yaml:"wavelet" json:"wavelet"`

	// MaxScale bounds the integer scale ladder 1..MaxScale.
	MaxScale int `yaml:"max_scale" json:"max_scale"`

	// SamplingPeriod calibrates the pseudo-frequency axis reported with
	// the transform. It defaults to 1 and deliberately ignores the
	// record's actual sampling interval unless configured.
	SamplingPeriod float64 `yaml:"sampling_period" json:"sampling_period"`

	// Method selects the convolution evaluation: auto, conv or fft.
	Method string `yaml:"method" json:"method"`
}

// DefaultScalogramParams returns the stock scalogram policy: Morlet
// wavelet over scales 1..127.
func DefaultScalogramParams() ScalogramParams {
	return ScalogramParams{
		Wavelet:        "morl",
		MaxScale:       127,
		SamplingPeriod: 1,
		Method:         "auto",
	}
}

// titleFromFilename derives the default plot title from an output file
// name: everything before the first dot of the base name.
func titleFromFilename(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i]
	}
	return base
}
