package trace

import (
	"github.com/mrldupuis/scalogramify/algorithms/common"
)

// Extension is the file extension of vendor accelerometer records.
const Extension = ".aaa"

// Record is one accelerometer time series loaded from a vendor text file.
// Time and Value always have the same length; Time holds evenly spaced
// offsets starting at zero, stepped by the header's sampling interval.
type Record struct {
	Path  string    `json:"path"`
	Dt    float64   `json:"dt"` // Declared sampling interval (seconds)
	Time  []float64 `json:"-"`
	Value []float64 `json:"-"`
}

// Len returns the number of samples in the record.
func (r *Record) Len() int {
	return len(r.Value)
}

// Duration returns the time offset of the last sample in seconds.
func (r *Record) Duration() float64 {
	if len(r.Time) == 0 {
		return 0
	}
	return r.Time[len(r.Time)-1]
}

// SampleRate estimates the sampling rate as the reciprocal of the mean
// time step, which tolerates floating-point jitter in the time vector.
func (r *Record) SampleRate() float64 {
	steps := common.Diff(r.Time)
	if len(steps) == 0 {
		if r.Dt > 0 {
			return 1 / r.Dt
		}
		return 0
	}

	mean := common.Mean(steps)
	if mean <= 0 {
		return 0
	}
	return 1 / mean
}
