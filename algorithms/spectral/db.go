package spectral

import (
	"math"
)

// Decibels converts a power surface to a logarithmic scale, 10·log10(p).
// Zero-power bins map to -Inf and are carried through unchanged; callers
// that need a bounded surface use DecibelsWithFloor instead.
func Decibels(power [][]float64) [][]float64 {
	db := make([][]float64, len(power))

	for t, frame := range power {
		db[t] = make([]float64, len(frame))
		for i, p := range frame {
			db[t][i] = 10 * math.Log10(p)
		}
	}

	return db
}

// DecibelsWithFloor converts a power surface to a logarithmic scale,
// clamping every bin below the floor to floorDB.
func DecibelsWithFloor(power [][]float64, floorDB float64) [][]float64 {
	floor := math.Pow(10, floorDB/10.0)
	db := make([][]float64, len(power))

	for t, frame := range power {
		db[t] = make([]float64, len(frame))
		for i, p := range frame {
			if p < floor {
				p = floor
			}
			db[t][i] = 10 * math.Log10(p)
		}
	}

	return db
}
