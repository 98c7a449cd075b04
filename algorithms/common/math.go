package common

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Basic numeric helpers shared across the algorithm packages, using gonum where
// it has the primitive

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// RMS calculates root mean square
func RMS(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}

	sumSquares := 0.0
	for _, val := range data {
		sumSquares += val * val
	}

	return math.Sqrt(sumSquares / float64(len(data)))
}

// Diff returns the first difference of data (data[i+1] - data[i]).
// The result has length len(data)-1; nil for fewer than two samples.
func Diff(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}

	diff := make([]float64, len(data)-1)
	for i := range diff {
		diff[i] = data[i+1] - data[i]
	}

	return diff
}

// FiniteRange returns the minimum and maximum of the finite values in a matrix,
// skipping NaN and infinities. ok is false when no finite value exists.
func FiniteRange(rows [][]float64) (min, max float64, ok bool) {
	min = math.Inf(1)
	max = math.Inf(-1)

	for _, row := range rows {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			ok = true
		}
	}

	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

// NextPowerOfTwo finds the next power of 2 >= n
func NextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}

	power := 1
	for power < n {
		power <<= 1
	}
	return power
}
