package spectral

import (
	"fmt"
	"math/cmplx"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/mrldupuis/scalogramify/algorithms/common"
)

// Spectrogram computes power spectral density spectrograms from
// evenly sampled signals.
type Spectrogram struct {
	fft           *FFT
	window        Window
	segmentLength int
	overlap       int
}

// SpectrogramResult holds the result of a spectrogram computation
type SpectrogramResult struct {
	Power          [][]float64 `json:"power"`           // Time x Frequency PSD matrix (units²/Hz)
	Freqs          []float64   `json:"freqs"`           // Bin center frequencies (Hz)
	Times          []float64   `json:"times"`           // Segment center times (seconds)
	TimeFrames     int         `json:"time_frames"`     // Number of time frames
	FreqBins       int         `json:"freq_bins"`       // Number of frequency bins
	SampleRate     float64     `json:"sample_rate"`     // Sample rate (Hz)
	SegmentLength  int         `json:"segment_length"`  // Samples per segment
	HopSize        int         `json:"hop_size"`        // Hop size between segments
	FreqResolution float64     `json:"freq_resolution"` // Frequency resolution (Hz/bin)
	TimeResolution float64     `json:"time_resolution"` // Time resolution (seconds/frame)
}

// Window interface for windowing functions
type Window interface {
	ApplyInPlace(signal []float64) error
	GetCoefficients() []float64
}

// NewSpectrogram creates a spectrogram calculator for the given segment
// length and analysis window. Consecutive segments overlap by one eighth
// of the segment length.
func NewSpectrogram(segmentLength int, window Window) *Spectrogram {
	return &Spectrogram{
		fft:           NewFFT(),
		window:        window,
		segmentLength: segmentLength,
		overlap:       segmentLength / 8,
	}
}

// Compute slices the signal into overlapping segments and estimates the
// power spectral density of each. Every segment has its mean removed
// before windowing, and the one-sided density is scaled by the window
// energy so interior bins carry the power of both spectrum halves.
func (s *Spectrogram) Compute(signal []float64, sampleRate float64) (*SpectrogramResult, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("empty signal")
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %v", sampleRate)
	}

	segment := s.segmentLength
	if segment <= 0 {
		return nil, fmt.Errorf("segment length must be positive, got %d", segment)
	}

	if segment > len(signal) {
		return nil, fmt.Errorf("segment length %d exceeds signal length %d", segment, len(signal))
	}

	coeffs := s.window.GetCoefficients()
	if len(coeffs) != segment {
		return nil, fmt.Errorf("window size %d does not match segment length %d", len(coeffs), segment)
	}

	hopSize := segment - s.overlap
	if hopSize <= 0 {
		return nil, fmt.Errorf("overlap %d leaves no hop for segment length %d", s.overlap, segment)
	}

	// Calculate number of frames
	numFrames := (len(signal)-segment)/hopSize + 1

	// Calculate frequency bins (positive frequencies only)
	freqBins := segment/2 + 1

	// Density scaling: spectra are normalized by the window energy and the
	// sample rate so the result integrates to the signal power.
	scale := 1.0 / (sampleRate * floats.Dot(coeffs, coeffs))

	power := make([][]float64, numFrames)
	times := make([]float64, numFrames)
	for i := 0; i < numFrames; i++ {
		power[i] = make([]float64, freqBins)
	}

	numWorkers := s.getOptimalWorkerCount(numFrames)

	type frameJob struct {
		frameIdx int
		startIdx int
	}

	jobs := make(chan frameJob, numFrames)

	var wg sync.WaitGroup
	var windowErr error
	var windowErrOnce sync.Once

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Reuse frame buffer for this worker
			frameBuffer := make([]float64, segment)

			for job := range jobs {
				copy(frameBuffer, signal[job.startIdx:job.startIdx+segment])

				// Constant detrend: remove the segment mean before windowing
				mean := common.Mean(frameBuffer)
				for i := range frameBuffer {
					frameBuffer[i] -= mean
				}

				if err := s.window.ApplyInPlace(frameBuffer); err != nil {
					windowErrOnce.Do(func() { windowErr = err })
					continue
				}

				fftResult := s.fft.Compute(frameBuffer)

				// One-sided PSD: interior bins are doubled to carry the
				// energy of the negative frequencies. DC never doubles;
				// neither does Nyquist when the segment length is even.
				for i := 0; i < freqBins; i++ {
					mag := cmplx.Abs(fftResult[i])
					p := mag * mag * scale
					if i != 0 && !(segment%2 == 0 && i == freqBins-1) {
						p *= 2
					}
					power[job.frameIdx][i] = p
				}

				times[job.frameIdx] = (float64(segment)/2 + float64(job.startIdx)) / sampleRate
			}
		}()
	}

	go func() {
		defer close(jobs)
		for frameIdx := 0; frameIdx < numFrames; frameIdx++ {
			jobs <- frameJob{
				frameIdx: frameIdx,
				startIdx: frameIdx * hopSize,
			}
		}
	}()

	wg.Wait()

	if windowErr != nil {
		return nil, fmt.Errorf("applying window: %w", windowErr)
	}

	freqs := make([]float64, freqBins)
	for i := range freqs {
		freqs[i] = float64(i) * sampleRate / float64(segment)
	}

	result := &SpectrogramResult{
		Power:          power,
		Freqs:          freqs,
		Times:          times,
		TimeFrames:     numFrames,
		FreqBins:       freqBins,
		SampleRate:     sampleRate,
		SegmentLength:  segment,
		HopSize:        hopSize,
		FreqResolution: sampleRate / float64(segment),
		TimeResolution: float64(hopSize) / sampleRate,
	}

	return result, nil
}

// getOptimalWorkerCount determines the optimal number of workers based on workload
func (s *Spectrogram) getOptimalWorkerCount(numFrames int) int {
	numCPU := runtime.NumCPU()

	// For small workloads, don't over-parallelize
	if numFrames < 100 {
		return max(1, min(numCPU/2, numFrames))
	}

	if numFrames < 1000 {
		return min(numCPU, 8)
	}

	return numCPU
}
