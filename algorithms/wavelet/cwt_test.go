package wavelet

import (
	"math"
	"math/cmplx"
	"testing"
)

func testSignal(n int) []float64 {
	signal := make([]float64, n)
	for i := range signal {
		t := float64(i)
		signal[i] = math.Sin(0.3*t) + 0.4*math.Cos(0.07*t)
	}
	return signal
}

func TestScales(t *testing.T) {
	scales := DefaultScales()
	if len(scales) != 127 {
		t.Fatalf("DefaultScales has %d entries, want 127", len(scales))
	}
	if scales[0] != 1 || scales[126] != 127 {
		t.Errorf("scale ladder runs %v..%v, want 1..127", scales[0], scales[126])
	}
	for i := 1; i < len(scales); i++ {
		if math.Abs(scales[i]-scales[i-1]-1) > 1e-12 {
			t.Fatalf("scale step at %d is not 1", i)
		}
	}

	if got := Scales(0); got != nil {
		t.Errorf("Scales(0) = %v, want nil", got)
	}
	if got := Scales(1); len(got) != 1 || got[0] != 1 {
		t.Errorf("Scales(1) = %v, want [1]", got)
	}
}

func TestParseMethod(t *testing.T) {
	for name, want := range map[string]Method{
		"":     MethodAuto,
		"auto": MethodAuto,
		"conv": MethodConv,
		"fft":  MethodFFT,
	} {
		got, err := ParseMethod(name)
		if err != nil || got != want {
			t.Errorf("ParseMethod(%q) = (%v, %v), want %v", name, got, err, want)
		}
	}

	if _, err := ParseMethod("fast"); err == nil {
		t.Error("expected an error for an unknown method")
	}
}

func TestCWTDims(t *testing.T) {
	signal := testSignal(40)
	scales := Scales(5)

	result, err := NewCWT(nil).Compute(signal, scales, 1)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if len(result.Coefficients) != 5 {
		t.Fatalf("got %d coefficient rows, want 5", len(result.Coefficients))
	}
	for s, row := range result.Coefficients {
		if len(row) != len(signal) {
			t.Errorf("scale %d row has %d samples, want %d", s, len(row), len(signal))
		}
	}

	if result.WaveletName != "morl" {
		t.Errorf("wavelet name = %q, want morl", result.WaveletName)
	}

	mag := result.Magnitude()
	if len(mag) != 5 || len(mag[0]) != len(signal) {
		t.Fatalf("magnitude is %dx%d, want 5x%d", len(mag), len(mag[0]), len(signal))
	}
	for s, row := range mag {
		for i, m := range row {
			if m != cmplx.Abs(result.Coefficients[s][i]) {
				t.Fatalf("magnitude mismatch at scale %d sample %d", s, i)
			}
		}
	}
}

func TestCWTFrequencies(t *testing.T) {
	signal := testSignal(32)
	scales := Scales(4)

	result, err := NewCWT(nil).Compute(signal, scales, 1)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// Pseudo-frequency is centralFreq/(scale·dt): 0.8125 at scale 1.
	if math.Abs(result.Frequencies[0]-0.8125) > 1e-12 {
		t.Errorf("scale 1 frequency = %v, want 0.8125", result.Frequencies[0])
	}
	if math.Abs(result.Frequencies[1]-0.40625) > 1e-12 {
		t.Errorf("scale 2 frequency = %v, want 0.40625", result.Frequencies[1])
	}
	for i := 1; i < len(result.Frequencies); i++ {
		if result.Frequencies[i] >= result.Frequencies[i-1] {
			t.Fatal("frequencies should decrease with increasing scale")
		}
	}

	// Halving the sampling period doubles every pseudo-frequency.
	faster, err := NewCWT(nil).Compute(signal, scales, 0.5)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for i := range faster.Frequencies {
		if math.Abs(faster.Frequencies[i]-2*result.Frequencies[i]) > 1e-9 {
			t.Errorf("frequency %d = %v, want %v", i, faster.Frequencies[i], 2*result.Frequencies[i])
		}
	}
}

func TestCWTMethodsAgree(t *testing.T) {
	signal := testSignal(48)
	scales := Scales(8)

	direct := NewCWT(nil)
	direct.SetMethod(MethodConv)
	wantResult, err := direct.Compute(signal, scales, 1)
	if err != nil {
		t.Fatalf("direct Compute: %v", err)
	}

	freq := NewCWT(nil)
	freq.SetMethod(MethodFFT)
	gotResult, err := freq.Compute(signal, scales, 1)
	if err != nil {
		t.Fatalf("fft Compute: %v", err)
	}

	for s := range scales {
		for i := range signal {
			want := wantResult.Coefficients[s][i]
			got := gotResult.Coefficients[s][i]
			if cmplx.Abs(got-want) > 1e-8 {
				t.Fatalf("scale %v sample %d: conv=%v fft=%v", scales[s], i, want, got)
			}
		}
	}
}

func TestCWTSineScalePeak(t *testing.T) {
	// A 10 Hz tone sampled at 100 Hz has 0.1 cycles per sample, so the
	// response should peak near scale 0.8125/0.1 ≈ 8.
	signal := make([]float64, 256)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 0.1 * float64(i))
	}

	scales := Scales(32)
	result, err := NewCWT(Morlet{}).Compute(signal, scales, 1)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	energies := make([]float64, len(scales))
	for s, row := range result.Coefficients {
		for _, c := range row {
			energies[s] += real(c) * real(c)
		}
	}

	peak := 0
	for s, e := range energies {
		if e > energies[peak] {
			peak = s
		}
	}

	if scales[peak] < 7 || scales[peak] > 9 {
		t.Errorf("energy peaks at scale %v, want about 8", scales[peak])
	}
}

func TestCWTErrors(t *testing.T) {
	cwt := NewCWT(nil)
	signal := testSignal(16)

	if _, err := cwt.Compute(nil, Scales(4), 1); err == nil {
		t.Error("expected an error for an empty signal")
	}
	if _, err := cwt.Compute(signal, nil, 1); err == nil {
		t.Error("expected an error for an empty scale ladder")
	}
	if _, err := cwt.Compute(signal, Scales(4), 0); err == nil {
		t.Error("expected an error for a non-positive sampling period")
	}
	if _, err := cwt.Compute(signal, []float64{-1}, 1); err == nil {
		t.Error("expected an error for a negative scale")
	}
	if _, err := cwt.Compute(signal, []float64{0.001}, 1); err == nil {
		t.Error("expected an error for a scale below the wavelet resolution")
	}
}
