package render

// spectrogramGrid presents a decibel spectrogram surface to the plotter:
// columns are time frames, rows are frequency bins.
type spectrogramGrid struct {
	times, freqs []float64
	db           [][]float64 // Time x Frequency
}

func (g *spectrogramGrid) Dims() (c, r int)   { return len(g.times), len(g.freqs) }
func (g *spectrogramGrid) Z(c, r int) float64 { return g.db[c][r] }
func (g *spectrogramGrid) X(c int) float64    { return g.times[c] }
func (g *spectrogramGrid) Y(r int) float64    { return g.freqs[r] }

// scalogramGrid presents a wavelet magnitude surface to the plotter:
// columns are sample times, rows are scales.
type scalogramGrid struct {
	times, scales []float64
	mag           [][]float64 // Scale x Time
}

func (g *scalogramGrid) Dims() (c, r int)   { return len(g.times), len(g.scales) }
func (g *scalogramGrid) Z(c, r int) float64 { return g.mag[r][c] }
func (g *scalogramGrid) X(c int) float64    { return g.times[c] }
func (g *scalogramGrid) Y(r int) float64    { return g.scales[r] }
