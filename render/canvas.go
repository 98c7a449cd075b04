package render

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/mrldupuis/scalogramify/algorithms/common"
)

// Canvas layout: a wide figure with a narrow colorbar band on the right.
const (
	canvasWidth   = 10 * vg.Inch
	canvasHeight  = 4 * vg.Inch
	colorbarWidth = 1.2 * vg.Inch

	// Discretization of the color ramp when rasterizing cells.
	paletteLevels = 255
)

// rangeColorMap scales the colormap to the finite values of the surface.
// Rows holding only -Inf or NaN are ignored; if nothing finite remains,
// an arbitrary unit range keeps the canvas drawable.
func rangeColorMap(cm palette.ColorMap, surface [][]float64) {
	vmin, vmax, ok := common.FiniteRange(surface)
	if !ok {
		vmin, vmax = 0, 1
	}
	if vmin == vmax {
		// Flat surfaces still need a non-degenerate ramp.
		vmax = vmin + 1
	}
	cm.SetMin(vmin)
	cm.SetMax(vmax)
}

// writePNG draws the pseudocolor surface with a vertical colorbar and
// writes it to path, creating the output directory if needed. The
// colormap's range must be set before the call; cells below it (silent
// bins at -Inf) paint in the ramp's bottom color.
func writePNG(grid plotter.GridXYZ, cm palette.ColorMap, opts Options, path string) error {
	heat := plotter.NewHeatMap(grid, cm.Palette(paletteLevels))
	heat.Min = cm.Min()
	heat.Max = cm.Max()
	heat.Underflow, _ = cm.At(cm.Min())
	heat.Overflow, _ = cm.At(cm.Max())

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.X.Padding = 0
	p.Y.Padding = 0
	p.Add(heat)

	bar := plot.New()
	bar.HideX()
	bar.Y.Label.Text = opts.ColorbarLabel
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true})

	img := vgimg.New(canvasWidth, canvasHeight)
	dc := draw.New(img)

	p.Draw(draw.Crop(dc, 0, -colorbarWidth, 0, 0))
	bar.Draw(draw.Crop(dc, canvasWidth-colorbarWidth, 0, 0, 0))

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("encode image: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close image: %w", err)
	}
	return nil
}
