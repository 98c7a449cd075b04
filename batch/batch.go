package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrldupuis/scalogramify/config"
	"github.com/mrldupuis/scalogramify/logging"
	"github.com/mrldupuis/scalogramify/render"
	"github.com/mrldupuis/scalogramify/trace"
)

// Renderer consumes one loaded record and writes an image.
type Renderer interface {
	Render(times, values []float64, outputPath string) error
}

// Processor converts every recognized record in a directory into an
// image.
type Processor struct {
	cfg      *config.Config
	renderer Renderer
}

// New builds a Processor for the configured renderer kind.
func New(cfg *config.Config) (*Processor, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var renderer Renderer
	switch cfg.Renderer {
	case config.RendererSpectrogram:
		renderer = render.NewSpectrogram(cfg.Spectrogram, cfg.Plot)
	case config.RendererScalogram:
		renderer = render.NewScalogram(cfg.Scalogram, cfg.Plot)
	}

	return &Processor{cfg: cfg, renderer: renderer}, nil
}

// Run processes every matching file in the input directory and reports
// how many images were written. Each record becomes one image in the
// output directory, named after the input file with ".png" appended.
//
// A missing input directory is a diagnostic no-op, not an error. The
// first load or render failure aborts the remaining files.
func (p *Processor) Run() (int, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "batch",
		"input_dir": p.cfg.InputDir,
	})

	if _, err := os.Stat(p.cfg.InputDir); os.IsNotExist(err) {
		logger.Warn("input directory does not exist, nothing to do")
		return 0, nil
	}

	entries, err := os.ReadDir(p.cfg.InputDir)
	if err != nil {
		return 0, fmt.Errorf("list input directory: %w", err)
	}

	processed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), p.cfg.InputExt) {
			continue
		}

		inputPath := filepath.Join(p.cfg.InputDir, entry.Name())
		logger.Info("processing file", logging.Fields{"path": inputPath})

		record, err := trace.ReadFile(inputPath)
		if err != nil {
			return processed, fmt.Errorf("load %s: %w", inputPath, err)
		}

		outputPath := filepath.Join(p.cfg.OutputDir, entry.Name()+".png")
		if err := p.renderer.Render(record.Time, record.Value, outputPath); err != nil {
			return processed, fmt.Errorf("render %s: %w", inputPath, err)
		}
		processed++
	}

	return processed, nil
}
