package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrldupuis/scalogramify/render"
	"github.com/mrldupuis/scalogramify/trace"
)

// Renderer kinds selectable in configuration.
const (
	RendererScalogram   = "scalogram"
	RendererSpectrogram = "spectrogram"
)

// Config is the runtime configuration of a batch run. Start from Default
// and override fields, or load a YAML file over the defaults.
type Config struct {
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`
	InputExt  string `yaml:"input_ext"`
	Renderer  string `yaml:"renderer"`

	Plot        render.Options           `yaml:"plot"`
	Spectrogram render.SpectrogramParams `yaml:"spectrogram"`
	Scalogram   render.ScalogramParams   `yaml:"scalogram"`
}

// Default returns the stock configuration: read .aaa records from ./in
// and write scalogram images to ./out.
func Default() *Config {
	return &Config{
		InputDir:    "in",
		OutputDir:   "out",
		InputExt:    trace.Extension,
		Renderer:    RendererScalogram,
		Spectrogram: render.DefaultSpectrogramParams(),
		Scalogram:   render.DefaultScalogramParams(),
	}
}

// Load reads a YAML configuration file over the defaults, so absent keys
// keep their stock values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields that select behavior.
func (c *Config) Validate() error {
	switch c.Renderer {
	case RendererScalogram, RendererSpectrogram:
	default:
		return fmt.Errorf("unknown renderer %q (want %s or %s)",
			c.Renderer, RendererScalogram, RendererSpectrogram)
	}

	if c.InputDir == "" {
		return fmt.Errorf("input_dir must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.InputExt == "" {
		return fmt.Errorf("input_ext must not be empty")
	}
	return nil
}
