package main

import (
	"flag"

	"github.com/mrldupuis/scalogramify/batch"
	"github.com/mrldupuis/scalogramify/config"
	"github.com/mrldupuis/scalogramify/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	inputDir := flag.String("input", "", "directory of .aaa records (overrides config)")
	outputDir := flag.String("output", "", "directory for the PNG images (overrides config)")
	renderer := flag.String("renderer", "", "scalogram or spectrogram (overrides config)")
	cmap := flag.String("cmap", "", "colormap name (overrides config)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logging.SetLevel(logging.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logging.Fatal(err, "loading configuration")
		}
		cfg = loaded
	}

	if *inputDir != "" {
		cfg.InputDir = *inputDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *renderer != "" {
		cfg.Renderer = *renderer
	}
	if *cmap != "" {
		cfg.Plot.CMap = *cmap
	}

	processor, err := batch.New(cfg)
	if err != nil {
		logging.Fatal(err, "configuring batch run")
	}

	processed, err := processor.Run()
	if err != nil {
		logging.Fatal(err, "batch run failed")
	}

	logging.Info("batch run complete", logging.Fields{
		"renderer":  cfg.Renderer,
		"processed": processed,
		"output":    cfg.OutputDir,
	})
}
