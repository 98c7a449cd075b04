package batch

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mrldupuis/scalogramify/config"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// sampleRecord is four samples at 2 Hz: one full cycle of a square-ish wave.
const sampleRecord = "REC-2,ch0,4,0.5\n0\n1\n0\n-1\n"

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.InputDir = filepath.Join(t.TempDir(), "in")
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")
	return cfg
}

func writeInput(t *testing.T, cfg *config.Config, name, content string) {
	t.Helper()

	if err := os.MkdirAll(cfg.InputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.InputDir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunMissingInputDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.InputDir = filepath.Join(t.TempDir(), "does-not-exist")

	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	processed, err := p.Run()
	if err != nil {
		t.Errorf("Run on a missing directory should be a no-op, got %v", err)
	}
	if processed != 0 {
		t.Errorf("processed = %d, want 0", processed)
	}
}

func TestRunScalogram(t *testing.T) {
	cfg := testConfig(t)
	writeInput(t, cfg, "sample.aaa", sampleRecord)
	writeInput(t, cfg, "notes.txt", "not a record")

	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	processed, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if processed != 1 {
		t.Errorf("processed = %d, want 1", processed)
	}

	out := filepath.Join(cfg.OutputDir, "sample.aaa.png")
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected %s to exist: %v", out, err)
	}
	if !bytes.HasPrefix(data, pngSignature) {
		t.Errorf("%s is not a PNG", out)
	}

	entries, err := os.ReadDir(cfg.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("output directory has %d entries, want exactly 1", len(entries))
	}
}

func TestRunSpectrogram(t *testing.T) {
	cfg := testConfig(t)
	cfg.Renderer = config.RendererSpectrogram
	writeInput(t, cfg, "sample.aaa", sampleRecord)

	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	processed, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if processed != 1 {
		t.Errorf("processed = %d, want 1", processed)
	}

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "sample.aaa.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, pngSignature) {
		t.Error("output is not a PNG")
	}
}

func TestRunAbortsOnMalformedRecord(t *testing.T) {
	cfg := testConfig(t)
	writeInput(t, cfg, "bad.aaa", "header,3,0.5\n1\n2\n")

	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := p.Run(); err == nil {
		t.Error("expected the malformed record to abort the run")
	}
}

func TestRunCountsEarlierSuccesses(t *testing.T) {
	// Directory order is lexical: the good record processes before the
	// malformed one aborts the run.
	cfg := testConfig(t)
	writeInput(t, cfg, "a_good.aaa", sampleRecord)
	writeInput(t, cfg, "z_bad.aaa", "header,9,0.5\n1\n")

	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	processed, err := p.Run()
	if err == nil {
		t.Fatal("expected the malformed record to abort the run")
	}
	if processed != 1 {
		t.Errorf("processed = %d, want 1 before the abort", processed)
	}

	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "a_good.aaa.png")); err != nil {
		t.Errorf("the good record's image should exist: %v", err)
	}
}

func TestNewValidatesConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Renderer = "hologram"

	if _, err := New(cfg); err == nil {
		t.Error("expected an error for an unknown renderer")
	}
}

func TestNewNilConfig(t *testing.T) {
	p, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil): %v", err)
	}

	// The stock input directory does not exist here, so the run is a no-op.
	processed, err := p.Run()
	if err != nil || processed != 0 {
		t.Errorf("Run = (%d, %v), want (0, nil)", processed, err)
	}
}
