//go:build integration

package main

import (
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// buildBinary compiles the plancharts binary into a temp dir.
func buildBinary(t *testing.T) string {
	t.Helper()
	bin := filepath.Join(t.TempDir(), "plancharts")
	c := exec.Command("go", "build", "-o", bin, ".")
	if out, err := c.CombinedOutput(); err != nil {
		t.Fatalf("go build: %v\n%s", err, out)
	}
	return bin
}

func TestIntegrationRenderDefaults(t *testing.T) {
	bin := buildBinary(t)
	dir := t.TempDir()

	c := exec.Command(bin, "--show=false")
	c.Dir = dir
	if out, err := c.CombinedOutput(); err != nil {
		t.Fatalf("plancharts: %v\n%s", err, out)
	}

	f, err := os.Open(filepath.Join(dir, "comparison_plots.png"))
	if err != nil {
		t.Fatalf("opening figure: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decoding figure: %v", err)
	}
	if cfg.Width != 5400 || cfg.Height != 6000 {
		t.Errorf("got %dx%d, want 5400x6000 (18x20 in at 300 dpi)", cfg.Width, cfg.Height)
	}
}

func TestIntegrationCompare(t *testing.T) {
	bin := buildBinary(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "plancharts.yaml")
	os.WriteFile(cfgPath, []byte("compare:\n  out_dir: figs\n  parallel: 4\n"), 0o644)

	c := exec.Command(bin, "--config", cfgPath, "compare")
	c.Dir = dir
	if out, err := c.CombinedOutput(); err != nil {
		t.Fatalf("plancharts compare: %v\n%s", err, out)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "figs", "*.png"))
	if len(matches) != 8 {
		t.Errorf("expected 8 figures, got %d: %v", len(matches), matches)
	}
}
