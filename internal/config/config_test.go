package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

var keys = []string{"MAPCANVAS_FORMAT", "MAPCANVAS_WIDTH", "MAPCANVAS_HEIGHT", "MAPCANVAS_LOG_LEVEL", "MAPCANVAS_STRICT"}

func clearEnv(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	got := Load(filepath.Join(t.TempDir(), "missing.env"))
	want := &Config{Format: "svg", Width: 1200, Height: 850, LogLevel: zerolog.InfoLevel}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAPCANVAS_FORMAT", "PNG")
	t.Setenv("MAPCANVAS_WIDTH", "640.5")
	t.Setenv("MAPCANVAS_HEIGHT", "tall") // invalid values keep the default
	t.Setenv("MAPCANVAS_LOG_LEVEL", "DEBUG")
	t.Setenv("MAPCANVAS_STRICT", "true")

	got := Load(filepath.Join(t.TempDir(), "missing.env"))
	want := &Config{Format: "png", Width: 640.5, Height: 850, LogLevel: zerolog.DebugLevel, Strict: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDotEnv(t *testing.T) {
	// godotenv does not override variables already set, even empty ones.
	// Setenv restores the previous values once the test ends.
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	file := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(file, []byte("MAPCANVAS_FORMAT=pdf\nMAPCANVAS_WIDTH=800\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	got := Load(file)
	if got.Format != "pdf" || got.Width != 800 || got.Height != 850 {
		t.Errorf("unexpected config %+v", got)
	}
}
