package config

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"qrstudio/internal/common"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := load(envFrom(nil))

	if cfg.QuietPeriod != common.DefaultQuietPeriod {
		t.Errorf("Expected quiet period %v, got %v", common.DefaultQuietPeriod, cfg.QuietPeriod)
	}

	if cfg.RenderWorkers != common.DefaultRenderWorker {
		t.Errorf("Expected %d workers, got %d", common.DefaultRenderWorker, cfg.RenderWorkers)
	}

	if cfg.HistoryEnabled {
		t.Error("Expected export history to be disabled by default")
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg := load(envFrom(map[string]string{
		EnvLogLevel:    "DEBUG",
		EnvQuietPeriod: "40",
		EnvWorkers:     "64",
		EnvHistory:     "true",
		EnvDataDir:     "/tmp/qrstudio-test",
	}))

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.LogLevel)
	}

	if cfg.QuietPeriod != 40*time.Millisecond {
		t.Errorf("Expected quiet period 40ms, got %v", cfg.QuietPeriod)
	}

	if cfg.RenderWorkers != common.MaxConcurrencyLimit {
		t.Errorf("Expected workers capped at %d, got %d", common.MaxConcurrencyLimit, cfg.RenderWorkers)
	}

	if !cfg.HistoryEnabled {
		t.Error("Expected export history to be enabled")
	}

	if cfg.AppDataDir != "/tmp/qrstudio-test" {
		t.Errorf("Expected data dir override, got %s", cfg.AppDataDir)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	cfg := load(envFrom(map[string]string{
		EnvQuietPeriod: "soon",
		EnvWorkers:     "-3",
		EnvHistory:     "maybe",
	}))

	if cfg.QuietPeriod != common.DefaultQuietPeriod {
		t.Errorf("Expected default quiet period, got %v", cfg.QuietPeriod)
	}

	if cfg.RenderWorkers != common.DefaultRenderWorker {
		t.Errorf("Expected default workers, got %d", cfg.RenderWorkers)
	}

	if cfg.HistoryEnabled {
		t.Error("Expected history to stay disabled")
	}
}

func TestNewWithDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataDir, dir)

	cfg := New()
	defer cfg.Close()

	if !strings.HasPrefix(cfg.LogPath, dir) {
		t.Errorf("Expected log path under %s, got %s", dir, cfg.LogPath)
	}

	if !strings.HasPrefix(cfg.DatabasePath, dir) {
		t.Errorf("Expected database path under %s, got %s", dir, cfg.DatabasePath)
	}

	if cfg.Logger == nil {
		t.Fatal("Expected logger to be configured")
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")

	logger.Info("hidden message")
	logger.Warn("visible message", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Error("Expected info message to be filtered at warn level")
	}

	if !strings.Contains(out, "visible message") {
		t.Errorf("Expected warn message in output, got %q", out)
	}
}
