package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"qrstudio/internal/common"
)

// Environment overrides
const (
	EnvLogLevel    = "QRSTUDIO_LOG_LEVEL"
	EnvQuietPeriod = "QRSTUDIO_DEBOUNCE_MS"
	EnvWorkers     = "QRSTUDIO_WORKERS"
	EnvHistory     = "QRSTUDIO_HISTORY"
	EnvDataDir     = "QRSTUDIO_DATA_DIR"
)

// Config holds application configuration
type Config struct {
	AppDataDir     string
	DatabasePath   string
	LogPath        string
	LogLevel       string
	QuietPeriod    time.Duration
	RenderWorkers  int
	HistoryEnabled bool
	Logger         *slog.Logger

	logFile io.Closer
}

// New creates a new configuration instance from the environment.
// Logging goes to stderr and to app.log in the app data directory.
func New() *Config {
	cfg := load(os.Getenv)
	cfg.setupDirectories()
	cfg.setupLogger(os.Stderr)
	return cfg
}

// NewWithWriter builds a configuration that logs only to w and touches no files.
func NewWithWriter(w io.Writer, getenv func(string) string) *Config {
	cfg := load(getenv)
	cfg.Logger = NewLogger(w, cfg.LogLevel)
	return cfg
}

func load(getenv func(string) string) *Config {
	cfg := &Config{
		LogLevel:      "info",
		QuietPeriod:   common.DefaultQuietPeriod,
		RenderWorkers: common.DefaultRenderWorker,
	}

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if v := getenv(EnvQuietPeriod); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.QuietPeriod = time.Duration(ms) * time.Millisecond
		}
	}

	if v := getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RenderWorkers = n
		}
	}
	if cfg.RenderWorkers > common.MaxConcurrencyLimit {
		cfg.RenderWorkers = common.MaxConcurrencyLimit
	}

	if v, err := strconv.ParseBool(getenv(EnvHistory)); err == nil {
		cfg.HistoryEnabled = v
	}

	cfg.AppDataDir = getenv(EnvDataDir)
	return cfg
}

func (c *Config) setupDirectories() {
	if c.AppDataDir == "" {
		c.AppDataDir = getAppDataDir()
	}
	os.MkdirAll(c.AppDataDir, common.DefaultFilePerms)

	c.DatabasePath = filepath.Join(c.AppDataDir, "history.sqlite3")
	c.LogPath = filepath.Join(c.AppDataDir, "app.log")
}

func (c *Config) setupLogger(console io.Writer) {
	w := console
	f, err := os.OpenFile(c.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, common.DefaultFileMode)
	if err == nil {
		c.logFile = f
		w = io.MultiWriter(console, f)
	}

	c.Logger = NewLogger(w, c.LogLevel)
	if err != nil {
		c.Logger.Warn("Log file unavailable, logging to console only", "path", c.LogPath, "error", err)
	}
}

// Close releases the log file, if one was opened.
func (c *Config) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

func getAppDataDir() string {
	homeDir, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "windows":
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, common.AppDataName)
		}
		return filepath.Join(homeDir, "AppData", "Local", common.AppDataName)
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", common.AppDataName)
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, strings.ToLower(common.AppDataName))
		}
		return filepath.Join(homeDir, ".config", strings.ToLower(common.AppDataName))
	}
}
