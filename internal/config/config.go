// =============================================================================
// Sales Report Generator - Configuration Module
// =============================================================================
//
// Loads the application configuration from a YAML file and applies defaults
// and validation. The configuration is an explicit object passed into the
// components that need it; nothing in this codebase reads process-wide
// mutable settings.
//
// CONFIGURATION FILE (config.yaml):
//   upload_dir:  ./spreadsheets   # uploaded workbooks staging
//   output_dir:  ./reports        # generated PDF reports
//   plot_dir:    ./plots          # chart images
//   listen_addr: :8080            # HTTP server address
//   log_level:   info             # debug | info | warn | error
//
// =============================================================================

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application settings.
type Config struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// UploadDir is where uploaded workbook files are staged.
	// Default: "./spreadsheets"
	UploadDir string `yaml:"upload_dir"`

	// OutputDir is where generated PDF reports are written.
	// Default: "./reports"
	OutputDir string `yaml:"output_dir"`

	// PlotDir is where the chart images for each run are written.
	// Default: "./plots"
	PlotDir string `yaml:"plot_dir"`

	// =========================================================================
	// SERVER SETTINGS
	// =========================================================================

	// ListenAddr is the HTTP listen address.
	// Default: ":8080"
	ListenAddr string `yaml:"listen_addr"`

	// MaxUploadBytes caps the size of an uploaded workbook.
	// Default: 16 MiB
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// AllowedExtensions is the workbook extension allow-list, without dots.
	// Default: xlsx, xls, ods
	AllowedExtensions []string `yaml:"allowed_extensions"`

	// =========================================================================
	// CHART SETTINGS
	// =========================================================================

	// ChartWidthPx and ChartHeightPx are the pixel dimensions charts are
	// rendered at before being scaled into the PDF layout.
	// Defaults: 640 x 480
	ChartWidthPx  int `yaml:"chart_width_px"`
	ChartHeightPx int `yaml:"chart_height_px"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls log verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		UploadDir:         "./spreadsheets",
		OutputDir:         "./reports",
		PlotDir:           "./plots",
		ListenAddr:        ":8080",
		MaxUploadBytes:    16 << 20,
		AllowedExtensions: []string{"xlsx", "xls", "ods"},
		ChartWidthPx:      640,
		ChartHeightPx:     480,
		LogLevel:          "info",
	}
}

// Load reads the configuration file at path, overlaying it on the defaults.
// A missing file is not an error; the defaults are returned so the tool
// works out of the box.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the application cannot run
// with.
func (c *Config) Validate() error {
	if c.UploadDir == "" || c.OutputDir == "" || c.PlotDir == "" {
		return fmt.Errorf("upload_dir, output_dir and plot_dir must all be set")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must be set")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive")
	}
	if len(c.AllowedExtensions) == 0 {
		return fmt.Errorf("allowed_extensions must not be empty")
	}
	if c.ChartWidthPx <= 0 || c.ChartHeightPx <= 0 {
		return fmt.Errorf("chart dimensions must be positive")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps the configured log level onto a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
}

// ExtensionAllowed reports whether a file extension (without the dot,
// case-insensitive) is on the allow-list.
func (c *Config) ExtensionAllowed(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, allowed := range c.AllowedExtensions {
		if strings.ToLower(allowed) == ext {
			return true
		}
	}
	return false
}
