// Package config loads runtime settings from an optional YAML file and the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Front ends
const (
	ModeTUI  = "tui"
	ModeHTTP = "http"
)

// Ledger backends
const (
	LedgerMemory = "memory"
	LedgerFile   = "file"
	LedgerSQLite = "sqlite"
)

// Config holds runtime settings.
type Config struct {
	Mode        string `yaml:"mode"`
	PlayerName  string `yaml:"player_name"`
	WorldFile   string `yaml:"world_file"` // empty means the embedded world
	HTTPAddr    string `yaml:"http_addr"`
	LogFile     string `yaml:"log_file"` // TUI mode only; empty discards logs
	LogLevelRaw string `yaml:"log_level"`

	Ledger LedgerConfig `yaml:"ledger"`

	// EnemyDelayRaw is how long the terminal front end waits before the
	// opponent replies, as a Go duration string.
	EnemyDelayRaw string `yaml:"enemy_delay"`

	Telemetry TelemetryConfig `yaml:"telemetry"`

	LogLevel   slog.Level    `yaml:"-"`
	EnemyDelay time.Duration `yaml:"-"`
}

// LedgerConfig selects where defeats are persisted.
type LedgerConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// TelemetryConfig holds Honeycomb credentials for the OTLP exporter.
type TelemetryConfig struct {
	Enabled          bool   `yaml:"enabled"`
	HoneycombAPIKey  string `yaml:"-"`
	HoneycombDataset string `yaml:"honeycomb_dataset"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Mode:          ModeTUI,
		HTTPAddr:      ":8080",
		LogLevelRaw:   "info",
		EnemyDelayRaw: "800ms",
		Ledger: LedgerConfig{
			Backend: LedgerFile,
			Path:    "cardhall-ledger.json",
		},
	}
}

// Load builds the config from defaults, then the YAML file named by
// CARDHALL_CONFIG (if set), then individual environment variables.
func Load() (Config, error) {
	c := Default()

	if path := os.Getenv("CARDHALL_CONFIG"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	c.Mode = envOr("CARDHALL_MODE", c.Mode)
	c.PlayerName = envOr("CARDHALL_PLAYER_NAME", c.PlayerName)
	c.WorldFile = envOr("CARDHALL_WORLD_FILE", c.WorldFile)
	c.HTTPAddr = envOr("HTTP_ADDR", c.HTTPAddr)
	c.LogFile = envOr("CARDHALL_LOG_FILE", c.LogFile)
	c.LogLevelRaw = envOr("LOG_LEVEL", c.LogLevelRaw)
	c.EnemyDelayRaw = envOr("CARDHALL_ENEMY_DELAY", c.EnemyDelayRaw)
	c.Ledger.Backend = envOr("CARDHALL_LEDGER", c.Ledger.Backend)
	c.Ledger.Path = envOr("CARDHALL_LEDGER_PATH", c.Ledger.Path)
	c.Telemetry.HoneycombAPIKey = os.Getenv("HONEYCOMB_CARDHALL_API_KEY")
	c.Telemetry.HoneycombDataset = envOr("HONEYCOMB_CARDHALL_DATASET", c.Telemetry.HoneycombDataset)
	if c.Telemetry.HoneycombAPIKey != "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		c.Telemetry.Enabled = true
	}

	if err := c.finish(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// finish validates enumerations and parses derived fields.
func (c *Config) finish() error {
	c.Mode = strings.ToLower(c.Mode)
	switch c.Mode {
	case ModeTUI, ModeHTTP:
	default:
		return fmt.Errorf("invalid CARDHALL_MODE %q", c.Mode)
	}

	c.Ledger.Backend = strings.ToLower(c.Ledger.Backend)
	switch c.Ledger.Backend {
	case LedgerMemory:
	case LedgerFile, LedgerSQLite:
		if c.Ledger.Path == "" {
			return fmt.Errorf("ledger backend %q needs a path", c.Ledger.Backend)
		}
	default:
		return fmt.Errorf("invalid CARDHALL_LEDGER %q", c.Ledger.Backend)
	}

	level, err := parseLogLevel(c.LogLevelRaw)
	if err != nil {
		return err
	}
	c.LogLevel = level

	d, err := time.ParseDuration(c.EnemyDelayRaw)
	if err != nil || d < 0 {
		return fmt.Errorf("invalid CARDHALL_ENEMY_DELAY %q", c.EnemyDelayRaw)
	}
	c.EnemyDelay = d

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
