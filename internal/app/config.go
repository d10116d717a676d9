package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/avassa-io/ra/internal/workload"
)

// Config contains runtime settings for a bench process.
type Config struct {
	LogID    string
	LogLevel string

	MetricsAddr string
	// PprofAddr enables the pprof endpoint when non-empty.
	PprofAddr  string
	StatusAddr string

	TracingEnabled     bool
	TracingEndpoint    string
	TracingServiceName string

	// Workload shape; see workload.Profile for field semantics.
	Entries        int
	PayloadBytes   int
	BatchSize      int
	SnapshotEvery  int
	TakeEvery      int
	OverwriteEvery int
	TermEvery      int
	Interval       time.Duration
}

// DefaultConfig returns a local-development configuration.
func DefaultConfig() Config {
	return Config{
		LogID:              "log-1",
		LogLevel:           "info",
		MetricsAddr:        ":2112",
		StatusAddr:         ":8080",
		TracingEndpoint:    "localhost:4317",
		TracingServiceName: "rabench",
		Entries:            10000,
		PayloadBytes:       64,
		BatchSize:          8,
		SnapshotEvery:      1000,
		TakeEvery:          256,
	}
}

// LoadConfigFromEnv loads config from environment variables.
//
// Supported vars:
// - RA_LOG_ID
// - RA_LOG_LEVEL (debug|info|warn|error)
// - RA_METRICS_ADDR
// - RA_PPROF_ADDR (empty = disabled)
// - RA_STATUS_ADDR
// - RA_TRACING_ENABLED (bool)
// - RA_TRACING_ENDPOINT
// - RA_TRACING_SERVICE_NAME
// - RA_ENTRIES, RA_PAYLOAD_BYTES, RA_BATCH_SIZE (ints)
// - RA_SNAPSHOT_EVERY, RA_TAKE_EVERY, RA_OVERWRITE_EVERY, RA_TERM_EVERY (ints, 0 = disabled)
// - RA_INTERVAL (duration such as "10ms", 0 = unpaced)
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(os.Getenv("RA_LOG_ID")); v != "" {
		cfg.LogID = v
	}
	if v := strings.TrimSpace(os.Getenv("RA_LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("RA_METRICS_ADDR")); v != "" {
		cfg.MetricsAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("RA_PPROF_ADDR")); v != "" {
		cfg.PprofAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("RA_STATUS_ADDR")); v != "" {
		cfg.StatusAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("RA_TRACING_ENABLED")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("app: invalid RA_TRACING_ENABLED %q: %w", v, err)
		}
		cfg.TracingEnabled = b
	}
	if v := strings.TrimSpace(os.Getenv("RA_TRACING_ENDPOINT")); v != "" {
		cfg.TracingEndpoint = v
	}
	if v := strings.TrimSpace(os.Getenv("RA_TRACING_SERVICE_NAME")); v != "" {
		cfg.TracingServiceName = v
	}

	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"RA_ENTRIES", &cfg.Entries},
		{"RA_PAYLOAD_BYTES", &cfg.PayloadBytes},
		{"RA_BATCH_SIZE", &cfg.BatchSize},
		{"RA_SNAPSHOT_EVERY", &cfg.SnapshotEvery},
		{"RA_TAKE_EVERY", &cfg.TakeEvery},
		{"RA_OVERWRITE_EVERY", &cfg.OverwriteEvery},
		{"RA_TERM_EVERY", &cfg.TermEvery},
	} {
		v := strings.TrimSpace(os.Getenv(p.name))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("app: invalid %s %q: %w", p.name, v, err)
		}
		*p.dst = n
	}

	if v := strings.TrimSpace(os.Getenv("RA_INTERVAL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("app: invalid RA_INTERVAL %q: %w", v, err)
		}
		cfg.Interval = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that required settings are present and supported. The
// workload cadence fields are validated by the driver when the profile is
// built.
func (c Config) Validate() error {
	if strings.TrimSpace(c.LogID) == "" {
		return fmt.Errorf("app: log id is required")
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("app: unsupported log level %q", c.LogLevel)
	}
	if c.Entries <= 0 {
		return fmt.Errorf("app: entries must be positive, got %d", c.Entries)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("app: batch size must be positive, got %d", c.BatchSize)
	}
	if c.TracingEnabled && strings.TrimSpace(c.TracingEndpoint) == "" {
		return fmt.Errorf("app: tracing endpoint is required when tracing is enabled")
	}
	return nil
}

// Profile builds the workload profile described by this config.
func (c Config) Profile() workload.Profile {
	return workload.Profile{
		Entries:        c.Entries,
		PayloadBytes:   c.PayloadBytes,
		BatchSize:      c.BatchSize,
		SnapshotEvery:  c.SnapshotEvery,
		TakeEvery:      c.TakeEvery,
		OverwriteEvery: c.OverwriteEvery,
		TermEvery:      c.TermEvery,
		Interval:       c.Interval,
	}
}
