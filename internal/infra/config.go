package infra

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"traffic-advisory-service/internal/domain"
)

// Config carries the full service configuration. Values come from defaults,
// then an optional YAML file, then environment variables, later sources
// winning.
type Config struct {
	HTTPPort    string `yaml:"http_port"`
	GRPCPort    string `yaml:"grpc_port"`
	MetricsPort string `yaml:"metrics_port"`

	SegmentID int `yaml:"segment_id"`

	ZoneLongStart float64 `yaml:"zone_long_start"`
	ZoneLongEnd   float64 `yaml:"zone_long_end"`

	TickIntervalMS   int `yaml:"tick_interval_ms"`
	StaleThresholdMS int `yaml:"stale_threshold_ms"`
	MaxMissedTicks   int `yaml:"max_missed_ticks"`

	FreeFlowSpeed         float64 `yaml:"free_flow_speed"`
	SlowdownThreshold     float64 `yaml:"slowdown_threshold"`
	MaxSlowdown           float64 `yaml:"max_slowdown"`
	MaxVehiclesInSlowdown float64 `yaml:"max_vehicles_in_slowdown"`
	AdvisoryFloor         float64 `yaml:"advisory_floor"`

	// SinkMode selects the telemetry sink backend: postgres, sqlite, memory
	// or none.
	SinkMode        string `yaml:"sink_mode"`
	PostgresDSN     string `yaml:"postgres_dsn"`
	SQLitePath      string `yaml:"sqlite_path"`
	SinkBatchSize   int    `yaml:"sink_batch_size"`
	SinkTimeoutMS   int    `yaml:"sink_timeout_ms"`
	SinkBufferSize  int    `yaml:"sink_buffer_size"`
	ActuatorAddress string `yaml:"actuator_address"`

	LogDebug bool `yaml:"log_debug"`
}

// DefaultConfig returns the built-in defaults for the deployed segment.
func DefaultConfig() Config {
	params := domain.DefaultControlParams()
	return Config{
		HTTPPort:              "8080",
		GRPCPort:              "50051",
		MetricsPort:           "2112",
		SegmentID:             1,
		ZoneLongStart:         params.ZoneLongStart,
		ZoneLongEnd:           params.ZoneLongEnd,
		TickIntervalMS:        int(params.TickInterval / time.Millisecond),
		StaleThresholdMS:      int(params.StaleThreshold / time.Millisecond),
		MaxMissedTicks:        params.MaxMissedTicks,
		FreeFlowSpeed:         params.FreeFlowSpeed,
		SlowdownThreshold:     params.SlowdownThreshold,
		MaxSlowdown:           params.MaxSlowdown,
		MaxVehiclesInSlowdown: params.MaxVehiclesInSlowdown,
		AdvisoryFloor:         params.AdvisoryFloor,
		SinkMode:              "memory",
		SQLitePath:            "traffic_advisory.db",
		SinkBatchSize:         32,
		SinkTimeoutMS:         250,
		SinkBufferSize:        128,
		ActuatorAddress:       "127.0.0.1:4500",
	}
}

// LoadConfig builds the configuration from defaults, the optional YAML file
// at path, and environment variables.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.HTTPPort = getEnv("HTTP_PORT", c.HTTPPort)
	c.GRPCPort = getEnv("GRPC_PORT", c.GRPCPort)
	c.MetricsPort = getEnv("METRICS_PORT", c.MetricsPort)
	c.SegmentID = getEnvInt("SEGMENT_ID", c.SegmentID)
	c.ZoneLongStart = getEnvFloat("ZONE_LONG_START", c.ZoneLongStart)
	c.ZoneLongEnd = getEnvFloat("ZONE_LONG_END", c.ZoneLongEnd)
	c.TickIntervalMS = getEnvInt("TICK_INTERVAL_MS", c.TickIntervalMS)
	c.StaleThresholdMS = getEnvInt("STALE_THRESHOLD_MS", c.StaleThresholdMS)
	c.MaxMissedTicks = getEnvInt("MAX_MISSED_TICKS", c.MaxMissedTicks)
	c.FreeFlowSpeed = getEnvFloat("FREE_FLOW_SPEED", c.FreeFlowSpeed)
	c.SlowdownThreshold = getEnvFloat("SLOWDOWN_THRESHOLD", c.SlowdownThreshold)
	c.MaxSlowdown = getEnvFloat("MAX_SLOWDOWN", c.MaxSlowdown)
	c.MaxVehiclesInSlowdown = getEnvFloat("MAX_VEHICLES_IN_SLOWDOWN", c.MaxVehiclesInSlowdown)
	c.AdvisoryFloor = getEnvFloat("ADVISORY_FLOOR", c.AdvisoryFloor)
	c.SinkMode = getEnv("SINK_MODE", c.SinkMode)
	c.PostgresDSN = getEnv("POSTGRES_DSN", c.PostgresDSN)
	c.SQLitePath = getEnv("SQLITE_PATH", c.SQLitePath)
	c.SinkBatchSize = getEnvInt("SINK_BATCH_SIZE", c.SinkBatchSize)
	c.SinkTimeoutMS = getEnvInt("SINK_TIMEOUT_MS", c.SinkTimeoutMS)
	c.SinkBufferSize = getEnvInt("SINK_BUFFER", c.SinkBufferSize)
	c.ActuatorAddress = getEnv("ACTUATOR_ADDR", c.ActuatorAddress)
	c.LogDebug = getEnvBool("LOG_DEBUG", c.LogDebug)
}

// ControlParams returns the immutable parameter snapshot handed to each
// control tick.
func (c Config) ControlParams() domain.ControlParams {
	return domain.ControlParams{
		ZoneLongStart:         c.ZoneLongStart,
		ZoneLongEnd:           c.ZoneLongEnd,
		TickInterval:          time.Duration(c.TickIntervalMS) * time.Millisecond,
		StaleThreshold:        time.Duration(c.StaleThresholdMS) * time.Millisecond,
		MaxMissedTicks:        c.MaxMissedTicks,
		FreeFlowSpeed:         c.FreeFlowSpeed,
		SlowdownThreshold:     c.SlowdownThreshold,
		MaxSlowdown:           c.MaxSlowdown,
		MaxVehiclesInSlowdown: c.MaxVehiclesInSlowdown,
		AdvisoryFloor:         c.AdvisoryFloor,
	}
}

// Validate rejects configurations the control loop cannot run with.
func (c Config) Validate() error {
	if c.ZoneLongEnd < c.ZoneLongStart {
		return fmt.Errorf("zone interval inverted: [%f, %f]", c.ZoneLongStart, c.ZoneLongEnd)
	}
	if c.TickIntervalMS <= 0 {
		return fmt.Errorf("tick interval must be positive, got %d ms", c.TickIntervalMS)
	}
	if c.StaleThresholdMS <= 0 {
		return fmt.Errorf("stale threshold must be positive, got %d ms", c.StaleThresholdMS)
	}
	if c.MaxMissedTicks <= 0 {
		return fmt.Errorf("max missed ticks must be positive, got %d", c.MaxMissedTicks)
	}
	if c.AdvisoryFloor < 0 || c.AdvisoryFloor > c.FreeFlowSpeed {
		return fmt.Errorf("advisory floor %f outside [0, %f]", c.AdvisoryFloor, c.FreeFlowSpeed)
	}
	switch c.SinkMode {
	case "postgres", "sqlite", "memory", "none":
	default:
		return fmt.Errorf("unknown sink mode %q", c.SinkMode)
	}
	return nil
}

// LogConfig writes the effective configuration to the log at startup.
func LogConfig(ctx context.Context, logger *Logger, cfg Config) {
	logger.Printf(ctx, "HTTP_PORT=%s", cfg.HTTPPort)
	logger.Printf(ctx, "GRPC_PORT=%s", cfg.GRPCPort)
	logger.Printf(ctx, "METRICS_PORT=%s", cfg.MetricsPort)
	logger.Printf(ctx, "SEGMENT_ID=%d", cfg.SegmentID)
	logger.Printf(ctx, "zone interval [%f, %f]", cfg.ZoneLongStart, cfg.ZoneLongEnd)
	logger.Printf(ctx, "TICK_INTERVAL_MS=%d", cfg.TickIntervalMS)
	logger.Printf(ctx, "STALE_THRESHOLD_MS=%d", cfg.StaleThresholdMS)
	logger.Printf(ctx, "MAX_MISSED_TICKS=%d", cfg.MaxMissedTicks)
	logger.Printf(ctx, "FREE_FLOW_SPEED=%f", cfg.FreeFlowSpeed)
	logger.Printf(ctx, "SLOWDOWN_THRESHOLD=%f", cfg.SlowdownThreshold)
	logger.Printf(ctx, "MAX_SLOWDOWN=%f over %f vehicles", cfg.MaxSlowdown, cfg.MaxVehiclesInSlowdown)
	logger.Printf(ctx, "ADVISORY_FLOOR=%f", cfg.AdvisoryFloor)
	logger.Printf(ctx, "SINK_MODE=%s", cfg.SinkMode)
	if cfg.PostgresDSN != "" {
		logger.Printf(ctx, "POSTGRES_DSN set (length %d)", len(cfg.PostgresDSN))
	}
	logger.Printf(ctx, "ACTUATOR_ADDR=%s", cfg.ActuatorAddress)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
