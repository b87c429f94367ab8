package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration

	// Rendering defaults applied when a request leaves them out.
	DefaultMode     string
	DefaultDevice   string
	RenderCacheSize int

	// Sink circuit breaker.
	BreakerMaxFailures int
	BreakerTimeout     time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	cacheSize, err := parseNonNegativeInt("RENDER_CACHE_SIZE", "1000")
	if err != nil {
		return nil, err
	}

	maxFailures, err := parseNonNegativeInt("BREAKER_MAX_FAILURES", "5")
	if err != nil {
		return nil, err
	}
	if maxFailures == 0 {
		return nil, errors.New("invalid BREAKER_MAX_FAILURES: must be positive")
	}

	breakerTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("BREAKER_TIMEOUT", "30s"))
	if err != nil || breakerTimeout <= 0 {
		return nil, errors.New("invalid BREAKER_TIMEOUT")
	}

	cfg := &Config{
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "forecast-requests"),
		KafkaSinkTopic:     sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "forecast-replies"),
		KafkaGroupID:       sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "satcom-forecast"),
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		DefaultMode:     strings.ToLower(sharedcfg.EnvOrDefault("DEFAULT_MODE", "summary")),
		DefaultDevice:   strings.ToLower(sharedcfg.EnvOrDefault("DEFAULT_DEVICE", "zoleo")),
		RenderCacheSize: cacheSize,

		BreakerMaxFailures: maxFailures,
		BreakerTimeout:     breakerTimeout,
	}

	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSourceTopic == "" {
		return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
	}
	if cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}
	switch cfg.DefaultMode {
	case "summary", "compact", "full":
	default:
		return nil, fmt.Errorf("invalid DEFAULT_MODE %q: must be summary, compact or full", cfg.DefaultMode)
	}
	switch cfg.DefaultDevice {
	case "zoleo", "inreach":
	default:
		return nil, fmt.Errorf("invalid DEFAULT_DEVICE %q: must be zoleo or inreach", cfg.DefaultDevice)
	}

	return cfg, nil
}

func parseNonNegativeInt(key, def string) (int, error) {
	n, err := strconv.Atoi(sharedcfg.EnvOrDefault(key, def))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s: must be a non-negative integer", key)
	}
	return n, nil
}
