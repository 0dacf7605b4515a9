package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Tushare struct {
		Token       string        `yaml:"token"`
		BaseURL     string        `yaml:"base_url"`
		MaxRequests int           `yaml:"max_requests"`
		TimeWindow  time.Duration `yaml:"time_window"`
		Timeout     time.Duration `yaml:"timeout"`
		MaxRetries  int           `yaml:"max_retries"`
	} `yaml:"tushare"`
	Yahoo struct {
		BaseURL     string        `yaml:"base_url"`
		MaxRequests int           `yaml:"max_requests"`
		TimeWindow  time.Duration `yaml:"time_window"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"yahoo"`
	Stream struct {
		Enabled        bool          `yaml:"enabled"`
		WebSocketURL   string        `yaml:"websocket_url"`
		Symbols        []string      `yaml:"symbols"`
		ReconnectDelay time.Duration `yaml:"reconnect_delay"`
		PingInterval   time.Duration `yaml:"ping_interval"`
	} `yaml:"stream"`
	Kafka struct {
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic"`
		LogTopic     string   `yaml:"log_topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			BatchBytes   int           `yaml:"batch_bytes"`
			BatchSize    int           `yaml:"batch_size"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
	} `yaml:"kafka"`
}

func parse(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &c, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	c, err := parse(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment
// variables. Validation runs after the overrides so secrets like the
// tushare token may come from the environment alone.
func LoadWithEnv(path string) (*Config, error) {
	c, err := parse(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("TUSHARE_TOKEN"); v != "" {
		c.Tushare.Token = v
	}
	if v := os.Getenv("STREAM_SYMBOLS"); v != "" {
		c.Stream.Symbols = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Tushare.Token == "" {
		return fmt.Errorf("tushare.token is required")
	}
	if c.Tushare.MaxRequests <= 0 {
		return fmt.Errorf("tushare.max_requests must be positive, got %d", c.Tushare.MaxRequests)
	}
	if c.Tushare.TimeWindow <= 0 {
		return fmt.Errorf("tushare.time_window must be positive, got %s", c.Tushare.TimeWindow)
	}
	if c.Stream.Enabled {
		if c.Stream.WebSocketURL == "" {
			return fmt.Errorf("stream.websocket_url is required when stream is enabled")
		}
		if len(c.Stream.Symbols) == 0 {
			return fmt.Errorf("stream.symbols cannot be empty when stream is enabled")
		}
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers cannot be empty when stream is enabled")
		}
	}
	return nil
}
