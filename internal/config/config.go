package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type RESTConfig struct {
	// BaseURL points at the storefront backend serving the public API.
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (c RESTConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	GroupID string   `yaml:"group_id"`
	// Topics carries the backend change-event topics the gateway follows
	// (catalog, location, schedule updates).
	Topics []string `yaml:"topics"`
}

type SecurityConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

type LoggingConfig struct {
	Directory string `yaml:"directory"`
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	REST     RESTConfig     `yaml:"rest"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Security SecurityConfig `yaml:"security"`
	Logging  LoggingConfig  `yaml:"logging"`
}

func defaults() Config {
	return Config{
		Server: ServerConfig{Port: "8090"},
		REST:   RESTConfig{BaseURL: "http://localhost:8000", TimeoutSeconds: 10},
		Kafka: KafkaConfig{
			GroupID: "kiosque-live",
			Topics:  []string{"catalog.products", "presence.location", "presence.schedule"},
		},
		Logging: LoggingConfig{Directory: "./logs", Level: "info", Format: "text"},
	}
}

// Load builds the configuration from built-in defaults, an optional YAML
// file, and finally environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if trimmed := strings.TrimSpace(path); trimmed != "" {
		data, err := os.ReadFile(trimmed)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file %s: %w", trimmed, err)
		}
		if len(data) > 0 {
			var override Config
			if err := yaml.Unmarshal(data, &override); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", trimmed, err)
			}
			if err := mergo.Merge(&cfg, override, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("merge config file %s: %w", trimmed, err)
			}
		}
	}

	applyEnv(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.Server.Port = v
	}
	if v := strings.TrimSpace(os.Getenv("API_BASE_URL")); v != "" {
		cfg.REST.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("API_TIMEOUT_SECONDS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.REST.TimeoutSeconds = parsed
		}
	}
	if v := splitList(os.Getenv("KAFKA_BROKERS")); len(v) > 0 {
		cfg.Kafka.Brokers = v
	}
	if v := strings.TrimSpace(os.Getenv("KAFKA_GROUP_ID")); v != "" {
		cfg.Kafka.GroupID = v
	}
	if v := splitList(os.Getenv("KAFKA_TOPICS")); len(v) > 0 {
		cfg.Kafka.Topics = v
	}
	if v := strings.TrimSpace(os.Getenv("JWT_SECRET")); v != "" {
		cfg.Security.JWTSecret = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_DIR")); v != "" {
		cfg.Logging.Directory = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FORMAT")); v != "" {
		cfg.Logging.Format = v
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
