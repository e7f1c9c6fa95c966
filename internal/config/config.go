package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment overrides, e.g. PP_SERVER__ADDRESS=:9090.
const EnvPrefix = "PP_"

// Config is the on-disk configuration shape (YAML or JSON).
type Config struct {
	Server  ServerConfig  `json:"server"`
	Logging LoggingConfig `json:"logging"`
	Metrics MetricsConfig `json:"metrics"`
}

type ServerConfig struct {
	Address string `json:"address"`
	// Env is "production" for gin release mode; anything else runs in debug mode.
	Env                    string   `json:"env"`
	CORSOrigins            []string `json:"cors_origins"`
	ShutdownTimeoutSeconds int      `json:"shutdown_timeout_seconds"`
}

type LoggingConfig struct {
	Level string `json:"level"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

func (s ServerConfig) Production() bool {
	return s.Env == "production"
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{Metrics: MetricsConfig{Enabled: true}}
	c.SetDefaults()
	return c
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked reads the file (if any) and environment overrides without
// applying defaults or validating.
func LoadUnchecked(path string) (*Config, error) {
	k := koanf.New(".")
	// metrics are on unless a file or env var says otherwise
	if err := k.Set("metrics.enabled", true); err != nil {
		return nil, err
	}
	if path != "" {
		var parser koanf.Parser
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var c Config
	if err := k.UnmarshalWithConf("", &c, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	return &c, nil
}

// SetDefaults fills empty fields. API_PORT is honoured when no address is configured.
func (c *Config) SetDefaults() {
	if c.Server.Address == "" {
		port := os.Getenv("API_PORT")
		if port == "" {
			port = "8888"
		}
		c.Server.Address = ":" + port
	}
	if c.Server.Env == "" {
		c.Server.Env = os.Getenv("API_ENV")
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.Server.ShutdownTimeoutSeconds == 0 {
		c.Server.ShutdownTimeoutSeconds = 10
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Address == "" {
		return errors.New("server.address is required")
	}
	if c.Server.ShutdownTimeoutSeconds < 0 {
		return errors.New("server.shutdown_timeout_seconds must be >= 0")
	}
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/': %q", c.Metrics.Path)
	}
	return nil
}
