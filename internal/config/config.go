package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the application configuration, built once at startup and passed
// down explicitly.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port string `koanf:"port"`
	Mode string `koanf:"mode"`
}

// DatabaseConfig holds the MySQL connection settings.
type DatabaseConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"database"`

	// Timeout is the driver's dial timeout.
	Timeout time.Duration `koanf:"timeout"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

// envKeys maps the recognised environment variables to config keys.
var envKeys = map[string]string{
	"SERVER_PORT":    "server.port",
	"SERVER_MODE":    "server.mode",
	"MYSQL_HOST":     "database.host",
	"MYSQL_PORT":     "database.port",
	"MYSQL_USER":     "database.user",
	"MYSQL_PASSWORD": "database.password",
	"MYSQL_DATABASE": "database.database",
	"MYSQL_TIMEOUT":  "database.timeout",
	"LOG_LEVEL":      "logging.level",
	"LOG_FORMAT":     "logging.format",
	"LOG_FILE":       "logging.file",
}

func defaults() map[string]any {
	return map[string]any{
		"server.port":      "8000",
		"server.mode":      "development",
		"database.port":    3306,
		"database.timeout": 5 * time.Second,
		"logging.level":    "info",
		"logging.format":   "text",
	}
}

// Load reads an optional .env file, then layers defaults, an optional YAML
// file and process environment variables, highest last.
// Missing files are not an error; malformed ones are.
func Load(configPath, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
			}
		}
	}

	if err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate ensures the required connection settings are present.
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("database host is required")
	}
	if c.Database.User == "" {
		return errors.New("database user is required")
	}
	if c.Database.Name == "" {
		return errors.New("database name is required")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("database port %d out of range", c.Database.Port)
	}
	if c.Server.Port == "" {
		return errors.New("server port is required")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production") || strings.EqualFold(c.Server.Mode, "release")
}
