package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultRestPort is used when the config file leaves port empty.
const DefaultRestPort = "8080"

// RestConfig holds the settings of the REST server
type RestConfig struct {
	Port     string           `mapstructure:"port" yaml:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `mapstructure:"logger" yaml:"logger"`
	Database DatabaseSettings `mapstructure:"database" yaml:"database"`
}

// LoadRestConfig reads, defaults and validates a YAML config file
func LoadRestConfig(path string) (*RestConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParseRestConfig(data)
}

// ParseRestConfig decodes YAML config data, applies defaults and validates the result
func ParseRestConfig(data []byte) (*RestConfig, error) {
	cfg := &RestConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *RestConfig) applyDefaults() {
	if c.Port == "" {
		c.Port = DefaultRestPort
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = LogLevelInfo
	}
	if c.Logger.LogType == "" {
		c.Logger.LogType = LogTypeConsole
	}
	if c.Database.Type == "" {
		c.Database.Type = SqliteDbType
	}
}

// Validate checks the server settings and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}

	return nil
}
