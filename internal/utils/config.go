package utils

import (
	_ "embed"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultConfig []byte

// Config represents the compiled-in client settings.
type Config struct {
	Server struct {
		BaseURL      string `yaml:"base_url"`      // Root address of the registration service
		RegisterPath string `yaml:"register_path"` // Path under BaseURL, organisation ID is appended
	} `yaml:"server"`

	Identity struct {
		DeviceFile string `yaml:"device_file"` // Path to the device identifier file
	} `yaml:"identity"`

	Logging struct {
		Level string `yaml:"level"` // zerolog level name
	} `yaml:"logging"`
}

// LoadConfig decodes the embedded defaults.
func LoadConfig() (*Config, error) {
	return ParseConfig(defaultConfig)
}

// ParseConfig decodes a YAML document into a Config and checks the required fields.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if config.Server.BaseURL == "" {
		return nil, fmt.Errorf("server.base_url is required")
	}
	if config.Identity.DeviceFile == "" {
		return nil, fmt.Errorf("identity.device_file is required")
	}

	return &config, nil
}

// LogLevel returns the configured log level, falling back to warn.
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil || c.Logging.Level == "" {
		return zerolog.WarnLevel
	}
	return level
}
