package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for jsonv
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls where canonical JSON is written
type OutputConfig struct {
	// Path is the default output file; empty means stdout.
	Path string `yaml:"path"`
	// TrailingNewline appends a newline after the serialized document.
	TrailingNewline bool `yaml:"trailing_newline"`
}

// LoggingConfig controls diagnostic output
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Colorize enables ANSI colors in log output.
	Colorize bool `yaml:"colorize"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Path:            "",
			TrailingNewline: true,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Colorize: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration values are usable
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("invalid log level '%s': must be debug, info, warn or error", c.Logging.Level)
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonv.yml", ".jsonv.yaml", "jsonv.yml", "jsonv.yaml"}

	// Start from current directory
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		// Move up one directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// LoadConfigWithCLI loads configuration and applies CLI overrides. CLI
// flags always win over file values.
func LoadConfigWithCLI(configPath, cliOutput string, cliDebug bool) (*Config, error) {
	var cfg *Config
	var err error

	if configPath != "" {
		cfg, err = LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
	} else if found := FindConfigFile(); found != "" {
		cfg, err = LoadConfig(found)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = NewConfig()
	}

	if cliOutput != "" {
		cfg.Output.Path = cliOutput
	}
	if cliDebug {
		cfg.Logging.Level = "debug"
	}

	return cfg, nil
}
