/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/secded/pkg/hamming"
)

// Config represents the SECDED tool configuration
type Config struct {
	ParityBits int     `yaml:"parity_bits"`
	Vectors    Vectors `yaml:"vectors"`
	Archive    Archive `yaml:"archive"`
	Logging    Logging `yaml:"logging"`
}

// Vectors contains test-vector generation settings
type Vectors struct {
	Tests       int    `yaml:"tests"`
	Seed        int64  `yaml:"seed"`
	MaxNoise    int    `yaml:"max_noise"`
	ParityWidth int    `yaml:"parity_width"`
	EvenParity  bool   `yaml:"even_parity"`
	OutputDir   string `yaml:"output_dir"`
	BigEndian   bool   `yaml:"big_endian"`
}

// Archive contains run archive settings
type Archive struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		ParityBits: 4,
		Vectors: Vectors{
			Tests:       100,
			Seed:        8,
			MaxNoise:    4,
			ParityWidth: 8,
			EvenParity:  true,
			OutputDir:   ".",
			BigEndian:   true,
		},
		Archive: Archive{
			Enabled: false,
			Dir:     "./runs",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Validate checks the configuration for values the tools cannot run with
func (c *Config) Validate() error {
	if c.ParityBits < 2 || c.ParityBits > hamming.MaxParityBits {
		return fmt.Errorf("parity_bits must be between 2 and %d, got %d", hamming.MaxParityBits, c.ParityBits)
	}
	if c.Vectors.Tests < 0 {
		return fmt.Errorf("vectors.tests must not be negative, got %d", c.Vectors.Tests)
	}
	if c.Vectors.MaxNoise < 0 {
		return fmt.Errorf("vectors.max_noise must not be negative, got %d", c.Vectors.MaxNoise)
	}
	if c.Vectors.ParityWidth < 1 || c.Vectors.ParityWidth > 62 {
		return fmt.Errorf("vectors.parity_width must be between 1 and 62, got %d", c.Vectors.ParityWidth)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

// Debug reports whether debug logging is enabled
func (c *Config) Debug() bool {
	return strings.EqualFold(c.Logging.Level, "debug")
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so partial files keep sensible values
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateSeed returns a random non-negative seed from crypto/rand
func GenerateSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("failed to generate seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) >> 1), nil
}

// BootstrapConfig creates a new configuration with a fresh seed and saves it
func BootstrapConfig(configPath string, outputDir string) (*Config, error) {
	config := DefaultConfig()
	if outputDir != "" {
		config.Vectors.OutputDir = outputDir
	}

	seed, err := GenerateSeed()
	if err != nil {
		return nil, err
	}
	config.Vectors.Seed = seed

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./secded.yaml"
	}

	// For Linux/macOS, use ~/.config/secded/config.yaml
	configDir := filepath.Join(homeDir, ".config", "secded")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
