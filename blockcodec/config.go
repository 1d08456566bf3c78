package blockcodec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eth2030/sszcodec/log"
)

// DefaultMaxBlockBytes is the phase0 GOSSIP_MAX_SIZE.
const DefaultMaxBlockBytes = 1 << 20

// Config holds the codec settings.
type Config struct {
	// MaxBlockBytes bounds the input accepted by the decoders. Larger
	// inputs fail with ErrTooLarge before any parsing.
	MaxBlockBytes int `yaml:"max_block_bytes"`

	// LogLevel controls log verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// LogFormat selects json or text log output.
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxBlockBytes: DefaultMaxBlockBytes,
		LogLevel:      "info",
		LogFormat:     "json",
	}
}

// Validate checks configuration values for correctness.
func (c *Config) Validate() error {
	if c.MaxBlockBytes <= 0 {
		return fmt.Errorf("config: invalid max block bytes: %d", c.MaxBlockBytes)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := log.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ParseConfig reads a YAML document over DefaultConfig. Keys the Config
// does not declare are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return ParseConfig(data)
}

// newLogger builds the logger described by the config.
func (c *Config) newLogger() *log.Logger {
	level, _ := log.ParseLevel(c.LogLevel)
	format, _ := log.ParseFormat(c.LogFormat)
	return log.New(os.Stderr, level, format)
}
