package ggtri

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Default cache capacities.
const (
	// DefaultUniformCacheSize is the number of cached uniform-color triangles.
	DefaultUniformCacheSize = 512

	// DefaultGenericCacheSize is the number of cached textured triangles.
	DefaultGenericCacheSize = 64
)

// Config holds the tunable parameters of a Backend.
//
// A Config can be decoded from TOML:
//
//	uniform_cache_size = 1024
//	generic_cache_size = 128
//	vertical_flip_from_v = true
type Config struct {
	// UniformCacheSize bounds the cache of single-color triangles.
	UniformCacheSize int `toml:"uniform_cache_size"`

	// GenericCacheSize bounds the cache of textured, shaded triangles.
	GenericCacheSize int `toml:"generic_cache_size"`

	// VerticalFlipFromV makes the rectangle fast path detect vertical flips
	// from the V texture coordinate. By default the U coordinate decides
	// both flips.
	VerticalFlipFromV bool `toml:"vertical_flip_from_v"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		UniformCacheSize: DefaultUniformCacheSize,
		GenericCacheSize: DefaultGenericCacheSize,
	}
}

// Validate reports whether c can be used to create a Backend.
func (c Config) Validate() error {
	if c.UniformCacheSize <= 0 {
		return fmt.Errorf("%w: uniform_cache_size %d must be positive", ErrInvalidConfig, c.UniformCacheSize)
	}
	if c.GenericCacheSize <= 0 {
		return fmt.Errorf("%w: generic_cache_size %d must be positive", ErrInvalidConfig, c.GenericCacheSize)
	}
	return nil
}

// DecodeConfig reads a TOML configuration from r. Keys missing from the
// document keep their default values; unknown keys are an error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("ggtri: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfig decodes a TOML configuration document.
func ParseConfig(data []byte) (Config, error) {
	return DecodeConfig(bytes.NewReader(data))
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("ggtri: load config: %w", err)
	}
	return ParseConfig(data)
}

// Encode writes c to w as a TOML document.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
