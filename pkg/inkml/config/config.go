// Package config holds the codec's persisted configuration: the knobs a
// caller can override without touching code, loaded from and saved to a
// YAML file in the style of the rest of this codebase's ambient stack.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Configuration holds the codec's tunables: these are defaults the
// document parser and emitter fall back to when a document doesn't specify
// something itself, plus a couple of process-wide knobs (log level,
// trailing newline on emit).
type Configuration struct {
	Path string

	// DefaultResolutionValue is the resolution_value a Channel receives
	// when a document never supplies a channelProperty for it.
	DefaultResolutionValue float64

	// MinBrushWidthCm floors a brush's stroke_width_cm at </brush> close,
	// superseding the dialect's own 0.0 -> 0.1cm coercion when set higher.
	MinBrushWidthCm float64

	// TrailingNewlineOnEmit appends "\n" after the emitted document when
	// true. The dialect itself has no opinion on trailing whitespace.
	TrailingNewlineOnEmit bool

	// LogLevel is one of "debug", "info", "none".
	LogLevel string
}

// NewDefaultConfiguration returns the configuration every call path falls
// back to absent an explicit override: 1000 units per unresolved channel,
// no width floor beyond the dialect's own 0.1cm coercion, no trailing
// newline, logging disabled.
func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		DefaultResolutionValue: 1000,
		MinBrushWidthCm:        0,
		TrailingNewlineOnEmit:  false,
		LogLevel:               "none",
	}
}

// yamlConfiguration is the on-disk shape: a plain, stable schema decoupled
// from Configuration's Go field names so the struct above is free to grow.
type yamlConfiguration struct {
	DefaultResolutionValue float64 `yaml:"defaultResolutionValue"`
	MinBrushWidthCm        float64 `yaml:"minBrushWidthCm"`
	TrailingNewlineOnEmit  bool    `yaml:"trailingNewlineOnEmit"`
	LogLevel               string  `yaml:"logLevel"`
}

func (c *Configuration) toYAML() yamlConfiguration {
	return yamlConfiguration{
		DefaultResolutionValue: c.DefaultResolutionValue,
		MinBrushWidthCm:        c.MinBrushWidthCm,
		TrailingNewlineOnEmit:  c.TrailingNewlineOnEmit,
		LogLevel:               c.LogLevel,
	}
}

func fromYAML(y yamlConfiguration, path string) *Configuration {
	return &Configuration{
		Path:                   path,
		DefaultResolutionValue: y.DefaultResolutionValue,
		MinBrushWidthCm:        y.MinBrushWidthCm,
		TrailingNewlineOnEmit:  y.TrailingNewlineOnEmit,
		LogLevel:               y.LogLevel,
	}
}

// Parse reads a Configuration from r's YAML content.
func Parse(r io.Reader, path string) (*Configuration, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, err
	}

	var y yamlConfiguration
	if err := yaml.Unmarshal(buf.Bytes(), &y); err != nil {
		return nil, errors.Wrap(err, "parsing configuration")
	}

	if y.LogLevel == "" {
		y.LogLevel = "none"
	}

	return fromYAML(y, path), nil
}

// Load reads the configuration stored at path.
func Load(path string) (*Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, path)
}

// Save writes c to its Path (or to path, if given) as YAML.
func (c *Configuration) Save(path string) error {
	if path == "" {
		path = c.Path
	}

	bytes, err := yaml.Marshal(c.toYAML())
	if err != nil {
		return errors.Wrap(err, "marshaling configuration")
	}

	return os.WriteFile(path, bytes, 0644)
}
