// Package config loads the TOML file that tunes the interpolation defaults of
// a client and watches it for changes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/vecmath/engine/core"
	"github.com/spaghettifunk/vecmath/engine/math"
)

var (
	ErrEmptyPath      = errors.New("config path is empty")
	ErrInvalidSamples = errors.New("interpolation samples must be at least 2")
	ErrInvalidWorkers = errors.New("testbed workers must be at least 1")
	ErrInvalidHistory = errors.New("testbed history must be at least 1")
)

type Config struct {
	Log           Log           `toml:"log"`
	Interpolation Interpolation `toml:"interpolation"`
	Testbed       Testbed       `toml:"testbed"`
}

type Log struct {
	Level string `toml:"level"`
}

type Interpolation struct {
	Quality   math.Quality       `toml:"quality"`
	Direction math.LerpDirection `toml:"direction"`
	// Samples is the number of evenly spaced t values in [0, 1] the testbed
	// evaluates, both ends included.
	Samples int `toml:"samples"`
	// Seed feeds the generator used for the random law checks.
	Seed uint64 `toml:"seed"`
}

type Testbed struct {
	// Sweep also samples every quality and direction combination.
	Sweep bool `toml:"sweep"`
	// Workers sizes the job system the sweep runs on.
	Workers int `toml:"workers"`
	// History is the number of past reports kept in memory.
	History int `toml:"history"`
}

func Default() *Config {
	return &Config{
		Log: Log{Level: "info"},
		Interpolation: Interpolation{
			Quality:   math.QualityMedium,
			Direction: math.LerpShortest,
			Samples:   9,
			Seed:      1,
		},
		Testbed: Testbed{
			Sweep:   false,
			Workers: 4,
			History: 8,
		},
	}
}

// Parse decodes data on top of Default, so keys missing from the document
// keep their default value. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Load(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Interpolation.Samples < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.Interpolation.Samples)
	}
	if c.Testbed.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Testbed.Workers)
	}
	if c.Testbed.History < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidHistory, c.Testbed.History)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) LogLevel() (core.LogLevel, error) {
	return core.ParseLogLevel(c.Log.Level)
}

// Marshal encodes c back to TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
