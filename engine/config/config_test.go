package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/vecmath/engine/core"
	"github.com/spaghettifunk/vecmath/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[log]
level = "debug"

[interpolation]
quality = "high"
direction = "direct"
samples = 17
seed = 99

[testbed]
sweep = true
workers = 2
history = 3
`

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, math.QualityMedium, cfg.Interpolation.Quality)
	assert.Equal(t, math.LerpShortest, cfg.Interpolation.Direction)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, core.InfoLevel, lvl)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, math.QualityHigh, cfg.Interpolation.Quality)
	assert.Equal(t, math.LerpDirect, cfg.Interpolation.Direction)
	assert.Equal(t, 17, cfg.Interpolation.Samples)
	assert.Equal(t, uint64(99), cfg.Interpolation.Seed)
	assert.Equal(t, Testbed{Sweep: true, Workers: 2, History: 3}, cfg.Testbed)
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("[interpolation]\nquality = \"low\"\n"))
	require.NoError(t, err)
	assert.Equal(t, math.QualityLow, cfg.Interpolation.Quality)
	assert.Equal(t, Default().Interpolation.Samples, cfg.Interpolation.Samples)
	assert.Equal(t, "info", cfg.Log.Level)

	cfg, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := map[string]string{
		"unknown quality":   "[interpolation]\nquality = \"ultra\"\n",
		"unknown direction": "[interpolation]\ndirection = \"longest\"\n",
		"unknown key":       "[interpolation]\nspeed = 3\n",
		"bad log level":     "[log]\nlevel = \"loud\"\n",
		"not toml":          "[interpolation\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}

	_, err := Parse([]byte("[interpolation]\nsamples = 1\n"))
	assert.ErrorIs(t, err, ErrInvalidSamples)

	_, err = Parse([]byte("[testbed]\nworkers = 0\n"))
	assert.ErrorIs(t, err, ErrInvalidWorkers)

	_, err = Parse([]byte("[testbed]\nhistory = 0\n"))
	assert.ErrorIs(t, err, ErrInvalidHistory)

	_, err = Parse([]byte("[log]\nlevel = \"loud\"\n"))
	assert.ErrorIs(t, err, core.ErrUnknownLogLevel)
}

func TestLoad(t *testing.T) {
	_, err := Load("")
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "vecmath.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 17, cfg.Interpolation.Samples)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "high")

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
