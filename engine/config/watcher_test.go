package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spaghettifunk/vecmath/engine/core"
	"github.com/spaghettifunk/vecmath/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replace writes data next to path and renames it into place.
func replace(t *testing.T, path string, data string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(data), 0o644))
	require.NoError(t, os.Rename(tmp, path))
}

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vecmath.toml")
	require.NoError(t, os.WriteFile(path, []byte("[interpolation]\nsamples = 3\n"), 0o644))

	reloads := make(chan *Config, 16)
	w, err := NewWatcher(path, func(cfg *Config) { reloads <- cfg })
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	// an invalid document is skipped
	replace(t, path, "[interpolation]\nsamples = 0\n")
	replace(t, path, sample)

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-reloads:
			require.GreaterOrEqual(t, cfg.Interpolation.Samples, 2)
			if cfg.Interpolation.Samples == 17 {
				assert.Equal(t, math.QualityHigh, cfg.Interpolation.Quality)
				return
			}
		case <-timeout:
			t.Fatal("config was not reloaded")
		}
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vecmath.toml")

	reloads := make(chan *Config, 1)
	w, err := NewWatcher(path, func(cfg *Config) { reloads <- cfg })
	require.NoError(t, err)
	defer w.Close()
	w.Start(context.Background())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte(sample), 0o644))

	select {
	case <-reloads:
		t.Fatal("unexpected reload")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	_, err := NewWatcher("", nil)
	assert.ErrorIs(t, err, ErrEmptyPath)

	w, err := NewWatcher(filepath.Join(t.TempDir(), "vecmath.toml"), nil)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(w.Path()))

	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Close(), core.ErrWatcherClosed)
}
