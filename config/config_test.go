package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/config"
	"github.com/katalvlaran/gridnav/search"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "maps", cfg.Maps.Dir)
	assert.Equal(t, "RobotNav-test.txt", cfg.Maps.Default)
	assert.Equal(t, "bfs", cfg.Search.Algorithm)
	assert.Equal(t, search.DefaultLimit, cfg.Search.Limit)
	assert.Equal(t, 1000, cfg.Bench.Runs)
	require.NoError(t, cfg.Validate())

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, lvl)
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	path := write(t, "gridnav.yaml", "search:\n  algorithm: astar\n  jump: true\nlog:\n  level: debug\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "astar", cfg.Search.Algorithm)
	assert.True(t, cfg.Search.Jump)
	assert.Equal(t, search.DefaultLimit, cfg.Search.Limit, "unset fields keep defaults")
	assert.Equal(t, "maps", cfg.Maps.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_TOMLOverlay(t *testing.T) {
	path := write(t, "gridnav.toml", "[search]\nalgorithm = \"iddfs\"\nlimit = 500\n\n[bench]\nruns = 10\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "iddfs", cfg.Search.Algorithm)
	assert.Equal(t, 500, cfg.Search.Limit)
	assert.Equal(t, 10, cfg.Bench.Runs)
	assert.Equal(t, "RobotNav-test.txt", cfg.Maps.Default)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(write(t, "bad.yaml", "search: [\n"))
	assert.Error(t, err)

	_, err = config.Load(write(t, "bad.toml", "search = \n"))
	assert.Error(t, err)

	cases := map[string]string{
		"algorithm": "search:\n  algorithm: dijkstra\n",
		"limit":     "search:\n  limit: -1\n",
		"runs":      "bench:\n  runs: 0\n",
		"level":     "log:\n  level: loud\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, "c.yaml", body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Search.Algorithm = "greedy"
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
