package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, config string, args ...string) (*CLI, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "picdecal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))

	var cli CLI
	parser, err := kong.New(&cli, kong.Configuration(loadYAMLConfig, path), kong.Exit(func(int) {}))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	return &cli, err
}

func TestConfigDefaults(t *testing.T) {
	out := filepath.Join(t.TempDir(), "decal.png")
	config := strings.Join([]string{
		"workers: 3",
		"strength: 2.5",
		"preview:",
		"  strength: 6",
		"  flag-height: 120",
	}, "\n")

	cli, err := parse(t, config, "preview", "--out", out)
	require.NoError(t, err)
	assert.Equal(t, 3, cli.Workers)
	assert.Equal(t, 6.0, cli.Preview.Strength)
	assert.Equal(t, 120, cli.Preview.FlagHeight)
	assert.Equal(t, out, cli.Preview.Out)
}

func TestConfigFlagsWin(t *testing.T) {
	cli, err := parse(t, "strength: 7\n", "preview", "--strength", "3", "--out", filepath.Join(t.TempDir(), "d.png"))
	require.NoError(t, err)
	assert.Equal(t, 3.0, cli.Preview.Strength)
}

func TestConfigValidation(t *testing.T) {
	_, err := parse(t, "strength: 9\n", "preview", "--out", filepath.Join(t.TempDir(), "d.png"))
	assert.Error(t, err)

	_, err = parse(t, "preview:\n  strength: [1, 2]\n", "preview")
	assert.Error(t, err)
}

func TestConfigEmpty(t *testing.T) {
	cli, err := parse(t, "", "preview", "--out", filepath.Join(t.TempDir(), "d.png"))
	require.NoError(t, err)
	assert.Equal(t, 4.5, cli.Preview.Strength)
}
