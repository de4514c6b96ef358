package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	home := os.Getenv("HOME")
	assert.Equal(t, filepath.Join(home, "Pictures", "wallpapaer"), cfg.Constants.WallpaperDir)
	assert.Equal(t, filepath.Join(home, ".config", "rswall", "target", "release", "rswall"), cfg.Constants.RswallBin)
	assert.Equal(t, "hyprpaper", cfg.Constants.DaemonName)
	assert.Equal(t, "/tmp/rswall_gui_hyprpaper.conf", cfg.Constants.DaemonConfigFile)
	assert.Equal(t, 1000, cfg.Preview.BoxWidth)
	assert.Equal(t, 600, cfg.Preview.BoxHeight)
}

func TestReadOrCreateConfigCreatesDefault(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.toml")

	cfg := NewDefaultConfig()
	require.NoError(t, readOrCreateConfig(configFile, cfg))
	require.FileExists(t, configFile)

	// loading the created file back reproduces the defaults
	loaded := NewDefaultConfig()
	loaded.Constants.DaemonName = "overwritten"
	require.NoError(t, readOrCreateConfig(configFile, loaded))
	assert.Equal(t, cfg.Constants.DaemonName, loaded.Constants.DaemonName)
	assert.Equal(t, cfg.Preview.BoxWidth, loaded.Preview.BoxWidth)
}

func TestReadOrCreateConfigLoadsExisting(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.toml")
	content := `
[Constants]
wallpaper_dir = "/srv/walls"
daemon_name = "swaybg"

[Preview]
box_width = 800
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg := NewDefaultConfig()
	require.NoError(t, readOrCreateConfig(configFile, cfg))

	assert.Equal(t, "/srv/walls", cfg.Constants.WallpaperDir)
	assert.Equal(t, "swaybg", cfg.Constants.DaemonName)
	assert.Equal(t, 800, cfg.Preview.BoxWidth)
	// fields absent from the file keep their defaults
	assert.Equal(t, 600, cfg.Preview.BoxHeight)
}

func TestValidateConfigRefillsEmptyFields(t *testing.T) {
	oldConfig := Config
	t.Cleanup(func() { Config = oldConfig })

	Config = NewDefaultConfig()
	Config.Constants.DaemonName = ""
	Config.Constants.DaemonConfigFile = ""
	Config.Preview.BoxWidth = 0
	Config.Preview.BoxHeight = -5

	validateConfig()

	assert.Equal(t, "hyprpaper", Config.Constants.DaemonName)
	assert.Equal(t, "/tmp/rswall_gui_hyprpaper.conf", Config.Constants.DaemonConfigFile)
	assert.Equal(t, 1000, Config.Preview.BoxWidth)
	assert.Equal(t, 600, Config.Preview.BoxHeight)
}
