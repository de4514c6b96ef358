package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	scriptPath := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(scriptPath, []byte("#!/bin/sh\n"+body), 0755))
	return scriptPath
}

// Builds an Applier backed by stub rswall and daemon scripts, with a daemon
// name no real process uses.
func newTestApplier(t *testing.T, rswallBody, daemonBody string) (*Applier, string) {
	t.Helper()
	tmpDir := t.TempDir()

	cfg := NewDefaultConfig()
	cfg.Constants.RswallBin = writeScript(t, tmpDir, "rswall", rswallBody)
	cfg.Constants.DaemonBin = writeScript(t, tmpDir, "fake-daemon", daemonBody)
	cfg.Constants.DaemonName = "rswall-gui-test-daemon"
	cfg.Constants.DaemonConfigFile = filepath.Join(tmpDir, "hyprpaper.conf")

	oldConfig := Config
	Config = cfg
	t.Cleanup(func() { Config = oldConfig })

	return newApplier(cfg, nil), tmpDir
}

func waitForFile(t *testing.T, path string) string {
	t.Helper()
	var content []byte
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(path)
		if err != nil {
			return false
		}
		content = data
		return true
	}, 2*time.Second, 20*time.Millisecond, "expected %s to appear", path)
	return string(content)
}

func TestApplyThemeSuccess(t *testing.T) {
	applier, tmpDir := newTestApplier(t, "exit 0\n", "")

	// the daemon stub records how it was invoked
	marker := filepath.Join(tmpDir, "daemon-args")
	applier.DaemonBin = writeScript(t, tmpDir, "recording-daemon", "echo \"$@\" > "+marker+"\n")

	imagePath := "/pictures/sunset.png"
	require.NoError(t, applier.applyTheme(imagePath))

	// the generated config is exactly two lines referencing the image
	content, err := os.ReadFile(applier.DaemonConfigFile)
	require.NoError(t, err)
	assert.Equal(t, "preload = /pictures/sunset.png\nwallpaper = ,/pictures/sunset.png\n", string(content))

	// the daemon was pointed at that config
	args := waitForFile(t, marker)
	assert.Contains(t, args, "-c "+applier.DaemonConfigFile)

	// the worker leaves saved state alone; the done callback records the
	// last-applied path on the UI thread
	assert.Empty(t, Config.SavedUIState.LastApplied)
}

func TestApplyWorkerNeverWritesSharedConfig(t *testing.T) {
	done := make(chan applyResult, 1)
	applier, tmpDir := newTestApplier(t, "exit 0\n", "exit 0\n")
	applier.onDone = func(result applyResult) { done <- result }
	applier.Start()

	imagePath := filepath.Join(tmpDir, "ocean.png")
	require.True(t, applier.TryEnqueue(imagePath))

	select {
	case result := <-done:
		require.NoError(t, result.Err)
		// the result carries everything the UI needs to record the apply
		assert.Equal(t, imagePath, result.Path)
		assert.Empty(t, Config.SavedUIState.LastApplied)
	case <-time.After(2 * time.Second):
		t.Fatal("apply worker never reported completion")
	}
}

func TestApplyThemeRswallFailure(t *testing.T) {
	applier, tmpDir := newTestApplier(t,
		"echo 'palette extraction failed' >&2\nexit 3\n",
		"")
	launched := filepath.Join(tmpDir, "launched")
	applier.DaemonBin = writeScript(t, tmpDir, "touch-daemon", "touch "+launched+"\n")

	err := applier.applyTheme("/pictures/sunset.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palette extraction failed")

	// the pipeline stops before the daemon step
	assert.NoFileExists(t, applier.DaemonConfigFile)
	assert.NoFileExists(t, launched)
	assert.Empty(t, Config.SavedUIState.LastApplied)
}

func TestApplyThemeDaemonLaunchFailure(t *testing.T) {
	applier, _ := newTestApplier(t, "exit 0\n", "")
	applier.DaemonBin = "/nonexistent/daemon-binary"

	err := applier.applyTheme("/pictures/sunset.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start")
}

func TestTryEnqueueSingleSlot(t *testing.T) {
	applier, _ := newTestApplier(t, "exit 0\n", "")
	// worker not started, so the slot stays occupied

	assert.True(t, applier.TryEnqueue("/pictures/a.png"))
	assert.False(t, applier.TryEnqueue("/pictures/b.png"))
}

func TestApplierReportsCompletion(t *testing.T) {
	done := make(chan applyResult, 1)
	applier, tmpDir := newTestApplier(t, "exit 0\n", "exit 0\n")
	applier.onDone = func(result applyResult) { done <- result }
	applier.Start()

	imagePath := filepath.Join(tmpDir, "any.png")
	require.True(t, applier.TryEnqueue(imagePath))

	select {
	case result := <-done:
		assert.NoError(t, result.Err)
		assert.Equal(t, imagePath, result.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("apply worker never reported completion")
	}
}

func TestTruncateMessage(t *testing.T) {
	assert.Equal(t, "short", truncateMessage("short", 50))
	long := strings.Repeat("x", 80)
	got := truncateMessage(long, 50)
	assert.Equal(t, strings.Repeat("x", 50)+"...", got)
	assert.Len(t, got, 53)
}
