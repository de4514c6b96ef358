package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
)

// How much of a failure message makes it into the status label.
const statusErrorLimit = 50

type applyResult struct {
	Path string
	Err  error
}

// Applier runs the theme pipeline off the UI thread: rswall on the selected
// image, then a restart of the wallpaper daemon with a freshly generated
// config.
//
// Requests go through a single-slot channel drained by one worker goroutine,
// so concurrent applies are serialized; TryEnqueue reports whether the slot
// was free. Completion is delivered through the onDone callback, which the UI
// wires to glib.IdleAdd. The worker only reads its own fields; anything that
// belongs to shared state (like the saved last-applied path) is recorded by
// the callback on the UI thread.
type Applier struct {
	RswallBin        string
	DaemonName       string
	DaemonBin        string
	DaemonConfigFile string
	DiscardLogs      bool

	requests chan string
	onDone   func(applyResult)
}

func newApplier(cfg *ConfigStruct, onDone func(applyResult)) *Applier {
	return &Applier{
		RswallBin:        cfg.Constants.RswallBin,
		DaemonName:       cfg.Constants.DaemonName,
		DaemonBin:        cfg.Constants.DaemonBin,
		DaemonConfigFile: cfg.Constants.DaemonConfigFile,
		DiscardLogs:      cfg.Constants.DiscardProcessLogs,
		requests:         make(chan string, 1),
		onDone:           onDone,
	}
}

func (a *Applier) Start() {
	go a.loop()
}

func (a *Applier) loop() {
	for imagePath := range a.requests {
		err := a.applyTheme(imagePath)
		if err != nil {
			log.Printf("Failed to apply theme for %s: %v", imagePath, err)
		}
		if a.onDone != nil {
			a.onDone(applyResult{Path: imagePath, Err: err})
		}
	}
}

// Hands the image to the worker without blocking. Returns false if an apply
// is already queued or running.
func (a *Applier) TryEnqueue(imagePath string) bool {
	select {
	case a.requests <- imagePath:
		return true
	default:
		return false
	}
}

// Runs the full pipeline for one image: rswall first, and only on success the
// daemon restart. All failures come back as errors, nothing is fatal.
func (a *Applier) applyTheme(imagePath string) error {
	log.Printf("Running %s %s --reload", a.RswallBin, imagePath)

	cmd := exec.Command(a.RswallBin, imagePath, "--reload")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("rswall failed: %s", msg)
	}

	return a.setWallpaper(imagePath)
}

// Restarts the wallpaper daemon pointed at a config referencing imagePath.
// Killing old instances is best-effort; writing the config and launching the
// daemon are not.
func (a *Applier) setWallpaper(imagePath string) error {
	if err := tryKillProcesses(a.DaemonName); err != nil {
		log.Printf("Could not terminate running %s instance(s): %v", a.DaemonName, err)
	}

	content := "preload = " + imagePath + "\nwallpaper = ," + imagePath + "\n"
	if err := os.WriteFile(a.DaemonConfigFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write daemon config %s: %v", a.DaemonConfigFile, err)
	}

	if _, err := runDetachedProcess(a.DiscardLogs, a.DaemonBin, "-c", a.DaemonConfigFile); err != nil {
		return fmt.Errorf("failed to start %s: %v", a.DaemonName, err)
	}

	return nil
}

// Cuts a status message down to max characters, marking the cut with "...".
func truncateMessage(msg string, max int) string {
	if len(msg) <= max {
		return msg
	}
	return msg[:max] + "..."
}
