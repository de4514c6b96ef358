package main

import (
	_ "image/gif"  // For gif decoder
	_ "image/jpeg" // For jpeg decoder
	_ "image/png"  // For png decoder
	"log"
	"os"
	"path"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	_ "golang.org/x/image/webp" // For webp decoder
)

var Config *ConfigStruct
var CacheDir string

func main() {
	// ensure ~/.config/rswall-gui
	configDir, err := ensureConfigDir()
	if err != nil {
		log.Fatalf("Failed to ensure config directory: %v", err)
	}
	log.Printf("Config directory ensured at: %s", configDir)

	// ensure ~/.cache/rswall-gui
	CacheDir, err = ensureCacheDir()
	if err != nil {
		log.Fatalf("Failed to ensure cache directory: %v", err)
	}
	log.Printf("Cache directory ensured at: %s", CacheDir)

	Config = NewDefaultConfig()

	configFile := path.Join(configDir, "config.toml")
	if err := readOrCreateConfig(configFile, Config); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	validateConfig()

	// the rswall binary must exist before any window is shown
	rswallBin, err := resolvePath(Config.Constants.RswallBin)
	if err != nil {
		log.Fatalf("Failed to resolve rswall binary path: %v", err)
	}
	if err := checkRswallBin(rswallBin); err != nil {
		if os.IsNotExist(err) {
			log.Printf("Error: rswall binary not found at %s", rswallBin)
			log.Printf("Please build rswall first with: cargo build --release")
		} else {
			log.Printf("Error: cannot access rswall binary at %s: %v", rswallBin, err)
		}
		os.Exit(1)
	}
	Config.Constants.RswallBin = rswallBin

	// check for --restore
	restore := false
	for _, arg := range os.Args {
		if arg == "--restore" {
			restore = true
			log.Println("Restore mode activated, re-applying last theme...")
			break
		}
	}

	if restore {
		if Config.SavedUIState.LastApplied == "" {
			log.Println("No last applied wallpaper found, cannot restore theme.")
			os.Exit(1)
		}
		applier := newApplier(Config, nil)
		if err := applier.applyTheme(Config.SavedUIState.LastApplied); err != nil {
			log.Printf("Failed to restore theme: %v", err)
			os.Exit(1)
		}
		log.Println("Theme restored successfully.")
		saveConfig()
		os.Exit(0)
	}

	app := gtk.NewApplication("dev.rswall.rswall-gui", gio.ApplicationFlagsNone)
	app.ConnectActivate(func() { activate(app) })

	code := app.Run(os.Args)
	saveConfig()
	os.Exit(code)
}

// The startup precondition on the rswall binary. Any stat failure counts as
// missing: a binary we cannot even stat is a binary we cannot run.
func checkRswallBin(binPath string) error {
	_, err := os.Stat(binPath)
	return err
}
