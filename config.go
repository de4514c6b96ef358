package main

import (
	"log"
	"os"
	"path"

	"github.com/pelletier/go-toml/v2"
)

type ConstantsStruct struct {
	WallpaperDir       string `toml:"wallpaper_dir"        comment:"The directory scanned for wallpapers; the 'wallpapaer' spelling matches the pre-existing directory on disk"`
	RswallBin          string `toml:"rswall_bin"           comment:"The absolute path to the rswall binary"`
	DaemonName         string `toml:"daemon_name"          comment:"The process name of the wallpaper daemon, used to terminate old instances"`
	DaemonBin          string `toml:"daemon_bin"           comment:"The binary used to launch the wallpaper daemon"`
	DaemonConfigFile   string `toml:"daemon_config_file"   comment:"Where the generated daemon config is written"`
	DiscardProcessLogs bool   `toml:"discard_process_logs" comment:"Whether to pipe detached processes' logs to /dev/null"`
}

type PreviewStruct struct {
	BoxWidth  int `toml:"box_width"  comment:"Width of the preview bounding box in pixels"`
	BoxHeight int `toml:"box_height" comment:"Height of the preview bounding box in pixels"`
}

type SavedUIStateStruct struct {
	LastApplied string `toml:"last_applied" comment:"The last applied wallpaper path, used for restoring the theme with --restore"`
}

type ConfigStruct struct {
	Constants    ConstantsStruct    `toml:"Constants"`
	Preview      PreviewStruct      `toml:"Preview"`
	SavedUIState SavedUIStateStruct `toml:"SavedUIState"`
}

func NewDefaultConfig() *ConfigStruct {
	return &ConfigStruct{
		Constants: ConstantsStruct{
			WallpaperDir:       path.Join(os.Getenv("HOME"), "Pictures", "wallpapaer"),
			RswallBin:          path.Join(os.Getenv("HOME"), ".config", "rswall", "target", "release", "rswall"),
			DaemonName:         "hyprpaper",
			DaemonBin:          "hyprpaper",
			DaemonConfigFile:   "/tmp/rswall_gui_hyprpaper.conf",
			DiscardProcessLogs: true,
		},
		Preview: PreviewStruct{
			BoxWidth:  1000,
			BoxHeight: 600,
		},
		SavedUIState: SavedUIStateStruct{
			LastApplied: "",
		},
	}
}

func readOrCreateConfig(configFile string, config *ConfigStruct) error {
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		log.Printf("Config file does not exist, creating default at: %s", configFile)

		content, err := toml.Marshal(config)
		if err != nil {
			log.Printf("Failed to marshal config to TOML: %v", err)
			return err
		}

		err = os.WriteFile(configFile, content, 0644)
		if err != nil {
			log.Printf("Failed to write config file: %v", err)
			return err
		}

		log.Printf("Default config file created at: %s", configFile)
	} else {
		content, err := os.ReadFile(configFile)
		if err != nil {
			log.Printf("Failed to read config file: %v", err)
			return err
		}
		err = toml.Unmarshal(content, &config)
		if err != nil {
			log.Printf("Failed to unmarshal config file: %v", err)
			return err
		}
		log.Printf("Config file loaded from: %s", configFile)
	}

	return nil
}

// Makes sure required fields are set
func validateConfig() {
	defaultConfig := NewDefaultConfig()

	if Config.Constants.WallpaperDir == "" {
		Config.Constants.WallpaperDir = defaultConfig.Constants.WallpaperDir
	}
	if Config.Constants.RswallBin == "" {
		Config.Constants.RswallBin = defaultConfig.Constants.RswallBin
	}
	if Config.Constants.DaemonName == "" {
		Config.Constants.DaemonName = defaultConfig.Constants.DaemonName
	}
	if Config.Constants.DaemonBin == "" {
		Config.Constants.DaemonBin = defaultConfig.Constants.DaemonBin
	}
	if Config.Constants.DaemonConfigFile == "" {
		Config.Constants.DaemonConfigFile = defaultConfig.Constants.DaemonConfigFile
	}
	if Config.Preview.BoxWidth <= 0 {
		Config.Preview.BoxWidth = defaultConfig.Preview.BoxWidth
	}
	if Config.Preview.BoxHeight <= 0 {
		Config.Preview.BoxHeight = defaultConfig.Preview.BoxHeight
	}
}

func saveConfig() {
	configDir, err := ensureConfigDir()
	if err != nil {
		log.Printf("Failed to ensure config directory: %v", err)
		return
	}

	validateConfig()

	configFile := path.Join(configDir, "config.toml")
	content, err := toml.Marshal(Config)
	if err != nil {
		log.Printf("Failed to marshal config to TOML: %v", err)
		return
	}

	err = os.WriteFile(configFile, content, 0644)
	if err != nil {
		log.Printf("Failed to write config file: %v", err)
		return
	}

	log.Printf("Config saved to: %s", configFile)
}
