// Package config loads the show configuration: collaborator connection
// parameters and the scene/clip lookup tables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// OBSConfig holds the obs-websocket connection parameters.
type OBSConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
}

// DeviceConfig selects the pad controller by port name substring.
type DeviceConfig struct {
	PortMatch string `json:"port_match"`
}

// Config holds the full show configuration.
type Config struct {
	OBS      OBSConfig         `json:"obs"`
	Device   DeviceConfig      `json:"device"`
	Scenes   map[string]string `json:"scenes"`
	Music    map[string]string `json:"music_files"`
	LogLevel string            `json:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OBS: OBSConfig{
			Host:     "localhost",
			Port:     4455,
			Password: "your_password_here",
		},
		Device: DeviceConfig{
			PortMatch: "Launchpad Mini",
		},
		Scenes: map[string]string{
			"intro":      "Show Intro",
			"video":      "Show Video",
			"stage1":     "Main Stage CAM1",
			"stage2":     "Main Stage CAM2",
			"stage3":     "Main Stage CAM3",
			"stage4":     "Main Stage CAM4",
			"stage5":     "Main Stage CAM5",
			"stage6":     "Main Stage CAM6",
			"stage7":     "Main Stage CAM7",
			"stage8":     "Main Stage CAM8",
			"greenroom1": "Green Room CAM1",
			"greenroom2": "Green Room CAM2",
			"greenroom3": "Green Room CAM3",
			"greenroom4": "Green Room CAM4",
			"break":      "Commercial Break",
			"scoreboard": "Scoreboard",
			"winner":     "Winner Announcement",
			"credits":    "End Credits",
			"backup":     "Technical Difficulties",
		},
		Music: map[string]string{
			"intro":      "music/show_intro.mp3",
			"breakintro": "music/break_intro.mp3",
			"hosts":      "music/hosts.mp3",
			"greenroom":  "music/greenroom.mp3",
			"interval":   "music/interval_act.mp3",
			"tension":    "music/tension_music.mp3",
			"winner":     "music/winner_fanfare.mp3",
			"credits":    "music/credits.mp3",
		},
		LogLevel: "info",
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "stagehand", "config.json"), nil
}

// Load reads the config from its default location, creating it with
// defaults on first run.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), err
	}
	return LoadPath(path)
}

// LoadPath reads the config from path. A missing file is written out
// with the defaults; missing keys fall back to defaults.
func LoadPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		if werr := cfg.save(path); werr != nil {
			return cfg, fmt.Errorf("write default config: %w", werr)
		}
		return cfg, nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}

	// Unmarshal over the defaults so keys absent from the document keep
	// their built-in values.
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
