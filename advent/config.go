package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vaughan0/go-ini"
)

const configSection = "advent"

type config struct {
	inputDir string
	human    bool
	history  string // readline history file
}

func defaultConfig() config {
	return config{inputDir: "inputs"}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "advent", "config.ini")
}

// loadConfig reads the [advent] section of the INI file at path.
// A missing file yields the default config.
func loadConfig(path string) (config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return config{}, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	cfg, err := parseConfig(file)
	if err != nil {
		return config{}, fmt.Errorf("bad config (%s): %s", path, err)
	}
	return cfg, nil
}

func parseConfig(file ini.File) (config, error) {
	cfg := defaultConfig()
	if v, ok := file.Get(configSection, "input_dir"); ok && v != "" {
		cfg.inputDir = v
	}
	if v, ok := file.Get(configSection, "human"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("human: %s", err)
		}
		cfg.human = b
	}
	if v, ok := file.Get(configSection, "history"); ok {
		cfg.history = v
	}
	return cfg, nil
}
