package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const defaultHistoryLimit = 100

type Config struct {
	// HistoryLimit bounds the play history; older entries are evicted
	// oldest first. Zero or negative disables the bound.
	HistoryLimit int `koanf:"history_limit"`

	// StateDB overrides the state database location. Empty means the
	// default xdg data path.
	StateDB string `koanf:"state_db"`

	// Loop restores the loop-around flag at startup. The flag is stored
	// on the queue but not acted on yet.
	Loop bool `koanf:"loop"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		HistoryLimit: defaultHistoryLimit,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.StateDB = expandPath(cfg.StateDB)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/cueline/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "cueline", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
