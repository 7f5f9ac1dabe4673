// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Solver SolverConfig `toml:"solver"`
	Clues  CluesConfig  `toml:"clues"`
}

// SolverConfig maps solve settings. Nil fields leave flag defaults alone.
type SolverConfig struct {
	Lang        *string `toml:"lang"`
	Dict        *string `toml:"dict"`
	Length      *int    `toml:"length"`
	Accents     *string `toml:"accents"`
	StrictChars *bool   `toml:"strict-chars"`
	Format      *string `toml:"format"`
	Limit       *int    `toml:"limit"`
	Upper       *bool   `toml:"upper"`
}

// CluesConfig lists clues already known. They are combined with clues
// given on the command line.
type CluesConfig struct {
	Patterns   []string `toml:"patterns"`
	Present    string   `toml:"present"`
	PresentAny []string `toml:"present-any"`
	Absent     string   `toml:"absent"`
	Feedback   []string `toml:"feedback"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
