package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/cablesplit/internal/splitter"
)

// FileConfig is a TOML job file describing one split.
// Times is decoded untyped so a fractional value can be told apart from a missing one.
type FileConfig struct {
	Name    string      `toml:"name"`
	Length  int         `toml:"length"`
	Times   interface{} `toml:"times"`
	Format  string      `toml:"format"`
	Plan    *bool       `toml:"plan"`
	Verbose *bool       `toml:"verbose"`
}

// LoadFileConfig reads and parses a TOML job file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.cablesplit/job.toml, or "" if the home
// directory cannot be determined.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".cablesplit", "job.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("name", fc.Name, &cfg.Name)
	s.setInt("length", fc.Length, &cfg.Length)
	s.setString("format", fc.Format, &cfg.Format)
	s.setBool("plan", fc.Plan, &cfg.Plan)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)

	if fc.Times != nil && !changed["times"] {
		times, err := splitter.TimesFromValue(fc.Times)
		if err != nil {
			return fmt.Errorf("times: %w", err)
		}
		cfg.Times = strconv.Itoa(times)
	}

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
