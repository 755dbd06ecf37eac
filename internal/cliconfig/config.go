package cliconfig

import (
	"fmt"
	"strconv"

	"github.com/bft-labs/cablesplit/internal/domain"
	"github.com/bft-labs/cablesplit/internal/render"
	"github.com/bft-labs/cablesplit/internal/splitter"
)

// Config holds CLI configuration for cablesplit.
type Config struct {
	Name   string
	Length int
	// Times stays as text until Validate so non-integer input is reported
	// the same way whichever source supplied it.
	Times   string
	Format  string
	Plan    bool
	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Format: string(render.FormatText),
	}
}

// Validate checks the configuration and returns the cable, the split count
// and the output format it describes.
func (c *Config) Validate() (domain.Cable, int, render.Format, error) {
	cable, err := domain.NewCable(c.Length, c.Name)
	if err != nil {
		return domain.Cable{}, 0, "", err
	}
	times, err := splitter.ParseTimes(c.Times)
	if err != nil {
		return domain.Cable{}, 0, "", fmt.Errorf("times: %w", err)
	}
	format, err := render.ParseFormat(c.Format)
	if err != nil {
		return domain.Cable{}, 0, "", err
	}
	return cable, times, format, nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if non-zero and flag not changed.
// Negative values are kept so Validate can reject them.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
