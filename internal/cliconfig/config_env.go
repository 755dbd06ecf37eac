package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (CABLESPLIT_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("name", os.Getenv("CABLESPLIT_NAME"), &cfg.Name)
	s.setString("times", os.Getenv("CABLESPLIT_TIMES"), &cfg.Times)
	s.setString("format", os.Getenv("CABLESPLIT_FORMAT"), &cfg.Format)

	if err := s.setIntFromString("length", os.Getenv("CABLESPLIT_LENGTH"), &cfg.Length); err != nil {
		return err
	}

	s.setBoolFromString("plan", os.Getenv("CABLESPLIT_PLAN"), &cfg.Plan)
	s.setBoolFromString("verbose", os.Getenv("CABLESPLIT_VERBOSE"), &cfg.Verbose)

	return nil
}
