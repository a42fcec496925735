// Package config loads the optional .jmplrc.yaml file that tunes REPL
// and CLI defaults. Its absence is not an error: every field just
// keeps its Default() value.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the settings a .jmplrc.yaml file may override.
type Config struct {
	// Prompt overrides the REPL's input prompt (default "> ").
	Prompt string `yaml:"prompt"`
	// Trace turns on execution tracing for every run, as if --trace
	// were always passed.
	Trace bool `yaml:"trace"`
	// DumpEnv turns on environment dumping after each REPL line.
	DumpEnv bool `yaml:"dump_env"`
}

// Default returns a Config with the interpreter's built-in defaults.
func Default() Config {
	return Config{Prompt: "> "}
}

// Load reads and parses path, falling back to Default() unread fields
// left unset by the file. A missing file is not an error: Load returns
// Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FindAndLoad looks for .jmplrc.yaml in dir and loads it if present.
func FindAndLoad(dir string) (Config, error) {
	return Load(dir + "/.jmplrc.yaml")
}
