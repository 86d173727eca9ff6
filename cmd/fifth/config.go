package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the fifth.toml host configuration. Command-line flags override
// these values.
type Config struct {
	REPL   REPLConfig   `toml:"repl"`
	Interp InterpConfig `toml:"interp"`
	Log    LogConfig    `toml:"log"`
}

// REPLConfig configures the interactive prompt.
type REPLConfig struct {
	Prompt string `toml:"prompt"`
	Banner string `toml:"banner"`
}

// InterpConfig configures the interpreter session.
type InterpConfig struct {
	NoPrelude bool `toml:"no-prelude"`
	StepLimit int  `toml:"step-limit"`
}

// LogConfig configures logging.
type LogConfig struct {
	Verbosity int `toml:"verbosity"`
}

func defaultConfig() Config {
	return Config{
		REPL: REPLConfig{
			Prompt: ">>> ",
			Banner: "fifth REPL (Ctrl+D to exit)",
		},
	}
}

// loadConfig reads path, or fifth.toml in the working directory when path
// is empty. A missing default file is not an error; a missing explicit one
// is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if path == "" {
		path = "fifth.toml"
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	return cfg, nil
}
