package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/olimci/fuhen/pkg/version"
)

// Config represents the fuhen.toml configuration.
type Config struct {
	Fuhen ConfigFuhen `toml:"fuhen" yaml:"fuhen" json:"fuhen"`
	Eval  ConfigEval  `toml:"eval" yaml:"eval" json:"eval"`
	Repl  ConfigRepl  `toml:"repl" yaml:"repl" json:"repl"`
}

type ConfigFuhen struct {
	Version string `toml:"version" yaml:"version" json:"version"`
}

type ConfigEval struct {
	// Precision is the number of significant digits in printed results;
	// 0 means full precision.
	Precision  int  `toml:"precision" yaml:"precision" json:"precision"`
	MaxWorkers int  `toml:"max_workers" yaml:"max_workers" json:"max_workers"`
	Trace      bool `toml:"trace" yaml:"trace" json:"trace"`
}

type ConfigRepl struct {
	Prompt       string `toml:"prompt" yaml:"prompt" json:"prompt"`
	HistoryLimit int    `toml:"history_limit" yaml:"history_limit" json:"history_limit"`
}

// DefaultConfig constructs a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Fuhen: ConfigFuhen{
			Version: version.String(),
		},
		Eval: ConfigEval{
			Precision:  6,
			MaxWorkers: 0,
		},
		Repl: ConfigRepl{
			Prompt:       "» ",
			HistoryLimit: 1000,
		},
	}
}

// Load loads a Config from a file. TOML files are decoded strictly;
// unknown keys are an error. YAML and JSON are accepted by extension.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if isTOML(path) {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, err
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return nil, fmt.Errorf("unknown config keys: %v", undec)
		}
	} else {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isTOML(path string) bool {
	ext := strings.ToLower(path)
	return strings.HasSuffix(ext, ".toml") || !strings.Contains(ext, ".")
}

// Validate checks the Config and fills defaults for blank fields.
func (c *Config) Validate() error {
	if v := strings.TrimSpace(c.Fuhen.Version); v != "" {
		parsed, err := version.Parse(v)
		if err != nil {
			return fmt.Errorf("fuhen.version: %w", err)
		}
		if parsed.Major != version.Major {
			return fmt.Errorf("fuhen.version %s is for a different major release (running %s)", parsed, version.String())
		}
	}

	if c.Eval.Precision < 0 || c.Eval.Precision > 17 {
		return errors.New("eval.precision must be between 0 and 17")
	}
	if c.Eval.MaxWorkers < 0 {
		return errors.New("eval.max_workers must be >= 0")
	}

	if c.Repl.Prompt == "" {
		c.Repl.Prompt = "» "
	}
	if c.Repl.HistoryLimit <= 0 {
		c.Repl.HistoryLimit = 1000
	}

	return nil
}
