package hetu

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the optional `hetu.yaml` sidecar the CLI loads with
// --config (spec SPEC_FULL §2.2). The embedding API itself never reads
// this file — hosts that want YAML-driven setup call LoadConfig
// themselves and turn the result into Options.
type Config struct {
	WorkingDirectory string `yaml:"working_directory"`
	Debug            bool   `yaml:"debug"`
	MaxCallDepth     int    `yaml:"max_call_depth"`
}

// LoadConfig reads and parses a YAML config file at path.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Options converts a Config into the Option slice New expects.
func (c Config) Options() []Option {
	opts := []Option{}
	if c.WorkingDirectory != "" {
		opts = append(opts, WithWorkingDirectory(c.WorkingDirectory))
	}
	if c.Debug {
		opts = append(opts, WithDebug(true))
	}
	if c.MaxCallDepth > 0 {
		opts = append(opts, WithMaxCallDepth(c.MaxCallDepth))
	}
	return opts
}
