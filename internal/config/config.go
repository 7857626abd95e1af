// Package config loads the command-line driver's configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// ROLLCALL_* environment variables. Command-line flags are applied last by
// the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/rollcall/format"
	"github.com/tsawler/rollcall/htmldoc"
	"github.com/tsawler/rollcall/roster"
)

// EnvPrefix is the prefix of environment overrides (ROLLCALL_CUTOFF, ...)
const EnvPrefix = "rollcall"

// Config holds all driver configuration.
type Config struct {
	Cutoff     int    `yaml:"cutoff" envconfig:"CUTOFF"`
	Office     string `yaml:"office" envconfig:"OFFICE"`
	TableClass string `yaml:"table_class" envconfig:"TABLE_CLASS"`
	Output     string `yaml:"output" envconfig:"OUTPUT"`
	Jobs       int    `yaml:"jobs" envconfig:"JOBS"`
	Debug      bool   `yaml:"debug" envconfig:"DEBUG"`

	// Parties is an optional YAML party rule file replacing the built-in
	// table.
	Parties string `yaml:"parties" envconfig:"PARTIES"`

	// Pages lists the pages to parse when none are given as arguments.
	Pages []Page `yaml:"pages" ignored:"true"`
}

// Page is one input page
type Page struct {
	File         string `yaml:"file"`
	Jurisdiction string `yaml:"jurisdiction"`
	Office       string `yaml:"office"`
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Cutoff:     roster.DefaultCutoff,
		TableClass: htmldoc.DefaultTableClass,
		Output:     "-",
		Jobs:       4,
	}
}

// Load reads the YAML file at path (skipped when path is empty) over the
// defaults, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if c.Cutoff < 0 {
		return fmt.Errorf("cutoff must not be negative, got %d", c.Cutoff)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.Output != "" && c.Output != "-" && !format.Detect(c.Output).IsOutput() {
		return fmt.Errorf("output %s: unsupported format (use %s or %s)",
			c.Output, format.JSONL.Extension(), format.SQLite.Extension())
	}
	for i, p := range c.Pages {
		if p.File == "" {
			return fmt.Errorf("page %d: missing file", i+1)
		}
	}
	return nil
}
