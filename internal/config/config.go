package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vipcxj/randfactory/internal/export"
	"github.com/vipcxj/randfactory/internal/sample"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "RANDFACTORY_"

// Config holds the defaults for a randfactory invocation. Command-line
// flags override it.
type Config struct {
	Source  sample.SourceKind `yaml:"source"`
	Seed    *uint64           `yaml:"seed"`
	Count   int               `yaml:"count"`
	Format  export.Format     `yaml:"format"`
	Shell   export.ShellType  `yaml:"shell"`
	Name    string            `yaml:"name"`
	Persist bool              `yaml:"persist"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source: sample.SourceKindFast,
		Count:  1,
		Format: export.FormatPlain,
		Shell:  export.ShellTypeAuto,
		Name:   export.DefaultName,
	}
}

// Load starts from Default, applies the YAML file at path (skipped when
// path is empty) and then RANDFACTORY_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	env := func(key string, apply func(string) error) {
		v, ok := lookup(EnvPrefix + key)
		if !ok || v == "" {
			return
		}
		if err := apply(v); err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
		}
	}

	env("SOURCE", func(v string) (err error) {
		c.Source, err = sample.SourceKindString(v)
		return err
	})
	env("SEED", func(v string) error {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return err
		}
		c.Seed = &n
		return nil
	})
	env("COUNT", func(v string) (err error) {
		c.Count, err = strconv.Atoi(v)
		return err
	})
	env("FORMAT", func(v string) (err error) {
		c.Format, err = export.FormatString(v)
		return err
	})
	env("SHELL", func(v string) (err error) {
		c.Shell, err = export.ShellTypeString(v)
		return err
	})
	env("NAME", func(v string) error {
		c.Name = v
		return nil
	})
	env("PERSIST", func(v string) (err error) {
		c.Persist, err = strconv.ParseBool(v)
		return err
	})
	return errors.Join(errs...)
}

// Validate rejects values no command can run with.
func (c Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	if !c.Source.IsASourceKind() {
		return fmt.Errorf("unsupported source kind: %v", c.Source)
	}
	if !c.Format.IsAFormat() {
		return fmt.Errorf("unsupported output format: %v", c.Format)
	}
	if !c.Shell.IsAShellType() {
		return fmt.Errorf("unsupported shell type: %v", c.Shell)
	}
	return nil
}
