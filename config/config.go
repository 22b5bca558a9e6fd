// Package config loads the run settings of the mipslet command.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/mipslet/emulator"
	"github.com/ezrec/mipslet/render"
	"github.com/ezrec/mipslet/translate"
)

var f = translate.From

var (
	ErrStepLimit = errors.New(f("step limit must be positive"))
	ErrFormat    = render.ErrFormatUnknown
	ErrDefine    = errors.New(f("define name invalid"))
)

// Config holds the settings of a run. A YAML file supplies them, and
// command line flags override the file.
//
//	verbose: false
//	step_limit: 100
//	format: text
//	locale: en-US
//	defines:
//	  LIMIT: 5
type Config struct {
	Verbose   bool              `yaml:"verbose"`
	StepLimit int               `yaml:"step_limit"`
	Format    string            `yaml:"format"`
	Locale    string            `yaml:"locale"`
	Defines   map[string]string `yaml:"defines"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		StepLimit: emulator.STEP_LIMIT,
		Format:    "text",
		Defines:   map[string]string{},
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	conf := Default()
	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(conf); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if conf.Defines == nil {
		conf.Defines = map[string]string{}
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}

	return conf, nil
}

// Validate checks that the settings are usable.
func (conf *Config) Validate() error {
	if conf.StepLimit <= 0 {
		return fmt.Errorf("%w: %d", ErrStepLimit, conf.StepLimit)
	}

	if !slices.Contains(render.Formats(), conf.Format) {
		return fmt.Errorf("%w: %q", ErrFormat, conf.Format)
	}

	for name := range conf.Defines {
		if name == "" || name[0] == '$' {
			return fmt.Errorf("%w: %q", ErrDefine, name)
		}
	}

	return nil
}

// Define sets an assembler define.
func (conf *Config) Define(name, value string) {
	if conf.Defines == nil {
		conf.Defines = map[string]string{}
	}
	conf.Defines[name] = value
}
