package main

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/langyo/meriyah/scanner"
)

// Config is the YAML shape of a jstoken.yaml file. Every key maps onto one
// scanner option; absent keys keep the scanner's defaults, so web-compat
// stays enabled unless "webcompat: false" or "disableWebcompat: true" is
// spelled out.
type Config struct {
	Module           bool  `yaml:"module"`
	Next             bool  `yaml:"next"`
	Raw              bool  `yaml:"raw"`
	WebCompat        *bool `yaml:"webcompat"`
	DisableWebCompat bool  `yaml:"disableWebcompat"`
	SpecDeviation    bool  `yaml:"specDeviation"`
	ImpliedStrict    bool  `yaml:"impliedStrict"`
	GlobalReturn     bool  `yaml:"globalReturn"`
	JSX              bool  `yaml:"jsx"`
	Directives       bool  `yaml:"directives"`
	Loc              bool  `yaml:"loc"`
	Ranges           bool  `yaml:"ranges"`
}

// Options converts the loaded config to scanner.Options.
func (c Config) Options() scanner.Options {
	disableWebCompat := c.DisableWebCompat
	if c.WebCompat != nil && !*c.WebCompat {
		disableWebCompat = true
	}
	return scanner.Options{
		Module:           c.Module,
		Next:             c.Next,
		Raw:              c.Raw,
		DisableWebCompat: disableWebCompat,
		SpecDeviation:    c.SpecDeviation,
		ImpliedStrict:    c.ImpliedStrict,
		GlobalReturn:     c.GlobalReturn,
		JSX:              c.JSX,
		Directives:       c.Directives,
		Loc:              c.Loc,
		Ranges:           c.Ranges,
	}
}

// LoadConfig reads the config file named by the --config flag, or
// ./jstoken.yaml if the flag is unset. A missing default file is not an
// error; a missing explicit file is.
func LoadConfig() (Config, error) {
	var result Config

	filename := configFile
	explicit := filename != ""
	if !explicit {
		filename = "jstoken.yaml"
	}

	yamlFile, err := os.ReadFile(filename)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return result, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(yamlFile, &result); err != nil {
		return Config{}, err
	}
	return result, nil
}
