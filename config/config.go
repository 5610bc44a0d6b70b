// SPDX-License-Identifier: MIT

// Package config loads hashing settings from YAML and maps them onto
// atomhash options.
//
// Priority: environment > file > Default(). The merged result is validated
// with go-playground/validator before use.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/molhash/atomhash"
	"github.com/katalvlaran/molhash/core"
	"github.com/katalvlaran/molhash/encoder"
	"github.com/katalvlaran/molhash/equiv"
	"github.com/katalvlaran/molhash/suppress"
)

// Environment overrides.
const (
	EnvDepth   = "MOLHASH_DEPTH"
	EnvWorkers = "MOLHASH_WORKERS"
)

// Perturbation strategies.
const (
	PerturbNone          = "none"
	PerturbMinimum       = "minimum"
	PerturbMinimumUnion  = "minimum-union"
	PerturbAllEquivalent = "all"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the file form of a generator configuration.
type Config struct {
	Depth               int      `yaml:"depth" validate:"gte=0,lte=64"`
	Encoders            []string `yaml:"encoders" validate:"unique,dive,encoder"`
	SuppressHydrogens   bool     `yaml:"suppress_hydrogens"`
	SuppressPseudoAtoms bool     `yaml:"suppress_pseudo_atoms"`
	Stereo              bool     `yaml:"stereo"`
	Perturbation        string   `yaml:"perturbation" validate:"oneof=none minimum minimum-union all"`
	StereoPassLimit     int      `yaml:"stereo_pass_limit" validate:"gte=0"`
	Workers             int      `yaml:"workers" validate:"gte=0"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("encoder", validateEncoder)
}

// validateEncoder accepts the names understood by encoder.ParseBasic.
func validateEncoder(fl validator.FieldLevel) bool {
	_, err := encoder.ParseBasic(fl.Field().String())
	return err == nil
}

// Default returns the settings used when no file is given: every structural
// encoder, hydrogens suppressed, stereo on, minimum cyclic perturbation.
func Default() Config {
	return Config{
		Depth: 8,
		Encoders: []string{
			encoder.AtomicNumber.String(),
			encoder.MassNumber.String(),
			encoder.FormalCharge.String(),
			encoder.ConnectedAtoms.String(),
			encoder.BondOrderSum.String(),
			encoder.FreeRadicals.String(),
		},
		SuppressHydrogens: true,
		Stereo:            true,
		Perturbation:      PerturbMinimum,
	}
}

// Load merges the YAML file at path (if non-empty) and the environment over
// Default() and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := fromEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Parse merges YAML data over Default() and validates the result.
// The environment is not consulted.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

// decode rejects unknown keys. An empty document leaves cfg unchanged.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func fromEnv(cfg *Config) error {
	for name, dst := range map[string]*int{EnvDepth: &cfg.Depth, EnvWorkers: &cfg.Workers} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", name, v, ErrInvalid)
		}
		*dst = n
	}
	return nil
}

// Validate checks field ranges and encoder names.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Options maps the configuration onto atomhash options. The configuration
// must have passed Validate.
func (c Config) Options() ([]atomhash.Option, error) {
	opts := []atomhash.Option{atomhash.Depth(c.Depth)}
	for _, name := range c.Encoders {
		b, err := encoder.ParseBasic(name)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		opts = append(opts, atomhash.Use(b))
	}

	switch {
	case c.SuppressHydrogens && c.SuppressPseudoAtoms:
		opts = append(opts, atomhash.SuppressWith(suppress.Func(func(a *core.Atom) bool { return a.AtomicNumber <= 1 })))
	case c.SuppressHydrogens:
		opts = append(opts, atomhash.SuppressHydrogens())
	case c.SuppressPseudoAtoms:
		opts = append(opts, atomhash.SuppressPseudoAtoms())
	}

	if c.Stereo {
		opts = append(opts, atomhash.Chiral())
	}
	if c.StereoPassLimit > 0 {
		opts = append(opts, atomhash.StereoPassLimit(c.StereoPassLimit))
	}

	switch c.Perturbation {
	case PerturbNone, "":
	case PerturbMinimum:
		opts = append(opts, atomhash.Perturbed())
	case PerturbMinimumUnion:
		opts = append(opts, atomhash.PerturbWith(equiv.MinimumCyclicSetUnion()))
	case PerturbAllEquivalent:
		opts = append(opts, atomhash.PerturbWith(equiv.AllCyclicSet()))
	default:
		return nil, fmt.Errorf("config: perturbation %q: %w", c.Perturbation, ErrInvalid)
	}
	return opts, nil
}
