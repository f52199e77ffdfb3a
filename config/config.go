// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package config reads the optional .toposconfig file, found by walking
// from the working directory toward the filesystem root. It only carries
// command line tool preferences; the library itself takes no configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Filename is the name of the config file searched for in the working
// directory and its ancestors.
const Filename = ".toposconfig"

// Color modes accepted by the "color" key.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

type Config struct {
	// File is the path the config was read from; empty for the defaults.
	File string `toml:"-"`

	// Color controls ANSI color in output: "auto" (only when stdout is a
	// terminal), "on" or "off".
	Color string `toml:"color"`

	// MaxBruteForce caps the modulus the tools accept for operations that
	// scan all residues (quadratic residue checks on composite moduli,
	// primitive root searches). 0 means no cap. The library itself never
	// enforces a bound.
	MaxBruteForce int64 `toml:"max_brute_force"`
}

// DefaultConfig returns the configuration used when no .toposconfig exists.
func DefaultConfig() *Config {
	return &Config{Color: ColorAuto}
}

// FindToposConfig locates the nearest .toposconfig at or above dir and
// reads it, falling back to DefaultConfig when none exists.
func FindToposConfig(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for {
		path := filepath.Join(abs, Filename)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return ReadConfig(path)
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return DefaultConfig(), nil
		}
		abs = parent
	}
}

// ReadConfig reads and validates the config file at path.
func ReadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	switch c.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return nil, errors.Errorf("%s: color must be one of auto, on, off; got %q", path, c.Color)
	}
	if c.MaxBruteForce < 0 {
		return nil, errors.Errorf("%s: max_brute_force must be non-negative", path)
	}
	c.File = path
	return c, nil
}

// WriteTo writes the config in TOML form, for tools that generate a
// starter file.
func (c *Config) WriteTo(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}
