// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package sfcinsert

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseConfig decodes YAML options from reader.
//
// Unknown keys are rejected. An empty document yields zero Options.
func ParseConfig(r io.Reader) (Options, error) {
	var opts Options

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return Options{}, nil
		}

		return Options{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return opts, nil
}

// LoadConfigFile reads and decodes options from a YAML file.
func LoadConfigFile(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("open config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	opts, err := ParseConfig(f)
	if err != nil {
		return Options{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return opts, nil
}

// LoadConfigFiles reads and merges options from files in the given order.
//
// Returned rules preserve file order and rule order inside each file.
func LoadConfigFiles(paths ...string) (Options, error) {
	var out Options
	for _, path := range paths {
		opts, err := LoadConfigFile(path)
		if err != nil {
			return Options{}, err
		}

		out = MergeOptions(out, opts)
	}

	return out, nil
}
