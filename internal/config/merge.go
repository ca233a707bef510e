// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The diffsitter authors

package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// merge folds the file fragments onto the built-in defaults and applies
// environment overrides last.
//
// fragments are ordered lowest precedence first, so later fragments win
// per-field. The fold is deep: a fragment that sets a single nested option
// leaves sibling options from lower-precedence sources intact. Fragments use
// pointer fields, and the fold merges with WithoutDereference so an explicit
// false or empty string still overrides a lower-precedence true.
//
// Environment variables prefixed with envPrefix take precedence over every
// fragment. The overlay itself cannot fail; the only failure mode left at
// this stage is an environment value that does not coerce to the target
// field's type, reported as [ErrDeserialization] with the offending variable
// named by the env library.
func merge(defaults Config, fragments []*Fragment, envPrefix string) (Config, error) {
	var acc Fragment
	for _, frag := range fragments {
		if frag == nil {
			continue
		}
		if err := mergo.Merge(&acc, *frag, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return Config{}, fmt.Errorf("error merging config fragments: %w", err)
		}
	}

	if err := env.ParseWithOptions(&acc, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("%w: environment overrides: %w", ErrDeserialization, err)
	}

	return acc.overlay(defaults), nil
}
