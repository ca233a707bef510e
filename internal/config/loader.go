// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The diffsitter authors

package config

import (
	"errors"
	"io/fs"

	"github.com/diffsitter/diffsitter/internal/logger"
)

// envCfgPrefix is the prefix for setting config values through environment
// variables.
const envCfgPrefix = "DIFFSITTER_"

// Loader resolves the application configuration from files, the environment,
// and built-in defaults. Resolution runs once, synchronously, at startup;
// the returned [Config] is never mutated afterwards.
type Loader struct {
	resolver  PathResolver
	envPrefix string
	log       *logger.Logger
}

// NewLoader constructs a Loader with the standard OS path resolver and the
// DIFFSITTER_ environment prefix.
func NewLoader(log *logger.Logger) *Loader {
	return NewLoaderWith(NewPathResolver(appName, cfgFileName), envCfgPrefix, log)
}

// NewLoaderWith constructs a Loader with an injected path resolver and
// environment prefix. Intended for tests and embedding scenarios where the
// process-wide defaults do not apply.
func NewLoaderWith(resolver PathResolver, envPrefix string, log *logger.Logger) *Loader {
	return &Loader{
		resolver:  resolver,
		envPrefix: envPrefix,
		log:       log,
	}
}

// LoadExplicit reads exactly one config file and deserializes it directly,
// with no merging against defaults or the environment. Fields the file omits
// stay at their zero value. Intended for diagnostic flows that inspect what a
// single file contains.
//
// When path is empty the OS default location is used; if that location cannot
// be computed the error wraps [ErrNoDefaultPath]. Any read or parse failure
// is terminal.
func (l *Loader) LoadExplicit(path string) (Config, error) {
	if path == "" {
		defaultPath, err := l.resolver.DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	l.log.Info().Str("path", path).Msg("reading config")

	frag, err := parseFile(path)
	if err != nil {
		return Config{}, err
	}

	return frag.overlay(Config{}), nil
}

// LoadHierarchical resolves the configuration from all sources, in order of
// precedence: environment variables, the explicit config file, the
// OS-default-location file, and the built-in defaults.
//
// A missing file at the default location is treated as an absent fragment; a
// missing file at the explicit path is an error, since the caller asked for
// it by name. A file that exists but is malformed always fails the load, with
// the offending path attached.
func (l *Loader) LoadHierarchical(explicitPath string, skipUserConfig bool) (Config, error) {
	paths, err := resolvePaths(l.resolver, explicitPath, skipUserConfig)
	if err != nil {
		return Config{}, err
	}

	// Paths arrive highest precedence first; fold lowest first so the more
	// important sources override per-field.
	fragments := make([]*Fragment, 0, len(paths))
	for i := len(paths) - 1; i >= 0; i-- {
		path := paths[i]
		frag, err := parseFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path != explicitPath {
				l.log.Debug().Str("path", path).Msg("no config file at candidate path")
				continue
			}
			return Config{}, err
		}

		l.log.Info().Str("path", path).Msg("reading config")
		fragments = append(fragments, frag)
	}

	return merge(Default(), fragments, l.envPrefix)
}

// Load resolves the configuration for the given command-line arguments via
// [Loader.LoadHierarchical]. This is the entry point used at normal startup.
func (l *Loader) Load(args *Args) (Config, error) {
	return l.LoadHierarchical(args.ConfigPath, args.NoConfig)
}
