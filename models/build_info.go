// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The diffsitter authors

// Package models holds small shared data types with no behavior of their
// own.
package models

import "fmt"

// BuildInfo carries immutable build-time metadata embedded into the binary.
//
// Values are injected by linker flags during release builds and shown by the
// -version flag for diagnostics and release traceability.
type BuildInfo struct {
	version string
	date    string
	commit  string
}

// NewBuildInfo constructs a [BuildInfo], substituting "N/A" for any value the
// build did not inject.
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		version: orNA(version),
		date:    orNA(date),
		commit:  orNA(commit),
	}
}

// Version returns the semantic version string of the build.
func (b BuildInfo) Version() string { return b.version }

// Date returns the build timestamp string.
func (b BuildInfo) Date() string { return b.date }

// Commit returns the source-control commit hash used for the build.
func (b BuildInfo) Commit() string { return b.commit }

// String renders the build metadata as a single human-readable line.
func (b BuildInfo) String() string {
	return fmt.Sprintf("version %s (commit %s, built %s)", b.version, b.commit, b.date)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
