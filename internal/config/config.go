// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The diffsitter authors

package config

// Config is the fully resolved configuration for a diffsitter invocation.
//
// A Config is produced exactly once at startup, by [Loader.LoadHierarchical]
// or [Loader.LoadExplicit], and is read-only afterwards. Every field has a
// built-in default (see [Default]), so a Config can always be constructed
// even when no file or environment source is present.
//
// On-disk keys use kebab-case, matching the `json`/`toml` struct tags.
type Config struct {
	// FileAssociations maps a file extension (without the leading dot) to a
	// tree-sitter language identifier, e.g. "jsx" -> "javascript". User
	// mappings are merged key-wise on top of lower-precedence sources.
	FileAssociations map[string]string `json:"file-associations,omitempty" toml:"file-associations,omitempty"`

	// Formatting holds display options for rendered diffs.
	Formatting RenderConfig `json:"formatting" toml:"formatting"`

	// Grammar holds options for locating and loading tree-sitter grammars.
	Grammar GrammarConfig `json:"grammar" toml:"grammar"`

	// InputProcessing holds options for processing tree-sitter input before
	// diffing.
	InputProcessing ProcessingConfig `json:"input-processing" toml:"input-processing"`

	// FallbackCmd is the program to invoke when the input files cannot be
	// parsed by any available tree-sitter grammar. It is invoked with the
	// old and new file as its two arguments. Nil means no fallback.
	FallbackCmd *string `json:"fallback-cmd,omitempty" toml:"fallback-cmd,omitempty"`
}

// RenderConfig holds formatting options for diff output.
type RenderConfig struct {
	// Renderer selects the output renderer, e.g. "unified" or "json".
	Renderer string `json:"renderer" toml:"renderer"`

	// UseColor enables ANSI color in rendered output.
	UseColor bool `json:"use-color" toml:"use-color"`

	// AdditionColor is the color name used for added spans.
	AdditionColor string `json:"addition-color" toml:"addition-color"`

	// DeletionColor is the color name used for deleted spans.
	DeletionColor string `json:"deletion-color" toml:"deletion-color"`
}

// GrammarConfig holds options for loading tree-sitter grammars.
type GrammarConfig struct {
	// LibraryDirs lists extra directories searched for grammar shared
	// libraries, in order, before the built-in search paths.
	LibraryDirs []string `json:"library-dirs,omitempty" toml:"library-dirs,omitempty"`

	// DylibPrefix is the file name prefix of grammar shared libraries.
	DylibPrefix string `json:"dylib-prefix" toml:"dylib-prefix"`
}

// ProcessingConfig holds options for processing tree-sitter input.
type ProcessingConfig struct {
	// SplitGraphemes splits leaf text into grapheme clusters before
	// diffing, producing finer-grained hunks.
	SplitGraphemes bool `json:"split-graphemes" toml:"split-graphemes"`

	// StripWhitespace drops whitespace-only differences.
	StripWhitespace bool `json:"strip-whitespace" toml:"strip-whitespace"`

	// ExcludeKinds lists tree-sitter node kinds excluded from the diff.
	ExcludeKinds []string `json:"exclude-kinds,omitempty" toml:"exclude-kinds,omitempty"`

	// IncludeKinds, when non-empty, restricts the diff to these node kinds.
	IncludeKinds []string `json:"include-kinds,omitempty" toml:"include-kinds,omitempty"`
}

// Default returns the built-in default configuration. It is the lowest
// precedence source of every hierarchical load and is always fully populated.
func Default() Config {
	return Config{
		Formatting: RenderConfig{
			Renderer:      "unified",
			UseColor:      true,
			AdditionColor: "green",
			DeletionColor: "red",
		},
		Grammar: GrammarConfig{
			DylibPrefix: "libtree-sitter-",
		},
		InputProcessing: ProcessingConfig{
			SplitGraphemes:  true,
			StripWhitespace: true,
		},
	}
}
