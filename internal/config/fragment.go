package config

// Fragment is a sparse view of [Config] produced by a single source (one
// config file, or the process environment). A nil field means "not specified
// by this source", which is distinct from an explicit zero value: a file that
// sets `use-color: false` yields a non-nil pointer to false and overrides
// lower-precedence sources, while a file that omits the key leaves them
// untouched.
//
// The `env`/`envPrefix` tags map the flattened field path to environment
// variable names; the loader applies them under the DIFFSITTER_ prefix, so
// e.g. Formatting.UseColor is DIFFSITTER_FORMATTING_USE_COLOR.
type Fragment struct {
	FileAssociations map[string]string  `json:"file-associations,omitempty" toml:"file-associations,omitempty" env:"FILE_ASSOCIATIONS"`
	Formatting       RenderFragment     `json:"formatting,omitempty" toml:"formatting,omitempty" envPrefix:"FORMATTING_"`
	Grammar          GrammarFragment    `json:"grammar,omitempty" toml:"grammar,omitempty" envPrefix:"GRAMMAR_"`
	InputProcessing  ProcessingFragment `json:"input-processing,omitempty" toml:"input-processing,omitempty" envPrefix:"INPUT_PROCESSING_"`
	FallbackCmd      *string            `json:"fallback-cmd,omitempty" toml:"fallback-cmd,omitempty" env:"FALLBACK_CMD"`
}

// RenderFragment is the sparse counterpart of [RenderConfig].
type RenderFragment struct {
	Renderer      *string `json:"renderer,omitempty" toml:"renderer,omitempty" env:"RENDERER"`
	UseColor      *bool   `json:"use-color,omitempty" toml:"use-color,omitempty" env:"USE_COLOR"`
	AdditionColor *string `json:"addition-color,omitempty" toml:"addition-color,omitempty" env:"ADDITION_COLOR"`
	DeletionColor *string `json:"deletion-color,omitempty" toml:"deletion-color,omitempty" env:"DELETION_COLOR"`
}

// GrammarFragment is the sparse counterpart of [GrammarConfig].
type GrammarFragment struct {
	LibraryDirs *[]string `json:"library-dirs,omitempty" toml:"library-dirs,omitempty" env:"LIBRARY_DIRS"`
	DylibPrefix *string   `json:"dylib-prefix,omitempty" toml:"dylib-prefix,omitempty" env:"DYLIB_PREFIX"`
}

// ProcessingFragment is the sparse counterpart of [ProcessingConfig].
type ProcessingFragment struct {
	SplitGraphemes  *bool     `json:"split-graphemes,omitempty" toml:"split-graphemes,omitempty" env:"SPLIT_GRAPHEMES"`
	StripWhitespace *bool     `json:"strip-whitespace,omitempty" toml:"strip-whitespace,omitempty" env:"STRIP_WHITESPACE"`
	ExcludeKinds    *[]string `json:"exclude-kinds,omitempty" toml:"exclude-kinds,omitempty" env:"EXCLUDE_KINDS"`
	IncludeKinds    *[]string `json:"include-kinds,omitempty" toml:"include-kinds,omitempty" env:"INCLUDE_KINDS"`
}

// overlay applies the fragment on top of base, field by field, and returns
// the result. Only non-nil fields overwrite; FileAssociations is merged
// key-wise so user mappings extend rather than replace earlier ones.
func (f *Fragment) overlay(base Config) Config {
	out := base

	if len(f.FileAssociations) > 0 {
		if out.FileAssociations == nil {
			out.FileAssociations = make(map[string]string, len(f.FileAssociations))
		} else {
			merged := make(map[string]string, len(out.FileAssociations)+len(f.FileAssociations))
			for k, v := range out.FileAssociations {
				merged[k] = v
			}
			out.FileAssociations = merged
		}
		for k, v := range f.FileAssociations {
			out.FileAssociations[k] = v
		}
	}

	if f.Formatting.Renderer != nil {
		out.Formatting.Renderer = *f.Formatting.Renderer
	}
	if f.Formatting.UseColor != nil {
		out.Formatting.UseColor = *f.Formatting.UseColor
	}
	if f.Formatting.AdditionColor != nil {
		out.Formatting.AdditionColor = *f.Formatting.AdditionColor
	}
	if f.Formatting.DeletionColor != nil {
		out.Formatting.DeletionColor = *f.Formatting.DeletionColor
	}

	if f.Grammar.LibraryDirs != nil {
		out.Grammar.LibraryDirs = *f.Grammar.LibraryDirs
	}
	if f.Grammar.DylibPrefix != nil {
		out.Grammar.DylibPrefix = *f.Grammar.DylibPrefix
	}

	if f.InputProcessing.SplitGraphemes != nil {
		out.InputProcessing.SplitGraphemes = *f.InputProcessing.SplitGraphemes
	}
	if f.InputProcessing.StripWhitespace != nil {
		out.InputProcessing.StripWhitespace = *f.InputProcessing.StripWhitespace
	}
	if f.InputProcessing.ExcludeKinds != nil {
		out.InputProcessing.ExcludeKinds = *f.InputProcessing.ExcludeKinds
	}
	if f.InputProcessing.IncludeKinds != nil {
		out.InputProcessing.IncludeKinds = *f.InputProcessing.IncludeKinds
	}

	if f.FallbackCmd != nil {
		out.FallbackCmd = f.FallbackCmd
	}

	return out
}
