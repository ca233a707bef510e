package config

import "flag"

// Args holds the command-line inputs that influence config resolution, plus
// the diagnostic toggles of the config CLI.
type Args struct {
	// ConfigPath is the explicit config file path, or empty to use the OS
	// default location.
	ConfigPath string
	// NoConfig disables all file sources; the resolved config comes from
	// built-in defaults and environment overrides only. Wins over ConfigPath.
	NoConfig bool
	// Strict loads a single file via [Loader.LoadExplicit] instead of the
	// hierarchical pipeline.
	Strict bool
	// DumpDefault prints the built-in default config and exits.
	DumpDefault bool
	// ShowVersion prints build metadata and exits.
	ShowVersion bool
	// Verbose enables debug logging.
	Verbose bool
}

// ParseFlags parses the configuration flags from args (excluding the program
// name).
//
// Flags:
//
//	-c/-config path to the config file
//	-no-config ignore all config files, use defaults and environment only
//	-strict read exactly one file, without merging
//	-dump-default print the built-in default config
//	-version print build metadata
func ParseFlags(name string, args []string) (*Args, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	parsed := &Args{}
	fs.StringVar(&parsed.ConfigPath, "c", "", "Config file path")
	fs.StringVar(&parsed.ConfigPath, "config", "", "Config file path (alias)")
	fs.BoolVar(&parsed.NoConfig, "no-config", false, "Ignore config files")
	fs.BoolVar(&parsed.Strict, "strict", false, "Read a single config file without merging")
	fs.BoolVar(&parsed.DumpDefault, "dump-default", false, "Print the built-in default config")
	fs.BoolVar(&parsed.ShowVersion, "version", false, "Print build metadata")
	fs.BoolVar(&parsed.Verbose, "verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return parsed, nil
}
