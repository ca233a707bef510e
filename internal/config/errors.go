package config

import "errors"

// Resolution errors returned by [Loader] and its helpers. All failures are
// wrapped with fmt.Errorf so the offending path or environment variable stays
// attached for diagnostics while errors.Is keeps matching the sentinel.
var (
	// ErrRead indicates a config file exists conceptually but could not be
	// read (missing explicit file, permission denied, I/O fault). The
	// underlying os error is wrapped alongside it, so callers can still
	// detect fs.ErrNotExist.
	ErrRead = errors.New("failed to read the config file")
	// ErrDeserialization indicates content was read but failed to parse or
	// type-check against the config shape, including a bad environment
	// variable coercion.
	ErrDeserialization = errors.New("the config failed to deserialize")
	// ErrUnsupportedFormat indicates a config path whose extension maps to
	// no known parser. Reported before any file content is read.
	ErrUnsupportedFormat = errors.New("unsupported config format")
	// ErrNoDefaultPath indicates the OS convention could not produce a
	// default config file location (e.g. no resolvable home directory).
	ErrNoDefaultPath = errors.New("unable to compute the default config file path")
)
