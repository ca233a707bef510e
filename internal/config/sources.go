package config

// resolvePaths returns the candidate config file paths for a hierarchical
// load, ordered from highest to lowest precedence.
//
// When skipUserConfig is set the result is empty, unconditionally: the skip
// flag wins over an explicit path, so only built-in defaults (and environment
// overrides) contribute to the final config.
//
// A [PathResolver] failure is tolerated when an explicit path provides at
// least one other candidate; otherwise it propagates, wrapped as
// [ErrNoDefaultPath].
func resolvePaths(resolver PathResolver, explicitPath string, skipUserConfig bool) ([]string, error) {
	if skipUserConfig {
		return nil, nil
	}

	var paths []string
	if explicitPath != "" {
		paths = append(paths, explicitPath)
	}

	defaultPath, err := resolver.DefaultConfigPath()
	if err != nil {
		if len(paths) > 0 {
			return paths, nil
		}
		return nil, err
	}

	return append(paths, defaultPath), nil
}
