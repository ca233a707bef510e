package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
)

// parseFile dispatches a parser based on the file extension and returns the
// sparse [Fragment] the file defines.
//
// ".json" and ".json5" are parsed as permissive JSON: comments and trailing
// commas are stripped with tidwall/jsonc before decoding. ".toml" is parsed
// with go-toml. Any other extension, or none, fails with
// [ErrUnsupportedFormat] before the file is opened. Unknown keys are ignored.
func parseFile(path string) (*Fragment, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	switch ext {
	case "json", "json5":
		return parseJSON(path)
	case "toml":
		return parseTOML(path)
	default:
		return nil, fmt.Errorf("%w: %q (path %s)", ErrUnsupportedFormat, ext, path)
	}
}

func parseJSON(path string) (*Fragment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	var frag Fragment
	if err := json.Unmarshal(jsonc.ToJSON(data), &frag); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrDeserialization, path, err)
	}

	return &frag, nil
}

func parseTOML(path string) (*Fragment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	var frag Fragment
	if err := toml.Unmarshal(data, &frag); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrDeserialization, path, err)
	}

	return &frag, nil
}
