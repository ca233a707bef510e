// Package config resolves the diffsitter configuration from several
// competing sources under a fixed precedence order.
//
// Sources, from highest to lowest precedence:
//  1. Environment variables (DIFFSITTER_ prefix)
//  2. A config file given explicitly on the command line
//  3. The config file at the OS default location
//  4. Built-in defaults
//
// Files are parsed into sparse [Fragment] values and folded onto the
// defaults lowest precedence first, so higher-precedence sources override
// only the fields they explicitly set. Supported file formats are JSON5
// (.json, .json5) and TOML (.toml), selected by extension. Unknown keys in a
// file are ignored.
//
// The main entry points are [Loader.LoadHierarchical] for normal startup and
// [Loader.LoadExplicit] for strict single-file inspection.
package config
