// Package config loads globwalk settings. Values are layered: the embedded
// defaults, then a project file (.globwalk.toml, globwalk.toml or the YAML
// equivalents) in the given directory, then GLOBWALK_* environment
// variables, then command-line flags. Later layers win key by key.
package config
