// Package output renders match results and compiled patterns for the
// command line. Text output is styled with lipgloss when color is enabled;
// json, yaml and toml are meant for other programs.
package output
