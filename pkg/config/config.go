package config

import (
	"strings"

	"github.com/arthur-debert/globwalk/pkg/errors"
	"github.com/arthur-debert/globwalk/pkg/glob"
	"github.com/pelletier/go-toml/v2"
)

// Config is the merged globwalk configuration.
type Config struct {
	Match   Match   `koanf:"match" toml:"match" yaml:"match" json:"match"`
	Output  Output  `koanf:"output" toml:"output" yaml:"output" json:"output"`
	Logging Logging `koanf:"logging" toml:"logging" yaml:"logging" json:"logging"`

	// Files lists the project files that were merged, in load order.
	Files []string `koanf:"-" toml:"-" yaml:"-" json:"-"`
}

// Match holds the traversal settings.
type Match struct {
	CaseSensitivity string   `koanf:"case_sensitivity" toml:"case_sensitivity" yaml:"case_sensitivity" json:"case_sensitivity"`
	Parallelism     int      `koanf:"parallelism" toml:"parallelism" yaml:"parallelism" json:"parallelism"`
	Sort            bool     `koanf:"sort" toml:"sort" yaml:"sort" json:"sort"`
	Type            string   `koanf:"type" toml:"type" yaml:"type" json:"type"`
	Exclude         []string `koanf:"exclude" toml:"exclude" yaml:"exclude" json:"exclude"`
}

// Output holds rendering settings.
type Output struct {
	Format string `koanf:"format" toml:"format" yaml:"format" json:"format"`
	Color  string `koanf:"color" toml:"color" yaml:"color" json:"color"`
}

// Logging holds log destination settings.
type Logging struct {
	File bool `koanf:"file" toml:"file" yaml:"file" json:"file"`
}

// Accepted values for the enumerated settings.
var (
	MatchTypes   = []string{"all", "files", "directories"}
	OutputFormat = []string{"text", "json", "yaml", "toml"}
	ColorModes   = []string{"auto", "always", "never"}
)

// Default returns the embedded defaults. It panics if they do not load,
// which only happens when the binary was built with a broken defaults file.
func Default() *Config {
	cfg, err := load("", nil, false)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks enumerated values and ranges.
func (c *Config) Validate() error {
	if _, err := glob.ParseCaseSensitivity(c.Match.CaseSensitivity); err != nil {
		return invalid("match.case_sensitivity", c.Match.CaseSensitivity, "auto, sensitive, insensitive")
	}
	if c.Match.Parallelism < 1 {
		return errors.Newf(errors.ErrConfigValid, "match.parallelism must be at least 1, got %d", c.Match.Parallelism).
			WithDetail("key", "match.parallelism").
			WithDetail("value", c.Match.Parallelism)
	}
	if !oneOf(c.Match.Type, MatchTypes) {
		return invalid("match.type", c.Match.Type, strings.Join(MatchTypes, ", "))
	}
	for _, pattern := range c.Match.Exclude {
		if _, err := glob.CompileName(pattern); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "match.exclude entry %q is not a name pattern", pattern).
				WithDetail("key", "match.exclude").
				WithDetail("value", pattern)
		}
	}
	if !oneOf(c.Output.Format, OutputFormat) {
		return invalid("output.format", c.Output.Format, strings.Join(OutputFormat, ", "))
	}
	if !oneOf(c.Output.Color, ColorModes) {
		return invalid("output.color", c.Output.Color, strings.Join(ColorModes, ", "))
	}
	return nil
}

// TOML renders the effective configuration.
func (c *Config) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrOutput, "failed to render configuration")
	}
	return string(data), nil
}

func invalid(key, value, allowed string) error {
	return errors.Newf(errors.ErrConfigValid, "%s: invalid value %q (allowed: %s)", key, value, allowed).
		WithDetail("key", key).
		WithDetail("value", value)
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}
