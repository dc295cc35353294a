package config

import (
	"github.com/arthur-debert/globwalk/pkg/glob"
)

// GlobOptions translates the match section into walker options.
func (c *Config) GlobOptions() ([]glob.Option, error) {
	cs, err := glob.ParseCaseSensitivity(c.Match.CaseSensitivity)
	if err != nil {
		return nil, err
	}

	opts := []glob.Option{
		glob.WithCaseSensitivity(cs),
		glob.WithParallelism(c.Match.Parallelism),
	}

	if len(c.Match.Exclude) > 0 {
		pred, err := glob.ExcludeNames(c.Match.Exclude, cs != glob.CaseInsensitive)
		if err != nil {
			return nil, err
		}
		opts = append(opts, glob.WithDirectoryPredicate(pred))
	}

	switch c.Match.Type {
	case "files":
		opts = append(opts, glob.WithMatchPredicate(func(m glob.Match) bool { return !m.IsDir }))
	case "directories":
		opts = append(opts, glob.WithMatchPredicate(func(m glob.Match) bool { return m.IsDir }))
	}
	return opts, nil
}
