package glob

import (
	"strings"

	"github.com/arthur-debert/globwalk/pkg/errors"
	"github.com/arthur-debert/globwalk/pkg/logging"
	"github.com/rs/zerolog"
)

// CaseSensitivity selects how names are compared during a match.
type CaseSensitivity int

const (
	// CaseAuto follows the RootResolver's rule for the pattern's root.
	CaseAuto CaseSensitivity = iota
	CaseSensitive
	CaseInsensitive
)

func (c CaseSensitivity) String() string {
	switch c {
	case CaseSensitive:
		return "sensitive"
	case CaseInsensitive:
		return "insensitive"
	default:
		return "auto"
	}
}

// ParseCaseSensitivity accepts "auto", "sensitive" and "insensitive"
// (case-insensitively). An empty string means auto.
func ParseCaseSensitivity(s string) (CaseSensitivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return CaseAuto, nil
	case "sensitive", "true":
		return CaseSensitive, nil
	case "insensitive", "false":
		return CaseInsensitive, nil
	default:
		return CaseAuto, errors.Newf(errors.ErrInvalidInput,
			"unknown case sensitivity %q (want auto, sensitive or insensitive)", s).
			WithDetail("value", s)
	}
}

// Option configures a single match call.
type Option func(*options)

type options struct {
	caseSensitivity CaseSensitivity
	resolver        RootResolver
	dirPredicate    func(Match) bool
	matchPredicate  func(Match) bool
	parallelism     int
	logger          *zerolog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		resolver:    DefaultRootResolver(),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) log() zerolog.Logger {
	if o.logger != nil {
		return *o.logger
	}
	return logging.GetLogger("glob.walker")
}

// WithCaseSensitivity forces case-sensitive or case-insensitive name
// comparison regardless of the root.
func WithCaseSensitivity(c CaseSensitivity) Option {
	return func(o *options) { o.caseSensitivity = c }
}

// WithWorkingDirectory anchors relative patterns at dir instead of FS.Getwd.
func WithWorkingDirectory(dir string) Option {
	return func(o *options) { o.resolver.WorkingDirectory = dir }
}

// WithRootResolver replaces the root resolver. A working directory set with
// WithWorkingDirectory before this option is discarded.
func WithRootResolver(r RootResolver) Option {
	return func(o *options) { o.resolver = r }
}

// WithDirectoryPredicate prunes traversal: a directory for which pred
// returns false is neither descended into nor reported. The start directory
// is never tested.
func WithDirectoryPredicate(pred func(Match) bool) Option {
	return func(o *options) { o.dirPredicate = pred }
}

// WithMatchPredicate filters the reported matches.
func WithMatchPredicate(pred func(Match) bool) Option {
	return func(o *options) { o.matchPredicate = pred }
}

// WithParallelism expands the worklist on up to n goroutines. Values below
// 2 walk sequentially. The matched set does not depend on n.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.parallelism = n
	}
}

// WithLogger replaces the component logger used for traversal events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = &logger }
}

// ExcludeNames returns a directory predicate rejecting directories whose
// name matches any of the given name patterns (see CompileName).
func ExcludeNames(patterns []string, caseSensitive bool) (func(Match) bool, error) {
	matchers := make([]NameMatcher, 0, len(patterns))
	for _, p := range patterns {
		m, err := CompileName(p)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return func(m Match) bool {
		name := m.Name()
		for _, nm := range matchers {
			if nm.IsMatch(name, caseSensitive) {
				return false
			}
		}
		return true
	}, nil
}
