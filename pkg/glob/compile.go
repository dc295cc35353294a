package glob

import (
	"strings"

	"github.com/arthur-debert/globwalk/pkg/errors"
	"github.com/grafana/regexp"
)

// PatternSegment mixes literal text with "*" and "?". Both regular
// expressions are compiled once when the pattern is parsed; the walker picks
// one per match call so case sensitivity stays a traversal-time choice.
type PatternSegment struct {
	tokens []Token
	expr   string
	exact  *regexp.Regexp
	folded *regexp.Regexp
}

func (*PatternSegment) Kind() SegmentKind { return SegmentPattern }
func (*PatternSegment) isSegment()        {}

func (s *PatternSegment) String() string {
	var b strings.Builder
	for _, tok := range s.tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}

// Expression returns the anchored regular expression the segment compiles to.
func (s *PatternSegment) Expression() string { return s.expr }

// Tokens returns a copy of the tokens the segment was built from.
func (s *PatternSegment) Tokens() []Token {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// IsMatch reports whether the whole of name matches the segment.
func (s *PatternSegment) IsMatch(name string, caseSensitive bool) bool {
	if caseSensitive {
		return s.exact.MatchString(name)
	}
	return s.folded.MatchString(name)
}

// buildExpression concatenates escaped literal text, ".*" for each "*" and
// "." for each "?", anchored at both ends.
func buildExpression(tokens []Token) string {
	var b strings.Builder
	b.WriteString("^")
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenWildcard:
			b.WriteString(".*")
		case TokenCharacterWildcard:
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(tok.Text))
		}
	}
	b.WriteString("$")
	return b.String()
}

func compilePatternSegment(tokens []Token) (*PatternSegment, error) {
	expr := buildExpression(tokens)

	// (?s) lets "." and ".*" cover every byte a file name can hold.
	exact, err := regexp.Compile("(?s)" + expr)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot compile segment expression %q", expr)
	}
	folded, err := regexp.Compile("(?is)" + expr)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot compile segment expression %q", expr)
	}

	owned := make([]Token, len(tokens))
	copy(owned, tokens)
	return &PatternSegment{tokens: owned, expr: expr, exact: exact, folded: folded}, nil
}

// CompileName compiles a pattern for a single file or directory name, such
// as "*.tmp" or "node_modules". Separators, "**", "." and ".." are rejected.
func CompileName(expr string) (NameMatcher, error) {
	if expr == "" {
		return nil, errors.New(errors.ErrInvalidInput, "name pattern is empty")
	}

	tokens := Lex(expr)
	if tokens[0].Kind != TokenRelativeRoot {
		return nil, errors.Newf(errors.ErrInvalidInput, "name pattern %q must not contain a root", expr).
			WithDetail("pattern", expr)
	}

	body := tokens[1:]
	for _, tok := range body {
		switch tok.Kind {
		case TokenIdentifier, TokenWildcard, TokenCharacterWildcard:
		default:
			return nil, errors.Newf(errors.ErrInvalidInput,
				"name pattern %q may only contain text, '*' and '?'", expr).
				WithDetail("pattern", expr).
				WithDetail("token", tok.String())
		}
	}

	seg, err := buildSegment(expr, 0, body)
	if err != nil {
		return nil, err
	}
	return seg.(NameMatcher), nil
}
