package glob

import (
	"github.com/arthur-debert/globwalk/pkg/errors"
)

// Parse compiles pattern into an immutable *Pattern. Syntax errors are
// returned as *errors.GlobError with code PATTERN_SYNTAX or UNSUPPORTED_ROOT
// and never alongside a partial pattern.
func Parse(pattern string) (*Pattern, error) {
	p := &parser{pattern: pattern, tokens: Lex(pattern)}
	return p.parse()
}

// MustParse is like Parse but panics on error. It is meant for patterns
// fixed at compile time.
func MustParse(pattern string) *Pattern {
	p, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

type parser struct {
	pattern string
	tokens  []Token
	pos     int
}

func (p *parser) current() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) parse() (*Pattern, error) {
	root, err := p.parseRoot()
	if err != nil {
		return nil, err
	}

	var segments []Segment
	var group []Token
	flush := func() error {
		if len(group) == 0 {
			return nil
		}
		seg, err := buildSegment(p.pattern, len(segments), group)
		if err != nil {
			return err
		}
		segments = append(segments, seg)
		group = nil
		return nil
	}

	for tok, ok := p.current(); ok; tok, ok = p.current() {
		p.pos++
		if tok.Kind == TokenPathSeparator {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if tok.Kind.IsRoot() {
			return nil, p.syntaxError(errors.ErrUnsupportedRoot, tok, len(segments),
				"root marker is only allowed at the start of a pattern")
		}
		group = append(group, tok)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return &Pattern{original: p.pattern, root: root, segments: segments}, nil
}

func (p *parser) parseRoot() (Root, error) {
	tok, _ := p.current()
	p.pos++

	var root Root
	switch tok.Kind {
	case TokenWindowsRoot:
		if next, ok := p.current(); ok && next.Kind != TokenPathSeparator {
			return nil, p.syntaxError(errors.ErrUnsupportedRoot, tok, 0,
				"drive-relative paths such as \"C:dir\" are not supported")
		}
		root = WindowsRoot{Drive: tok.Text}
	case TokenUncRoot:
		if tok.Text == "" {
			return nil, p.syntaxError(errors.ErrUnsupportedRoot, tok, 0,
				"UNC root is missing a server name")
		}
		root = UncRoot{Server: tok.Text}
	case TokenUnixRoot:
		root = UnixRoot{}
	case TokenRelativeRoot:
		root = RelativeRoot{}
	default:
		return nil, p.syntaxError(errors.ErrUnsupportedRoot, tok, 0, "pattern does not start with a root")
	}

	if next, ok := p.current(); ok && next.Kind == TokenPathSeparator {
		p.pos++
	}
	return root, nil
}

func (p *parser) syntaxError(code errors.ErrorCode, tok Token, segment int, msg string) error {
	return errors.Newf(code, "invalid pattern %q: %s", p.pattern, msg).
		WithDetail("pattern", p.pattern).
		WithDetail("segment", segment).
		WithDetail("position", tok.Position)
}

// buildSegment turns the tokens between two separators into a Segment.
func buildSegment(pattern string, index int, group []Token) (Segment, error) {
	if len(group) == 1 {
		switch tok := group[0]; tok.Kind {
		case TokenRecursiveWildcard:
			return RecursiveWildcardSegment{}, nil
		case TokenWildcard:
			return WildcardSegment{}, nil
		case TokenParentMarker:
			return ParentSegment{}, nil
		case TokenCurrentMarker:
			return CurrentSegment{}, nil
		case TokenIdentifier:
			return LiteralSegment{Text: tok.Text}, nil
		}
	}

	for _, tok := range group {
		switch tok.Kind {
		case TokenRecursiveWildcard:
			return nil, errors.Newf(errors.ErrPatternSyntax,
				"invalid pattern %q: ambiguous recursive wildcard placement, '**' must be a whole path segment", pattern).
				WithDetail("pattern", pattern).
				WithDetail("segment", index).
				WithDetail("position", tok.Position)
		case TokenIdentifier, TokenWildcard, TokenCharacterWildcard:
		default:
			return nil, errors.Newf(errors.ErrPatternSyntax,
				"invalid pattern %q: unexpected %s in segment", pattern, tok.Kind).
				WithDetail("pattern", pattern).
				WithDetail("segment", index).
				WithDetail("position", tok.Position)
		}
	}

	seg, err := compilePatternSegment(group)
	if err != nil {
		return nil, err
	}
	return seg, nil
}
