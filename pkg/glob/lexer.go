package glob

import (
	"github.com/arthur-debert/globwalk/pkg/paths"
)

// lexer turns a pattern into a flat token stream. It never fails: anything
// that is not a separator, wildcard or dot marker is identifier text.
type lexer struct {
	input        string
	pos          int
	tokens       []Token
	segmentStart bool
}

// Lex tokenizes pattern. The first token is always a root marker.
func Lex(pattern string) []Token {
	l := &lexer{input: pattern, tokens: make([]Token, 0, len(pattern)/2+2)}
	l.lexRoot()
	for l.pos < len(l.input) {
		l.lexNext()
	}
	return l.tokens
}

func (l *lexer) emit(kind TokenKind, text string, start int) {
	l.tokens = append(l.tokens, Token{Kind: kind, Text: text, Position: start})
}

func (l *lexer) peek(offset int) (byte, bool) {
	i := l.pos + offset
	if i >= len(l.input) {
		return 0, false
	}
	return l.input[i], true
}

// boundary reports whether position i is the end of input or a separator.
func (l *lexer) boundary(i int) bool {
	return i >= len(l.input) || paths.IsSeparator(l.input[i])
}

func (l *lexer) lexRoot() {
	in := l.input
	switch {
	case len(in) >= 2 && isLetter(in[0]) && in[1] == ':':
		l.emit(TokenWindowsRoot, in[:1], 0)
		l.pos = 2
	case len(in) >= 2 && paths.IsSeparator(in[0]) && paths.IsSeparator(in[1]):
		start := 2
		end := start
		for end < len(in) && !paths.IsSeparator(in[end]) {
			end++
		}
		l.emit(TokenUncRoot, in[start:end], 0)
		l.pos = end
	case len(in) >= 1 && paths.IsSeparator(in[0]):
		l.emit(TokenUnixRoot, "", 0)
		l.pos = 1
	default:
		l.emit(TokenRelativeRoot, "", 0)
	}
	l.segmentStart = true
}

func (l *lexer) lexNext() {
	start := l.pos
	c := l.input[l.pos]

	switch {
	case paths.IsSeparator(c):
		for l.pos < len(l.input) && paths.IsSeparator(l.input[l.pos]) {
			l.pos++
		}
		l.emit(TokenPathSeparator, paths.Separator, start)
		l.segmentStart = true
		return

	case c == '*':
		if next, ok := l.peek(1); ok && next == '*' && l.segmentStart {
			l.pos += 2
			l.emit(TokenRecursiveWildcard, "**", start)
		} else {
			l.pos++
			l.emit(TokenWildcard, "*", start)
		}

	case c == '?':
		l.pos++
		l.emit(TokenCharacterWildcard, "?", start)

	case c == '.' && l.segmentStart:
		if !l.dotMarker() {
			l.lexIdentifier(start)
		}

	default:
		l.lexIdentifier(start)
	}
	l.segmentStart = false
}

func (l *lexer) lexIdentifier(start int) {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if paths.IsSeparator(c) || c == '*' || c == '?' {
			break
		}
		l.pos++
	}
	l.emit(TokenIdentifier, l.input[start:l.pos], start)
}

// dotMarker emits a parent or current marker when "." or ".." fills the
// whole segment. It reports whether it consumed anything.
func (l *lexer) dotMarker() bool {
	start := l.pos
	if next, ok := l.peek(1); ok && next == '.' && l.boundary(start+2) {
		l.pos += 2
		l.emit(TokenParentMarker, "..", start)
		return true
	}
	if l.boundary(start + 1) {
		l.pos++
		l.emit(TokenCurrentMarker, ".", start)
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
