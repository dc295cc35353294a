package glob

import "fmt"

// TokenKind classifies a lexer token.
type TokenKind int

const (
	TokenIdentifier TokenKind = iota
	TokenWildcard
	TokenCharacterWildcard
	TokenRecursiveWildcard
	TokenPathSeparator
	TokenParentMarker
	TokenCurrentMarker
	TokenWindowsRoot
	TokenUncRoot
	TokenUnixRoot
	TokenRelativeRoot
)

var tokenKindNames = map[TokenKind]string{
	TokenIdentifier:        "Identifier",
	TokenWildcard:          "Wildcard",
	TokenCharacterWildcard: "CharacterWildcard",
	TokenRecursiveWildcard: "RecursiveWildcard",
	TokenPathSeparator:     "PathSeparator",
	TokenParentMarker:      "ParentMarker",
	TokenCurrentMarker:     "CurrentMarker",
	TokenWindowsRoot:       "WindowsRoot",
	TokenUncRoot:           "UncRoot",
	TokenUnixRoot:          "UnixRoot",
	TokenRelativeRoot:      "RelativeRoot",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// IsRoot reports whether the kind is one of the four root markers.
func (k TokenKind) IsRoot() bool {
	switch k {
	case TokenWindowsRoot, TokenUncRoot, TokenUnixRoot, TokenRelativeRoot:
		return true
	}
	return false
}

// Token is one lexical element of a pattern. Position is the byte offset of
// the token in the original pattern.
type Token struct {
	Kind     TokenKind
	Text     string
	Position int
}

func (t Token) String() string {
	if t.Text == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}
