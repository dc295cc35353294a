package glob

import (
	"strings"
)

// RootKind identifies which Root variant a pattern starts with.
type RootKind int

const (
	RootRelative RootKind = iota
	RootUnix
	RootWindows
	RootUNC
)

func (k RootKind) String() string {
	switch k {
	case RootRelative:
		return "relative"
	case RootUnix:
		return "unix"
	case RootWindows:
		return "windows"
	case RootUNC:
		return "unc"
	default:
		return "unknown"
	}
}

// Root anchors a pattern. The set of implementations is closed: WindowsRoot,
// UncRoot, UnixRoot and RelativeRoot.
type Root interface {
	Kind() RootKind
	// String renders the root the way it prefixes a canonical pattern.
	String() string
	isRoot()
}

// WindowsRoot is a drive letter root such as "C:".
type WindowsRoot struct {
	Drive string
}

// UncRoot is a "//server" root.
type UncRoot struct {
	Server string
}

// UnixRoot is the file system root "/".
type UnixRoot struct{}

// RelativeRoot resolves against a working directory.
type RelativeRoot struct{}

func (WindowsRoot) Kind() RootKind  { return RootWindows }
func (UncRoot) Kind() RootKind      { return RootUNC }
func (UnixRoot) Kind() RootKind     { return RootUnix }
func (RelativeRoot) Kind() RootKind { return RootRelative }

func (r WindowsRoot) String() string { return strings.ToUpper(r.Drive) + ":/" }
func (r UncRoot) String() string     { return "//" + r.Server + "/" }
func (UnixRoot) String() string      { return "/" }
func (RelativeRoot) String() string  { return "" }

func (WindowsRoot) isRoot()  {}
func (UncRoot) isRoot()      {}
func (UnixRoot) isRoot()     {}
func (RelativeRoot) isRoot() {}

// SegmentKind identifies which Segment variant a segment is.
type SegmentKind int

const (
	SegmentLiteral SegmentKind = iota
	SegmentPattern
	SegmentWildcard
	SegmentRecursiveWildcard
	SegmentParent
	SegmentCurrent
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentLiteral:
		return "literal"
	case SegmentPattern:
		return "pattern"
	case SegmentWildcard:
		return "wildcard"
	case SegmentRecursiveWildcard:
		return "recursive"
	case SegmentParent:
		return "parent"
	case SegmentCurrent:
		return "current"
	default:
		return "unknown"
	}
}

// Segment is one path level of a pattern. The set of implementations is
// closed: LiteralSegment, *PatternSegment, WildcardSegment,
// RecursiveWildcardSegment, ParentSegment and CurrentSegment.
type Segment interface {
	Kind() SegmentKind
	String() string
	isSegment()
}

// NameMatcher is implemented by the segments that test a single file or
// directory name.
type NameMatcher interface {
	IsMatch(name string, caseSensitive bool) bool
}

// LiteralSegment matches one exact name. The walker looks it up directly
// instead of listing the directory.
type LiteralSegment struct {
	Text string
}

// WildcardSegment is a bare "*": any single name.
type WildcardSegment struct{}

// RecursiveWildcardSegment is "**": zero or more directory levels.
type RecursiveWildcardSegment struct{}

// ParentSegment is "..".
type ParentSegment struct{}

// CurrentSegment is ".".
type CurrentSegment struct{}

func (LiteralSegment) Kind() SegmentKind           { return SegmentLiteral }
func (WildcardSegment) Kind() SegmentKind          { return SegmentWildcard }
func (RecursiveWildcardSegment) Kind() SegmentKind { return SegmentRecursiveWildcard }
func (ParentSegment) Kind() SegmentKind            { return SegmentParent }
func (CurrentSegment) Kind() SegmentKind           { return SegmentCurrent }

func (s LiteralSegment) String() string         { return s.Text }
func (WildcardSegment) String() string          { return "*" }
func (RecursiveWildcardSegment) String() string { return "**" }
func (ParentSegment) String() string            { return ".." }
func (CurrentSegment) String() string           { return "." }

func (LiteralSegment) isSegment()           {}
func (WildcardSegment) isSegment()          {}
func (RecursiveWildcardSegment) isSegment() {}
func (ParentSegment) isSegment()            {}
func (CurrentSegment) isSegment()           {}

// IsMatch compares name with the literal text.
func (s LiteralSegment) IsMatch(name string, caseSensitive bool) bool {
	if caseSensitive {
		return name == s.Text
	}
	return strings.EqualFold(name, s.Text)
}

// IsMatch always succeeds; "*" accepts any single name.
func (WildcardSegment) IsMatch(string, bool) bool {
	return true
}

// Pattern is a compiled glob: one Root and the segments below it. It holds
// no mutable state and is safe for concurrent use.
type Pattern struct {
	original string
	root     Root
	segments []Segment
}

// Root returns the pattern's root.
func (p *Pattern) Root() Root { return p.root }

// Segments returns a copy of the segment list.
func (p *Pattern) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Original returns the text the pattern was parsed from.
func (p *Pattern) Original() string { return p.original }

// IsLiteral reports whether the pattern contains no wildcard segments, in
// which case matching is a single existence check.
func (p *Pattern) IsLiteral() bool {
	for _, seg := range p.segments {
		switch seg.(type) {
		case *PatternSegment, WildcardSegment, RecursiveWildcardSegment:
			return false
		}
	}
	return true
}

// IsRecursive reports whether the pattern contains a "**" segment.
func (p *Pattern) IsRecursive() bool {
	for _, seg := range p.segments {
		if _, ok := seg.(RecursiveWildcardSegment); ok {
			return true
		}
	}
	return false
}

// String renders the canonical form: forward slashes, upper-case drive
// letter, collapsed separators.
func (p *Pattern) String() string {
	parts := make([]string, len(p.segments))
	for i, seg := range p.segments {
		parts[i] = seg.String()
	}
	rendered := p.root.String() + strings.Join(parts, "/")
	if rendered == "" {
		return "."
	}
	return rendered
}
