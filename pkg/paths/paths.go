package paths

import (
	"strings"

	"github.com/arthur-debert/globwalk/pkg/errors"
)

// Kind identifies the root form of a Location.
type Kind int

const (
	KindUnix Kind = iota
	KindWindows
	KindUNC
)

// String returns a human readable name for the root kind.
func (k Kind) String() string {
	switch k {
	case KindUnix:
		return "unix"
	case KindWindows:
		return "windows"
	case KindUNC:
		return "unc"
	default:
		return "unknown"
	}
}

// Separator is the only separator Locations render with.
const Separator = "/"

// Location is an immutable absolute path. The zero value is the Unix root.
type Location struct {
	kind   Kind
	volume string // drive letter or UNC server name
	parts  []string
}

// UnixRoot returns the location "/".
func UnixRoot() Location {
	return Location{kind: KindUnix}
}

// WindowsRoot returns the root of the given drive, e.g. "C:/".
func WindowsRoot(drive string) Location {
	return Location{kind: KindWindows, volume: strings.ToUpper(drive)}
}

// UNCRoot returns the root of a UNC server, e.g. "//server/".
func UNCRoot(server string) Location {
	return Location{kind: KindUNC, volume: server}
}

// IsSeparator reports whether c is accepted as a path separator.
func IsSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

// IsAbs reports whether p carries one of the three absolute root forms.
func IsAbs(p string) bool {
	_, err := Parse(p)
	return err == nil
}

// Parse converts an absolute path in any supported root form into a Location.
// "." parts are dropped and ".." parts remove the previous part; ".." at the
// root stays at the root.
func Parse(p string) (Location, error) {
	s := strings.ReplaceAll(p, `\`, Separator)

	var loc Location
	switch {
	case strings.HasPrefix(s, "//"):
		rest := s[2:]
		server, tail, _ := strings.Cut(rest, Separator)
		if server == "" {
			return Location{}, errors.Newf(errors.ErrInvalidInput, "UNC path %q has no server name", p).
				WithDetail("path", p)
		}
		loc = UNCRoot(server)
		s = tail
	case len(s) >= 2 && isDriveLetter(s[0]) && s[1] == ':':
		if len(s) > 2 && s[2] != '/' {
			return Location{}, errors.Newf(errors.ErrInvalidInput, "drive-relative path %q is not supported", p).
				WithDetail("path", p)
		}
		loc = WindowsRoot(s[:1])
		s = s[2:]
	case strings.HasPrefix(s, Separator):
		loc = UnixRoot()
	default:
		return Location{}, errors.Newf(errors.ErrInvalidInput, "path %q is not absolute", p).
			WithDetail("path", p)
	}

	for _, part := range strings.Split(s, Separator) {
		switch part {
		case "", ".":
			continue
		case "..":
			if parent, ok := loc.Parent(); ok {
				loc = parent
			}
		default:
			loc = loc.Join(part)
		}
	}
	return loc, nil
}

// MustParse is like Parse but panics on error.
func MustParse(p string) Location {
	loc, err := Parse(p)
	if err != nil {
		panic(err)
	}
	return loc
}

// Normalize returns the canonical forward-slash rendering of an absolute path,
// or the input with separators normalized if it is not absolute.
func Normalize(p string) string {
	loc, err := Parse(p)
	if err != nil {
		return strings.ReplaceAll(p, `\`, Separator)
	}
	return loc.String()
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Kind returns the root form of the location.
func (l Location) Kind() Kind { return l.kind }

// Volume returns the drive letter or UNC server name; empty for Unix.
func (l Location) Volume() string { return l.volume }

// Depth returns the number of name parts below the root.
func (l Location) Depth() int { return len(l.parts) }

// IsRoot reports whether the location has no parts below its root.
func (l Location) IsRoot() bool { return len(l.parts) == 0 }

// Parts returns a copy of the name parts below the root.
func (l Location) Parts() []string {
	out := make([]string, len(l.parts))
	copy(out, l.parts)
	return out
}

// Name returns the last part, or the root rendering for a root location.
func (l Location) Name() string {
	if len(l.parts) == 0 {
		return l.Root().String()
	}
	return l.parts[len(l.parts)-1]
}

// Root returns the root of the location.
func (l Location) Root() Location {
	return Location{kind: l.kind, volume: l.volume}
}

// Join returns a new location one level below l. The receiver is not modified.
func (l Location) Join(name string) Location {
	parts := make([]string, len(l.parts), len(l.parts)+1)
	copy(parts, l.parts)
	return Location{kind: l.kind, volume: l.volume, parts: append(parts, name)}
}

// Parent returns the location one level up. ok is false at the root.
func (l Location) Parent() (Location, bool) {
	if len(l.parts) == 0 {
		return l, false
	}
	return Location{kind: l.kind, volume: l.volume, parts: l.parts[:len(l.parts)-1]}, true
}

// String renders the location with forward slashes.
func (l Location) String() string {
	var prefix string
	switch l.kind {
	case KindWindows:
		prefix = l.volume + ":/"
	case KindUNC:
		prefix = "//" + l.volume + "/"
	default:
		prefix = Separator
	}
	return prefix + strings.Join(l.parts, Separator)
}

// Key returns a string suitable for set membership. When caseSensitive is
// false the key is case folded so "A/b" and "a/B" collide.
func (l Location) Key(caseSensitive bool) string {
	s := l.String()
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	return s
}

// Equal reports whether both locations render identically.
func (l Location) Equal(other Location) bool {
	return l.String() == other.String()
}

// HasPrefix reports whether l is other or lies below it.
func (l Location) HasPrefix(other Location) bool {
	if l.kind != other.kind || l.volume != other.volume || len(other.parts) > len(l.parts) {
		return false
	}
	for i, p := range other.parts {
		if l.parts[i] != p {
			return false
		}
	}
	return true
}
