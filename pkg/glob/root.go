package glob

import (
	"github.com/arthur-debert/globwalk/pkg/errors"
	"github.com/arthur-debert/globwalk/pkg/paths"
	"github.com/arthur-debert/globwalk/pkg/types"
)

// RootResolver maps a pattern Root to the absolute directory the walk
// starts from, and decides the default case rule for that root. It is a
// value type; the zero value behaves like DefaultRootResolver with the
// working directory taken from the file system.
type RootResolver struct {
	// WorkingDirectory anchors relative patterns. Empty means FS.Getwd.
	WorkingDirectory string

	// CaseSensitive overrides the default case rule per root kind. For a
	// relative root the kind of the resolved working directory is used.
	CaseSensitive map[RootKind]bool
}

// DefaultRootResolver treats Unix trees as case-sensitive and Windows
// drives and UNC shares as case-insensitive.
func DefaultRootResolver() RootResolver {
	return RootResolver{
		CaseSensitive: map[RootKind]bool{
			RootUnix:     true,
			RootRelative: true,
			RootWindows:  false,
			RootUNC:      false,
		},
	}
}

// CaseSensitiveFor returns the case rule configured for kind, falling back
// to the defaults.
func (r RootResolver) CaseSensitiveFor(kind RootKind) bool {
	if v, ok := r.CaseSensitive[kind]; ok {
		return v
	}
	return DefaultRootResolver().CaseSensitive[kind]
}

// Resolve returns the start location for root and whether names below it
// compare case-sensitively by default.
func (r RootResolver) Resolve(root Root, fsys types.FS) (paths.Location, bool, error) {
	switch rt := root.(type) {
	case WindowsRoot:
		return paths.WindowsRoot(rt.Drive), r.CaseSensitiveFor(RootWindows), nil
	case UncRoot:
		return paths.UNCRoot(rt.Server), r.CaseSensitiveFor(RootUNC), nil
	case UnixRoot:
		return paths.UnixRoot(), r.CaseSensitiveFor(RootUnix), nil
	case RelativeRoot:
		return r.resolveWorkingDirectory(fsys)
	default:
		return paths.Location{}, false, errors.Newf(errors.ErrUnsupportedRoot, "unsupported root %T", root)
	}
}

func (r RootResolver) resolveWorkingDirectory(fsys types.FS) (paths.Location, bool, error) {
	wd := r.WorkingDirectory
	if wd == "" {
		var err error
		wd, err = fsys.Getwd()
		if err != nil {
			return paths.Location{}, false, errors.Wrap(err, errors.ErrWorkingDirectory,
				"cannot determine working directory")
		}
	}

	loc, err := paths.Parse(wd)
	if err != nil {
		return paths.Location{}, false, errors.Wrapf(err, errors.ErrWorkingDirectory,
			"working directory %q must be absolute", wd).
			WithDetail("path", wd)
	}

	switch loc.Kind() {
	case paths.KindWindows:
		return loc, r.CaseSensitiveFor(RootWindows), nil
	case paths.KindUNC:
		return loc, r.CaseSensitiveFor(RootUNC), nil
	default:
		return loc, r.CaseSensitiveFor(RootRelative), nil
	}
}
