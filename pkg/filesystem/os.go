package filesystem

import (
	"io/fs"
	"os"
	"runtime"

	"github.com/arthur-debert/globwalk/pkg/paths"
	"github.com/arthur-debert/globwalk/pkg/types"
)

// osFS implements types.FS using the OS filesystem
type osFS struct {
	goos string
}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return &osFS{goos: runtime.GOOS}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	if err := o.reachable("stat", name); err != nil {
		return nil, err
	}
	return os.Stat(name)
}

func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := o.reachable("readdir", name); err != nil {
		return nil, err
	}
	return os.ReadDir(name)
}

// Getwd returns the process working directory with forward slashes.
func (o *osFS) Getwd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return paths.Normalize(wd), nil
}

// FoldsCase is true on Windows and macOS, whose default volumes ignore case.
func (o *osFS) FoldsCase() bool {
	return o.goos == "windows" || o.goos == "darwin"
}

// reachable rejects drive and UNC paths outside Windows. A Unix kernel
// would read "//server/share" as "/server/share" and "C:/x" as a relative
// path, walking unrelated local directories.
func (o *osFS) reachable(op, name string) error {
	if o.goos == "windows" {
		return nil
	}
	loc, err := paths.Parse(name)
	if err != nil {
		return nil
	}
	if loc.Kind() == paths.KindWindows || loc.Kind() == paths.KindUNC {
		return &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	return nil
}
