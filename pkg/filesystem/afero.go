package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/globwalk/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs  afero.Fs
	cwd string
}

// NewAferoFS creates a new afero filesystem implementation. afero has no
// notion of a working directory, so the one reported by Getwd is supplied
// here; an empty cwd means "/".
func NewAferoFS(fs afero.Fs, cwd string) types.FS {
	if cwd == "" {
		cwd = "/"
	}
	return &aferoFS{fs: fs, cwd: cwd}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	entries, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	dirEntries := make([]fs.DirEntry, len(entries))
	for i, entry := range entries {
		dirEntries[i] = fs.FileInfoToDirEntry(entry)
	}
	return dirEntries, nil
}

func (a *aferoFS) Getwd() (string, error) {
	return a.cwd, nil
}
