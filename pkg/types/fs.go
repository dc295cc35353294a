package types

import (
	"io/fs"
)

// FS is the file-system interface the glob walker consumes. Paths are
// absolute and use forward slashes (see pkg/paths).
type FS interface {
	// Stat reports on a single path, following symlinks.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir lists the immediate children of a directory.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Getwd returns the working directory. It is only consulted when a
	// relative pattern is matched without an explicit working directory.
	Getwd() (string, error)
}

// CaseFolder is implemented by file systems whose name lookups ignore case,
// so that "Sub" and "sub" name the same entry.
type CaseFolder interface {
	FoldsCase() bool
}

// FoldsCase reports whether fsys ignores case in lookups. File systems that
// do not implement CaseFolder are taken to be case-sensitive.
func FoldsCase(fsys FS) bool {
	cf, ok := fsys.(CaseFolder)
	return ok && cf.FoldsCase()
}

// DirectoryExists reports whether name exists and is a directory.
func DirectoryExists(fsys FS, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && info.IsDir()
}

// Exists reports whether name exists at all.
func Exists(fsys FS, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}
