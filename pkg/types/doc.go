// Package types holds the small interfaces shared between globwalk packages.
//
// The glob engine never touches the host file system directly. It goes
// through FS, which has implementations for the operating system and for
// afero in pkg/filesystem, plus an in-memory tree in pkg/testutil.
package types
