package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/globwalk/pkg/errors"
)

// HomeDirectory returns the user's home directory, falling back to $HOME.
func HomeDirectory() (string, error) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home, nil
	}
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}
	return "", errors.New(errors.ErrWorkingDirectory, "unable to determine home directory")
}

// ExpandHome replaces a leading "~" or "~/" with the home directory. Other
// paths, including "~user", are returned unchanged. Only command-line
// directories go through here; patterns treat "~" as a literal name.
func ExpandHome(path string) (string, error) {
	if path != "~" && !(len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == '\\')) {
		return path, nil
	}
	home, err := HomeDirectory()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrWorkingDirectory, "cannot expand %q", path).
			WithDetail("path", path)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
