// Package paths resolves the on-disk locations of the quiz's resources:
// the personal-best state file and user-defined challenge files.
package paths

import (
	"os"
	"path/filepath"
)

// the base directory for all resources. note that we don't use this value
// directly except in the basePath() function. that function should be
// used instead.
const baseResourcePath = ".disquiz"

// ResourcePath returns the path of the named resource, prepended with the
// resource base directory.
//
// the existence of the resource is not checked. the base directory is
// created if necessary.
func ResourcePath(resource ...string) (string, error) {
	base := basePath()
	if err := os.MkdirAll(base, 0o700); err != nil {
		return "", err
	}

	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	p = append(p, resource...)

	return filepath.Join(p...), nil
}

// basePath returns baseResourcePath unadorned if it exists in the current
// directory, and a directory under the user's config directory otherwise.
func basePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	config, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}

	return filepath.Join(config, "disquiz")
}
