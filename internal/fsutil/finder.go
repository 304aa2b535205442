// Package fsutil provides file system helpers for locating descriptor files.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindDescriptor resolves a descriptor path. A file path is returned as is;
// a directory is searched recursively for files ending in .hcl and must
// contain exactly one.
func FindDescriptor(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return path, nil
	}

	var found []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			found = append(found, p)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	switch len(found) {
	case 0:
		return "", fmt.Errorf("no .hcl descriptor file found under %s", path)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("found %d .hcl files under %s, expected exactly one", len(found), path)
	}
}
