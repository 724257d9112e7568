package xtask

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DetectByFile finds directories under root containing any of the specified
// files (e.g., "go.mod"). Returns paths relative to root using forward
// slashes, sorted alphabetically. Hidden directories, vendor and node_modules
// are skipped. Each directory is returned only once.
func DetectByFile(root string, filenames ...string) []string {
	seen := make(map[string]bool)

	targets := make(map[string]bool, len(filenames))
	for _, f := range filenames {
		targets[f] = true
	}

	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil //nolint:nilerr // Keep walking past unreadable directories.
		}

		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || name == "vendor" || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}

		if targets[d.Name()] {
			rel, err := filepath.Rel(root, filepath.Dir(path))
			if err != nil {
				return nil //nolint:nilerr // Both paths come from the same walk.
			}
			seen[filepath.ToSlash(rel)] = true
		}
		return nil
	})

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Modules returns the Go module directories of the workspace, relative to the root.
func (c Config) Modules() []string {
	return DetectByFile(c.Root, "go.mod")
}
