// Package xtask provides the workspace plumbing shared by the xtask tasks:
// configuration, tool installation, module detection and process execution.
package xtask

import (
	"os"
	"path/filepath"
)

const (
	// DirName is the name of the xtask state directory at the workspace root.
	DirName = ".xtask"
	// BinDirName is the name of the bin subdirectory for installed tools.
	BinDirName = "bin"
	// WorkFile is the root manifest of a Go workspace.
	WorkFile = "go.work"
)

// FindRoot returns the workspace root: the closest directory, starting at dir
// and walking up, that contains a go.work file. If none is found, dir itself
// is returned.
func FindRoot(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	for cur := abs; ; {
		if fileExists(filepath.Join(cur, WorkFile)) {
			return cur
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return abs
		}
		cur = parent
	}
}

// FromRoot returns a path relative to the workspace root.
func (c Config) FromRoot(elem ...string) string {
	return filepath.Join(append([]string{c.Root}, elem...)...)
}

// FromBinDir returns a path relative to the tool bin directory.
// If no elements are provided, returns the bin directory itself.
func (c Config) FromBinDir(elem ...string) string {
	dir := c.Tools.BinDir
	if !filepath.IsAbs(dir) {
		dir = c.FromRoot(dir)
	}
	return filepath.Join(append([]string{dir}, elem...)...)
}

// fileExists returns true if the path exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
