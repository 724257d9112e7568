package xtask

import (
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/goyek/goyek/v3"
)

// Tool is an executable a task depends on.
// Tools with a Package are installed with 'go install' when missing.
type Tool struct {
	// Name is the binary name (without .exe extension).
	Name string
	// Package is the Go package providing the binary, e.g.
	// "github.com/google/addlicense". Empty means the tool must already exist.
	Package string
	// Version is the module version passed to 'go install'.
	Version string
}

// BinaryName returns the platform-specific binary file name.
func (t Tool) BinaryName() string {
	if runtime.GOOS == "windows" {
		return t.Name + ".exe"
	}
	return t.Name
}

// Installer locates tools, installing them into the bin directory on first use.
type Installer struct {
	// BinDir receives installed tools and is searched before PATH.
	BinDir string
	// Runner runs 'go install'.
	Runner Runner
	// LookPath searches PATH. Defaults to exec.LookPath.
	LookPath func(file string) (string, error)

	resolved map[string]string
}

// NewInstaller returns an Installer for the given config.
func NewInstaller(cfg Config, runner Runner) *Installer {
	return &Installer{
		BinDir: cfg.FromBinDir(),
		Runner: runner,
	}
}

// Ensure returns the path of the tool executable, installing it first if it is
// declared with a Package and cannot be found. A tool is resolved at most once
// per Installer. It returns false after reporting the failure on a.
func (i *Installer) Ensure(a *goyek.A, t Tool) (string, bool) {
	a.Helper()
	if path, ok := i.resolved[t.Name]; ok {
		return path, true
	}

	path, found := i.find(t)
	if !found {
		if t.Package == "" {
			a.Errorf("%s not found in %s or PATH", t.Name, i.BinDir)
			return "", false
		}
		a.Logf("%s not found, installing %s@%s", t.Name, t.Package, t.Version)
		if !i.Runner.Run(a, i.installCommand(t)) {
			a.Errorf("install %s failed", t.Name)
			return "", false
		}
		path = i.binPath(t)
	}

	if i.resolved == nil {
		i.resolved = make(map[string]string)
	}
	i.resolved[t.Name] = path
	return path, true
}

func (i *Installer) find(t Tool) (string, bool) {
	if p := i.binPath(t); fileExists(p) {
		return p, true
	}
	lookPath := i.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if p, err := lookPath(t.Name); err == nil {
		return p, true
	}
	return "", false
}

func (i *Installer) binPath(t Tool) string {
	if i.BinDir == "" {
		return t.BinaryName()
	}
	return filepath.Join(i.BinDir, t.BinaryName())
}

func (i *Installer) installCommand(t Tool) Command {
	version := t.Version
	if version == "" {
		version = "latest"
	}
	return Command{
		Name: "go",
		Args: []string{"install", t.Package + "@" + version},
		Env:  []string{"GOBIN=" + i.BinDir},
	}
}
