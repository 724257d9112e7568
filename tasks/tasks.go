// Package tasks defines the workspace tasks and registers them on a goyek flow.
package tasks

import (
	"io"

	"github.com/goyek/goyek/v3"

	"github.com/fastlabs/xtask"
	"github.com/fastlabs/xtask/bootstrap"
)

// Options holds the command-line switches the tasks read when they run.
type Options struct {
	// Locked keeps go.mod and go.sum files unchanged during build.
	Locked bool
	// NoCapture runs tests serially with verbose output.
	NoCapture bool
	// Fix applies lint suggestions instead of only reporting them.
	Fix bool
	// Bootstrap configures the bootstrap task.
	Bootstrap bootstrap.Options
}

// Env wires the tasks to the outside world.
type Env struct {
	// Runner runs external commands. Defaults to xtask.ExecRunner.
	Runner xtask.Runner
	// LookPath overrides the PATH lookup for tools.
	LookPath func(file string) (string, error)
	// Stdin, Stdout and Stderr are used by the interactive bootstrap.
	// Error lines go to Stderr.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Tasks holds all registered tasks.
type Tasks struct {
	// Build compiles all workspace packages, tests included.
	Build *goyek.DefinedTask
	// Test runs the workspace tests.
	Test *goyek.DefinedTask
	// Lint runs every lint check in order.
	Lint *goyek.DefinedTask
	// Bootstrap renames the template into a new project.
	Bootstrap *goyek.DefinedTask

	// Lint checks, in the order Lint runs them.
	Golangci *goyek.DefinedTask
	Format   *goyek.DefinedTask
	Mod      *goyek.DefinedTask
	Spell    *goyek.DefinedTask
	License  *goyek.DefinedTask
}

// New defines all tasks on flow. Options are read when a task runs, so the
// caller may fill opts after New returns.
func New(flow *goyek.Flow, cfg xtask.Config, opts *Options, env Env) *Tasks {
	cfg = cfg.WithDefaults()
	if opts == nil {
		opts = &Options{}
	}
	if env.Runner == nil {
		env.Runner = xtask.ExecRunner{BinDir: cfg.FromBinDir()}
	}
	installer := xtask.NewInstaller(cfg, env.Runner)
	installer.LookPath = env.LookPath

	w := &workspace{cfg: cfg, opts: opts, env: env, installer: installer}
	t := &Tasks{}

	t.Build = flow.Define(buildTask(w))
	t.Test = flow.Define(testTask(w))

	t.Golangci = flow.Define(golangciTask(w))
	t.Format = flow.Define(formatTask(w))
	t.Mod = flow.Define(modTask(w))
	t.Spell = flow.Define(spellTask(w))
	t.License = flow.Define(licenseTask(w))
	t.Lint = flow.Define(goyek.Task{
		Name:  "lint",
		Usage: "run golangci-lint, format, go.mod, spelling and license header checks",
		Deps:  goyek.Deps{t.Golangci, t.Format, t.Mod, t.Spell, t.License},
	})

	t.Bootstrap = flow.Define(bootstrapTask(w))
	return t
}

// workspace is the state shared by task actions.
type workspace struct {
	cfg       xtask.Config
	opts      *Options
	env       Env
	installer *xtask.Installer
}

// exec runs c and stops the task if it fails.
func (w *workspace) exec(a *goyek.A, c xtask.Command) {
	a.Helper()
	if !w.env.Runner.Run(a, c) {
		a.FailNow()
	}
}

// tool resolves t, installing it if needed, and stops the task on failure.
func (w *workspace) tool(a *goyek.A, t xtask.Tool) string {
	a.Helper()
	path, ok := w.installer.Ensure(a, t)
	if !ok {
		a.FailNow()
	}
	return path
}

// modules returns the absolute module directories and stops the task if there are none.
func (w *workspace) modules(a *goyek.A) []string {
	a.Helper()
	mods := w.cfg.Modules()
	if len(mods) == 0 {
		a.Fatalf("no Go modules found under %s", w.cfg.Root)
	}
	dirs := make([]string, len(mods))
	for i, m := range mods {
		dirs[i] = w.cfg.FromRoot(m)
	}
	return dirs
}
