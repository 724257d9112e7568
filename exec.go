package xtask

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/goyek/goyek/v3"
	"github.com/goyek/x/cmd"
	"golang.org/x/term"
)

// Command describes one external process invocation.
type Command struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Name is the executable name or path.
	Name string
	// Args are the arguments passed to the executable.
	Args []string
	// Env holds extra KEY=VALUE entries appended to the inherited environment.
	Env []string
}

// String returns the command line with arguments quoted where needed.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quoteArg(c.Name))
	for _, arg := range c.Args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

// quoteArg quotes s so the command line splits back into the same arguments.
func quoteArg(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, shellMeta) {
		return s
	}
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")
	return `"` + r.Replace(s) + `"`
}

// shellMeta are the characters that end or alter a word on a command line.
const shellMeta = " \t\n\"'\\&;|<>()$`*?[]{}~#!"

// Runner runs external commands on behalf of a task.
// Run blocks until the process exits and reports whether it succeeded.
// Failures are reported on a; the caller decides whether to stop.
type Runner interface {
	Run(a *goyek.A, c Command) bool
}

// ExecRunner is the Runner that spawns real processes.
type ExecRunner struct {
	// BinDir is prepended to PATH so installed tools are found first.
	BinDir string
}

var (
	colorEnvOnce sync.Once
	colorEnvVars []string // extra env vars to force colors
)

// colorForceEnvVars are the environment variables set to force color output.
var colorForceEnvVars = []string{
	"FORCE_COLOR=1",       // Node.js, chalk, many modern tools
	"CLICOLOR_FORCE=1",    // BSD/macOS convention
	"COLORTERM=truecolor", // Indicates color support
}

// computeColorEnv determines which color env vars to use.
func computeColorEnv(isTTY, noColorSet bool) []string {
	// Respect NO_COLOR convention (https://no-color.org/).
	if noColorSet {
		return nil
	}
	if !isTTY {
		return nil
	}
	return colorForceEnvVars
}

func initColorEnv() {
	_, noColor := os.LookupEnv("NO_COLOR")
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	colorEnvVars = computeColorEnv(isTTY, noColor)
}

// Run executes c and streams its output to the task output.
func (r ExecRunner) Run(a *goyek.A, c Command) bool {
	a.Helper()
	colorEnvOnce.Do(initColorEnv)

	env := os.Environ()
	if r.BinDir != "" {
		env = PrependPath(env, r.BinDir)
		// exec resolves the binary with the parent's PATH, before Env applies.
		if !strings.ContainsAny(c.Name, `/\`) {
			if binPath := filepath.Join(r.BinDir, c.Name); fileExists(binPath) {
				c.Name = binPath
			}
		}
	}
	env = append(env, colorEnvVars...)
	env = append(env, c.Env...)

	opts := []cmd.Option{
		cmd.Option(func(_ *goyek.A, ec *exec.Cmd) {
			ec.Env = env
			// Arguments are passed as given, not as re-split from the command line.
			ec.Args = append([]string{c.Name}, c.Args...)
			setGracefulShutdown(ec)
		}),
	}
	if c.Dir != "" {
		opts = append(opts, cmd.Dir(c.Dir))
	}
	return cmd.Exec(a, c.String(), opts...)
}

// WaitDelay is how long a cancelled command may take to exit after SIGINT
// before it is killed.
const WaitDelay = 5 * time.Second

// setGracefulShutdown makes a cancelled command receive SIGINT first,
// then SIGKILL after WaitDelay if it is still running.
func setGracefulShutdown(ec *exec.Cmd) {
	ec.Cancel = func() error {
		return ec.Process.Signal(os.Interrupt)
	}
	ec.WaitDelay = WaitDelay
}

// PrependPath prepends a directory to the PATH in the given environment.
func PrependPath(env []string, dir string) []string {
	result := make([]string, 0, len(env)+1)
	pathSet := false
	for _, e := range env {
		if oldPath, found := strings.CutPrefix(e, "PATH="); found {
			result = append(result, "PATH="+dir+string(os.PathListSeparator)+oldPath)
			pathSet = true
		} else {
			result = append(result, e)
		}
	}
	if !pathSet {
		result = append(result, "PATH="+dir)
	}
	return result
}
