// Package cli implements the xtask command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/goyek/goyek/v3"
	"github.com/goyek/goyek/v3/middleware"
	"github.com/spf13/cobra"

	"github.com/fastlabs/xtask"
	"github.com/fastlabs/xtask/bootstrap"
	"github.com/fastlabs/xtask/tasks"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// UsageError marks invalid command-line input.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, env tasks.Env, stderr io.Writer) int {
	root := NewRootCmd(env)
	root.SetArgs(args)
	root.SetErr(stderr)
	if env.Stdin != nil {
		root.SetIn(env.Stdin)
	}
	if env.Stdout != nil {
		root.SetOut(env.Stdout)
	}

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "error: %v\n", err)
		fmt.Fprintln(stderr, "Run 'xtask --help' for usage.")
		return ExitUsage
	}
	var failErr *goyek.FailError
	if !errors.As(err, &failErr) {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return ExitFailure
}

type app struct {
	env     tasks.Env
	root    string
	config  string
	verbose bool
}

// NewRootCmd returns the xtask root command.
func NewRootCmd(env tasks.Env) *cobra.Command {
	a := &app{env: env}

	cmd := &cobra.Command{
		Use:           "xtask",
		Short:         "Workspace task runner and template bootstrapper",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	cmd.PersistentFlags().StringVar(&a.root, "root", "", "workspace root (default: closest directory with go.work; bootstrap uses the working directory)")
	cmd.PersistentFlags().StringVar(&a.config, "config", "", "config file (default: <root>/"+xtask.ConfigFile+")")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "print output of successful tasks")

	cmd.AddCommand(
		a.buildCmd(),
		a.bootstrapCmd(),
		a.lintCmd(),
		a.testCmd(),
		a.runCmd(),
	)
	return cmd
}

func (a *app) buildCmd() *cobra.Command {
	var opts tasks.Options
	c := &cobra.Command{
		Use:   "build",
		Short: "Compile workspace packages",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd, &opts, "build")
		},
	}
	c.Flags().BoolVar(&opts.Locked, "locked", false, "assert that go.mod and go.sum files remain unchanged")
	return c
}

func (a *app) bootstrapCmd() *cobra.Command {
	var opts tasks.Options
	c := &cobra.Command{
		Use:   "bootstrap",
		Short: "Bootstrap a new project from this template",
		Args:  noArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateBootstrapFlags(cmd, opts.Bootstrap)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd, &opts, "bootstrap")
		},
	}
	c.Flags().StringVar(&opts.Bootstrap.ProjectName, "project-name", "", "name of the new project (e.g., my-awesome-project)")
	c.Flags().StringVar(&opts.Bootstrap.Account, "github-account", "", "GitHub username or organization (e.g., golang)")
	c.Flags().BoolVarP(&opts.Bootstrap.Yes, "yes", "y", false, "do not ask for confirmation")
	c.Flags().BoolVar(&opts.Bootstrap.Cleanup, "cleanup", false, "remove bootstrap leftovers after a successful bootstrap")
	return c
}

// validateBootstrapFlags applies the interactive validation rules to names
// given as flags, so a bad name fails before anything is touched.
func validateBootstrapFlags(cmd *cobra.Command, opts bootstrap.Options) error {
	if cmd.Flags().Changed("project-name") {
		if _, err := bootstrap.ValidateProjectName(opts.ProjectName); err != nil {
			return &UsageError{Err: fmt.Errorf("invalid --project-name: %w", err)}
		}
	}
	if cmd.Flags().Changed("github-account") {
		if _, err := bootstrap.ValidateAccountName(opts.Account); err != nil {
			return &UsageError{Err: fmt.Errorf("invalid --github-account: %w", err)}
		}
	}
	return nil
}

func (a *app) lintCmd() *cobra.Command {
	var opts tasks.Options
	c := &cobra.Command{
		Use:   "lint",
		Short: "Run golangci-lint, format, go.mod, spelling and license checks",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd, &opts, "lint")
		},
	}
	c.Flags().BoolVar(&opts.Fix, "fix", false, "automatically apply lint suggestions")
	return c
}

func (a *app) testCmd() *cobra.Command {
	var opts tasks.Options
	c := &cobra.Command{
		Use:   "test",
		Short: "Run unit tests",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd, &opts, "test")
		},
	}
	c.Flags().BoolVar(&opts.NoCapture, "no-capture", false, "run tests serially and show their output")
	return c
}

func (a *app) runCmd() *cobra.Command {
	var opts tasks.Options
	c := &cobra.Command{
		Use:   "run TASK...",
		Short: "Run registered tasks by name (e.g., lint-spell)",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &UsageError{Err: errors.New("no task provided")}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.execute(cmd, &opts, args...)
		},
	}
	c.Flags().BoolVar(&opts.Locked, "locked", false, "assert that go.mod and go.sum files remain unchanged")
	c.Flags().BoolVar(&opts.Fix, "fix", false, "automatically apply lint suggestions")
	c.Flags().BoolVar(&opts.NoCapture, "no-capture", false, "run tests serially and show their output")
	return c
}

// execute defines the tasks on a fresh flow and runs the named ones.
func (a *app) execute(cmd *cobra.Command, opts *tasks.Options, names ...string) error {
	// bootstrap renames directories under the root, so it only runs from
	// the root itself.
	cfg, err := a.loadConfig(!slices.Contains(names, "bootstrap"))
	if err != nil {
		return err
	}

	env := a.env
	if env.Stdin == nil {
		env.Stdin = cmd.InOrStdin()
	}
	if env.Stdout == nil {
		env.Stdout = cmd.OutOrStdout()
	}
	if env.Stderr == nil {
		env.Stderr = cmd.ErrOrStderr()
	}

	flow := &goyek.Flow{}
	tasks.New(flow, cfg, opts, env)
	for _, name := range names {
		if !defined(flow, name) {
			return &UsageError{Err: fmt.Errorf("task provided but not defined: %s", name)}
		}
	}

	flow.SetOutput(cmd.OutOrStdout())
	flow.Use(middleware.ReportStatus)
	if !a.verbose {
		flow.Use(middleware.SilentNonFailed)
	}
	return flow.Execute(cmd.Context(), names)
}

// loadConfig resolves the workspace root and reads its config. Without
// --root, the root is the working directory, or with walkUp the closest
// directory above it containing go.work.
func (a *app) loadConfig(walkUp bool) (xtask.Config, error) {
	root := a.root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return xtask.Config{}, fmt.Errorf("get working directory: %w", err)
		}
		root = wd
		if walkUp {
			root = xtask.FindRoot(wd)
		}
	}
	return xtask.LoadConfig(root, a.config)
}

func defined(flow *goyek.Flow, name string) bool {
	for _, t := range flow.Tasks() {
		if t.Name() == name {
			return true
		}
	}
	return false
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &UsageError{Err: fmt.Errorf("unexpected argument %q for %q", args[0], cmd.CommandPath())}
	}
	return nil
}
