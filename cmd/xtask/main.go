// Command xtask runs workspace tasks and bootstraps projects from the template.
//
// Usage:
//
//	xtask build [--locked]
//	xtask bootstrap [--project-name NAME] [--github-account ACCOUNT] [--yes] [--cleanup]
//	xtask lint [--fix]
//	xtask test [--no-capture]
//	xtask run TASK...
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/fastlabs/xtask/internal/cli"
	"github.com/fastlabs/xtask/tasks"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], tasks.Env{}, os.Stderr)
	stop()
	os.Exit(code)
}
