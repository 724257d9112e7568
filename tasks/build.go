package tasks

import (
	"github.com/goyek/goyek/v3"

	"github.com/fastlabs/xtask"
)

func buildTask(w *workspace) goyek.Task {
	return goyek.Task{
		Name:  "build",
		Usage: "compile workspace packages, tests included",
		Action: func(a *goyek.A) {
			w.exec(a, xtask.Command{Dir: w.cfg.Root, Name: "go", Args: buildArgs("build", w.opts.Locked)})
			// vet type-checks test files and examples, which build skips.
			w.exec(a, xtask.Command{Dir: w.cfg.Root, Name: "go", Args: buildArgs("vet", w.opts.Locked)})
		},
	}
}

func buildArgs(sub string, locked bool) []string {
	args := []string{sub}
	if locked {
		args = append(args, "-mod=readonly")
	}
	return append(args, "work")
}
