package tasks

import (
	"github.com/goyek/goyek/v3"

	"github.com/fastlabs/xtask"
	"github.com/fastlabs/xtask/tools/addlicense"
	"github.com/fastlabs/xtask/tools/golangcilint"
	"github.com/fastlabs/xtask/tools/misspell"
)

func golangciTask(w *workspace) goyek.Task {
	return goyek.Task{
		Name:  "lint-golangci",
		Usage: "run golangci-lint in every module",
		Action: func(a *goyek.A) {
			bin := w.tool(a, golangcilint.Tool)
			for _, dir := range w.modules(a) {
				w.exec(a, xtask.Command{Dir: dir, Name: bin, Args: golangcilint.RunArgs(w.opts.Fix)})
			}
		},
	}
}

func formatTask(w *workspace) goyek.Task {
	return goyek.Task{
		Name:  "lint-format",
		Usage: "check (or apply) Go formatting in every module",
		Action: func(a *goyek.A) {
			bin := w.tool(a, golangcilint.Tool)
			for _, dir := range w.modules(a) {
				w.exec(a, xtask.Command{Dir: dir, Name: bin, Args: golangcilint.FmtArgs(w.opts.Fix)})
			}
		},
	}
}

func modTask(w *workspace) goyek.Task {
	return goyek.Task{
		Name:  "lint-mod",
		Usage: "check (or apply) go mod tidy in every module",
		Action: func(a *goyek.A) {
			args := []string{"mod", "tidy"}
			if !w.opts.Fix {
				args = append(args, "-diff")
			}
			for _, dir := range w.modules(a) {
				w.exec(a, xtask.Command{Dir: dir, Name: "go", Args: args})
			}
		},
	}
}

func spellTask(w *workspace) goyek.Task {
	return goyek.Task{
		Name:  "lint-spell",
		Usage: "check spelling",
		Action: func(a *goyek.A) {
			bin := w.tool(a, misspell.Tool)
			w.exec(a, xtask.Command{Dir: w.cfg.Root, Name: bin, Args: misspell.Args()})
		},
	}
}

func licenseTask(w *workspace) goyek.Task {
	return goyek.Task{
		Name:  "lint-license",
		Usage: "check (or add) license headers",
		Action: func(a *goyek.A) {
			bin := w.tool(a, addlicense.Tool)
			w.exec(a, xtask.Command{Dir: w.cfg.Root, Name: bin, Args: addlicense.Args(w.cfg.License, w.opts.Fix)})
		},
	}
}
