package tasks

import (
	"os"

	"github.com/goyek/goyek/v3"

	"github.com/fastlabs/xtask/bootstrap"
)

func bootstrapTask(w *workspace) goyek.Task {
	return goyek.Task{
		Name:  "bootstrap",
		Usage: "bootstrap a new project from this template",
		Action: func(a *goyek.A) {
			in, out, errOut := w.env.Stdin, w.env.Stdout, w.env.Stderr
			if in == nil {
				in = os.Stdin
			}
			if out == nil {
				out = os.Stdout
			}
			if errOut == nil {
				errOut = os.Stderr
			}
			s := bootstrap.NewSession(w.cfg.Root, *w.cfg.Bootstrap, in, out, errOut)
			if err := s.Run(w.opts.Bootstrap); err != nil {
				a.Fatal(err)
			}
		},
	}
}
