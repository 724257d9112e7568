package tasks

import (
	"github.com/goyek/goyek/v3"

	"github.com/fastlabs/xtask"
)

func testTask(w *workspace) goyek.Task {
	return goyek.Task{
		Name:  "test",
		Usage: "run unit tests",
		Action: func(a *goyek.A) {
			w.exec(a, xtask.Command{Dir: w.cfg.Root, Name: "go", Args: testArgs(w.opts.NoCapture)})
		},
	}
}

func testArgs(noCapture bool) []string {
	args := []string{"test"}
	if noCapture {
		args = append(args, "-v", "-p=1", "-count=1")
	}
	return append(args, "work")
}
