package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Cleanup removes the bootstrap leftovers listed in the plan.
// A missing path means the workspace is not in the expected post-bootstrap
// state; that step fails and the others still run.
func (b *Bootstrapper) Cleanup() Result {
	var res Result
	for _, rel := range b.Plan.Cleanup {
		label := fmt.Sprintf("Removing %s...", rel)
		b.Report.Task(label)
		step := StepResult{Label: label}

		path := b.path(rel)
		if _, err := os.Lstat(path); errors.Is(err, fs.ErrNotExist) {
			step.Status = StatusFailed
			step.Err = fmt.Errorf("broken bootstrap cleanup state: %s not found", rel)
		} else if err := os.RemoveAll(path); err != nil {
			step.Status = StatusFailed
			step.Err = err
		}

		b.Report.Outcome(step)
		res.Steps = append(res.Steps, step)
	}
	return res
}
