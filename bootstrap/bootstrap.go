// Package bootstrap turns the template workspace into a named project.
//
// A run applies the literal substitutions of a Plan file by file and then
// renames the template directory. Steps are independent: a failing step is
// reported and the remaining steps still run. Nothing is rolled back.
package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Status is the outcome of one step.
type Status int

const (
	// StatusOK means the step completed.
	StatusOK Status = iota
	// StatusSkipped means an optional step found nothing to do.
	StatusSkipped
	// StatusFailed means the step returned an error.
	StatusFailed
)

// StepResult is the outcome of one step.
type StepResult struct {
	Label  string
	Status Status
	Err    error
}

// Result collects the step outcomes of a run.
type Result struct {
	Steps []StepResult
}

// Failed returns the failed steps.
func (r Result) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if s.Status == StatusFailed {
			failed = append(failed, s)
		}
	}
	return failed
}

// Err joins the errors of all failed steps, or returns nil.
func (r Result) Err() error {
	var errs []error
	for _, s := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", s.Label, s.Err))
	}
	return errors.Join(errs...)
}

// Bootstrapper applies a Plan to the workspace at Root.
type Bootstrapper struct {
	Root   string
	Plan   Plan
	Report *Report
}

// New returns a Bootstrapper reporting progress to out and errors to errOut.
func New(root string, plan Plan, out, errOut io.Writer) *Bootstrapper {
	return &Bootstrapper{
		Root:   root,
		Plan:   plan.WithDefaults(),
		Report: NewReport(out, errOut),
	}
}

// CheckRoot verifies that Root is an unbootstrapped template workspace.
func (b *Bootstrapper) CheckRoot() error {
	if !exists(b.path(b.Plan.RootManifest), false) || !exists(b.path(b.Plan.TaskRunnerDir), true) {
		return &PreconditionError{Reason: "this command must be run from the project root directory"}
	}
	if !exists(b.path(b.Plan.TemplateDir), true) {
		return &PreconditionError{Reason: fmt.Sprintf(
			"the %q directory was not found; this project may have already been bootstrapped",
			b.Plan.TemplateDir)}
	}
	return nil
}

// Run applies every step of the plan and then renames the template directory.
func (b *Bootstrapper) Run(project ProjectName, account AccountName) Result {
	var res Result
	for _, step := range b.Plan.Steps {
		res.Steps = append(res.Steps, b.apply(step.Expand(project, account)))
	}
	res.Steps = append(res.Steps, b.rename(project))
	return res
}

func (b *Bootstrapper) apply(step Step) StepResult {
	label := fmt.Sprintf("Updating %s...", step.File)
	b.Report.Task(label)
	res := StepResult{Label: label}

	path := b.path(step.File)
	if step.Optional {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			res.Status = StatusSkipped
			res.Err = fmt.Errorf("%s not found", step.File)
			b.Report.Outcome(res)
			return res
		}
	}

	for _, rule := range step.Rules {
		if _, err := Substitute(path, rule.Old, rule.New); err != nil {
			res.Status = StatusFailed
			res.Err = err
			break
		}
	}
	b.Report.Outcome(res)
	return res
}

func (b *Bootstrapper) rename(project ProjectName) StepResult {
	label := fmt.Sprintf("Renaming directory %q to %q...", b.Plan.TemplateDir, project)
	b.Report.Task(label)
	res := StepResult{Label: label}

	target := b.path(string(project))
	if _, err := os.Lstat(target); err == nil {
		res.Status = StatusFailed
		res.Err = &CollisionError{Path: string(project)}
	} else if err := os.Rename(b.path(b.Plan.TemplateDir), target); err != nil {
		res.Status = StatusFailed
		res.Err = err
	}
	b.Report.Outcome(res)
	return res
}

func (b *Bootstrapper) path(rel string) string {
	return filepath.Join(b.Root, filepath.FromSlash(rel))
}

func exists(path string, dir bool) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir() == dir
}
