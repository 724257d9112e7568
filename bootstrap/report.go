package bootstrap

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// labelWidth is the column where step outcomes are printed.
const labelWidth = 60

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	blue   = color.New(color.FgBlue)
	bold   = color.New(color.Bold)
)

// Report prints bootstrap progress to out and errors to errOut.
type Report struct {
	out    io.Writer
	errOut io.Writer
}

// NewReport returns a Report writing progress to out and errors to errOut.
func NewReport(out, errOut io.Writer) *Report {
	return &Report{out: out, errOut: errOut}
}

// Task prints a step label padded with dots up to the outcome column.
func (r *Report) Task(label string) {
	pad := labelWidth - len(label)
	if pad < 1 {
		pad = 1
	}
	fmt.Fprint(r.out, label+strings.Repeat(".", pad))
}

// Outcome prints the outcome of the step started with Task.
func (r *Report) Outcome(res StepResult) {
	switch res.Status {
	case StatusOK:
		green.Fprintln(r.out, "[OK]")
	case StatusSkipped:
		yellow.Fprintf(r.out, "[SKIP] %v\n", res.Err)
	default:
		red.Fprintf(r.errOut, "[ERROR] %v\n", res.Err)
	}
}

// Error prints a standalone error line.
func (r *Report) Error(err error) {
	red.Fprintf(r.errOut, "ERROR: %v\n", err)
}

// Title prints the bootstrap banner.
func (r *Report) Title() {
	line := strings.Repeat("=", 40)
	fmt.Fprintln(r.out)
	blue.Fprintln(r.out, line)
	blue.Fprintln(r.out, "     Template Project Bootstrapper      ")
	blue.Fprintln(r.out, line)
	fmt.Fprintln(r.out)
}

// Preview prints what the project will be called.
func (r *Report) Preview(project ProjectName, account AccountName) {
	fmt.Fprintln(r.out)
	blue.Fprintln(r.out, "Preview:")
	fmt.Fprintf(r.out, "  Project name:  %s\n", green.Sprint(project))
	fmt.Fprintf(r.out, "  GitHub repo:   %s\n", green.Sprintf("%s/%s", account, project))
	fmt.Fprintf(r.out, "  Go module:     %s\n", green.Sprintf("github.com/%s/%s", account, project))
	fmt.Fprintln(r.out)
}

// Info prints a highlighted line.
func (r *Report) Info(msg string) {
	blue.Fprintln(r.out, msg)
}

// Warn prints a warning line.
func (r *Report) Warn(msg string) {
	yellow.Fprintln(r.out, msg)
}

// Complete prints the closing banner and next steps.
func (r *Report) Complete(project ProjectName) {
	line := strings.Repeat("=", 40)
	fmt.Fprintln(r.out)
	green.Fprintln(r.out, line)
	green.Fprintln(r.out, "           Bootstrap completed!         ")
	green.Fprintln(r.out, line)
	fmt.Fprintln(r.out)
	bold.Fprintln(r.out, "Next steps:")
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "1. Review the changes:\n    %s\n\n", yellow.Sprint("git diff"))
	fmt.Fprintf(r.out, "2. Update the project description in README.md\n\n")
	fmt.Fprintf(r.out, "3. Commit your changes:\n    %s\n    %s\n\n",
		yellow.Sprint("git add ."),
		yellow.Sprintf("git commit -m \"chore: initialize project as %s\"", project))
	fmt.Fprintf(r.out, "4. Remove the bootstrap leftovers:\n    %s\n\n", yellow.Sprint("xtask bootstrap --cleanup"))
}
