package bootstrap

import (
	"fmt"
	"io"
)

// Options are the inputs of one bootstrap invocation.
// Empty names are asked for interactively.
type Options struct {
	ProjectName string
	Account     string
	// Yes skips the confirmation question.
	Yes bool
	// Cleanup removes bootstrap leftovers instead of bootstrapping.
	Cleanup bool
}

// Session runs one bootstrap invocation end to end.
type Session struct {
	*Bootstrapper
	Prompter *Prompter
}

// NewSession returns a Session for the workspace at root, reading answers
// from in. Progress goes to out and error lines to errOut.
func NewSession(root string, plan Plan, in io.Reader, out, errOut io.Writer) *Session {
	return &Session{
		Bootstrapper: New(root, plan, out, errOut),
		Prompter:     NewPrompter(in, out, errOut),
	}
}

// Run performs a bootstrap or cleanup according to opts.
// A cancelled confirmation returns nil without touching any file.
// Failed steps do not stop the run; they are returned together at the end.
func (s *Session) Run(opts Options) error {
	if opts.Cleanup {
		s.Report.Warn("Starting bootstrap cleanup...")
		if err := s.Cleanup().Err(); err != nil {
			return err
		}
		s.Report.Info("Bootstrap cleanup complete!")
		return nil
	}

	if err := s.CheckRoot(); err != nil {
		s.Report.Error(err)
		return err
	}
	s.Report.Title()

	project, account, err := s.inputs(opts)
	if err != nil {
		return err
	}

	s.Report.Preview(project, account)
	if !opts.Yes {
		ok, err := s.Prompter.Confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			s.Report.Warn("Cancelled.")
			return nil
		}
	}

	s.Report.Info("\nStarting batch rename...\n")
	res := s.Bootstrapper.Run(project, account)
	if err := res.Err(); err != nil {
		return fmt.Errorf("bootstrap finished with %d failed step(s): %w", len(res.Failed()), err)
	}
	s.Report.Complete(project)
	return nil
}

// inputs validates names given in opts and prompts for missing ones.
func (s *Session) inputs(opts Options) (ProjectName, AccountName, error) {
	var (
		project ProjectName
		account AccountName
		err     error
	)

	if opts.ProjectName != "" {
		project, err = ValidateProjectName(opts.ProjectName)
	} else {
		project, err = PromptUntilValid(s.Prompter, "Enter the new project name", ValidateProjectName)
	}
	if err != nil {
		return "", "", err
	}

	if opts.Account != "" {
		account, err = ValidateAccountName(opts.Account)
	} else {
		account, err = PromptUntilValid(s.Prompter, "Enter the GitHub username/org", ValidateAccountName)
	}
	if err != nil {
		return "", "", err
	}
	return project, account, nil
}
