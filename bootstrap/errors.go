package bootstrap

import "fmt"

// ValidationError reports an unacceptable project or account name.
type ValidationError struct {
	// Field names the rejected input, e.g. "project name".
	Field string
	// Reason is the user-facing explanation.
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// PreconditionError reports that bootstrap cannot run from the current workspace.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

// CollisionError reports that the rename target already exists.
type CollisionError struct {
	Path string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("directory %q already exists", e.Path)
}
