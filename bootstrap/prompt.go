package bootstrap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Prompter reads operator answers line by line.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// NewPrompter returns a Prompter reading from in, writing prompts to out and
// rejections to errOut.
func NewPrompter(in io.Reader, out, errOut io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, errOut: errOut}
}

// Line prints label and returns the next line of input without the line ending.
// A final line without a newline is returned as-is; no input at all is an error.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read %q: %w", label, io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("read %q: %w", label, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question defaulting to no.
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.Line(label + " (y/N)")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// PromptUntilValid asks for input until validate accepts it.
// Rejected input is reported and the question is asked again.
func PromptUntilValid[T any](p *Prompter, label string, validate func(string) (T, error)) (T, error) {
	for {
		input, err := p.Line(label)
		if err != nil {
			var zero T
			return zero, err
		}
		value, err := validate(input)
		if err == nil {
			return value, nil
		}
		color.New(color.FgRed).Fprintf(p.errOut, "ERROR: %v\n", err)
	}
}
