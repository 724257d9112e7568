// Package golangcilint provides the golangci-lint tool for Go linting and formatting.
package golangcilint

import "github.com/fastlabs/xtask"

// Name is the binary name for golangci-lint.
const Name = "golangci-lint"

// Version is the version of golangci-lint to install.
// renovate: datasource=go depName=github.com/golangci/golangci-lint/v2
const Version = "v2.1.6"

// Tool installs golangci-lint on first use.
var Tool = xtask.Tool{
	Name:    Name,
	Package: "github.com/golangci/golangci-lint/v2/cmd/golangci-lint",
	Version: Version,
}

// RunArgs returns the arguments for linting a module.
func RunArgs(fix bool) []string {
	args := []string{"run"}
	if fix {
		args = append(args, "--fix")
	}
	return args
}

// FmtArgs returns the arguments for formatting a module.
// Without fix, the formatter only reports a diff and fails if there is one.
func FmtArgs(fix bool) []string {
	if fix {
		return []string{"fmt"}
	}
	return []string{"fmt", "--diff"}
}
