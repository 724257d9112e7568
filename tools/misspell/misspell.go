// Package misspell provides the misspell spell checker.
package misspell

import "github.com/fastlabs/xtask"

// Name is the binary name for misspell.
const Name = "misspell"

// renovate: datasource=go depName=github.com/golangci/misspell
const Version = "v0.7.0"

// Tool installs misspell on first use.
var Tool = xtask.Tool{
	Name:    Name,
	Package: "github.com/golangci/misspell/cmd/misspell",
	Version: Version,
}

// Args returns the arguments for checking the given paths.
// misspell exits non-zero when a misspelling is found.
func Args(paths ...string) []string {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	return append([]string{"-error"}, paths...)
}
