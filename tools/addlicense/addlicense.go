// Package addlicense provides the addlicense license header tool.
package addlicense

import "github.com/fastlabs/xtask"

// Name is the binary name for addlicense.
const Name = "addlicense"

// renovate: datasource=go depName=github.com/google/addlicense
const Version = "v1.1.1"

// Tool installs addlicense on first use.
var Tool = xtask.Tool{
	Name:    Name,
	Package: "github.com/google/addlicense",
	Version: Version,
}

// Args returns the arguments for checking (or, with fix, adding) license
// headers under the current directory.
func Args(cfg xtask.LicenseConfig, fix bool) []string {
	var args []string
	if !fix {
		args = append(args, "-check")
	}
	args = append(args, "-c", cfg.Holder, "-l", cfg.Kind)
	for _, pattern := range cfg.Ignore {
		args = append(args, "-ignore", pattern)
	}
	return append(args, ".")
}
