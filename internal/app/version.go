package app

import (
	"fmt"
	"io"
)

// HasVersionFlag reports whether args requests -version/--version, checked
// before flag parsing so it works even when other required flags are
// missing.
func HasVersionFlag(args []string) bool {
	for _, a := range args {
		if a == "-version" || a == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the build version to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "bignumctl %s\n", Version)
}
