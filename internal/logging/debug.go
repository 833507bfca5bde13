package logging

import (
	"fmt"
	"io"
	"os"
)

// output is where debug lines are written; stderr keeps them out of piped CLI output.
var output io.Writer = os.Stderr

// verbose is set by the --verbose flag and application.verbose.
var verbose bool

// DebugEnabled returns true if debug mode is enabled via RITUAL_DEBUG environment variable
// or SetVerbose
func DebugEnabled() bool {
	return verbose || os.Getenv("RITUAL_DEBUG") != ""
}

// SetVerbose turns debug output on regardless of RITUAL_DEBUG.
func SetVerbose(enabled bool) {
	verbose = enabled
}

// SetOutput redirects debug output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := output
	output = w
	return prev
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(output, format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(output, args...)
	}
}
