// Package errors formats failures at the command-line boundary.
package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/medreminder/internal/logger"
)

// prefix leads every user-facing error line
const prefix = "Error: "

// Format renders err for the terminal. A nil error formats as the empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return prefix + err.Error()
}

// Formatf is Format for an ad-hoc message
func Formatf(format string, args ...interface{}) string {
	return prefix + fmt.Sprintf(format, args...)
}

// Report logs err and writes its formatted form to w. It returns whether
// there was anything to report.
func Report(w io.Writer, err error) bool {
	if err == nil {
		return false
	}
	logger.Error("command failed", "error", err)
	fmt.Fprintln(w, Format(err))
	return true
}

// Fatal reports err on stderr and exits with status 1. A nil error is ignored.
func Fatal(err error) {
	if Report(os.Stderr, err) {
		os.Exit(1)
	}
}

// Fatalf reports a formatted message on stderr and exits with status 1
func Fatalf(format string, args ...interface{}) {
	Fatal(fmt.Errorf(format, args...))
}
