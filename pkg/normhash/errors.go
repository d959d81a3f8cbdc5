package normhash

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	res, err := hasher.HashFile("in.txt", "", normhash.DefaultConfig())
//	if errors.Is(err, normhash.ErrInputRead) {
//	    // Handle missing or unreadable source file
//	}
var (
	// ErrInputRead indicates the source file is missing, unreadable or failed mid-read.
	ErrInputRead = errors.New("input read failed")

	// ErrOutputWrite indicates the normalized output could not be created or written.
	ErrOutputWrite = errors.New("output write failed")

	// ErrInvalidConfig indicates a config file or environment override could not be parsed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUsage indicates the command line was malformed.
	ErrUsage = errors.New("usage error")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInputRead):
		return ExitInputError
	case errors.Is(err, ErrOutputWrite):
		return ExitOutputError
	}

	// cobra reports flag parsing problems as plain errors
	errStr := err.Error()
	if strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "flag needs an argument") ||
		strings.HasPrefix(errStr, "accepts ") ||
		strings.HasPrefix(errStr, "requires at least") ||
		strings.HasPrefix(errStr, "invalid argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}
