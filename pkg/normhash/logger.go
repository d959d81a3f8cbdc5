package normhash

// Logger provides a pluggable logging interface for normhash operations.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Error reports a failed run on stderr.
	// Always logged regardless of verbose mode.
	Error(format string, args ...interface{})
}
