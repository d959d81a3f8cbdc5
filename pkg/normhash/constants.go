package normhash

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Digest computed and printed
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration file or environment override
	ExitInputError   = 20 // Source file missing or unreadable
	ExitOutputError  = 21 // Output file could not be created or written
)

const (
	// DefaultEOL is the end-of-line sequence appended after each normalized line.
	DefaultEOL = "\n"

	// ReadBufferSize is the initial size of the buffer used to scan input files.
	// The buffer grows only when a single line is longer than this.
	ReadBufferSize = 64 * 1024

	// WriteBufferSize is the size of the buffer in front of the output file.
	WriteBufferSize = 32 * 1024

	// EnvPrefix prefixes every environment variable read by normhash.
	EnvPrefix = "NORMHASH_"
)
