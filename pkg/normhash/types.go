package normhash

import "fmt"

// Config controls how lines are reassembled before hashing.
//
// Config is a plain value: the With* methods return modified copies and never
// mutate the receiver, so a Config can be shared freely once built.
type Config struct {
	// EOL is appended after every normalized line. It may be empty and may
	// contain any bytes, including whitespace and control characters.
	EOL []byte

	// NoEOF suppresses the EOL after the last line.
	NoEOF bool

	// IgnoreWhitespaces removes all whitespace from line content.
	// The EOL sequence itself is never stripped.
	IgnoreWhitespaces bool
}

// DefaultConfig returns the configuration used when nothing is overridden:
// LF line endings, trailing EOL after the last line, whitespace preserved.
func DefaultConfig() Config {
	return Config{EOL: []byte(DefaultEOL)}
}

// WithEOL returns a copy of c using eol as the end-of-line sequence.
func (c Config) WithEOL(eol string) Config {
	c.EOL = []byte(eol)
	return c
}

// WithNoEOF returns a copy of c with the trailing EOL policy set.
func (c Config) WithNoEOF(noEOF bool) Config {
	c.NoEOF = noEOF
	return c
}

// WithIgnoreWhitespaces returns a copy of c with whitespace stripping set.
func (c Config) WithIgnoreWhitespaces(ignore bool) Config {
	c.IgnoreWhitespaces = ignore
	return c
}

// String renders the configuration for diagnostics, quoting the EOL bytes.
func (c Config) String() string {
	return fmt.Sprintf("eol=%q no_eof=%t ignore_whitespaces=%t", c.EOL, c.NoEOF, c.IgnoreWhitespaces)
}

// Result describes a completed hashing run.
type Result struct {
	// Digest is the lowercase hexadecimal SHA-256 of the normalized stream.
	Digest string

	// Lines is the number of logical lines read from the input.
	Lines int

	// BytesRead is the number of raw bytes consumed from the input.
	BytesRead int64

	// BytesWritten is the length of the normalized stream that was hashed.
	BytesWritten int64

	// OutputPath is where the normalized stream was written, empty if nowhere.
	OutputPath string
}

// Hasher computes normalized digests of files.
type Hasher interface {
	// HashFile hashes the file at inputPath using cfg. When outputPath is not
	// empty the normalized stream is also written there.
	HashFile(inputPath, outputPath string, cfg Config) (*Result, error)
}
