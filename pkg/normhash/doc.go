// Package normhash defines the public types of the normalized file hasher:
// the reassembly Config, the Result of a run, sentinel errors with their
// process exit codes, and the Logger and Hasher interfaces.
//
// A normalized hash is the SHA-256 of a file after every line ending has been
// rewritten to a single chosen sequence, so a file saved with CRLF endings
// hashes the same as its LF twin.
package normhash
