// Package checksum computes line-ending independent SHA-256 checksums.
//
// The work is a three stage pipeline over lazy sequences:
//
//   - Lines splits raw bytes into lines at LF or CRLF. A lone CR is content.
//   - Reassemble joins the lines again with a configured EOL, optionally
//     without a final EOL and optionally with all whitespace removed.
//   - Sink hashes the resulting chunks and can copy them to a writer.
//
// Stream wires the three together for an io.Reader. The SHA256 calculator
// offers the same over in-memory content.
//
// # Example Usage
//
//	calculator := checksum.New(normhash.DefaultConfig())
//	digest := calculator.CalculateNormalized(fileContent)
//
//	res, err := checksum.Stream(file, nil, normhash.DefaultConfig().WithNoEOF(true))
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines. Sink is not.
package checksum
