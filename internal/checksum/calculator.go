package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"iter"

	"github.com/vvka-141/normhash/pkg/normhash"
)

// Calculator is an interface for computing content checksums.
// This abstraction allows for different checksum strategies and algorithms.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized content.
	// Normalization makes checksums independent of the line ending style.
	CalculateNormalized(content []byte) string

	// Normalize returns the exact bytes CalculateNormalized hashes.
	Normalize(content []byte) []byte
}

// SHA256 implements checksum calculation using SHA-256.
// It follows the normhash normalization strategy:
//  1. Split content into lines at LF or CRLF
//  2. Optionally remove all whitespace from each line
//  3. Join lines with the configured EOL, with or without a final EOL
//
// SHA256 holds only an immutable Config and is safe for concurrent use.
type SHA256 struct {
	cfg normhash.Config
}

// New creates a new SHA-256 based calculator for cfg.
func New(cfg normhash.Config) SHA256 {
	return SHA256{cfg: cfg}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	sink := NewSink(nil)
	// Neither bytes.Reader nor the hash can fail.
	_ = sink.Drain(c.chunks(bytes.NewReader(content)))
	return sink.Sum()
}

// Normalize returns content rewritten with the configured line endings.
func (c SHA256) Normalize(content []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(content))
	_ = NewSink(&buf).Drain(c.chunks(bytes.NewReader(content)))
	return buf.Bytes()
}

func (c SHA256) chunks(r io.Reader) iter.Seq2[[]byte, error] {
	return Reassemble(Lines(r), c.cfg)
}

// Stream runs the whole pipeline over r: lines are split, reassembled with
// cfg and hashed. When out is not nil the normalized stream is written to it
// in the same pass. The returned Result carries the digest, the number of
// lines and the number of normalized bytes; on error it is nil.
func Stream(r io.Reader, out io.Writer, cfg normhash.Config) (*normhash.Result, error) {
	lines := 0
	counted := func(yield func([]byte, error) bool) {
		for line, err := range Lines(r) {
			if err == nil {
				lines++
			}
			if !yield(line, err) {
				return
			}
		}
	}

	sink := NewSink(out)
	if err := sink.Drain(Reassemble(counted, cfg)); err != nil {
		return nil, err
	}

	return &normhash.Result{
		Digest:       sink.Sum(),
		Lines:        lines,
		BytesWritten: sink.Written(),
	}, nil
}
