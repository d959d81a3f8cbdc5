package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"iter"
)

// Sink accumulates the normalized stream into a SHA-256 digest and, when
// given an output writer, copies every byte to it as well.
type Sink struct {
	hash    hash.Hash
	w       io.Writer
	written int64
}

// NewSink creates a Sink. out may be nil, in which case bytes are only hashed.
func NewSink(out io.Writer) *Sink {
	h := sha256.New()
	s := &Sink{hash: h, w: h}
	if out != nil {
		s.w = io.MultiWriter(h, out)
	}
	return s
}

// Write hashes p and forwards it to the output writer.
func (s *Sink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.written += int64(n)
	return n, err
}

// Drain writes every chunk into the sink. It stops at the first error,
// either from chunks or from the output writer, and returns it unchanged.
func (s *Sink) Drain(chunks iter.Seq2[[]byte, error]) error {
	for chunk, err := range chunks {
		if err != nil {
			return err
		}
		if _, err := s.Write(chunk); err != nil {
			return err
		}
	}
	return nil
}

// Written returns the number of bytes that went through the sink.
func (s *Sink) Written() int64 {
	return s.written
}

// Sum returns the lowercase hex digest of everything written so far.
func (s *Sink) Sum() string {
	return hex.EncodeToString(s.hash.Sum(nil))
}
