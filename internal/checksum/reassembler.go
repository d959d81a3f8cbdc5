package checksum

import (
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/vvka-141/normhash/pkg/normhash"
)

// Reassemble turns a sequence of lines into the normalized stream described
// by cfg, yielded as chunks of line content and EOL sequences.
//
// Every line is followed by cfg.EOL, except the last one when cfg.NoEOF is
// set. No lines means no output at all, whatever cfg.NoEOF says. Errors from
// lines are passed through and end the sequence.
//
// Chunks must not be modified and are only valid until the next step.
func Reassemble(lines iter.Seq2[[]byte, error], cfg normhash.Config) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		var stripped []byte
		first := true

		for line, err := range lines {
			if err != nil {
				yield(nil, err)
				return
			}

			// The EOL of the previous line is emitted lazily so the last
			// line can go without one.
			if !first && len(cfg.EOL) > 0 {
				if !yield(cfg.EOL, nil) {
					return
				}
			}
			first = false

			if cfg.IgnoreWhitespaces {
				stripped = appendStripped(stripped[:0], line)
				line = stripped
			}
			if len(line) > 0 {
				if !yield(line, nil) {
					return
				}
			}
		}

		if !first && !cfg.NoEOF && len(cfg.EOL) > 0 {
			yield(cfg.EOL, nil)
		}
	}
}

// StripWhitespace returns a copy of line with every whitespace character
// removed. Line is decoded as UTF-8 and a character is whitespace when
// unicode.IsSpace reports so. Bytes that are not valid UTF-8 are kept.
func StripWhitespace(line []byte) []byte {
	return appendStripped(make([]byte, 0, len(line)), line)
}

func appendStripped(dst, src []byte) []byte {
	for len(src) > 0 {
		if c := src[0]; c < utf8.RuneSelf {
			if !isASCIISpace(c) {
				dst = append(dst, c)
			}
			src = src[1:]
			continue
		}

		// Invalid sequences decode to (RuneError, 1) and are never spaces.
		r, size := utf8.DecodeRune(src)
		if !unicode.IsSpace(r) {
			dst = append(dst, src[:size]...)
		}
		src = src[size:]
	}
	return dst
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
