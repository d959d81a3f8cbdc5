package checksum

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"math"

	"github.com/vvka-141/normhash/pkg/normhash"
)

// ScanLines is a bufio.SplitFunc that returns each line of text without its
// terminator. A line ends at LF; a CR directly before the LF belongs to the
// terminator. Unlike bufio.ScanLines, a CR at the very end of the input is
// content and is returned as is. The last line is returned even when it has
// no terminator, and empty input produces no lines.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, dropCR(data[:i]), nil
	}
	if atEOF {
		return len(data), data, nil
	}
	// Request more data.
	return 0, nil, nil
}

func dropCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}

// Lines returns a lazy, single-pass sequence of the lines in r.
//
// r is read in buffered chunks. Memory grows with the longest line, never
// with the size of r. A read error is yielded once, with a nil line, and ends
// the sequence. A yielded line is only valid until the next iteration step.
func Lines(r io.Reader) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, normhash.ReadBufferSize), math.MaxInt)
		scanner.Split(ScanLines)

		for scanner.Scan() {
			if !yield(scanner.Bytes(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(nil, err)
		}
	}
}
