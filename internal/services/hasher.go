package services

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/vvka-141/normhash/internal/checksum"
	"github.com/vvka-141/normhash/internal/files/filesystem"
	"github.com/vvka-141/normhash/pkg/normhash"
)

// FileHasher implements the Hasher interface on top of a filesystem provider.
// It holds no per-call state and is safe for concurrent HashFile calls.
type FileHasher struct {
	fs     filesystem.FileSystemProvider
	logger normhash.Logger
}

// NewFileHasher creates a new FileHasher with all dependencies injected.
// Panics on nil dependencies: those are programmer errors.
func NewFileHasher(fs filesystem.FileSystemProvider, logger normhash.Logger) *FileHasher {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &FileHasher{fs: fs, logger: logger}
}

// HashFile hashes inputPath in a single pass. When outputPath is not empty
// the normalized stream is written there as well.
//
// Failures are wrapped with normhash.ErrInputRead or normhash.ErrOutputWrite.
// On any failure no Result is returned and a partially written output file
// is removed.
func (h *FileHasher) HashFile(inputPath, outputPath string, cfg normhash.Config) (res *normhash.Result, err error) {
	h.logger.Verbose("Hashing %s with %s", inputPath, cfg)

	in, err := h.fs.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", normhash.ErrInputRead, err)
	}
	defer in.Close()

	src := &inputReader{r: in, path: inputPath}

	var out *bufio.Writer
	if outputPath != "" {
		if err := h.checkDistinct(inputPath, outputPath); err != nil {
			return nil, err
		}

		f, createErr := h.fs.Create(outputPath)
		if createErr != nil {
			return nil, fmt.Errorf("%w: %w", normhash.ErrOutputWrite, createErr)
		}
		h.logger.Verbose("Writing normalized content to %s", outputPath)

		out = bufio.NewWriterSize(&outputWriter{w: f, path: outputPath}, normhash.WriteBufferSize)
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				res, err = nil, fmt.Errorf("%w: %s: %w", normhash.ErrOutputWrite, outputPath, closeErr)
			}
			if err != nil {
				h.discardOutput(outputPath)
			}
		}()
	}

	res, err = h.stream(src, out, cfg)
	if err != nil {
		return nil, err
	}

	res.BytesRead = src.n
	res.OutputPath = outputPath
	h.logger.Verbose("Read %d bytes in %d lines, hashed %d normalized bytes", res.BytesRead, res.Lines, res.BytesWritten)
	return res, nil
}

func (h *FileHasher) stream(src io.Reader, out *bufio.Writer, cfg normhash.Config) (*normhash.Result, error) {
	if out == nil {
		return checksum.Stream(src, nil, cfg)
	}

	res, err := checksum.Stream(src, out, cfg)
	if err != nil {
		return nil, err
	}
	if err := out.Flush(); err != nil {
		return nil, err
	}
	return res, nil
}

// checkDistinct fails when outputPath names the input file itself. Creating
// the output would truncate the input before it is read.
func (h *FileHasher) checkDistinct(inputPath, outputPath string) error {
	outInfo, err := h.fs.Stat(outputPath)
	if err != nil {
		// Not there yet, Create reports anything worse.
		return nil
	}
	inInfo, err := h.fs.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", normhash.ErrInputRead, inputPath, err)
	}
	if h.fs.SameFile(inInfo, outInfo) {
		return fmt.Errorf("%w: %s: output is the input file %s", normhash.ErrOutputWrite, outputPath, inputPath)
	}
	return nil
}

func (h *FileHasher) discardOutput(path string) {
	if err := h.fs.Remove(path); err != nil {
		h.logger.Verbose("Could not remove partial output %s: %v", path, err)
		return
	}
	h.logger.Verbose("Removed partial output %s", path)
}

// inputReader counts consumed bytes and tags read failures as input errors.
type inputReader struct {
	r    io.Reader
	path string
	n    int64
}

func (r *inputReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.n += int64(n)
	if err != nil && !errors.Is(err, io.EOF) {
		err = fmt.Errorf("%w: %s: %w", normhash.ErrInputRead, r.path, err)
	}
	return n, err
}

// outputWriter tags write failures as output errors.
type outputWriter struct {
	w    io.Writer
	path string
}

func (w *outputWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", normhash.ErrOutputWrite, w.path, err)
	}
	return n, err
}
