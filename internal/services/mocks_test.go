package services

import (
	"fmt"
	"io"
	"sync"

	"github.com/vvka-141/normhash/internal/files/filesystem"
)

type recordingLogger struct {
	mu       sync.Mutex
	verbose  []string
	errorMsg []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = append(l.verbose, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errorMsg = append(l.errorMsg, fmt.Sprintf(format, args...))
}

// closeFailingFS wraps a memory filesystem so that closing created files fails.
type closeFailingFS struct {
	*filesystem.MemoryFileSystem
	err error
}

func (f *closeFailingFS) Create(path string) (io.WriteCloser, error) {
	w, err := f.MemoryFileSystem.Create(path)
	if err != nil {
		return nil, err
	}
	return closeFailingWriter{WriteCloser: w, err: f.err}, nil
}

type closeFailingWriter struct {
	io.WriteCloser
	err error
}

func (w closeFailingWriter) Close() error {
	_ = w.WriteCloser.Close()
	return w.err
}
