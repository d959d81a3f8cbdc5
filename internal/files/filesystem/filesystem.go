package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider gives the hasher streaming access to files.
//
// Errors for missing paths wrap fs.ErrNotExist so callers can use errors.Is.
type FileSystemProvider interface {
	// Open opens the file at path for reading.
	Open(path string) (io.ReadCloser, error)

	// Create creates or truncates the file at path for writing.
	// The parent directory must already exist.
	Create(path string) (io.WriteCloser, error)

	// Remove deletes the file at path.
	Remove(path string) error

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// SameFile reports whether a and b, both returned by Stat, describe
	// the same underlying file.
	SameFile(a, b FileInfo) bool
}
