package filesystem

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool

	// entry identifies the file the info was taken from.
	entry *memoryEntry
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content []byte
	info    *memoryFileInfo

	// readErr is returned once content has been consumed.
	readErr error
	// writeErr is returned by every write to the entry.
	writeErr error
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Safe for concurrent use by multiple goroutines.
type MemoryFileSystem struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry // map of absolute path -> entry
	root    string                  // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.addDirLocked(root)

	return mfs
}

// AddFile adds a file to the in-memory filesystem, creating parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(filePath)
	mfs.ensureDirectoriesExist(absPath)
	mfs.entries[absPath] = newFileEntry(absPath, []byte(content))
}

// AddFailingFile adds a file whose reads return content and then readErr.
func (mfs *MemoryFileSystem) AddFailingFile(filePath string, content string, readErr error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(filePath)
	mfs.ensureDirectoriesExist(absPath)
	entry := newFileEntry(absPath, []byte(content))
	entry.readErr = readErr
	mfs.entries[absPath] = entry
}

// AddDir adds a directory and its parents.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(dirPath)
	mfs.ensureDirectoriesExist(absPath)
	mfs.addDirLocked(absPath)
}

// FailWrites makes every write to filePath fail with err once it is created.
func (mfs *MemoryFileSystem) FailWrites(filePath string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(filePath)
	entry, ok := mfs.entries[absPath]
	if !ok {
		mfs.ensureDirectoriesExist(absPath)
		entry = newFileEntry(absPath, nil)
		mfs.entries[absPath] = entry
	}
	entry.writeErr = err
}

// Content returns the current content of a file.
func (mfs *MemoryFileSystem) Content(filePath string) ([]byte, bool) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	entry, ok := mfs.entries[mfs.abs(filePath)]
	if !ok || entry.info.isDir {
		return nil, false
	}
	return bytes.Clone(entry.content), true
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(filePath string) (io.ReadCloser, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	entry, ok := mfs.entries[mfs.abs(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if entry.info.isDir {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: errIsDir}
	}

	var r io.Reader = bytes.NewReader(bytes.Clone(entry.content))
	if entry.readErr != nil {
		r = io.MultiReader(r, errReader{entry.readErr})
	}
	return io.NopCloser(r), nil
}

// Create implements FileSystemProvider.Create
func (mfs *MemoryFileSystem) Create(filePath string) (io.WriteCloser, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(filePath)
	parent, ok := mfs.entries[path.Dir(absPath)]
	if !ok || !parent.info.isDir {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}

	entry, ok := mfs.entries[absPath]
	if ok && entry.info.isDir {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: errIsDir}
	}
	if !ok {
		entry = newFileEntry(absPath, nil)
		mfs.entries[absPath] = entry
	}
	entry.content = nil
	entry.info.size = 0
	entry.info.modTime = time.Now()

	return &memoryWriter{fs: mfs, entry: entry}, nil
}

// Remove implements FileSystemProvider.Remove
func (mfs *MemoryFileSystem) Remove(filePath string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(filePath)
	if _, ok := mfs.entries[absPath]; !ok {
		return &fs.PathError{Op: "remove", Path: filePath, Err: fs.ErrNotExist}
	}
	delete(mfs.entries, absPath)
	return nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	entry, ok := mfs.entries[mfs.abs(statPath)]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	info := *entry.info
	info.entry = entry
	return &info, nil
}

// SameFile implements FileSystemProvider.SameFile
func (mfs *MemoryFileSystem) SameFile(a, b FileInfo) bool {
	ai, ok := a.(*memoryFileInfo)
	if !ok {
		return false
	}
	bi, ok := b.(*memoryFileInfo)
	if !ok {
		return false
	}
	return ai.entry != nil && ai.entry == bi.entry
}

// abs resolves p against the root, using forward slashes (virtual filesystem convention).
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(mfs.root, p)
}

func (mfs *MemoryFileSystem) addDirLocked(dir string) {
	if _, exists := mfs.entries[dir]; exists {
		return
	}
	mfs.entries[dir] = &memoryEntry{
		info: &memoryFileInfo{
			name:    path.Base(dir),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if _, exists := mfs.entries[dir]; exists {
		return
	}
	mfs.addDirLocked(dir)
	if dir != "/" && dir != "." {
		mfs.ensureDirectoriesExist(dir)
	}
}

func newFileEntry(absPath string, content []byte) *memoryEntry {
	return &memoryEntry{
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
}

type memoryWriter struct {
	fs     *MemoryFileSystem
	entry  *memoryEntry
	closed bool
}

func (w *memoryWriter) Write(p []byte) (int, error) {
	w.fs.mu.Lock()
	defer w.fs.mu.Unlock()

	if w.closed {
		return 0, fs.ErrClosed
	}
	if w.entry.writeErr != nil {
		return 0, w.entry.writeErr
	}
	w.entry.content = append(w.entry.content, p...)
	w.entry.info.size = int64(len(w.entry.content))
	return len(p), nil
}

func (w *memoryWriter) Close() error {
	w.fs.mu.Lock()
	defer w.fs.mu.Unlock()

	if w.closed {
		return fs.ErrClosed
	}
	w.closed = true
	return nil
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

var errIsDir = errors.New("is a directory")
