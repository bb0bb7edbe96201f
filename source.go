package gofidl

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Source gives the processor read access to FIDL files by absolute path.
type Source interface {
	// Exists reports whether path names a regular file.
	Exists(path string) bool

	// Open returns the content of path, or an error wrapping
	// fs.ErrNotExist if the source does not hold it.
	Open(path string) (io.ReadCloser, error)
}

// --- OS Source ---

type osSource struct{}

// OSSource returns a Source backed by the local file system.
func OSSource() Source {
	return osSource{}
}

func (osSource) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (osSource) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// --- FS Source (for embed.FS, testing) ---

type fsSource struct {
	root string
	fsys fs.FS
}

// FS creates a Source backed by an fs.FS (e.g., embed.FS) mounted at root.
// A path is served when it lies under root; the remainder is looked up
// in fsys.
func FS(root string, fsys fs.FS) Source {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &fsSource{root: root, fsys: fsys}
}

func (s *fsSource) name(path string) (string, bool) {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	return rel, fs.ValidPath(rel)
}

func (s *fsSource) Exists(path string) bool {
	name, ok := s.name(path)
	if !ok {
		return false
	}
	info, err := fs.Stat(s.fsys, name)
	return err == nil && info.Mode().IsRegular()
}

func (s *fsSource) Open(path string) (io.ReadCloser, error) {
	name, ok := s.name(path)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return s.fsys.Open(name)
}

// --- Memory Source ---

// MemorySource holds file contents keyed by absolute path. It is safe for
// concurrent use.
type MemorySource struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemorySource returns an empty in-memory source.
func NewMemorySource() *MemorySource {
	return &MemorySource{files: make(map[string][]byte)}
}

// Add stores content under path, replacing any previous content.
func (m *MemorySource) Add(path string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(path)] = bytes.Clone(content)
}

// Exists reports whether path was added.
func (m *MemorySource) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[filepath.Clean(path)]
	return ok
}

// Open returns a reader over the content stored at path.
func (m *MemorySource) Open(path string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

// --- Multi Source (combines multiple sources) ---

type multiSource struct {
	sources []Source
}

// Multi combines multiple sources into one.
// Open() tries each source in order, returning the first match.
func Multi(sources ...Source) Source {
	return &multiSource{sources: sources}
}

func (s *multiSource) Exists(path string) bool {
	for _, src := range s.sources {
		if src.Exists(path) {
			return true
		}
	}
	return false
}

func (s *multiSource) Open(path string) (io.ReadCloser, error) {
	for _, src := range s.sources {
		r, err := src.Open(path)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
}

// --- Helpers ---

func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

func readAll(src Source, path string) ([]byte, error) {
	r, err := src.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
