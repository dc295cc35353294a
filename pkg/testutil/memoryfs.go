// pkg/testutil/memoryfs.go
// DEPENDENCIES: pkg/paths
// PURPOSE: In-memory types.FS with Unix, Windows and UNC roots for glob tests

package testutil

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/arthur-debert/globwalk/pkg/paths"
)

// MemoryFS implements types.FS with in-memory storage. Paths may use any of
// the root forms understood by pkg/paths, so a single MemoryFS can model a
// Windows drive, a UNC share and a Unix tree at the same time.
type MemoryFS struct {
	mu       sync.RWMutex
	nodes    map[string]*fileNode
	cwd      string
	foldCase bool

	// Error injection
	errorPaths map[string]error

	// Statistics
	statCount    atomic.Int64
	readDirCount atomic.Int64
	callsMu      sync.Mutex
	readDirCalls []string
}

// fileNode represents a file or directory in memory
type fileNode struct {
	name     string
	mode     os.FileMode
	modTime  time.Time
	size     int64
	isDir    bool
	children map[string]*fileNode
}

// NewMemoryFS creates a new, case-sensitive in-memory filesystem holding
// only the Unix root. The working directory is "/".
func NewMemoryFS() *MemoryFS {
	m := &MemoryFS{
		nodes:      make(map[string]*fileNode),
		cwd:        "/",
		errorPaths: make(map[string]error),
	}
	m.ensureRoot(paths.UnixRoot())
	return m
}

// NewCaseInsensitiveMemoryFS creates a filesystem whose lookups ignore case,
// the way NTFS volumes behave. Listings keep the original spelling.
func NewCaseInsensitiveMemoryFS() *MemoryFS {
	m := NewMemoryFS()
	m.foldCase = true
	return m
}

// FoldsCase reports whether lookups ignore case.
func (m *MemoryFS) FoldsCase() bool { return m.foldCase }

func (m *MemoryFS) key(loc paths.Location) string {
	return loc.Key(!m.foldCase)
}

func (m *MemoryFS) childKey(name string) string {
	if m.foldCase {
		return strings.ToLower(name)
	}
	return name
}

func (m *MemoryFS) ensureRoot(root paths.Location) *fileNode {
	k := m.key(root)
	if node, ok := m.nodes[k]; ok {
		return node
	}
	node := &fileNode{
		name:     root.String(),
		mode:     0755 | os.ModeDir,
		modTime:  time.Now(),
		isDir:    true,
		children: make(map[string]*fileNode),
	}
	m.nodes[k] = node
	return node
}

// getNode retrieves a node at the given path
func (m *MemoryFS) getNode(op, name string) (*fileNode, error) {
	loc, err := paths.Parse(name)
	if err != nil {
		return nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}

	// Check for injected errors
	if err, ok := m.errorPaths[m.key(loc)]; ok {
		return nil, &fs.PathError{Op: op, Path: name, Err: err}
	}

	node, exists := m.nodes[m.key(loc)]
	if !exists {
		return nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	return node, nil
}

// MkdirAll creates a directory and all missing parents.
func (m *MemoryFS) MkdirAll(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	loc, err := paths.Parse(name)
	if err != nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrInvalid}
	}
	_, err = m.mkdirAll(loc)
	return err
}

func (m *MemoryFS) mkdirAll(loc paths.Location) (*fileNode, error) {
	current := loc.Root()
	node := m.ensureRoot(current)
	for _, part := range loc.Parts() {
		current = current.Join(part)
		child, ok := m.nodes[m.key(current)]
		if !ok {
			child = &fileNode{
				name:     part,
				mode:     0755 | os.ModeDir,
				modTime:  time.Now(),
				isDir:    true,
				children: make(map[string]*fileNode),
			}
			node.children[m.childKey(part)] = child
			m.nodes[m.key(current)] = child
		}
		if !child.isDir {
			return nil, &fs.PathError{Op: "mkdir", Path: current.String(), Err: errors.New("not a directory")}
		}
		node = child
	}
	return node, nil
}

// WriteFile creates a file of the given size, creating parents as needed.
func (m *MemoryFS) WriteFile(name string, size int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	loc, err := paths.Parse(name)
	if err != nil || loc.IsRoot() {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrInvalid}
	}
	parentLoc, _ := loc.Parent()
	parent, err := m.mkdirAll(parentLoc)
	if err != nil {
		return err
	}
	if existing, ok := m.nodes[m.key(loc)]; ok && existing.isDir {
		return &fs.PathError{Op: "write", Path: name, Err: errors.New("is a directory")}
	}

	node := &fileNode{
		name:    loc.Name(),
		mode:    0644,
		modTime: time.Now(),
		size:    size,
	}
	parent.children[m.childKey(node.name)] = node
	m.nodes[m.key(loc)] = node
	return nil
}

// Remove deletes a path and everything below it.
func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	loc, err := paths.Parse(name)
	if err != nil {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrInvalid}
	}
	node, ok := m.nodes[m.key(loc)]
	if !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	prefix := m.key(loc) + "/"
	for k := range m.nodes {
		if strings.HasPrefix(k, prefix) {
			delete(m.nodes, k)
		}
	}
	delete(m.nodes, m.key(loc))
	if parentLoc, ok := loc.Parent(); ok {
		if parent, ok := m.nodes[m.key(parentLoc)]; ok {
			delete(parent.children, m.childKey(node.name))
		}
	}
	return nil
}

// Stat returns file info for a path
func (m *MemoryFS) Stat(name string) (os.FileInfo, error) {
	m.statCount.Add(1)

	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode("stat", name)
	if err != nil {
		return nil, err
	}
	return &fileInfo{node: node}, nil
}

// ReadDir reads a directory and returns its entries sorted by name
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.readDirCount.Add(1)
	m.callsMu.Lock()
	m.readDirCalls = append(m.readDirCalls, name)
	m.callsMu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode("readdir", name)
	if err != nil {
		return nil, err
	}

	if !node.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}

	entries := make([]fs.DirEntry, 0, len(node.children))
	for _, child := range node.children {
		entries = append(entries, fs.FileInfoToDirEntry(&fileInfo{node: child}))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// Getwd returns the current working directory
func (m *MemoryFS) Getwd() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cwd, nil
}

// Chdir changes the current working directory
func (m *MemoryFS) Chdir(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	node, err := m.getNode("chdir", dir)
	if err != nil {
		return err
	}
	if !node.isDir {
		return &fs.PathError{Op: "chdir", Path: dir, Err: errors.New("not a directory")}
	}
	m.cwd = paths.Normalize(dir)
	return nil
}

// WithError configures the filesystem to return an error for a specific path
func (m *MemoryFS) WithError(name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	loc, perr := paths.Parse(name)
	if perr != nil {
		return
	}
	m.errorPaths[m.key(loc)] = err
}

// ClearErrors removes all injected errors
func (m *MemoryFS) ClearErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths = make(map[string]error)
}

// StatCount returns how many Stat calls were made.
func (m *MemoryFS) StatCount() int64 {
	return m.statCount.Load()
}

// ReadDirCount returns how many ReadDir calls were made.
func (m *MemoryFS) ReadDirCount() int64 {
	return m.readDirCount.Load()
}

// ReadDirCalls returns the paths ReadDir was called with, in call order.
func (m *MemoryFS) ReadDirCalls() []string {
	m.callsMu.Lock()
	defer m.callsMu.Unlock()
	out := make([]string, len(m.readDirCalls))
	copy(out, m.readDirCalls)
	return out
}

// ResetStats zeroes the call counters.
func (m *MemoryFS) ResetStats() {
	m.statCount.Store(0)
	m.readDirCount.Store(0)
	m.callsMu.Lock()
	m.readDirCalls = nil
	m.callsMu.Unlock()
}

// fileInfo implements os.FileInfo
type fileInfo struct {
	node *fileNode
}

func (fi *fileInfo) Name() string       { return fi.node.name }
func (fi *fileInfo) Size() int64        { return fi.node.size }
func (fi *fileInfo) Mode() os.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir }
func (fi *fileInfo) Sys() interface{}   { return nil }
