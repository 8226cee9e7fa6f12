// Package storage provides named-document persistence for configs and themes.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Storage reads and writes named documents.
type Storage interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
	List() ([]string, error)
}

// IsNotExist reports whether err means the named document is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// Dir stores each document as Root/<name><Ext>.
type Dir struct {
	Root string
	Ext  string
}

// NewDir returns a Dir storing ".toml" documents under root.
func NewDir(root string) Dir {
	return Dir{Root: root, Ext: ".toml"}
}

// Path returns the file that backs name.
func (d Dir) Path(name string) string {
	return filepath.Join(d.Root, name+d.Ext)
}

func (d Dir) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(d.Path(name))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

func (d Dir) Write(name string, data []byte) error {
	if err := os.MkdirAll(d.Root, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", d.Root, err)
	}
	if err := os.WriteFile(d.Path(name), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// List returns the names of stored documents, sorted. A missing root holds
// no documents.
func (d Dir) List() ([]string, error) {
	entries, err := os.ReadDir(d.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing %s: %w", d.Root, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), d.Ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), d.Ext))
	}
	sort.Strings(names)
	return names, nil
}

// Memory is an in-memory Storage for tests.
type Memory struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMemory returns a Memory seeded with files.
func NewMemory(files map[string]string) *Memory {
	m := &Memory{files: map[string][]byte{}}
	for name, data := range files {
		m.files[name] = []byte(data)
	}
	return m
}

func (m *Memory) Read(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("reading %s: %w", name, fs.ErrNotExist)
	}
	return append([]byte(nil), data...), nil
}

func (m *Memory) Write(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.files == nil {
		m.files = map[string][]byte{}
	}
	m.files[name] = append([]byte(nil), data...)
	return nil
}

func (m *Memory) List() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
