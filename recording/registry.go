package recording

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// BackendFactory is a function that creates a new backend instance.
// Factories are registered via Register() and called by NewBackend().
type BackendFactory func() Backend

type registration struct {
	factory    BackendFactory
	extensions []string
}

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]registration)
)

// Register registers a backend factory under name, optionally claiming
// file extensions (".svg") so that ForPath can pick the backend from an
// output file name. It is called from init() in backend packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return NewBackend()
//	    }, ".svg")
//	}
//
// Register panics if factory is nil or a backend with the same name is
// already registered.
func Register(name string, factory BackendFactory, extensions ...string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	exts := make([]string, len(extensions))
	for i, e := range extensions {
		exts[i] = normalizeExt(e)
	}
	backends[name] = registration{factory: factory, extensions: exts}
}

// Unregister removes a backend from the registry.
// This is primarily useful for testing to clean up between tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a new backend instance by name.
// The error message includes a hint about forgotten imports.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	reg, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	return reg.factory(), nil
}

// MustBackend creates a new backend instance by name, panicking on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// ForPath returns the name of the backend that claimed the extension of
// path. The match is case-insensitive.
func ForPath(path string) (string, bool) {
	ext := normalizeExt(filepath.Ext(path))
	if ext == "" {
		return "", false
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	for _, name := range sortedNames() {
		for _, e := range backends[name].extensions {
			if e == ext {
				return name, true
			}
		}
	}
	return "", false
}

// Extensions returns the file extensions claimed by the named backend.
func Extensions(name string) []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return append([]string(nil), backends[name].extensions...)
}

// Backends returns a sorted list of registered backend names.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return sortedNames()
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Count returns the number of registered backends.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(backends)
}

// sortedNames must be called with registryMu held.
func sortedNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
