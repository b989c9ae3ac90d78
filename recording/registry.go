package recording

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// BackendFactory creates a new, unstarted backend instance.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available under name. Backend packages call it
// from init, so importing the package for side effects is enough:
//
//	import _ "github.com/gogpu/debugtex/recording/backends/svg"
//
// Register panics if factory is nil or if name is already taken.
func Register(name string, factory BackendFactory) {
	if factory == nil {
		panic("recording: Register factory is nil")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends[name] = factory
}

func lookup(name string) (BackendFactory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := backends[name]
	return f, ok
}

// NewBackend returns a fresh instance of the backend registered as name.
func NewBackend(name string) (Backend, error) {
	factory, ok := lookup(name)
	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// IsRegistered reports whether name has a registered backend.
func IsRegistered(name string) bool {
	_, ok := lookup(name)
	return ok
}

// Backends returns the registered names in alphabetical order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(maps.Keys(backends))
}
