package filter

import (
	"fmt"
	"sort"
	"sync"
)

// FactoryFunc creates a new Factory instance.
// Factories are registered via Register() and called by New().
type FactoryFunc func() Factory

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]FactoryFunc)
)

// Register registers a factory constructor with the given name.
// This function is typically called from init() in backend packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    filter.Register("skia", func() filter.Factory {
//	        return NewFactory()
//	    })
//	}
//
// Register panics if fn is nil or if the name is already registered.
func Register(name string, fn FactoryFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if fn == nil {
		panic("filter: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("filter: Register called twice for " + name)
	}
	factories[name] = fn
}

// Unregister removes a factory from the registry.
// This is primarily useful for testing to clean up between tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates a new factory instance by name.
// Returns an error if the name is not registered.
func New(name string) (Factory, error) {
	registryMu.RLock()
	fn, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("filter: unknown factory %q (forgotten import?)", name)
	}
	return fn(), nil
}

// Default creates a factory from the first registered name in
// alphabetical order. Returns ErrNoFactory if none is registered.
func Default() (Factory, error) {
	names := Available()
	if len(names) == 0 {
		return nil, ErrNoFactory
	}
	return New(names[0])
}

// Available returns a sorted list of registered factory names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a factory with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
