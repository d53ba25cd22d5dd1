package plugin

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrKindExists   = errors.New("node kind already registered")
	ErrKindNotFound = errors.New("node kind not found")
)

var registry = struct {
	mu sync.RWMutex
	m  map[string]*API
}{
	m: make(map[string]*API),
}

// Register adds a node kind's capability table under its kind tag.
// Kind packages call this from init(), typically via MustRegister.
func Register(kind string, api *API) error {
	if kind == "" {
		return errors.New("node kind must not be empty")
	}
	if api == nil {
		return errors.New("capability table must not be nil")
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, ok := registry.m[kind]; ok {
		return fmt.Errorf("%w: %s", ErrKindExists, kind)
	}
	registry.m[kind] = api
	return nil
}

// MustRegister is Register for init() use; a registration conflict is a
// programming error, not a runtime condition.
func MustRegister(kind string, api *API) {
	if err := Register(kind, api); err != nil {
		panic(err)
	}
}

// Lookup returns the capability table registered under kind.
func Lookup(kind string) (*API, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	api, ok := registry.m[kind]
	return api, ok
}

// Kinds returns the registered kind tags in sorted order.
func Kinds() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	kinds := make([]string, 0, len(registry.m))
	for kind := range registry.m {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
