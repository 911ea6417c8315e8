// Package registry assigns stable xxHash64 identifiers to named record
// schemas and guards against two names colliding on the same identifier.
//
// It exists so callers can look a record name up by a fixed-width numeric ID
// (for example, a uint64 tag at the front of a message) without maintaining a
// separate string table on the wire: the ID is derived from the name itself
// and is stable across processes as long as the name is stable.
package registry

import (
	"sync"

	"github.com/arloliu/recio/errs"
	"github.com/arloliu/recio/internal/hash"
)

// Registry tracks named schemas and detects hash collisions between
// distinct names. It is safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	idToName     map[uint64]string
	nameToID     map[string]uint64
	orderedNames []string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		idToName: make(map[uint64]string),
		nameToID: make(map[string]uint64),
	}
}

// Register assigns name a stable ID derived from hash.ID(name) and returns
// it. It returns ErrAlreadyRegistered if name was already registered, and
// ErrHashCollision if a different, previously registered name already maps
// to the same ID.
func (r *Registry) Register(name string) (uint64, error) {
	if name == "" {
		return 0, errs.ErrNotARecord
	}

	id := hash.ID(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.nameToID[name]; ok {
		return 0, errs.ErrAlreadyRegistered
	}

	if existing, ok := r.idToName[id]; ok && existing != name {
		return 0, errs.ErrHashCollision
	}

	r.idToName[id] = name
	r.nameToID[name] = id
	r.orderedNames = append(r.orderedNames, name)

	return id, nil
}

// Lookup returns the name registered for id, if any.
func (r *Registry) Lookup(id uint64) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.idToName[id]

	return name, ok
}

// ID returns the ID registered for name, if any.
func (r *Registry) ID(name string) (uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.nameToID[name]

	return id, ok
}

// Names returns every registered name in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.orderedNames))
	copy(out, r.orderedNames)

	return out
}

// Count returns the number of registered names.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orderedNames)
}
