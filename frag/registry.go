package frag

import (
	"container/list"
	"sync"
)

// registryEntry holds a compiled schema and its position in the LRU list.
type registryEntry struct {
	schema  *Schema
	element *list.Element // stores the descriptor text
}

// Registry memoizes Compile by descriptor text with LRU eviction.
//
// Descriptors are typically static, so compiling through a registry makes
// repeated Encode/Decode calls reuse one Schema per distinct descriptor.
// Only successful compiles are cached; bad descriptors are cheap to reject
// again. A Registry is safe for concurrent use.
type Registry struct {
	schemas map[string]*registryEntry
	lruList *list.List // Front = most recent, Back = least recent
	mu      sync.RWMutex
	maxSize int // LRU cap, default 64
}

// NewRegistry creates a registry with the default capacity.
func NewRegistry() *Registry {
	return NewRegistryWithSize(64)
}

// NewRegistryWithSize creates a registry with a custom capacity.
func NewRegistryWithSize(maxSize int) *Registry {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Registry{
		schemas: make(map[string]*registryEntry),
		lruList: list.New(),
		maxSize: maxSize,
	}
}

// Compile returns the cached schema for the descriptor, compiling and
// caching it on first use. While cached, every call with the same
// descriptor text returns the same *Schema.
// Accessing a schema marks it as recently used.
func (r *Registry) Compile(descriptor string) (*Schema, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.schemas[descriptor]; ok {
		r.lruList.MoveToFront(entry.element)
		return entry.schema, nil
	}

	schema, err := Compile(descriptor)
	if err != nil {
		return nil, err
	}

	// Evict LRU if at capacity
	for r.lruList.Len() >= r.maxSize {
		oldest := r.lruList.Back()
		if oldest == nil {
			break
		}
		r.lruList.Remove(oldest)
		delete(r.schemas, oldest.Value.(string))
	}

	elem := r.lruList.PushFront(descriptor)
	r.schemas[descriptor] = &registryEntry{schema: schema, element: elem}
	return schema, nil
}

// Len returns the number of cached schemas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}

// Clear removes all cached schemas.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas = make(map[string]*registryEntry)
	r.lruList.Init()
}

// DefaultRegistry is the shared cache used by Format and Parse.
var DefaultRegistry = NewRegistry()
