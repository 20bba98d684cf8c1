package status

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Family holds named metrics of one kind
// Get allocates on first use; the returned pointer stays valid, so callers cache it and write atomics directly
type Family[T any] struct {
	items sync.Map // string -> *T
	n     atomic.Int64
}

// Get returns the metric for name, creating it if absent
func (f *Family[T]) Get(name string) *T {
	if v, ok := f.items.Load(name); ok {
		return v.(*T)
	}
	v, loaded := f.items.LoadOrStore(name, new(T))
	if !loaded {
		f.n.Add(1)
	}
	return v.(*T)
}

// Range visits metrics in name order
func (f *Family[T]) Range(fn func(name string, v *T)) {
	names := make([]string, 0, f.Len())
	f.items.Range(func(k, _ any) bool {
		names = append(names, k.(string))
		return true
	})
	slices.Sort(names)
	for _, name := range names {
		if v, ok := f.items.Load(name); ok {
			fn(name, v.(*T))
		}
	}
}

// Len returns the number of metrics
func (f *Family[T]) Len() int {
	return int(f.n.Load())
}

// Registry groups the metric families systems publish into
type Registry struct {
	Bools   *Family[atomic.Bool]
	Ints    *Family[atomic.Int64]
	Floats  *Family[AtomicFloat]
	Strings *Family[AtomicString]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   &Family[atomic.Bool]{},
		Ints:    &Family[atomic.Int64]{},
		Floats:  &Family[AtomicFloat]{},
		Strings: &Family[AtomicString]{},
	}
}
