package registry

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

var (
	ErrInvalidName = errors.New("name is required")
	ErrDuplicate   = errors.New("name already registered")
)

// Named is anything a Registry can key by name.
type Named interface {
	Name() string
}

// Registry maps unique names to items and remembers registration order.
type Registry[T Named] struct {
	mu    sync.RWMutex
	kind  string
	items map[string]T
	order []string
}

// New returns an empty registry. kind labels errors, e.g. "sport" or "team".
func New[T Named](kind string) *Registry[T] {
	return &Registry[T]{
		kind:  kind,
		items: make(map[string]T),
	}
}

func (r *Registry[T]) Add(item T) error {
	name := item.Name()
	if strings.TrimSpace(name) == "" {
		return errors.Wrapf(ErrInvalidName, "%s", r.kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return errors.Wrapf(ErrDuplicate, "%s %q", r.kind, name)
	}
	r.items[name] = item
	r.order = append(r.order, name)

	return nil
}

func (r *Registry[T]) Get(name string) (T, bool, error) {
	var zero T
	if strings.TrimSpace(name) == "" {
		return zero, false, errors.Wrapf(ErrInvalidName, "%s", r.kind)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[name]
	if !ok {
		return zero, false, nil
	}

	return item, true, nil
}

// All lists items in registration order.
func (r *Registry[T]) All() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.items[name])
	}

	return out
}

func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
