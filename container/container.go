// Package container provides an explicit instance container with a
// lifecycle.
//
// The container replaces process-global singleton registries: instead of a
// static type-to-instance map that accumulates for the life of the process,
// callers create a Container, provide lazy constructors for the types they
// need, resolve instances on demand, and Close the container when done.
// Instances are constructed at most once per container, and instances that
// implement io.Closer are closed in reverse construction order.
//
//	c := container.New()
//	container.Provide(c, func() *Cache { return NewCache() })
//
//	cache, err := container.Resolve[*Cache](c)
//	...
//	defer c.Close()
package container

import (
	"fmt"
	"io"
	"reflect"
	"sync"
)

// Container holds lazily-constructed singleton instances keyed by type.
// It is safe for concurrent use.
type Container struct {
	mu        sync.Mutex
	providers map[reflect.Type]func() any
	instances map[reflect.Type]any
	order     []any // construction order, for reverse-order close
	closed    bool
}

// New creates an empty container.
func New() *Container {
	return &Container{
		providers: make(map[reflect.Type]func() any),
		instances: make(map[reflect.Type]any),
	}
}

// Provide registers a lazy constructor for T. The constructor runs at most
// once, on first resolve. It returns ErrAlreadyProvided if a provider or
// value for T is already registered, and ErrClosed after Close.
func Provide[T any](c *Container, fn func() T) error {
	if fn == nil {
		return fmt.Errorf("%w: nil constructor", ErrNotProvided)
	}
	key := typeOf[T]()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if _, exists := c.providers[key]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyProvided, key)
	}
	c.providers[key] = func() any { return fn() }
	return nil
}

// ProvideValue registers an already-constructed instance for T.
func ProvideValue[T any](c *Container, v T) error {
	key := typeOf[T]()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if _, exists := c.providers[key]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyProvided, key)
	}
	c.providers[key] = func() any { return v }
	return nil
}

// Resolve returns the instance for T, constructing it on first use.
// It returns ErrNotProvided if no provider for T is registered.
func Resolve[T any](c *Container) (T, error) {
	var zero T
	key := typeOf[T]()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return zero, ErrClosed
	}
	if inst, ok := c.instances[key]; ok {
		return inst.(T), nil
	}

	fn, ok := c.providers[key]
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrNotProvided, key)
	}

	inst := fn()
	c.instances[key] = inst
	c.order = append(c.order, inst)
	return inst.(T), nil
}

// MustResolve returns the instance for T and panics on error.
func MustResolve[T any](c *Container) T {
	v, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether a provider for T is registered.
func Has[T any](c *Container) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.providers[typeOf[T]()]
	return ok
}

// Len returns the number of constructed instances.
func (c *Container) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.instances)
}

// Close closes constructed instances that implement io.Closer, in reverse
// construction order, and rejects further use of the container. It is safe
// to call Close multiple times; later calls return nil.
func (c *Container) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	order := c.order
	c.order = nil
	c.instances = nil
	c.providers = nil
	c.mu.Unlock()

	var firstErr error
	for i := len(order) - 1; i >= 0; i-- {
		if closer, ok := order[i].(io.Closer); ok {
			if err := closer.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// typeOf returns the reflect.Type key for T, including interface types.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
