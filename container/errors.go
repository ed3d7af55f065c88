package container

import "errors"

// Sentinel errors for the container.
var (
	// ErrNotProvided is returned when resolving a type with no registered
	// provider.
	ErrNotProvided = errors.New("no provider registered for type")

	// ErrAlreadyProvided is returned when providing a type that already has
	// a provider.
	ErrAlreadyProvided = errors.New("provider already registered for type")

	// ErrClosed is returned when using a container after Close.
	ErrClosed = errors.New("container is closed")
)
