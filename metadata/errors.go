package metadata

import "errors"

// Sentinel errors for descriptor handling.
var (
	// ErrInvalidDescriptor is returned when a descriptor is missing
	// required fields.
	ErrInvalidDescriptor = errors.New("invalid descriptor")

	// ErrUnknownFormat is returned when a descriptor file has an
	// unrecognized extension.
	ErrUnknownFormat = errors.New("unknown descriptor format")
)
