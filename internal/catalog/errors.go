package catalog

import "errors"

// Showcase registry errors.
var (
	// ErrShowcaseNotFound is returned when no showcase has the requested id.
	ErrShowcaseNotFound = errors.New("showcase not found")

	// ErrShowcaseIDEmpty is returned when a showcase has no id.
	ErrShowcaseIDEmpty = errors.New("showcase id cannot be empty")

	// ErrShowcaseRunNil is returned when a showcase has no demo function.
	ErrShowcaseRunNil = errors.New("showcase demo function cannot be nil")

	// ErrShowcaseAlreadyRegistered is returned when registering a duplicate id.
	ErrShowcaseAlreadyRegistered = errors.New("showcase already registered")
)
