package usecase

import "errors"

var (
	// ErrUnknownField is returned when a field has no entry in the forwarding table.
	ErrUnknownField = errors.New("unknown field")

	// ErrMissingArgument is returned when a required argument is absent,
	// or empty where it would be interpolated into the upstream path.
	ErrMissingArgument = errors.New("missing required argument")
)
