package player

import "errors"

// Sentinel errors wrapped throughout the module; check them with errors.Is.
var (
	// ErrBadConfig denotes construction-time configuration a component
	// cannot proceed on.
	ErrBadConfig = errors.New("bad config")

	// ErrMissingData denotes a required value that was never supplied.
	ErrMissingData = errors.New("missing data")

	// ErrNotExist denotes a resource that could not be resolved on this host.
	ErrNotExist = errors.New("not exist")

	// ErrNotValid denotes a value outside an Enumerable's constant set.
	ErrNotValid = errors.New("invalid")
)
