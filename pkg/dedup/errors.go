package dedup

import "errors"

var (
	// ErrLookup is returned when the marker lookup fails.
	ErrLookup = errors.New("dedup marker lookup failed")

	// ErrMark is returned when recording a delivery marker fails.
	ErrMark = errors.New("failed to record dedup marker")
)
