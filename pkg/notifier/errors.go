package notifier

import "errors"

var (
	// ErrMissingSnapshot is returned when a change event lacks a snapshot its
	// handler requires.
	ErrMissingSnapshot = errors.New("change event snapshot is missing")

	// ErrDecodeSnapshot is returned when a snapshot cannot be decoded into
	// the expected document shape.
	ErrDecodeSnapshot = errors.New("failed to decode change snapshot")

	// ErrResolveRecipient is returned when the profile lookup itself fails.
	// A lookup miss or an empty device token is not an error.
	ErrResolveRecipient = errors.New("failed to resolve recipient device")

	// ErrDeliver is returned when the push transport rejects the send.
	ErrDeliver = errors.New("failed to deliver push notification")

	// ErrUnsupportedKind is returned for events of a kind the dispatcher has
	// no handler for.
	ErrUnsupportedKind = errors.New("unsupported entity kind")
)
