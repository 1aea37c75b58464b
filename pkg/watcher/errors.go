package watcher

import "errors"

var (
	// ErrDecodeEvent is returned when a change-stream document cannot be decoded.
	ErrDecodeEvent = errors.New("failed to decode change stream document")

	// ErrMissingDocument is returned when the post-change snapshot is absent,
	// e.g. the document was deleted before the updateLookup resolved.
	ErrMissingDocument = errors.New("change event is missing the document snapshot")

	// ErrMissingBeforeImage is returned for updates without a pre-change
	// snapshot; the collection needs changeStreamPreAndPostImages enabled.
	ErrMissingBeforeImage = errors.New("update event is missing the before image")

	// ErrUnsupportedOperation is returned for operation types outside the
	// watched set.
	ErrUnsupportedOperation = errors.New("unsupported change stream operation")
)
