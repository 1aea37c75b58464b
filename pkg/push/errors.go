package push

import "errors"

var (
	// ErrInit is returned when the FCM client cannot be constructed.
	ErrInit = errors.New("failed to initialize push client")

	// ErrSend is returned when FCM rejects a delivery.
	ErrSend = errors.New("failed to send push notification")
)
