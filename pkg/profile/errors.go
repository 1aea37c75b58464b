package profile

import "errors"

// ErrLookup is returned when the profile read fails. A lookup miss is not an
// error; see Store.Resolve.
var ErrLookup = errors.New("profile lookup failed")
