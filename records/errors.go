package records

import "errors"

// ErrMalformedIdentifier is returned when a student identifier is not a
// base-10 integer.
var ErrMalformedIdentifier = errors.New("records: malformed identifier")
