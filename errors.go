package divide

import "errors"

// ErrInvalidPartitionCount is returned when no valid plan exists for the
// requested number of portions.
var ErrInvalidPartitionCount = errors.New("invalid partition count")

// ErrInvalidLength is returned when a plan is requested for a negative length.
var ErrInvalidLength = errors.New("invalid length")
