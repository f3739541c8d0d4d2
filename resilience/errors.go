package resilience

import "errors"

// ErrBulkheadFull is returned when no bulkhead slot is available.
var ErrBulkheadFull = errors.New("resilience: bulkhead is full")
