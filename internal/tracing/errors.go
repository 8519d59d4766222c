package tracing

import "errors"

// ErrTracingInit is returned when span export was requested but could not be
// set up.
var ErrTracingInit = errors.New("tracing init failed")
