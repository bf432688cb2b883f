package csvio

import "errors"

// Sentinel kinds for CSV adapter errors.
var (
	ErrRead  = errors.New("csv read failed")
	ErrWrite = errors.New("csv write failed")
)
