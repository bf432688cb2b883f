package sampledata

import "errors"

// ErrInvalidSample reports an unusable generator configuration.
var ErrInvalidSample = errors.New("invalid sample configuration")
