package model

import "errors"

// Sentinel kinds for model errors.
var (
	ErrMissingColumn = errors.New("missing column")
)
