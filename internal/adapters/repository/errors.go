package repository

import "errors"

// Sentinel kinds for bucket store errors.
var (
	ErrNotFound  = errors.New("team bucket not found")
	ErrEmptyTeam = errors.New("empty team abbreviation")
)
