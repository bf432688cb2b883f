package analysis

import "errors"

// Sentinel kinds for analysis errors.
var (
	ErrTeamNotFound = errors.New("team not found")
	ErrEmptyTable   = errors.New("team file has no plays")
)
