// Package repository holds the per-team play buckets accumulated during a
// partition run.
package repository

import (
	"context"

	"github.com/okian/pbpsplit/internal/domain/model"
)

// Store maps a team abbreviation to the ordered plays routed to it.
type Store interface {
	// Append adds plays to the end of team's bucket, keeping their order.
	// Returns ErrEmptyTeam for an empty abbreviation.
	Append(ctx context.Context, team string, plays ...model.Play) error

	// Plays returns team's plays in append order.
	// Returns ErrNotFound if nothing was appended for team.
	Plays(ctx context.Context, team string) ([]model.Play, error)

	// Count returns the number of plays held for team.
	Count(ctx context.Context, team string) int

	// Total returns the number of plays held across all teams.
	Total(ctx context.Context) int

	// Release drops team's bucket once it has been written.
	Release(ctx context.Context, team string)
}
