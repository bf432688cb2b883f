// Package partition routes play rows into per-team buckets and orders each
// bucket chronologically.
package partition

import (
	"context"
	"fmt"

	"github.com/okian/pbpsplit/internal/adapters/repository"
	"github.com/okian/pbpsplit/internal/domain/model"
	"github.com/okian/pbpsplit/pkg/metrics"
)

// Stats summarizes the routing of one chunk.
type Stats struct {
	Plays     int // plays in the chunk
	Routed    int // plays appended to buckets; a play may count twice
	Unmatched int // plays whose teams are both unknown
}

// Router appends each play to the bucket of every known team that played
// in it, extended with that team's metadata columns.
type Router struct {
	teams   model.TeamIndex
	out     *model.Schema
	metaPos []int
	homeIdx int
	awayIdx int
}

// NewRouter prepares routing of plays shaped like in. It fails with
// model.ErrMissingColumn when in lacks home_team or away_team.
func NewRouter(teams model.TeamIndex, in *model.Schema) (*Router, error) {
	if err := in.Require(model.ColHomeTeam, model.ColAwayTeam); err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}
	homeIdx, _ := in.Index(model.ColHomeTeam)
	awayIdx, _ := in.Index(model.ColAwayTeam)
	out, metaPos := in.WithColumns(model.MetadataColumns...)
	return &Router{
		teams:   teams,
		out:     out,
		metaPos: metaPos,
		homeIdx: homeIdx,
		awayIdx: awayIdx,
	}, nil
}

// OutputSchema returns the schema of routed plays: the input columns
// followed by the metadata columns.
func (r *Router) OutputSchema() *model.Schema { return r.out }

// Route appends the chunk's plays to store. Buckets receive plays in chunk
// order, and are appended in team table order. Unknown teams are skipped.
func (r *Router) Route(ctx context.Context, chunk model.Chunk, store repository.Store) (Stats, error) {
	stats := Stats{Plays: chunk.Len()}
	byTeam := make(map[string][]model.Play, r.teams.Len())

	for _, play := range chunk.Plays {
		home, away := play[r.homeIdx], play[r.awayIdx]
		matched := false
		for i, abbr := range [2]string{home, away} {
			// home == away is one membership, not two.
			if i == 1 && abbr == home {
				continue
			}
			team, ok := r.teams.Lookup(abbr)
			if !ok {
				metrics.RecordUnknownTeam()
				continue
			}
			byTeam[abbr] = append(byTeam[abbr], r.attach(play, team))
			matched = true
		}
		if !matched {
			stats.Unmatched++
			metrics.RecordPlayUnmatched()
		}
	}

	for _, abbr := range r.teams.Abbrs() {
		plays := byTeam[abbr]
		if len(plays) == 0 {
			continue
		}
		if err := store.Append(ctx, abbr, plays...); err != nil {
			return stats, fmt.Errorf("route %s: %w", abbr, err)
		}
		stats.Routed += len(plays)
		metrics.RecordPlaysRouted(abbr, len(plays))
	}
	return stats, nil
}

// attach copies play into an output-shaped row carrying team's metadata.
func (r *Router) attach(play model.Play, team model.Team) model.Play {
	row := make(model.Play, r.out.Len())
	copy(row, play)
	for i, v := range team.MetadataValues() {
		row[r.metaPos[i]] = v
	}
	return row
}
