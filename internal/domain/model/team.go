// Package model contains the domain models passed between layers: team
// metadata, the play table schema, and play rows.
package model

import "fmt"

// Team metadata column names in the teams table.
const (
	ColTeamAbbr     = "team_abbr"
	ColTeamName     = "team_name"
	ColTeamNick     = "team_nick"
	ColTeamConf     = "team_conf"
	ColTeamDivision = "team_division"
)

// TeamColumns lists the columns the teams table must carry.
var TeamColumns = []string{ColTeamAbbr, ColTeamName, ColTeamNick, ColTeamConf, ColTeamDivision}

// Team is one row of the teams table.
type Team struct {
	Abbr       string // unique key, e.g. "KC"
	Name       string // full name, e.g. "Kansas City Chiefs"
	Nick       string // nickname, e.g. "Chiefs"
	Conference string // AFC or NFC
	Division   string // e.g. "AFC West"
}

// ArtifactName returns the per-team output file name for a season, e.g.
// "KC_Chiefs_2024.csv".
func ArtifactName(abbr, nick string, season int) string {
	return fmt.Sprintf("%s_%s_%d.csv", abbr, nick, season)
}

// ArtifactName returns the team's output file name for a season.
func (t Team) ArtifactName(season int) string {
	return ArtifactName(t.Abbr, t.Nick, season)
}

// TeamIndex is an immutable abbreviation -> Team lookup that remembers the
// order in which teams were first seen.
type TeamIndex struct {
	order  []string
	byAbbr map[string]Team
}

// NewTeamIndex builds an index from teams in table order. A repeated
// abbreviation keeps its first position and takes the later metadata. Rows
// with an empty abbreviation are dropped; an empty cell names no team.
func NewTeamIndex(teams []Team) TeamIndex {
	idx := TeamIndex{
		order:  make([]string, 0, len(teams)),
		byAbbr: make(map[string]Team, len(teams)),
	}
	for _, t := range teams {
		if t.Abbr == "" {
			continue
		}
		if _, seen := idx.byAbbr[t.Abbr]; !seen {
			idx.order = append(idx.order, t.Abbr)
		}
		idx.byAbbr[t.Abbr] = t
	}
	return idx
}

// Lookup returns the team for abbr.
func (x TeamIndex) Lookup(abbr string) (Team, bool) {
	t, ok := x.byAbbr[abbr]
	return t, ok
}

// Len returns the number of distinct teams.
func (x TeamIndex) Len() int { return len(x.order) }

// Teams returns the teams in table order.
func (x TeamIndex) Teams() []Team {
	out := make([]Team, len(x.order))
	for i, abbr := range x.order {
		out[i] = x.byAbbr[abbr]
	}
	return out
}

// Abbrs returns the abbreviations in table order.
func (x TeamIndex) Abbrs() []string {
	out := make([]string, len(x.order))
	copy(out, x.order)
	return out
}
