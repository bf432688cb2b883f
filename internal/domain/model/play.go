package model

import (
	"fmt"
	"strings"
)

// Play table columns the Partitioner relies on.
const (
	ColHomeTeam = "home_team"
	ColAwayTeam = "away_team"
	ColGameDate = "game_date"
	ColPlayID   = "play_id"
)

// Metadata columns attached to every routed play. The division column shares
// its name with the teams table column ColTeamDivision.
const (
	ColTeamFullName   = "team_full_name"
	ColTeamNickname   = "team_nickname"
	ColTeamConference = "team_conference"
)

// PartitionColumns lists the columns the play table must carry.
var PartitionColumns = []string{ColHomeTeam, ColAwayTeam, ColGameDate, ColPlayID}

// MetadataColumns lists the attached team metadata columns in output order.
var MetadataColumns = []string{ColTeamFullName, ColTeamNickname, ColTeamConference, ColTeamDivision}

// MetadataValues returns the team's values for MetadataColumns.
func (t Team) MetadataValues() []string {
	return []string{t.Name, t.Nick, t.Conference, t.Division}
}

// Schema is the ordered column list of a table plus a name lookup.
// A Schema is immutable once built.
type Schema struct {
	columns []string
	index   map[string]int
}

// NewSchema builds a schema from a header row. For duplicated names the
// first position wins.
func NewSchema(columns []string) *Schema {
	s := &Schema{
		columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	copy(s.columns, columns)
	for i, c := range columns {
		if _, dup := s.index[c]; !dup {
			s.index[c] = i
		}
	}
	return s
}

// Columns returns a copy of the column names.
func (s *Schema) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Len returns the number of columns.
func (s *Schema) Len() int { return len(s.columns) }

// Index returns the position of name.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Require fails with ErrMissingColumn listing every absent name.
func (s *Schema) Require(names ...string) error {
	var missing []string
	for _, n := range names {
		if _, ok := s.index[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// WithColumns returns a schema extended by names together with the
// position of each name in the result. Names already present keep their
// position so their values get overwritten; new names are appended in order.
func (s *Schema) WithColumns(names ...string) (*Schema, []int) {
	cols := s.Columns()
	positions := make([]int, len(names))
	added := make(map[string]int, len(names))
	for i, n := range names {
		if p, ok := s.index[n]; ok {
			positions[i] = p
			continue
		}
		if p, ok := added[n]; ok {
			positions[i] = p
			continue
		}
		cols = append(cols, n)
		positions[i] = len(cols) - 1
		added[n] = positions[i]
	}
	return NewSchema(cols), positions
}

// Play is one row of the play table. Values are kept exactly as read.
type Play []string

// Get returns the value of column col, or "" when the schema lacks it.
func (p Play) Get(s *Schema, col string) string {
	i, ok := s.Index(col)
	if !ok || i >= len(p) {
		return ""
	}
	return p[i]
}

// Chunk is a bounded run of consecutive plays read from the play table.
type Chunk struct {
	Seq    int     // zero-based chunk number
	Schema *Schema // input schema shared by every chunk of one table
	Plays  []Play
}

// Len returns the number of plays in the chunk.
func (c Chunk) Len() int { return len(c.Plays) }
