package sampledata

import (
	"fmt"
	"path/filepath"

	"github.com/okian/pbpsplit/internal/adapters/csvio"
	"github.com/okian/pbpsplit/internal/domain/model"
)

// Default file names written by Write.
const (
	TeamsFile = "teams.csv"
)

// PlaysFile returns the play table name for season, e.g. pbp_2024.csv.
func PlaysFile(season int) string {
	return fmt.Sprintf("pbp_%d.csv", season)
}

// WriteTeams writes teams as a teams table to path.
func WriteTeams(path string, teams []model.Team) error {
	rows := make([]model.Play, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, model.Play{t.Abbr, t.Name, t.Nick, t.Conference, t.Division})
	}
	return csvio.WriteTable(path, model.TeamColumns, rows)
}

// WritePlays writes the season's plays to path.
func WritePlays(path string, s *Season) error {
	return csvio.WriteTable(path, s.Header(), s.Plays)
}

// Write stores the season as TeamsFile and PlaysFile in dir and returns both
// paths.
func (s *Season) Write(dir string) (teamsPath, playsPath string, err error) {
	teamsPath = filepath.Join(dir, TeamsFile)
	if err := WriteTeams(teamsPath, s.Teams); err != nil {
		return "", "", err
	}
	playsPath = filepath.Join(dir, PlaysFile(s.Year))
	if err := WritePlays(playsPath, s); err != nil {
		return "", "", err
	}
	return teamsPath, playsPath, nil
}
