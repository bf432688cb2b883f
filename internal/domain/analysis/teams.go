// Package analysis computes descriptive offensive statistics from one
// team's partitioned play file.
package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/pbpsplit/internal/domain/model"
)

// knownTeams is the fixed set of team files the analyzer resolves.
var knownTeams = map[string]string{
	"ARI": "Cardinals",
	"ATL": "Falcons",
	"BAL": "Ravens",
	"BUF": "Bills",
	"CAR": "Panthers",
	"CHI": "Bears",
	"CIN": "Bengals",
	"CLE": "Browns",
	"DAL": "Cowboys",
	"DEN": "Broncos",
	"DET": "Lions",
	"GB":  "Packers",
	"HOU": "Texans",
	"IND": "Colts",
	"JAX": "Jaguars",
	"KC":  "Chiefs",
	"LA":  "Rams",
	"LAC": "Chargers",
	"LV":  "Raiders",
	"MIA": "Dolphins",
	"MIN": "Vikings",
	"NE":  "Patriots",
	"NO":  "Saints",
	"NYG": "Giants",
	"NYJ": "Jets",
	"PHI": "Eagles",
	"PIT": "Steelers",
	"SEA": "Seahawks",
	"SF":  "49ers",
	"TB":  "Buccaneers",
	"TEN": "Titans",
	"WAS": "Commanders",
}

// Abbrs returns the known team abbreviations, sorted.
func Abbrs() []string {
	out := make([]string, 0, len(knownTeams))
	for abbr := range knownTeams {
		out = append(out, abbr)
	}
	sort.Strings(out)
	return out
}

// TeamFile returns the artifact name for abbr in season. It fails with
// ErrTeamNotFound, listing the known teams, when abbr is not one of them.
func TeamFile(abbr string, season int) (string, error) {
	nick, ok := knownTeams[abbr]
	if !ok {
		return "", fmt.Errorf("%w: %q. Available teams: %s", ErrTeamNotFound, abbr, strings.Join(Abbrs(), ", "))
	}
	return model.ArtifactName(abbr, nick, season), nil
}
