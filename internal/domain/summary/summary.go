// Package summary renders the README that accompanies the per-team files.
package summary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/okian/pbpsplit/internal/domain/model"
)

// FileName is the summary document written next to the team files.
const FileName = "README.md"

const header = `# NFL Team Data Files - %[1]d Season

This directory contains individual team files split from the main play-by-play dataset.
Each file contains all plays from games where that team participated (both home and away games).

## File Naming Convention
Files are named: ` + "`{TEAM_ABBR}_{TEAM_NICKNAME}_%[1]d.csv`" + `

## Additional Columns Added
Each team file includes these extra columns for convenience:
- ` + "`team_full_name`" + `: Official team name
- ` + "`team_nickname`" + `: Team nickname/mascot
- ` + "`team_conference`" + `: AFC or NFC
- ` + "`team_division`" + `: Division within conference

## Available Team Files

`

const footer = `
## Usage Tips

1. **Start with one team**: Pick your favorite team or a team with interesting storylines
2. **Compare divisions**: Use teams from the same division for comparative analysis
3. **Conference analysis**: Compare AFC vs NFC teams
4. **File size**: Each team file is much smaller and more manageable than the full dataset
5. **Join with roster data**: Use the main players_%[1]d.csv file to add player information

## Example Analysis Ideas

- Analyze your team's offensive efficiency by quarter
- Compare home vs away performance
- Study red zone efficiency
- Track key players' contributions throughout the season
- Examine how your team performs in close games

Happy analyzing! 🏈
`

// Render returns the summary document for teams. It lists every team in
// table order whether or not a file was written for it.
func Render(teams model.TeamIndex, season int) string {
	var b strings.Builder
	fmt.Fprintf(&b, header, season)
	for _, t := range teams.Teams() {
		fmt.Fprintf(&b, "- **%s**: %s (%s %s)\n", t.ArtifactName(season), t.Name, t.Conference, t.Division)
	}
	fmt.Fprintf(&b, footer, season)
	return b.String()
}

// Write renders the summary into dir and returns the written path.
func Write(dir string, teams model.TeamIndex, season int) (string, error) {
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(Render(teams, season)), 0o644); err != nil { //nolint:gosec // shared read-only output
		return "", fmt.Errorf("write summary: %w", err)
	}
	return path, nil
}
