package analysis

import (
	"fmt"
	"io"
	"strings"
)

// PassingStats covers plays with pass_attempt == 1.
type PassingStats struct {
	Attempts      int
	CompletionPct float64
	YardsPerPass  float64
	EPAPerPass    float64
}

// RushingStats covers plays with rush_attempt == 1.
type RushingStats struct {
	Attempts     int
	YardsPerRush float64
	EPAPerRush   float64
}

// RedZoneStats covers plays with yardline_100 <= 20.
type RedZoneStats struct {
	Plays      int
	Touchdowns float64
	Efficiency float64
}

// ThirdDownStats covers plays with down == 3.
type ThirdDownStats struct {
	Attempts    int
	Conversions float64
	Rate        float64
}

// HomeAwayStats splits EPA per play by posteam_type.
type HomeAwayStats struct {
	HomePlays int
	AwayPlays int
	HomeEPA   float64
	AwayEPA   float64
}

// Report is the result of one team analysis. A nil statistic means its
// play subset was empty.
type Report struct {
	Team           string
	TeamName       string
	Conference     string
	Division       string
	TotalPlays     int
	OffensivePlays int

	Passing   *PassingStats
	Rushing   *RushingStats
	RedZone   *RedZoneStats
	ThirdDown *ThirdDownStats
	HomeAway  *HomeAwayStats
}

// WriteTo prints the report in a human-readable layout.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== %s Analysis ===\n", r.TeamName)
	fmt.Fprintf(&b, "Conference: %s\n", r.Conference)
	fmt.Fprintf(&b, "Division: %s\n", r.Division)
	fmt.Fprintf(&b, "Total plays analyzed: %d\n", r.TotalPlays)
	fmt.Fprintf(&b, "Plays with %s on offense: %d\n", r.Team, r.OffensivePlays)

	b.WriteString("\n--- Offensive Performance ---\n")
	if p := r.Passing; p != nil {
		fmt.Fprintf(&b, "Passing attempts: %d\n", p.Attempts)
		fmt.Fprintf(&b, "Completion percentage: %.1f%%\n", p.CompletionPct)
		fmt.Fprintf(&b, "Average yards per pass: %.1f\n", p.YardsPerPass)
		fmt.Fprintf(&b, "Average EPA per pass: %.3f\n", p.EPAPerPass)
	}
	if p := r.Rushing; p != nil {
		fmt.Fprintf(&b, "Rushing attempts: %d\n", p.Attempts)
		fmt.Fprintf(&b, "Average yards per rush: %.1f\n", p.YardsPerRush)
		fmt.Fprintf(&b, "Average EPA per rush: %.3f\n", p.EPAPerRush)
	}
	if p := r.RedZone; p != nil {
		fmt.Fprintf(&b, "Red zone efficiency: %.1f%% (%.1f TDs in %d plays)\n", p.Efficiency, p.Touchdowns, p.Plays)
	}
	if p := r.ThirdDown; p != nil {
		fmt.Fprintf(&b, "Third down conversion rate: %.1f%% (%.1f/%d)\n", p.Rate, p.Conversions, p.Attempts)
	}

	b.WriteString("\n--- Home vs Away Performance ---\n")
	if p := r.HomeAway; p != nil {
		fmt.Fprintf(&b, "Home EPA per play: %.3f (%d plays)\n", p.HomeEPA, p.HomePlays)
		fmt.Fprintf(&b, "Away EPA per play: %.3f (%d plays)\n", p.AwayEPA, p.AwayPlays)
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// VisualizationIdeas lists charts worth building on top of a report.
// Rendering them is left to the reader.
func VisualizationIdeas() []string {
	return []string{
		"EPA by quarter",
		"Pass vs Rush efficiency",
		"Performance by down and distance",
		"Weekly performance trends",
	}
}
