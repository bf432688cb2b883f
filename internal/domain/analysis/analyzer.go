package analysis

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/okian/pbpsplit/internal/adapters/csvio"
	"github.com/okian/pbpsplit/internal/domain/model"
	"github.com/okian/pbpsplit/pkg/logger"
	"github.com/okian/pbpsplit/pkg/metrics"
)

// Default analyzer configuration.
const (
	defaultDataDir = "team_data"
	defaultSeason  = 2024
)

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithDataDir sets the directory holding the per-team files.
func WithDataDir(dir string) Option {
	return func(a *Analyzer) {
		if dir != "" {
			a.dataDir = dir
		}
	}
}

// WithSeason sets the season embedded in team file names.
func WithSeason(season int) Option {
	return func(a *Analyzer) {
		if season > 0 {
			a.season = season
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// Analyzer loads a team file and computes its report.
type Analyzer struct {
	dataDir string
	season  int
	logger  logger.Logger
}

// New constructs an Analyzer reading from team_data for the 2024 season
// unless overridden.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		dataDir: defaultDataDir,
		season:  defaultSeason,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Path returns the team file path for abbr.
func (a *Analyzer) Path(abbr string) (string, error) {
	name, err := TeamFile(abbr, a.season)
	if err != nil {
		return "", err
	}
	return filepath.Join(a.dataDir, name), nil
}

// Analyze resolves abbr to its team file, loads it, and computes the report.
func (a *Analyzer) Analyze(ctx context.Context, abbr string) (*Report, error) {
	if a.logger == nil {
		a.logger = logger.Get()
	}

	path, err := a.Path(abbr)
	if err != nil {
		return nil, err
	}

	a.logger.Info(ctx, "loading team data", logger.String("team", abbr), logger.String("path", path))
	table, err := csvio.LoadTable(ctx, path)
	if err != nil {
		return nil, err
	}

	report, err := Compute(abbr, table)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", abbr, err)
	}
	metrics.RecordAnalysis()
	return report, nil
}

// Compute builds the report for team abbr from its loaded file. Statistics
// whose play subset is empty are left nil.
func Compute(abbr string, table *csvio.Table) (*Report, error) {
	if table.Len() == 0 {
		return nil, ErrEmptyTable
	}
	if err := table.Schema.Require(ColPosteam, model.ColTeamFullName, model.ColTeamConference, model.ColTeamDivision); err != nil {
		return nil, err
	}

	all := frame{schema: table.Schema, rows: table.Rows}
	first := table.Rows[0]
	r := &Report{
		Team:       abbr,
		TeamName:   first.Get(table.Schema, model.ColTeamFullName),
		Conference: first.Get(table.Schema, model.ColTeamConference),
		Division:   first.Get(table.Schema, model.ColTeamDivision),
		TotalPlays: table.Len(),
	}

	offense, err := all.equals(ColPosteam, abbr)
	if err != nil {
		return nil, err
	}
	r.OffensivePlays = offense.Len()

	steps := []struct {
		name string
		fn   func(frame, *Report) (bool, error)
	}{
		{"passing", passing},
		{"rushing", rushing},
		{"red_zone", redZone},
		{"third_down", thirdDown},
		{"home_away", homeAway},
	}
	for _, s := range steps {
		ok, err := s.fn(offense, r)
		if err != nil {
			return nil, err
		}
		if !ok {
			metrics.RecordStatisticSkipped(s.name)
		}
	}
	return r, nil
}

func isOne(v float64) bool { return v == 1 }

func passing(offense frame, r *Report) (bool, error) {
	plays, err := offense.where(ColPassAttempt, isOne)
	if err != nil || plays.Len() == 0 {
		return false, err
	}
	completions, err := plays.sum(ColCompletePass)
	if err != nil {
		return false, err
	}
	yards, err := plays.mean(ColPassingYards)
	if err != nil {
		return false, err
	}
	epa, err := plays.mean(ColEPA)
	if err != nil {
		return false, err
	}
	r.Passing = &PassingStats{
		Attempts:      plays.Len(),
		CompletionPct: percent(completions, plays.Len()),
		YardsPerPass:  yards,
		EPAPerPass:    epa,
	}
	return true, nil
}

func rushing(offense frame, r *Report) (bool, error) {
	plays, err := offense.where(ColRushAttempt, isOne)
	if err != nil || plays.Len() == 0 {
		return false, err
	}
	yards, err := plays.mean(ColRushingYards)
	if err != nil {
		return false, err
	}
	epa, err := plays.mean(ColEPA)
	if err != nil {
		return false, err
	}
	r.Rushing = &RushingStats{Attempts: plays.Len(), YardsPerRush: yards, EPAPerRush: epa}
	return true, nil
}

func redZone(offense frame, r *Report) (bool, error) {
	plays, err := offense.where(ColYardline100, func(v float64) bool { return v <= redZoneYardline })
	if err != nil || plays.Len() == 0 {
		return false, err
	}
	tds, err := plays.sum(ColTouchdown)
	if err != nil {
		return false, err
	}
	r.RedZone = &RedZoneStats{Plays: plays.Len(), Touchdowns: tds, Efficiency: percent(tds, plays.Len())}
	return true, nil
}

func thirdDown(offense frame, r *Report) (bool, error) {
	plays, err := offense.where(ColDown, func(v float64) bool { return v == 3 })
	if err != nil || plays.Len() == 0 {
		return false, err
	}
	conv, err := plays.sum(ColThirdDownConverted)
	if err != nil {
		return false, err
	}
	r.ThirdDown = &ThirdDownStats{Attempts: plays.Len(), Conversions: conv, Rate: percent(conv, plays.Len())}
	return true, nil
}

// homeAway reports only when the team has offensive plays both at home and away.
func homeAway(offense frame, r *Report) (bool, error) {
	home, err := offense.equals(ColPosteamType, "home")
	if err != nil {
		return false, err
	}
	away, err := offense.equals(ColPosteamType, "away")
	if err != nil {
		return false, err
	}
	if home.Len() == 0 || away.Len() == 0 {
		return false, nil
	}
	homeEPA, err := home.mean(ColEPA)
	if err != nil {
		return false, err
	}
	awayEPA, err := away.mean(ColEPA)
	if err != nil {
		return false, err
	}
	r.HomeAway = &HomeAwayStats{HomePlays: home.Len(), AwayPlays: away.Len(), HomeEPA: homeEPA, AwayEPA: awayEPA}
	return true, nil
}
