package sampledata

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/okian/pbpsplit/internal/domain/model"
)

// Column positions of generated plays.
const (
	colPlayID = iota
	colGameID
	colOldGameID
	colHomeTeam
	colAwayTeam
	colSeasonType
	colWeek
	colPosteam
	colPosteamType
	colDefteam
	colGameDate
	colQtr
	colDown
	colYdstogo
	colYardline100
	colPlayType
	colPassAttempt
	colCompletePass
	colPassingYards
	colRushAttempt
	colRushingYards
	colTouchdown
	colThirdDownConverted
	colEPA
	numColumns
)

// Columns is the header of generated plays.
var Columns = [numColumns]string{
	colPlayID:             "play_id",
	colGameID:             "game_id",
	colOldGameID:          "old_game_id",
	colHomeTeam:           "home_team",
	colAwayTeam:           "away_team",
	colSeasonType:         "season_type",
	colWeek:               "week",
	colPosteam:            "posteam",
	colPosteamType:        "posteam_type",
	colDefteam:            "defteam",
	colGameDate:           "game_date",
	colQtr:                "qtr",
	colDown:               "down",
	colYdstogo:            "ydstogo",
	colYardline100:        "yardline_100",
	colPlayType:           "play_type",
	colPassAttempt:        "pass_attempt",
	colCompletePass:       "complete_pass",
	colPassingYards:       "passing_yards",
	colRushAttempt:        "rush_attempt",
	colRushingYards:       "rushing_yards",
	colTouchdown:          "touchdown",
	colThirdDownConverted: "third_down_converted",
	colEPA:                "epa",
}

// Play distribution parameters.
const (
	passRate       = 0.55
	completionRate = 0.65
	maxPlayIDStep  = 40
	maxPassYards   = 30
	maxRushYards   = 12
	minRushYards   = -3
	epaSpread      = 1.2
	touchdownEPA   = 3.0
	quarters       = 4
	daysPerWeek    = 7
	sundayOffset   = 3 // days from the Thursday opener
	mondayOffset   = 4
)

// Game is one scheduled game.
type Game struct {
	ID        string
	OldID     string
	Week      int
	Date      string
	Home      string
	Away      string
	FirstPlay int // index into Season.Plays
	NumPlays  int
}

// Season is a generated league table and its plays in game order.
type Season struct {
	Year  int
	Teams []model.Team
	Games []Game
	Plays []model.Play
}

// Header returns the play table header.
func (s *Season) Header() []string {
	return Columns[:]
}

// Generate builds a season from cfg. The same cfg always yields the same
// season.
func Generate(cfg Config) (*Season, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &generator{rng: rand.New(rand.NewSource(cfg.Seed))} //nolint:gosec // reproducible sample data
	s := &Season{
		Year:  cfg.Season,
		Teams: append([]model.Team(nil), League...),
	}
	kickoff := cfg.kickoff()

	for week := 1; week <= cfg.Weeks; week++ {
		pairs := roundRobin(len(League), week-1)
		for i, p := range pairs {
			date := kickoff.AddDate(0, 0, daysPerWeek*(week-1)+gameDayOffset(i, len(pairs)))
			game := Game{
				Week:      week,
				Date:      date.Format(time.DateOnly),
				Home:      League[p[0]].Abbr,
				Away:      League[p[1]].Abbr,
				FirstPlay: len(s.Plays),
				NumPlays:  cfg.PlaysPerGame,
			}
			game.ID = fmt.Sprintf("%d_%02d_%s_%s", cfg.Season, week, game.Away, game.Home)
			game.OldID = fmt.Sprintf("%s%02d", date.Format("20060102"), i)
			s.Plays = append(s.Plays, g.game(game)...)
			s.Games = append(s.Games, game)
		}
	}
	return s, nil
}

// gameDayOffset puts the first game of a week on Thursday, the last on
// Monday and the rest on Sunday.
func gameDayOffset(i, games int) int {
	switch {
	case i == 0:
		return 0
	case i == games-1:
		return mondayOffset
	default:
		return sundayOffset
	}
}

// roundRobin returns the home/away index pairs of one round of the circle
// method over n teams. n must be even.
func roundRobin(n, round int) [][2]int {
	slots := make([]int, n)
	for i := 1; i < n; i++ {
		slots[i] = (i-1+round)%(n-1) + 1
	}
	pairs := make([][2]int, 0, n/2)
	for i := 0; i < n/2; i++ {
		a, b := slots[i], slots[n-1-i]
		if (round+i)%2 == 1 {
			a, b = b, a
		}
		pairs = append(pairs, [2]int{a, b})
	}
	return pairs
}

type generator struct {
	rng *rand.Rand
}

// game generates the plays of one game. The first row opens the game and
// carries no offense.
func (g *generator) game(game Game) []model.Play {
	plays := make([]model.Play, 0, game.NumPlays)
	playID := 1
	for i := 0; i < game.NumPlays; i++ {
		row := make(model.Play, numColumns)
		row[colPlayID] = strconv.Itoa(playID)
		row[colGameID] = game.ID
		row[colOldGameID] = game.OldID
		row[colHomeTeam] = game.Home
		row[colAwayTeam] = game.Away
		row[colSeasonType] = "REG"
		row[colWeek] = strconv.Itoa(game.Week)
		row[colGameDate] = game.Date
		row[colQtr] = strconv.Itoa(min(1+i*quarters/game.NumPlays, quarters))
		if i > 0 {
			g.snap(row, game)
		}
		plays = append(plays, row)
		playID += 1 + g.rng.Intn(maxPlayIDStep)
	}
	return plays
}

// snap fills the offensive columns of one scrimmage play.
func (g *generator) snap(row model.Play, game Game) {
	pos, def, side := game.Home, game.Away, "home"
	if g.rng.Intn(2) == 1 {
		pos, def, side = game.Away, game.Home, "away"
	}
	row[colPosteam] = pos
	row[colPosteamType] = side
	row[colDefteam] = def

	down := 1 + g.rng.Intn(4)
	toGo := 1 + g.rng.Intn(10)
	yardline := 1 + g.rng.Intn(99)
	row[colDown] = strconv.Itoa(down)
	row[colYdstogo] = strconv.Itoa(toGo)
	row[colYardline100] = strconv.Itoa(yardline)

	var gained int
	if g.rng.Float64() < passRate {
		row[colPlayType] = "pass"
		row[colPassAttempt], row[colRushAttempt] = "1", "0"
		if g.rng.Float64() < completionRate {
			gained = min(g.rng.Intn(maxPassYards+1), yardline)
			row[colCompletePass] = "1"
			row[colPassingYards] = strconv.Itoa(gained)
		} else {
			row[colCompletePass] = "0"
		}
	} else {
		row[colPlayType] = "run"
		row[colPassAttempt], row[colRushAttempt] = "0", "1"
		row[colCompletePass] = "0"
		gained = min(minRushYards+g.rng.Intn(maxRushYards-minRushYards+1), yardline)
		row[colRushingYards] = strconv.Itoa(gained)
	}

	epa := g.rng.NormFloat64() * epaSpread
	row[colTouchdown] = "0"
	if gained == yardline {
		row[colTouchdown] = "1"
		epa += touchdownEPA
	}
	row[colThirdDownConverted] = "0"
	if down == 3 && gained >= toGo {
		row[colThirdDownConverted] = "1"
	}
	row[colEPA] = strconv.FormatFloat(epa, 'f', 6, 64)
}
