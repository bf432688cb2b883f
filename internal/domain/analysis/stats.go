package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/okian/pbpsplit/internal/domain/model"
)

// Play table columns read by the analyzer.
const (
	ColPosteam            = "posteam"
	ColPosteamType        = "posteam_type"
	ColPassAttempt        = "pass_attempt"
	ColCompletePass       = "complete_pass"
	ColPassingYards       = "passing_yards"
	ColRushAttempt        = "rush_attempt"
	ColRushingYards       = "rushing_yards"
	ColEPA                = "epa"
	ColYardline100        = "yardline_100"
	ColTouchdown          = "touchdown"
	ColDown               = "down"
	ColThirdDownConverted = "third_down_converted"
)

// redZoneYardline is the largest distance to the end zone inside the red zone.
const redZoneYardline = 20

// frame is a filtered view over a loaded table.
type frame struct {
	schema *model.Schema
	rows   []model.Play
}

// Len returns the number of rows.
func (f frame) Len() int { return len(f.rows) }

// column resolves name to a position or fails with model.ErrMissingColumn.
func (f frame) column(name string) (int, error) {
	i, ok := f.schema.Index(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", model.ErrMissingColumn, name)
	}
	return i, nil
}

// number parses a cell; empty or unparsable cells are missing (NaN).
func number(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// filter keeps rows whose cell in col satisfies keep.
func (f frame) filter(col string, keep func(string) bool) (frame, error) {
	i, err := f.column(col)
	if err != nil {
		return frame{}, err
	}
	out := frame{schema: f.schema}
	for _, r := range f.rows {
		if keep(r[i]) {
			out.rows = append(out.rows, r)
		}
	}
	return out, nil
}

// where keeps rows whose numeric value in col satisfies keep. Missing values
// never match.
func (f frame) where(col string, keep func(float64) bool) (frame, error) {
	return f.filter(col, func(s string) bool {
		v := number(s)
		return !math.IsNaN(v) && keep(v)
	})
}

// equals keeps rows whose cell in col is exactly value.
func (f frame) equals(col, value string) (frame, error) {
	return f.filter(col, func(s string) bool { return s == value })
}

// sum adds the present values of col.
func (f frame) sum(col string) (float64, error) {
	i, err := f.column(col)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, r := range f.rows {
		if v := number(r[i]); !math.IsNaN(v) {
			total += v
		}
	}
	return total, nil
}

// mean averages the present values of col; NaN when none is present.
func (f frame) mean(col string) (float64, error) {
	i, err := f.column(col)
	if err != nil {
		return 0, err
	}
	total, n := 0.0, 0
	for _, r := range f.rows {
		if v := number(r[i]); !math.IsNaN(v) {
			total += v
			n++
		}
	}
	if n == 0 {
		return math.NaN(), nil
	}
	return total / float64(n), nil
}

// percent returns part/whole*100.
func percent(part float64, whole int) float64 {
	return part / float64(whole) * 100
}
