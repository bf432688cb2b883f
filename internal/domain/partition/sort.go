package partition

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/okian/pbpsplit/internal/domain/model"
)

// chronoKey is the precomputed sort key of one play.
type chronoKey struct {
	date    string
	id      string
	idNum   float64
	numeric bool
}

func newChronoKey(date, id string) chronoKey {
	k := chronoKey{date: date, id: id}
	if f, err := strconv.ParseFloat(strings.TrimSpace(id), 64); err == nil && !math.IsNaN(f) {
		k.idNum, k.numeric = f, true
	}
	return k
}

// compareMissingLast orders empty values after everything else.
func compareMissingLast(a, b string, present func() int) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}
	return present()
}

func compareChrono(a, b chronoKey) int {
	if c := compareMissingLast(a.date, b.date, func() int { return strings.Compare(a.date, b.date) }); c != 0 {
		return c
	}
	return compareMissingLast(a.id, b.id, func() int {
		switch {
		case a.numeric && b.numeric:
			return cmp.Compare(a.idNum, b.idNum)
		case a.numeric:
			return -1
		case b.numeric:
			return 1
		}
		return strings.Compare(a.id, b.id)
	})
}

// SortChronological stable-sorts plays by game_date, then play_id.
//
// Dates compare as strings, which orders ISO dates. Play ids compare
// numerically; non-numeric ids follow numeric ones and compare as strings.
// Empty dates and ids sort last. Plays with equal keys keep their order.
func SortChronological(schema *model.Schema, plays []model.Play) error {
	if err := schema.Require(model.ColGameDate, model.ColPlayID); err != nil {
		return fmt.Errorf("sort: %w", err)
	}
	dateIdx, _ := schema.Index(model.ColGameDate)
	idIdx, _ := schema.Index(model.ColPlayID)

	type keyed struct {
		key  chronoKey
		play model.Play
	}
	rows := make([]keyed, len(plays))
	for i, p := range plays {
		rows[i] = keyed{key: newChronoKey(p[dateIdx], p[idIdx]), play: p}
	}
	slices.SortStableFunc(rows, func(a, b keyed) int { return compareChrono(a.key, b.key) })
	for i := range rows {
		plays[i] = rows[i].play
	}
	return nil
}

// IsChronological reports whether plays are ordered as SortChronological
// leaves them.
func IsChronological(schema *model.Schema, plays []model.Play) bool {
	dateIdx, ok1 := schema.Index(model.ColGameDate)
	idIdx, ok2 := schema.Index(model.ColPlayID)
	if !ok1 || !ok2 {
		return false
	}
	for i := 1; i < len(plays); i++ {
		prev := newChronoKey(plays[i-1][dateIdx], plays[i-1][idIdx])
		cur := newChronoKey(plays[i][dateIdx], plays[i][idIdx])
		if compareChrono(prev, cur) > 0 {
			return false
		}
	}
	return true
}
