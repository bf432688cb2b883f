package partition_test

import (
	"testing"

	"github.com/okian/pbpsplit/internal/domain/model"
	"github.com/okian/pbpsplit/internal/domain/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(plays []model.Play) []string {
	out := make([]string, len(plays))
	for i, p := range plays {
		out[i] = p[0] + "/" + p[1] + "/" + p[2]
	}
	return out
}

func TestSortChronological(t *testing.T) {
	schema := model.NewSchema([]string{"game_date", "play_id", "tag"})

	tests := []struct {
		name  string
		plays []model.Play
		want  []string
	}{
		{
			name: "orders by date then numeric play id",
			plays: []model.Play{
				{"2024-09-15", "40", "a"},
				{"2024-09-08", "100", "b"},
				{"2024-09-08", "99", "c"},
				{"2024-09-08", "1", "d"},
			},
			want: []string{"2024-09-08/1/d", "2024-09-08/99/c", "2024-09-08/100/b", "2024-09-15/40/a"},
		},
		{
			name: "keeps input order for equal keys",
			plays: []model.Play{
				{"2024-09-08", "7", "first"},
				{"2024-09-08", "7", "second"},
				{"2024-09-08", "7.0", "third"},
			},
			want: []string{"2024-09-08/7/first", "2024-09-08/7/second", "2024-09-08/7.0/third"},
		},
		{
			name: "places non-numeric then empty ids last",
			plays: []model.Play{
				{"2024-09-08", "", "empty"},
				{"2024-09-08", "x2", "b"},
				{"2024-09-08", "NaN", "nan"},
				{"2024-09-08", "x1", "a"},
				{"2024-09-08", "3", "num"},
			},
			want: []string{"2024-09-08/3/num", "2024-09-08/NaN/nan", "2024-09-08/x1/a", "2024-09-08/x2/b", "2024-09-08//empty"},
		},
		{
			name: "places empty dates last",
			plays: []model.Play{
				{"", "1", "nodate"},
				{"2025-01-05", "1", "late"},
				{"2024-09-05", "1", "early"},
			},
			want: []string{"2024-09-05/1/early", "2025-01-05/1/late", "/1/nodate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, partition.SortChronological(schema, tt.plays))
			assert.Equal(t, tt.want, ids(tt.plays))
			assert.True(t, partition.IsChronological(schema, tt.plays), "sorted plays should be chronological")
		})
	}
}

func TestSortChronological_MissingColumns(t *testing.T) {
	schema := model.NewSchema([]string{"game_date"})
	err := partition.SortChronological(schema, nil)
	require.ErrorIs(t, err, model.ErrMissingColumn)
	assert.False(t, partition.IsChronological(schema, nil), "no play_id column")
}

func TestIsChronological_DetectsDisorder(t *testing.T) {
	schema := model.NewSchema([]string{"game_date", "play_id"})
	plays := []model.Play{{"2024-09-08", "10"}, {"2024-09-08", "9"}}
	assert.False(t, partition.IsChronological(schema, plays))
}
