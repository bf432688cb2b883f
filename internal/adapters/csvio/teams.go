package csvio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/okian/pbpsplit/internal/domain/model"
)

// LoadTeams reads the whole teams table at path.
func LoadTeams(ctx context.Context, path string) ([]model.Team, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer func() { _ = f.Close() }()
	return ReadTeams(ctx, f, path)
}

// ReadTeams reads a teams table from r in file order.
func ReadTeams(ctx context.Context, r io.Reader, name string) ([]model.Team, error) {
	cr := newCSVReader(r)
	schema, err := readHeader(cr, name)
	if err != nil {
		return nil, err
	}
	if err := schema.Require(model.TeamColumns...); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var teams []model.Team
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRead, name, err)
		}
		row := model.Play(rec)
		teams = append(teams, model.Team{
			Abbr:       row.Get(schema, model.ColTeamAbbr),
			Name:       row.Get(schema, model.ColTeamName),
			Nick:       row.Get(schema, model.ColTeamNick),
			Conference: row.Get(schema, model.ColTeamConf),
			Division:   row.Get(schema, model.ColTeamDivision),
		})
	}
	return teams, nil
}
