package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/pbpsplit/internal/adapters/csvio"
	service "github.com/okian/pbpsplit/internal/app"
	"github.com/okian/pbpsplit/internal/config"
	"github.com/okian/pbpsplit/internal/domain/analysis"
	"github.com/okian/pbpsplit/internal/domain/model"
	"github.com/okian/pbpsplit/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.InitWithWriter(io.Discard); err != nil {
		panic(err)
	}
}

const scenarioTeams = `team_abbr,team_name,team_nick,team_conf,team_division
AAA,Alpha Aces,Aces,AFC,AFC East
BBB,Beta Bears,Bears,NFC,NFC North
`

// Rows are out of order on purpose.
const scenarioPlays = `play_id,game_date,home_team,away_team,epa
20,2024-09-15,BBB,CCC,0.3
7,2024-09-08,AAA,BBB,-0.1
3,2024-09-08,AAA,BBB,0.2
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newScenario(t *testing.T, opts ...service.Option) (*service.Service, string) {
	t.Helper()
	dir := t.TempDir()
	out := filepath.Join(dir, "team_data")
	base := []service.Option{
		service.WithTeamsPath(writeFile(t, dir, "teams.csv", scenarioTeams)),
		service.WithPBPPath(writeFile(t, dir, "pbp.csv", scenarioPlays)),
		service.WithOutputDir(out),
		service.WithSeason(2024),
	}
	return service.New(append(base, opts...)...), out
}

func TestService_New(t *testing.T) {
	Convey("Given a service built from configuration", t, func() {
		cfg := config.New()
		cfg.OutputDir = "out"
		cfg.Season = 2023
		svc := service.New(service.WithConfig(cfg), service.WithLogger(logger.Get()))

		Convey("Then it resolves team files under the configured directory", func() {
			So(svc, ShouldNotBeNil)
			_, err := svc.Analyze(context.Background(), "XYZ")
			So(errors.Is(err, analysis.ErrTeamNotFound), ShouldBeTrue)
		})
	})

	Convey("Given a nil configuration", t, func() {
		So(service.New(service.WithConfig(nil)), ShouldNotBeNil)
	})
}

func TestService_PartitionScenario(t *testing.T) {
	Convey("Given two known teams and a play against an unknown team", t, func() {
		svc, out := newScenario(t)

		res, err := svc.Partition(context.Background())
		So(err, ShouldBeNil)

		Convey("Then the run is summarized", func() {
			So(res.RunID, ShouldNotBeEmpty)
			So(res.Chunks, ShouldEqual, 1)
			So(res.PlaysRead, ShouldEqual, int64(3))
			So(res.PlaysRouted, ShouldEqual, 5)
			So(res.Unmatched, ShouldEqual, 0)
			So(res.Skipped, ShouldBeEmpty)
			So(len(res.Artifacts), ShouldEqual, 2)
		})

		Convey("Then AAA gets its two games in order", func() {
			table, err := csvio.LoadTable(context.Background(), filepath.Join(out, "AAA_Aces_2024.csv"))
			So(err, ShouldBeNil)
			So(table.Schema.Columns(), ShouldResemble, []string{
				"play_id", "game_date", "home_team", "away_team", "epa",
				"team_full_name", "team_nickname", "team_conference", "team_division",
			})
			So(table.Rows, ShouldResemble, []model.Play{
				{"3", "2024-09-08", "AAA", "BBB", "0.2", "Alpha Aces", "Aces", "AFC", "AFC East"},
				{"7", "2024-09-08", "AAA", "BBB", "-0.1", "Alpha Aces", "Aces", "AFC", "AFC East"},
			})
		})

		Convey("Then BBB gets all three plays in order", func() {
			table, err := csvio.LoadTable(context.Background(), filepath.Join(out, "BBB_Bears_2024.csv"))
			So(err, ShouldBeNil)
			So(table.Len(), ShouldEqual, 3)
			So(table.Rows[0][0], ShouldEqual, "3")
			So(table.Rows[1][0], ShouldEqual, "7")
			So(table.Rows[2][0], ShouldEqual, "20")
			for _, r := range table.Rows {
				So(r.Get(table.Schema, "team_full_name"), ShouldEqual, "Beta Bears")
			}
		})

		Convey("Then no file is written for the unknown team", func() {
			entries, err := os.ReadDir(out)
			So(err, ShouldBeNil)
			var names []string
			for _, e := range entries {
				names = append(names, e.Name())
			}
			So(names, ShouldResemble, []string{"AAA_Aces_2024.csv", "BBB_Bears_2024.csv", "README.md"})
		})

		Convey("Then the summary lists only the known teams", func() {
			readme, err := os.ReadFile(res.SummaryPath)
			So(err, ShouldBeNil)
			So(string(readme), ShouldContainSubstring, "- **AAA_Aces_2024.csv**: Alpha Aces (AFC AFC East)")
			So(string(readme), ShouldContainSubstring, "- **BBB_Bears_2024.csv**: Beta Bears (NFC NFC North)")
			So(string(readme), ShouldNotContainSubstring, "CCC")
		})
	})
}

func TestService_PartitionSkipsTeamsWithoutPlays(t *testing.T) {
	Convey("Given a team that never played", t, func() {
		dir := t.TempDir()
		out := filepath.Join(dir, "team_data")
		teams := scenarioTeams + "DDD,Delta Dogs,Dogs,AFC,AFC South\n"
		svc := service.New(
			service.WithTeamsPath(writeFile(t, dir, "teams.csv", teams)),
			service.WithPBPPath(writeFile(t, dir, "pbp.csv", scenarioPlays)),
			service.WithOutputDir(out),
		)

		res, err := svc.Partition(context.Background())
		So(err, ShouldBeNil)

		Convey("Then it gets no file but appears in the summary", func() {
			So(res.Skipped, ShouldResemble, []string{"DDD"})
			_, statErr := os.Stat(filepath.Join(out, "DDD_Dogs_2024.csv"))
			So(os.IsNotExist(statErr), ShouldBeTrue)

			readme, err := os.ReadFile(filepath.Join(out, "README.md"))
			So(err, ShouldBeNil)
			So(string(readme), ShouldContainSubstring, "DDD_Dogs_2024.csv")
		})
	})
}

func TestService_PartitionBlankCells(t *testing.T) {
	Convey("Given a blank abbreviation in the teams table and a play with a blank away team", t, func() {
		dir := t.TempDir()
		out := filepath.Join(dir, "team_data")
		teams := scenarioTeams + ",Nobody,Blanks,AFC,AFC West\n"
		plays := scenarioPlays + "1,2024-09-22,AAA,,0.0\n"
		svc := service.New(
			service.WithTeamsPath(writeFile(t, dir, "teams.csv", teams)),
			service.WithPBPPath(writeFile(t, dir, "pbp.csv", plays)),
			service.WithOutputDir(out),
		)

		res, err := svc.Partition(context.Background())

		Convey("Then the blank cell matches no team and the run succeeds", func() {
			So(err, ShouldBeNil)
			So(len(res.Artifacts), ShouldEqual, 2)
			So(res.PlaysRouted, ShouldEqual, 6)

			table, err := csvio.LoadTable(context.Background(), filepath.Join(out, "AAA_Aces_2024.csv"))
			So(err, ShouldBeNil)
			So(table.Len(), ShouldEqual, 3)
			So(table.Rows[2][1], ShouldEqual, "2024-09-22")

			_, statErr := os.Stat(filepath.Join(out, "_Blanks_2024.csv"))
			So(os.IsNotExist(statErr), ShouldBeTrue)
		})
	})
}

func TestService_PartitionSortedInput(t *testing.T) {
	Convey("Given plays already in date and play order", t, func() {
		var logs bytes.Buffer
		So(logger.InitWithWriter(&logs), ShouldBeNil)
		defer func() { _ = logger.InitWithWriter(io.Discard) }()

		dir := t.TempDir()
		sorted := `play_id,game_date,home_team,away_team,epa
3,2024-09-08,AAA,BBB,0.2
7,2024-09-08,AAA,BBB,-0.1
20,2024-09-15,BBB,CCC,0.3
`
		svcSorted := service.New(
			service.WithTeamsPath(writeFile(t, dir, "teams.csv", scenarioTeams)),
			service.WithPBPPath(writeFile(t, dir, "sorted.csv", sorted)),
			service.WithOutputDir(filepath.Join(dir, "sorted")),
		)
		_, err := svcSorted.Partition(context.Background())
		So(err, ShouldBeNil)

		svcShuffled, shuffledOut := newScenario(t)
		_, err = svcShuffled.Partition(context.Background())
		So(err, ShouldBeNil)

		Convey("Then the files match those of shuffled input", func() {
			for _, name := range []string{"AAA_Aces_2024.csv", "BBB_Bears_2024.csv"} {
				want, err := os.ReadFile(filepath.Join(shuffledOut, name))
				So(err, ShouldBeNil)
				got, err := os.ReadFile(filepath.Join(dir, "sorted", name))
				So(err, ShouldBeNil)
				So(string(got), ShouldEqual, string(want))
			}
		})

		Convey("Then the buffered play count is logged after routing", func() {
			So(logs.String(), ShouldContainSubstring, "routing complete")
			So(logs.String(), ShouldContainSubstring, "buffered_plays=5")
		})
	})
}

func TestService_PartitionErrors(t *testing.T) {
	Convey("Given unusable inputs", t, func() {
		dir := t.TempDir()
		teamsPath := writeFile(t, dir, "teams.csv", scenarioTeams)

		Convey("When the play table is missing", func() {
			svc := service.New(
				service.WithTeamsPath(teamsPath),
				service.WithPBPPath(filepath.Join(dir, "missing.csv")),
				service.WithOutputDir(filepath.Join(dir, "out")),
			)
			_, err := svc.Partition(context.Background())
			So(errors.Is(err, csvio.ErrRead), ShouldBeTrue)
		})

		Convey("When the teams table is missing", func() {
			svc := service.New(
				service.WithTeamsPath(filepath.Join(dir, "missing.csv")),
				service.WithOutputDir(filepath.Join(dir, "out")),
			)
			_, err := svc.Partition(context.Background())
			So(errors.Is(err, csvio.ErrRead), ShouldBeTrue)
		})

		Convey("When the play table lacks play_id", func() {
			pbp := writeFile(t, dir, "pbp.csv", "game_date,home_team,away_team\n2024-09-08,AAA,BBB\n")
			svc := service.New(
				service.WithTeamsPath(teamsPath),
				service.WithPBPPath(pbp),
				service.WithOutputDir(filepath.Join(dir, "out")),
			)
			_, err := svc.Partition(context.Background())
			So(errors.Is(err, model.ErrMissingColumn), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "play_id")
		})

		Convey("When the context is already cancelled", func() {
			svc, _ := newScenario(t)
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := svc.Partition(ctx)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestService_MetricsExport(t *testing.T) {
	Convey("Given a metrics path", t, func() {
		prom := filepath.Join(t.TempDir(), "pbpsplit.prom")
		svc, _ := newScenario(t, service.WithMetricsPath(prom))

		_, err := svc.Partition(context.Background())
		So(err, ShouldBeNil)

		Convey("Then the run metrics are exported", func() {
			data, err := os.ReadFile(prom)
			So(err, ShouldBeNil)
			So(strings.Contains(string(data), "pbpsplit_"), ShouldBeTrue)
		})
	})
}
