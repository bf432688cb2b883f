package summary_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/pbpsplit/internal/domain/model"
	"github.com/okian/pbpsplit/internal/domain/summary"
	"github.com/smartystreets/goconvey/convey"
)

func TestRender(t *testing.T) {
	convey.Convey("Given a teams table", t, func() {
		teams := model.NewTeamIndex([]model.Team{
			{Abbr: "KC", Name: "Kansas City Chiefs", Nick: "Chiefs", Conference: "AFC", Division: "AFC West"},
			{Abbr: "SF", Name: "San Francisco 49ers", Nick: "49ers", Conference: "NFC", Division: "NFC West"},
		})

		convey.Convey("When rendering for 2024", func() {
			doc := summary.Render(teams, 2024)

			convey.Convey("Then the title and naming convention carry the season", func() {
				convey.So(doc, convey.ShouldStartWith, "# NFL Team Data Files - 2024 Season\n")
				convey.So(doc, convey.ShouldContainSubstring, "Files are named: `{TEAM_ABBR}_{TEAM_NICKNAME}_2024.csv`")
				convey.So(doc, convey.ShouldContainSubstring, "players_2024.csv")
			})

			convey.Convey("Then every team is listed in table order", func() {
				kc := "- **KC_Chiefs_2024.csv**: Kansas City Chiefs (AFC AFC West)\n"
				sf := "- **SF_49ers_2024.csv**: San Francisco 49ers (NFC NFC West)\n"
				convey.So(doc, convey.ShouldContainSubstring, kc)
				convey.So(doc, convey.ShouldContainSubstring, sf)
				convey.So(strings.Index(doc, kc), convey.ShouldBeLessThan, strings.Index(doc, sf))
			})

			convey.Convey("Then the static guidance follows the list", func() {
				convey.So(doc, convey.ShouldContainSubstring, "## Usage Tips")
				convey.So(doc, convey.ShouldContainSubstring, "## Example Analysis Ideas")
				convey.So(doc, convey.ShouldEndWith, "Happy analyzing! 🏈\n")
			})

			convey.Convey("Then rendering is deterministic", func() {
				convey.So(summary.Render(teams, 2024), convey.ShouldEqual, doc)
			})
		})

		convey.Convey("When writing into a directory", func() {
			dir := t.TempDir()
			path, err := summary.Write(dir, teams, 2023)

			convey.So(err, convey.ShouldBeNil)
			convey.So(path, convey.ShouldEqual, filepath.Join(dir, "README.md"))
			data, err := os.ReadFile(path)
			convey.So(err, convey.ShouldBeNil)
			convey.So(string(data), convey.ShouldEqual, summary.Render(teams, 2023))
		})

		convey.Convey("When the directory does not exist", func() {
			_, err := summary.Write(filepath.Join(t.TempDir(), "missing"), teams, 2024)
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}
