package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	err := Init()
	if err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}

	if err := InitWithWriter(nil); err == nil {
		t.Fatal("expected error for nil writer")
	}
}

func TestLoggerOutput(t *testing.T) {
	Convey("Given a logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(InitWithWriter(&buf), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging at info level with fields", func() {
			Get().Info(ctx, "saved team file",
				String("team", "KC"),
				Int("plays", 42),
				Int64("rows", 7),
				Float64("ratio", 0.5),
				Duration("took", time.Second),
			)

			Convey("Then the record carries message, fields and source", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, `msg="saved team file"`)
				So(out, ShouldContainSubstring, "team=KC")
				So(out, ShouldContainSubstring, "plays=42")
				So(out, ShouldContainSubstring, "rows=7")
				So(out, ShouldContainSubstring, "took=1s")
				So(out, ShouldContainSubstring, "source=")
				So(out, ShouldContainSubstring, "logger_test.go")
			})
		})

		Convey("When logging an error field", func() {
			Get().Error(ctx, "read failed", Error(errors.New("boom")))

			Convey("Then the error is rendered", func() {
				So(buf.String(), ShouldContainSubstring, "error=boom")
				So(buf.String(), ShouldContainSubstring, "level=ERROR")
			})
		})

		Convey("When debug is logged at the default level", func() {
			Get().Debug(ctx, "hidden")

			Convey("Then nothing is written", func() {
				So(buf.String(), ShouldBeEmpty)
			})
		})

		Convey("When the level is lowered to debug", func() {
			So(SetLevelString("DEBUG"), ShouldBeNil)
			Get().Debug(ctx, "visible")

			Convey("Then debug records are written", func() {
				So(buf.String(), ShouldContainSubstring, "visible")
			})
		})

		Convey("When using named and enriched loggers", func() {
			Named("partition").With(String("run_id", "abc")).Warn(ctx, "team skipped")

			Convey("Then component and bound fields appear", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "component=partition")
				So(out, ShouldContainSubstring, "run_id=abc")
				So(out, ShouldContainSubstring, "level=WARN")
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		So(InitWithWriter(&bytes.Buffer{}), ShouldBeNil)

		for _, lvl := range []string{"debug", "info", "", "warn", "warning", "error", " Info "} {
			So(SetLevelString(lvl), ShouldBeNil)
		}
		So(SetLevelString("verbose"), ShouldNotBeNil)
	})
}
