package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options on a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "pbpsplit")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			manager.chunksProcessed.Inc()

			Convey("Then metric names and labels follow the options", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				var found bool
				for _, f := range families {
					if f.GetName() == "test_namespace_test_subsystem_chunks_processed_total" {
						found = true
						So(f.GetMetric()[0].GetLabel()[0].GetName(), ShouldEqual, "env")
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When empty options are given", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithConstLabels(nil),
				WithPrometheusRegistry(registry),
			)

			Convey("Then defaults are kept", func() {
				So(manager.namespace, ShouldEqual, "pbpsplit")
				So(len(manager.histogramBuckets), ShouldBeGreaterThan, 0)
				So(manager.constLabels, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording partition throughput", func() {
			chunks := testutil.ToFloat64(globalManager.chunksProcessed)
			plays := testutil.ToFloat64(globalManager.playsRead)
			routed := testutil.ToFloat64(globalManager.playsRouted.WithLabelValues("KC"))

			RecordChunkProcessed(250)
			RecordPlaysRouted("KC", 40)
			RecordPlayUnmatched()
			RecordUnknownTeam()
			UpdateBufferedPlays(40)

			Convey("Then counters advance by the recorded amounts", func() {
				So(testutil.ToFloat64(globalManager.chunksProcessed), ShouldEqual, chunks+1)
				So(testutil.ToFloat64(globalManager.playsRead), ShouldEqual, plays+250)
				So(testutil.ToFloat64(globalManager.playsRouted.WithLabelValues("KC")), ShouldEqual, routed+40)
				So(testutil.ToFloat64(globalManager.bufferedPlays), ShouldEqual, 40.0)
			})
		})

		Convey("When recording output and run outcome", func() {
			written := testutil.ToFloat64(globalManager.artifactsWritten)

			So(func() {
				RecordArtifactWritten(3 * time.Millisecond)
				RecordTeamSkipped()
				RecordSortLatency(time.Millisecond)
				RecordRunSuccess("partition", 2*time.Second)
				RecordRunError("partition", "read_teams")
				RecordAnalysis()
				RecordStatisticSkipped("red_zone")
			}, ShouldNotPanic)

			Convey("Then the run gauges are set", func() {
				So(testutil.ToFloat64(globalManager.artifactsWritten), ShouldEqual, written+1)
				So(testutil.ToFloat64(globalManager.runDuration.WithLabelValues("partition")), ShouldEqual, 2.0)
				So(testutil.ToFloat64(globalManager.lastSuccessUnix.WithLabelValues("partition")), ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestWriteTextfile(t *testing.T) {
	Convey("Given recorded metrics", t, func() {
		RecordChunkProcessed(1)
		dir := t.TempDir()

		Convey("When writing a textfile", func() {
			path := filepath.Join(dir, "pbpsplit.prom")
			So(WriteTextfile(path), ShouldBeNil)

			Convey("Then the exposition contains our metrics", func() {
				data, err := os.ReadFile(path)
				So(err, ShouldBeNil)
				So(string(data), ShouldContainSubstring, "pbpsplit_chunks_processed_total")
			})
		})

		Convey("When the target directory does not exist", func() {
			err := WriteTextfile(filepath.Join(dir, "missing", "pbpsplit.prom"))
			So(errors.Is(err, ErrExport), ShouldBeTrue)
		})

		Convey("Then the registry is exposed", func() {
			So(GetRegistry(), ShouldPointTo, customRegistry)
		})
	})
}
