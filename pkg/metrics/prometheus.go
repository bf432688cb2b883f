package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for partition and analysis runs.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Partition throughput
	chunksProcessed prometheus.Counter
	playsRead       prometheus.Counter
	playsRouted     *prometheus.CounterVec
	playsUnmatched  prometheus.Counter
	unknownTeamRefs prometheus.Counter
	bufferedPlays   prometheus.Gauge

	// Partition output
	artifactsWritten prometheus.Counter
	teamsSkipped     prometheus.Counter
	sortLatency      prometheus.Histogram
	writeLatency     prometheus.Histogram

	// Run outcome
	runDuration     *prometheus.GaugeVec
	lastSuccessUnix *prometheus.GaugeVec
	runErrors       *prometheus.CounterVec

	// Analysis
	analysesRun       prometheus.Counter
	statisticsSkipped *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics in batch-job exports.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "pbpsplit",
		subsystem:        "",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		constLabels:      make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.chunksProcessed = auto.NewCounter(m.counterOpts(
		"chunks_processed_total", "Total number of play table chunks routed"))
	m.playsRead = auto.NewCounter(m.counterOpts(
		"plays_read_total", "Total number of play rows read from the play table"))
	m.playsRouted = auto.NewCounterVec(m.counterOpts(
		"plays_routed_total", "Play rows routed into a team bucket"), []string{"team"})
	m.playsUnmatched = auto.NewCounter(m.counterOpts(
		"plays_unmatched_total", "Play rows whose home and away teams are both unknown"))
	m.unknownTeamRefs = auto.NewCounter(m.counterOpts(
		"unknown_team_references_total", "home_team/away_team values absent from the teams table"))
	m.bufferedPlays = auto.NewGauge(m.gaugeOpts(
		"buffered_plays", "Play rows currently held in team buckets"))

	m.artifactsWritten = auto.NewCounter(m.counterOpts(
		"artifacts_written_total", "Per-team files written"))
	m.teamsSkipped = auto.NewCounter(m.counterOpts(
		"teams_skipped_total", "Teams without any play, for which no file was written"))
	m.sortLatency = auto.NewHistogram(m.histogramOpts(
		"sort_latency_milliseconds", "Chronological sort latency per team bucket"))
	m.writeLatency = auto.NewHistogram(m.histogramOpts(
		"write_latency_milliseconds", "Per-team file write latency"))

	m.runDuration = auto.NewGaugeVec(m.gaugeOpts(
		"run_duration_seconds", "Duration of the last run"), []string{"tool"})
	m.lastSuccessUnix = auto.NewGaugeVec(m.gaugeOpts(
		"last_success_unix", "Unix timestamp of the last successful run"), []string{"tool"})
	m.runErrors = auto.NewCounterVec(m.counterOpts(
		"run_errors_total", "Failed runs by tool and stage"), []string{"tool", "stage"})

	m.analysesRun = auto.NewCounter(m.counterOpts(
		"analyses_total", "Team analyses completed"))
	m.statisticsSkipped = auto.NewCounterVec(m.counterOpts(
		"statistics_skipped_total", "Statistics skipped because their play subset was empty"), []string{"statistic"})
}

// RecordChunkProcessed counts one routed chunk of n plays.
func RecordChunkProcessed(n int) {
	globalManager.chunksProcessed.Inc()
	globalManager.playsRead.Add(float64(n))
}

// RecordPlaysRouted counts n plays routed to team.
func RecordPlaysRouted(team string, n int) {
	globalManager.playsRouted.WithLabelValues(team).Add(float64(n))
}

// RecordPlayUnmatched counts a play routed to no bucket.
func RecordPlayUnmatched() {
	globalManager.playsUnmatched.Inc()
}

// RecordUnknownTeam counts a team reference missing from the teams table.
func RecordUnknownTeam() {
	globalManager.unknownTeamRefs.Inc()
}

// UpdateBufferedPlays sets the number of plays held in buckets.
func UpdateBufferedPlays(n int) {
	globalManager.bufferedPlays.Set(float64(n))
}

// RecordArtifactWritten counts a written team file and its write latency.
func RecordArtifactWritten(latency time.Duration) {
	globalManager.artifactsWritten.Inc()
	globalManager.writeLatency.Observe(float64(latency) / float64(time.Millisecond))
}

// RecordTeamSkipped counts a team without plays.
func RecordTeamSkipped() {
	globalManager.teamsSkipped.Inc()
}

// RecordSortLatency records the sort latency of one bucket.
func RecordSortLatency(latency time.Duration) {
	globalManager.sortLatency.Observe(float64(latency) / float64(time.Millisecond))
}

// RecordRunSuccess records a successful run of tool.
func RecordRunSuccess(tool string, took time.Duration) {
	globalManager.runDuration.WithLabelValues(tool).Set(took.Seconds())
	globalManager.lastSuccessUnix.WithLabelValues(tool).Set(float64(time.Now().Unix()))
}

// RecordRunError counts a failed run of tool at stage.
func RecordRunError(tool, stage string) {
	globalManager.runErrors.WithLabelValues(tool, stage).Inc()
}

// RecordAnalysis counts a completed team analysis.
func RecordAnalysis() {
	globalManager.analysesRun.Inc()
}

// RecordStatisticSkipped counts a statistic skipped for an empty subset.
func RecordStatisticSkipped(statistic string) {
	globalManager.statisticsSkipped.WithLabelValues(statistic).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile writes the current metrics in the text exposition format to
// path, for collection by a node exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, customRegistry); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}
