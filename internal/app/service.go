// Package service wires the partition and analysis pipelines together.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/okian/pbpsplit/internal/adapters/csvio"
	"github.com/okian/pbpsplit/internal/adapters/repository"
	"github.com/okian/pbpsplit/internal/config"
	"github.com/okian/pbpsplit/internal/domain/analysis"
	"github.com/okian/pbpsplit/internal/domain/model"
	"github.com/okian/pbpsplit/internal/domain/partition"
	"github.com/okian/pbpsplit/internal/domain/summary"
	"github.com/okian/pbpsplit/pkg/logger"
	"github.com/okian/pbpsplit/pkg/metrics"
)

// Tool names used as metric labels.
const (
	ToolPartition = "partition"
	ToolAnalyze   = "analyze"
)

// Pipeline stages reported with run errors.
const (
	stageTeams   = "teams"
	stageOpen    = "open"
	stageRoute   = "route"
	stageWrite   = "write"
	stageSummary = "summary"
	stageMetrics = "metrics"
)

const outputDirPermission = 0o755

// Artifact describes one written team file.
type Artifact struct {
	Team  string
	Path  string
	Plays int
}

// Result summarizes a partition run.
type Result struct {
	RunID       string
	Chunks      int
	PlaysRead   int64
	PlaysRouted int
	Unmatched   int
	Artifacts   []Artifact
	Skipped     []string // teams without plays, in team table order
	SummaryPath string
	Duration    time.Duration
}

// Service runs the partitioner and the analyzer.
type Service struct {
	teamsPath   string
	pbpPath     string
	outputDir   string
	metricsPath string
	season      int
	chunkSize   int

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithConfig applies every setting of cfg.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg == nil {
			return
		}
		for _, opt := range []Option{
			WithTeamsPath(cfg.TeamsPath),
			WithPBPPath(cfg.PBPPath),
			WithOutputDir(cfg.OutputDir),
			WithSeason(cfg.Season),
			WithChunkSize(cfg.ChunkSize),
			WithMetricsPath(cfg.MetricsPath),
		} {
			opt(s)
		}
	}
}

// WithTeamsPath sets the teams table path.
func WithTeamsPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.teamsPath = path
		}
	}
}

// WithPBPPath sets the play-by-play table path.
func WithPBPPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.pbpPath = path
		}
	}
}

// WithOutputDir sets the directory receiving team files and the summary.
func WithOutputDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.outputDir = dir
		}
	}
}

// WithSeason sets the season embedded in team file names.
func WithSeason(season int) Option {
	return func(s *Service) {
		if season > 0 {
			s.season = season
		}
	}
}

// WithChunkSize sets the number of plays read per chunk.
func WithChunkSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithMetricsPath enables the metrics textfile export after a run.
func WithMetricsPath(path string) Option {
	return func(s *Service) {
		s.metricsPath = path
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		teamsPath: config.DefaultTeamsPath,
		pbpPath:   config.DefaultPBPPath,
		outputDir: config.DefaultOutputDir,
		season:    config.DefaultSeason,
		chunkSize: config.DefaultChunkSize,
		logger:    nil, // resolved on first run
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) log() logger.Logger {
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s.logger
}

// Partition splits the play table into one chronologically ordered file per
// team and writes the summary document. Any error aborts the run.
func (s *Service) Partition(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{RunID: uuid.NewString()}
	log := s.log().Named(ToolPartition).With(logger.String("run_id", res.RunID))

	fail := func(stage string, err error) (*Result, error) {
		metrics.RecordRunError(ToolPartition, stage)
		log.Error(ctx, "partition failed", logger.String("stage", stage), logger.Error(err))
		return nil, err
	}

	log.Info(ctx, "loading team metadata", logger.String("path", s.teamsPath))
	teams, err := csvio.LoadTeams(ctx, s.teamsPath)
	if err != nil {
		return fail(stageTeams, fmt.Errorf("load teams: %w", err))
	}
	index := model.NewTeamIndex(teams)
	log.Info(ctx, "loaded teams", logger.Int("teams", index.Len()))

	if err := os.MkdirAll(s.outputDir, outputDirPermission); err != nil {
		return fail(stageOpen, fmt.Errorf("%w: create output directory: %v", csvio.ErrWrite, err))
	}

	pf, err := csvio.OpenPlays(s.pbpPath,
		csvio.WithChunkSize(s.chunkSize),
		csvio.WithRequiredColumns(model.PartitionColumns...),
	)
	if err != nil {
		return fail(stageOpen, fmt.Errorf("open plays: %w", err))
	}
	defer func() { _ = pf.Close() }()

	router, err := partition.NewRouter(index, pf.Schema())
	if err != nil {
		return fail(stageOpen, err)
	}
	store := repository.NewMemoryStore(repository.WithExpectedTeams(index.Len()))

	log.Info(ctx, "processing play-by-play data",
		logger.String("path", s.pbpPath),
		logger.Int("chunk_size", s.chunkSize),
	)
	if err := s.route(ctx, log, pf.PlayReader, router, store, res); err != nil {
		return fail(stageRoute, err)
	}
	res.PlaysRead = pf.Rows()

	if err := s.writeTeams(ctx, log, index, router.OutputSchema(), store, res); err != nil {
		return fail(stageWrite, err)
	}

	res.SummaryPath, err = summary.Write(s.outputDir, index, s.season)
	if err != nil {
		return fail(stageSummary, err)
	}
	log.Info(ctx, "created summary file", logger.String("path", res.SummaryPath))

	res.Duration = time.Since(start)
	metrics.RecordRunSuccess(ToolPartition, res.Duration)
	if s.metricsPath != "" {
		if err := metrics.WriteTextfile(s.metricsPath); err != nil {
			return fail(stageMetrics, err)
		}
	}

	log.Info(ctx, "partition completed",
		logger.Int64("plays_read", res.PlaysRead),
		logger.Int("plays_routed", res.PlaysRouted),
		logger.Int("artifacts", len(res.Artifacts)),
		logger.Int("skipped", len(res.Skipped)),
		logger.Duration("took", res.Duration),
	)
	return res, nil
}

// route drains r chunk by chunk into store.
func (s *Service) route(ctx context.Context, log logger.Logger, r *csvio.PlayReader, router *partition.Router, store repository.Store, res *Result) error {
	for {
		chunk, err := r.Next(ctx)
		if errors.Is(err, io.EOF) {
			log.Info(ctx, "routing complete", logger.Int("chunks", res.Chunks), logger.Int("buffered_plays", store.Total(ctx)))
			return nil
		}
		if err != nil {
			return err
		}

		log.Info(ctx, "processing chunk", logger.Int("chunk", chunk.Seq), logger.Int("rows", chunk.Len()))
		stats, err := router.Route(ctx, chunk, store)
		if err != nil {
			return err
		}
		metrics.RecordChunkProcessed(chunk.Len())

		res.Chunks++
		res.PlaysRouted += stats.Routed
		res.Unmatched += stats.Unmatched
		if stats.Unmatched > 0 {
			log.Debug(ctx, "plays without a known team", logger.Int("chunk", chunk.Seq), logger.Int("plays", stats.Unmatched))
		}
	}
}

// writeTeams sorts and writes every non-empty bucket in team table order.
func (s *Service) writeTeams(ctx context.Context, log logger.Logger, index model.TeamIndex, schema *model.Schema, store repository.Store, res *Result) error {
	header := schema.Columns()
	for _, team := range index.Teams() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if store.Count(ctx, team.Abbr) == 0 {
			log.Warn(ctx, "no plays for team, skipping", logger.String("team", team.Abbr))
			metrics.RecordTeamSkipped()
			res.Skipped = append(res.Skipped, team.Abbr)
			continue
		}
		plays, err := store.Plays(ctx, team.Abbr)
		if err != nil {
			return fmt.Errorf("team %s: %w", team.Abbr, err)
		}

		// Buckets already in date/play order are written as routed.
		if !partition.IsChronological(schema, plays) {
			sortStart := time.Now()
			if err := partition.SortChronological(schema, plays); err != nil {
				return err
			}
			metrics.RecordSortLatency(time.Since(sortStart))
		}

		path := filepath.Join(s.outputDir, team.ArtifactName(s.season))
		writeStart := time.Now()
		if err := csvio.WriteTable(path, header, plays); err != nil {
			return err
		}
		metrics.RecordArtifactWritten(time.Since(writeStart))
		log.Info(ctx, "saved team file",
			logger.String("team", team.Abbr),
			logger.Int("plays", len(plays)),
			logger.String("path", path),
		)

		store.Release(ctx, team.Abbr)
		res.Artifacts = append(res.Artifacts, Artifact{Team: team.Abbr, Path: path, Plays: len(plays)})
	}
	return nil
}

// Analyze computes the report for team abbr from the files in the output
// directory. An unknown abbreviation returns analysis.ErrTeamNotFound.
func (s *Service) Analyze(ctx context.Context, abbr string) (*analysis.Report, error) {
	start := time.Now()
	a := analysis.New(
		analysis.WithDataDir(s.outputDir),
		analysis.WithSeason(s.season),
		analysis.WithLogger(s.log().Named(ToolAnalyze)),
	)
	report, err := a.Analyze(ctx, abbr)
	if err != nil {
		if !errors.Is(err, analysis.ErrTeamNotFound) {
			metrics.RecordRunError(ToolAnalyze, "load")
		}
		return nil, err
	}
	metrics.RecordRunSuccess(ToolAnalyze, time.Since(start))
	return report, nil
}
