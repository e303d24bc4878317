package scheduler

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"NightCycle/internal/chart"
	"NightCycle/internal/collector"
	"NightCycle/internal/engine"
	"NightCycle/internal/notifier"
	"NightCycle/internal/recorder"
)

// Sender delivers a rendered report.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// ReportOptions controls rendering and the optional sinks.
type ReportOptions struct {
	Title     string
	Currency  string
	ChartPath string
}

// Scheduler runs the night-cycle report, once or on a cron schedule.
type Scheduler struct {
	Cron     *cron.Cron
	Fetcher  collector.Fetcher
	Params   engine.Params
	Options  ReportOptions
	Out      io.Writer
	Recorder recorder.Recorder
	Notifier Sender // nil disables delivery
	Ctx      context.Context
	now      func() time.Time
}

// NewScheduler creates a new Scheduler. Overlapping runs are skipped.
func NewScheduler(ctx context.Context, fetcher collector.Fetcher, params engine.Params, opts ReportOptions, out io.Writer, rec recorder.Recorder, sender Sender) *Scheduler {
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		Fetcher:  fetcher,
		Params:   params,
		Options:  opts,
		Out:      out,
		Recorder: rec,
		Notifier: sender,
		Ctx:      ctx,
		now:      time.Now,
	}
}

// RegisterNightly registers the report task.
func (s *Scheduler) RegisterNightly(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.nightlyTask); err != nil {
		return fmt.Errorf("register nightly task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) nightlyTask() {
	log.Info().Msg("running nightly report")
	if _, err := s.RunOnce(); err != nil {
		log.Error().Err(err).Msg("nightly report failed")
	}
}

// RunOnce computes the report, writes it to Out and feeds the optional
// sinks. Sink failures are logged and do not fail the run.
func (s *Scheduler) RunOnce() (string, error) {
	res, err := engine.Run(s.Fetcher, s.Params)
	if err != nil {
		return "", fmt.Errorf("run report: %w", err)
	}

	summary := notifier.BuildSummary(res, s.Params.MAWindow)
	report := notifier.FormatReport(s.Options.Title, s.Options.Currency, summary)
	if _, err := io.WriteString(s.Out, report); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	ranAt := s.now()
	if id, err := s.Recorder.RecordRun(recorder.NewRunRecord(ranAt, s.Fetcher.Name(), res, summary)); err != nil {
		log.Error().Err(err).Msg("record run")
	} else if id > 0 {
		log.Info().Int64("run_id", id).Msg("run recorded")
	}

	if s.Options.ChartPath != "" {
		if err := chart.WriteTrajectory(s.Options.ChartPath, res.Table, s.Params.InitialCapital, s.Options.Currency); err != nil {
			log.Warn().Err(err).Str("path", s.Options.ChartPath).Msg("chart not written")
		}
	}

	if s.Notifier != nil {
		if err := s.Notifier.SendWithRetry(s.Ctx, notifier.FormatMessage(report, ranAt), 3); err != nil {
			log.Error().Err(err).Msg("send notification")
		}
	}
	return report, nil
}
