package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"NightCycle/internal/collector"
	"NightCycle/internal/config"
	"NightCycle/internal/logger"
	"NightCycle/internal/notifier"
	"NightCycle/internal/recorder"
	"NightCycle/internal/scheduler"
)

var (
	stdout io.Writer = os.Stdout

	cfgPath     string
	datasetPath string
	chartPath   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nightcycle",
		Short:         "Night-cycle retro calculation for an equity/bond ETF portfolio",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd.Context())
		},
	}

	defaultCfg := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultCfg = v
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", defaultCfg, "Path to YAML config (env CONFIG_PATH)")
	root.PersistentFlags().StringVar(&datasetPath, "dataset", "", "YAML dataset file; reference dataset when empty")
	root.PersistentFlags().StringVar(&chartPath, "chart", "", "Write the portfolio trajectory chart PNG to this path")

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Compute and print the report once",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOnce(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "schedule",
			Short: "Compute the report on the nightly cron until interrupted",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runScheduled(cmd.Context())
			},
		},
	)
	return root
}

// setup loads configuration and wires the scheduler and its sinks. The
// returned cleanup closes the recorder.
func setup(ctx context.Context) (*config.Config, *scheduler.Scheduler, func(), error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if datasetPath != "" {
		cfg.Dataset.Path = datasetPath
	}
	if chartPath != "" {
		cfg.Report.ChartPath = chartPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("config validation: %w", err)
	}
	if _, err := logger.Setup(cfg.Log); err != nil {
		return nil, nil, nil, err
	}

	var fetcher collector.Fetcher
	if cfg.Dataset.Path != "" {
		fetcher = collector.NewFileFetcher(cfg.Dataset.Path)
	} else {
		fetcher = collector.NewStaticFetcher(nil)
	}
	log.Debug().Str("source", fetcher.Name()).Msg("data source selected")

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	cleanup := func() {}
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
		} else {
			rec = sr
			cleanup = func() { sr.Close() }
		}
	}

	var sender scheduler.Sender
	if cfg.TelegramEnabled() {
		sender = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	opts := scheduler.ReportOptions{
		Title:     cfg.Report.Title,
		Currency:  cfg.Report.Currency,
		ChartPath: cfg.Report.ChartPath,
	}
	sched := scheduler.NewScheduler(ctx, fetcher, cfg.Params(), opts, stdout, rec, sender)
	return cfg, sched, cleanup, nil
}

func runOnce(ctx context.Context) error {
	_, sched, cleanup, err := setup(ctx)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		return err
	}
	defer cleanup()

	if _, err := sched.RunOnce(); err != nil {
		log.Error().Err(err).Msg("report failed")
		return err
	}
	return nil
}

func runScheduled(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, sched, cleanup, err := setup(ctx)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		return err
	}
	defer cleanup()

	if err := sched.RegisterNightly(cfg.Schedule.NightlyCron); err != nil {
		log.Error().Err(err).Msg("register cron task")
		return err
	}
	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing report now")
		if _, err := sched.RunOnce(); err != nil {
			log.Error().Err(err).Msg("report failed")
		}
	}

	sched.Start()
	defer sched.Stop()

	log.Info().Str("cron", cfg.Schedule.NightlyCron).Msg("nightcycle is running, press Ctrl+C to stop")
	<-ctx.Done()
	log.Info().Msg("shutdown signal received, stopping")
	return nil
}
