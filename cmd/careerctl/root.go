package main

import (
	"time"

	"careerpath/internal/adapter"
	"careerpath/internal/config"
	"careerpath/internal/domain"
	"careerpath/internal/logger"
	"careerpath/internal/service"

	"github.com/spf13/cobra"
)

// deps are swapped out in tests.
type deps struct {
	loadConfig func() (*config.Config, error)
	openStore  func(cfg *config.Config) (domain.KeyValueStore, func() error, error)
	now        func() time.Time
}

func defaultDeps() deps {
	return deps{
		loadConfig: config.LoadConfig,
		openStore: func(cfg *config.Config) (domain.KeyValueStore, func() error, error) {
			return adapter.NewKeyValueStore(cfg, nil)
		},
		now: time.Now,
	}
}

// services is populated before any subcommand runs.
type services struct {
	quizzes   service.QuizService
	roadmaps  service.RoadmapService
	progress  service.ProgressService
	closeFunc func() error
}

// close releases the store opened by the pre-run hook, if any.
func (s *services) close() error {
	if s.closeFunc == nil {
		return nil
	}
	closeFunc := s.closeFunc
	s.closeFunc = nil
	return closeFunc()
}

// execute runs the command tree. Cobra skips post-run hooks when a command
// fails, so the store is closed here instead.
func execute(cmd *cobra.Command, svc *services) error {
	err := cmd.Execute()
	_ = logger.Sync()
	if closeErr := svc.close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func newRootCmd(d deps) (*cobra.Command, *services) {
	var (
		backend string
		dsn     string
		svc     services
	)

	rootCmd := &cobra.Command{
		Use:           "careerctl",
		Short:         "Career preparation quizzes, roadmaps and progress",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := d.loadConfig()
			if err != nil {
				return err
			}
			// The memory backend forgets everything between invocations.
			if cfg.Store.Backend == config.StoreBackendMemory {
				cfg.Store.Backend = config.StoreBackendSQL
			}
			if backend != "" {
				cfg.Store.Backend = backend
			}
			if dsn != "" {
				cfg.DB.DSN = dsn
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := logger.Initialize(cfg.Logger); err != nil {
				return err
			}

			store, closeStore, err := d.openStore(cfg)
			if err != nil {
				return err
			}

			clock := service.WithClock(d.now)
			activity := service.NewActivityService(store, clock)
			svc.quizzes = service.NewQuizService(store, activity, clock)
			svc.roadmaps = service.NewRoadmapService(store, clock)
			formatter := service.NewRelativeTimeFormatter(cfg.Progress.DateLayout, cfg.Progress.Location())
			svc.progress = service.NewProgressService(svc.quizzes, svc.roadmaps, activity, formatter, cfg.Progress.RecentLimit, clock)
			svc.closeFunc = closeStore
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "store backend: memory, redis or sql (default sql)")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "database DSN for the sql backend (overrides db.dsn)")

	rootCmd.AddCommand(newQuizCmd(&svc))
	rootCmd.AddCommand(newHistoryCmd(&svc))
	rootCmd.AddCommand(newRoadmapCmd(&svc))
	rootCmd.AddCommand(newStatsCmd(&svc))
	return rootCmd, &svc
}
