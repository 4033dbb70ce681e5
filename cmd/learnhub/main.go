package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexanderramin/learnhub/internal/catalog"
	"github.com/alexanderramin/learnhub/internal/cli"
	"github.com/alexanderramin/learnhub/internal/config"
	"github.com/alexanderramin/learnhub/internal/logger"
	"github.com/alexanderramin/learnhub/internal/progress"
	"github.com/alexanderramin/learnhub/internal/service"
	"github.com/alexanderramin/learnhub/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runtime owns the resources opened by setup so run can release them
// after the command finishes.
type runtime struct {
	cfg       *config.Config
	logger    *zap.Logger
	backend   storage.Backend
	persister *progress.Persister
}

func run() error {
	rt := &runtime{}
	app := &cli.App{}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.Setup = func(cmd *cobra.Command) error {
		return rt.setup(cmd, app)
	}

	err := cli.NewRootCmd(app).Execute()
	rt.close()
	return err
}

func (rt *runtime) setup(cmd *cobra.Command, app *cli.App) error {
	ctx := cmd.Context()

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	rt.cfg = cfg

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	rt.logger = log

	cat, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	backend, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening %s storage: %w", cfg.Storage.Backend, err)
	}
	rt.backend = backend

	store := progress.NewStore()
	res := store.Init(ctx, backend)
	switch res.Outcome {
	case progress.LoadDiscarded:
		log.Warn("saved progress discarded", zap.String("backend", cfg.Storage.Backend), zap.Error(res.Err))
	default:
		log.Debug("progress loaded",
			zap.String("backend", cfg.Storage.Backend),
			zap.String("outcome", string(res.Outcome)),
			zap.Int("completed", store.TotalCompleted()))
	}
	rt.persister = progress.NewPersister(store, backend, log,
		progress.WithSaveTimeout(cfg.Persist.SaveTimeout))

	observer := service.NewZapUseCaseObserver(log)
	app.Catalog = service.NewCatalogService(cat)
	app.Progress = service.NewProgressService(cat, store, observer)
	app.Storage = backend
	return nil
}

// close flushes pending writes then releases the backend and logger.
// Failures are logged only; the command has already finished.
func (rt *runtime) close() {
	log := rt.logger
	if log == nil {
		log = zap.NewNop()
	}
	if rt.persister != nil {
		ctx, cancel := flushContext(rt.cfg.Persist.FlushTimeout)
		if err := rt.persister.Close(ctx); err != nil {
			log.Warn("progress flush did not finish before exit",
				zap.Duration("flush_timeout", rt.cfg.Persist.FlushTimeout), zap.Error(err))
		}
		cancel()
	}
	if rt.backend != nil {
		if err := rt.backend.Close(); err != nil {
			log.Warn("closing storage", zap.Error(err))
		}
	}
	_ = log.Sync()
}

func flushContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.WithCancel(context.Background())
}
