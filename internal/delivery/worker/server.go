// Package worker runs the engine's background work: the boot sequence and
// the periodic catalog refresh.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"vgb/config"
	"vgb/internal/delivery"
	"vgb/internal/domain/entity"
	"vgb/internal/domain/lifecycle"
	"vgb/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DefaultRefreshInterval applies when the config leaves the interval unset.
const DefaultRefreshInterval = 60 * time.Second

type refreshWorker struct {
	logger    *slog.Logger
	interval  time.Duration
	settings  usecase.SettingsUsecase
	session   usecase.SessionUsecase
	catalog   usecase.CatalogUsecase
	router    usecase.RouterUsecase
	presenter usecase.PresenterUsecase

	stopOnce sync.Once
	done     chan struct{}
}

// ServerParams holds dependencies for the worker.
type ServerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Settings  usecase.SettingsUsecase
	Session   usecase.SessionUsecase
	Catalog   usecase.CatalogUsecase
	Router    usecase.RouterUsecase
	Presenter usecase.PresenterUsecase
}

// NewServer creates the background worker. The engine boots on start;
// Serve then refreshes the catalog until the application stops.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	interval := params.Cfg.Engine.RefreshInterval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	w := &refreshWorker{
		logger:    params.Logger,
		interval:  interval,
		settings:  params.Settings,
		session:   params.Session,
		catalog:   params.Catalog,
		router:    params.Router,
		presenter: params.Presenter,
		done:      make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStart: w.boot,
		OnStop:  w.stop,
	})

	return w, nil
}

// boot applies the endpoint override, restores the session, loads the
// catalog and enters the catalog route. Only a broken renderer is fatal;
// everything else leaves a usable, if empty, engine.
func (w *refreshWorker) boot(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.BootTimeout)
	defer cancel()

	endpoint, err := w.settings.Load(ctx)
	if err != nil {
		w.logger.Warn("Failed to load endpoint override", slog.Any("error", err))
	}

	session, err := w.session.Restore(ctx)
	if err != nil {
		w.logger.Warn("Failed to restore session", slog.Any("error", err))
	}

	if err := w.catalog.Refresh(ctx); err != nil {
		w.presenter.Report(err)
		w.logger.Warn("Initial catalog load failed", slog.Any("error", err))
	}

	if _, err := w.router.Navigate(ctx, entity.RouteCatalog); err != nil {
		w.logger.Warn("Failed to enter catalog", slog.Any("error", err))
	}

	if _, err := w.presenter.Render(ctx); err != nil {
		return errors.Wrap(err, "failed to render initial view")
	}

	w.logger.Info("Engine booted",
		slog.String("endpoint", endpoint),
		slog.String("role", session.Role().String()),
		slog.Int("games", len(w.catalog.Games())),
	)

	return nil
}

// Serve refreshes the catalog on every tick. Failures are dropped: the
// previous catalog stays in place and the next tick tries again.
func (w *refreshWorker) Serve(ctx context.Context) error {
	w.logger.Info("Starting catalog refresher", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.done:
			return nil
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *refreshWorker) tick(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	if err := w.catalog.Refresh(ctx); err != nil {
		w.logger.Debug("Background catalog refresh failed", slog.Any("error", err))

		return
	}

	if _, err := w.presenter.Render(ctx); err != nil {
		w.logger.Debug("Render after background refresh failed", slog.Any("error", err))
	}
}

// stop ends the refresh loop.
func (w *refreshWorker) stop(context.Context) error {
	w.stopOnce.Do(func() { close(w.done) })
	w.logger.Info("Shutting down catalog refresher")

	return nil
}
