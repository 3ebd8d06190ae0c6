package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vgb/config"
	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"
	mockUsecase "vgb/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type workerFixtures struct {
	worker    *refreshWorker
	lc        *fxtest.Lifecycle
	settings  *mockUsecase.MockSettingsUsecase
	session   *mockUsecase.MockSessionUsecase
	catalog   *mockUsecase.MockCatalogUsecase
	router    *mockUsecase.MockRouterUsecase
	presenter *mockUsecase.MockPresenterUsecase
}

func createTestWorker(t *testing.T, interval time.Duration) workerFixtures {
	cfg := &config.Config{}
	cfg.Engine.RefreshInterval = interval

	f := workerFixtures{
		lc:        fxtest.NewLifecycle(t),
		settings:  mockUsecase.NewMockSettingsUsecase(t),
		session:   mockUsecase.NewMockSessionUsecase(t),
		catalog:   mockUsecase.NewMockCatalogUsecase(t),
		router:    mockUsecase.NewMockRouterUsecase(t),
		presenter: mockUsecase.NewMockPresenterUsecase(t),
	}

	d, err := NewServer(ServerParams{
		Lc:        f.lc,
		Cfg:       cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Settings:  f.settings,
		Session:   f.session,
		Catalog:   f.catalog,
		Router:    f.router,
		Presenter: f.presenter,
	})
	require.NoError(t, err)
	f.worker = d.(*refreshWorker)

	return f
}

func TestWorker_DefaultInterval(t *testing.T) {
	f := createTestWorker(t, 0)

	assert.Equal(t, DefaultRefreshInterval, f.worker.interval)
}

func TestWorker_BootSequence(t *testing.T) {
	f := createTestWorker(t, time.Minute)

	var order []string
	step := func(name string) func(mock.Arguments) {
		return func(mock.Arguments) { order = append(order, name) }
	}

	f.settings.EXPECT().Load(mock.Anything).Return("http://localhost:5000", nil).Call.Run(step("endpoint"))
	f.session.EXPECT().Restore(mock.Anything).Return(entity.GuestSession(), nil).Call.Run(step("session"))
	f.catalog.EXPECT().Refresh(mock.Anything).Return(nil).Call.Run(step("catalog"))
	f.router.EXPECT().Navigate(mock.Anything, entity.RouteCatalog).Return(entity.RouteCatalog, nil).Call.Run(step("route"))
	f.presenter.EXPECT().Render(mock.Anything).Return(&entity.ViewState{Version: 1}, nil).Call.Run(step("render"))
	f.catalog.EXPECT().Games().Return(nil)

	f.lc.RequireStart()
	f.lc.RequireStop()

	assert.Equal(t, []string{"endpoint", "session", "catalog", "route", "render"}, order)
}

func TestWorker_BootSurvivesBackendFailures(t *testing.T) {
	f := createTestWorker(t, time.Minute)
	unreachable := errors.WithStack(domainerrors.ErrNetwork)

	f.settings.EXPECT().Load(mock.Anything).Return("http://localhost:5000", errors.New("slot unreadable"))
	f.session.EXPECT().Restore(mock.Anything).Return(entity.GuestSession(), errors.New("slot unreadable"))
	f.catalog.EXPECT().Refresh(mock.Anything).Return(unreachable)
	f.presenter.EXPECT().Report(unreachable).Return()
	f.router.EXPECT().Navigate(mock.Anything, entity.RouteCatalog).Return(entity.RouteCatalog, nil)
	f.presenter.EXPECT().Render(mock.Anything).Return(&entity.ViewState{}, nil)
	f.catalog.EXPECT().Games().Return(nil)

	f.lc.RequireStart()
	f.lc.RequireStop()
}

func TestWorker_BootFailsWithoutRenderer(t *testing.T) {
	f := createTestWorker(t, time.Minute)

	f.settings.EXPECT().Load(mock.Anything).Return("", nil)
	f.session.EXPECT().Restore(mock.Anything).Return(entity.GuestSession(), nil)
	f.catalog.EXPECT().Refresh(mock.Anything).Return(nil)
	f.router.EXPECT().Navigate(mock.Anything, entity.RouteCatalog).Return(entity.RouteCatalog, nil)
	f.presenter.EXPECT().Render(mock.Anything).Return(nil, errors.New("no surface"))

	err := f.worker.boot(context.Background())

	require.Error(t, err)
}

func TestWorker_TickRendersOnlyAfterSuccessfulRefresh(t *testing.T) {
	f := createTestWorker(t, time.Minute)
	ctx := context.Background()

	f.catalog.EXPECT().Refresh(mock.Anything).Return(errors.WithStack(domainerrors.ErrNetwork)).Once()
	f.worker.tick(ctx)
	f.presenter.AssertNotCalled(t, "Render", mock.Anything)

	f.catalog.EXPECT().Refresh(mock.Anything).Return(nil).Once()
	f.presenter.EXPECT().Render(mock.Anything).Return(&entity.ViewState{}, nil).Once()
	f.worker.tick(ctx)
}

func TestWorker_ServeRefreshesUntilStopped(t *testing.T) {
	f := createTestWorker(t, 5*time.Millisecond)

	refreshed := make(chan struct{}, 1)
	f.catalog.EXPECT().Refresh(mock.Anything).RunAndReturn(func(context.Context) error {
		select {
		case refreshed <- struct{}{}:
		default:
		}

		return nil
	})
	f.presenter.EXPECT().Render(mock.Anything).Return(&entity.ViewState{}, nil)

	done := make(chan error, 1)
	go func() { done <- f.worker.Serve(context.Background()) }()

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("no refresh within 2s")
	}

	require.NoError(t, f.worker.stop(context.Background()))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after stop")
	}
}
