package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	deliverycontext "vgb/internal/delivery/context"
	domainerrors "vgb/internal/domain/errors"
	"vgb/internal/domain/repository"
	"vgb/internal/domain/service"
	"vgb/internal/usecase"

	"github.com/pkg/errors"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	store   repository.SlotStore
	api     service.CatalogAPI
	catalog usecase.CatalogUsecase
	logger  *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(
	store repository.SlotStore,
	api service.CatalogAPI,
	catalog usecase.CatalogUsecase,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	return &settingsService{
		store:   store,
		api:     api,
		catalog: catalog,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *settingsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Load keeps the configured endpoint when the slot is empty or unusable.
func (srv *settingsService) Load(ctx context.Context) (string, error) {
	stored, err := srv.store.Get(ctx, repository.SlotAPIEndpoint)
	if errors.Is(err, repository.ErrSlotNotFound) {
		return srv.api.BaseURL(), nil
	}
	if err != nil {
		return srv.api.BaseURL(), errors.Wrap(err, "failed to read endpoint override")
	}

	endpoint, err := normalizeEndpoint(stored)
	if err != nil {
		srv.log(ctx).Warn("Ignoring stored endpoint", slog.String("endpoint", stored), slog.Any("error", err))

		return srv.api.BaseURL(), nil
	}
	srv.api.SetBaseURL(endpoint)

	return endpoint, nil
}

func (srv *settingsService) SetEndpoint(ctx context.Context, baseURL string) error {
	endpoint, err := normalizeEndpoint(baseURL)
	if err != nil {
		return err
	}

	if err := srv.store.Set(ctx, repository.SlotAPIEndpoint, endpoint); err != nil {
		return errors.Wrap(err, "failed to persist endpoint")
	}
	srv.api.SetBaseURL(endpoint)
	srv.log(ctx).Info("API endpoint changed", slog.String("endpoint", endpoint))

	return srv.catalog.Refresh(ctx)
}

func (srv *settingsService) Endpoint() string {
	return srv.api.BaseURL()
}

// normalizeEndpoint accepts absolute http(s) URLs and strips trailing slashes.
func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", domainerrors.Validation("Endpoint must be an absolute http(s) URL")
	}

	return raw, nil
}
