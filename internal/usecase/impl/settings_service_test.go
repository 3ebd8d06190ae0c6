package impl

import (
	"context"
	"testing"

	domainerrors "vgb/internal/domain/errors"
	"vgb/internal/domain/repository"
	mockRepo "vgb/internal/mocks/repository"
	mockService "vgb/internal/mocks/service"
	mockUsecase "vgb/internal/mocks/usecase"
	"vgb/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// settingsServiceFixtures holds all test dependencies for settings service tests.
type settingsServiceFixtures struct {
	service usecase.SettingsUsecase
	store   *mockRepo.MockSlotStore
	api     *mockService.MockCatalogAPI
	catalog *mockUsecase.MockCatalogUsecase
}

func createTestSettingsService(t *testing.T) settingsServiceFixtures {
	store := mockRepo.NewMockSlotStore(t)
	api := mockService.NewMockCatalogAPI(t)
	catalog := mockUsecase.NewMockCatalogUsecase(t)

	return settingsServiceFixtures{
		service: NewSettingsService(store, api, catalog, newDiscardLogger()),
		store:   store,
		api:     api,
		catalog: catalog,
	}
}

func TestSettingsService_Load(t *testing.T) {
	const configured = "http://localhost:5000"

	tests := []struct {
		name    string
		stored  string
		missing bool
		want    string
	}{
		{name: "no override", missing: true, want: configured},
		{name: "stored override is applied", stored: " https://games.example.com/ ", want: "https://games.example.com"},
		{name: "unusable override is ignored", stored: "ftp://games.example.com", want: configured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSettingsService(t)
			ctx := context.Background()

			if tt.missing {
				fx.store.EXPECT().Get(ctx, repository.SlotAPIEndpoint).Return("", repository.ErrSlotNotFound)
			} else {
				fx.store.EXPECT().Get(ctx, repository.SlotAPIEndpoint).Return(tt.stored, nil)
			}
			if tt.want != configured {
				fx.api.EXPECT().SetBaseURL(tt.want).Return()
			} else {
				fx.api.EXPECT().BaseURL().Return(configured)
			}

			endpoint, err := fx.service.Load(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.want, endpoint)
		})
	}
}

func TestSettingsService_SetEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "trailing slash is stripped", input: "http://localhost:5000/", want: "http://localhost:5000"},
		{name: "https with path", input: "https://games.example.com/v2", want: "https://games.example.com/v2"},
		{name: "relative path", input: "/api", wantErr: true},
		{name: "not a url", input: "games", wantErr: true},
		{name: "unsupported scheme", input: "ws://games.example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSettingsService(t)
			ctx := context.Background()

			if !tt.wantErr {
				fx.store.EXPECT().Set(ctx, repository.SlotAPIEndpoint, tt.want).Return(nil)
				fx.api.EXPECT().SetBaseURL(tt.want).Return()
				fx.catalog.EXPECT().Refresh(ctx).Return(nil)
			}

			err := fx.service.SetEndpoint(ctx, tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

				return
			}
			require.NoError(t, err)
		})
	}
}
