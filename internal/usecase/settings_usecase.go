package usecase

import "context"

// SettingsUsecase manages the Catalog API endpoint override.
type SettingsUsecase interface {
	// Load applies the stored override, if any, and returns the endpoint in use.
	Load(ctx context.Context) (string, error)

	// SetEndpoint stores and applies a new endpoint, then reloads the catalog.
	SetEndpoint(ctx context.Context, baseURL string) error

	Endpoint() string
}
