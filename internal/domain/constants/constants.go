// Package constants contains values shared across layers.
package constants

const (
	// DefaultAPIBaseURL is used when neither config nor the stored override name an endpoint.
	DefaultAPIBaseURL = "http://localhost:5000"

	// DefaultAPIPathPrefix is prepended to every Catalog API path.
	DefaultAPIPathPrefix = "/api"

	// FallbackImage is shown for games without a usable cover image.
	FallbackImage = "/assets/images/VGB_Logo.png"

	// CalendarDayLimit is how many games a calendar cell lists before overflowing.
	CalendarDayLimit = 8
)
