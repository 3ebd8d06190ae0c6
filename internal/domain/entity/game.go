package entity

import (
	"time"
)

// GameStatus is the lifecycle state of a game release. The backend may
// introduce values beyond the ones listed here.
type GameStatus string

const (
	StatusUpcoming  GameStatus = "Upcoming"
	StatusReleased  GameStatus = "Released"
	StatusCancelled GameStatus = "Cancelled"
)

// Game is a catalog record as served by the Catalog API. The client never
// mutates a Game; refreshes replace records wholesale.
type Game struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        GameStatus `json:"status"`
	ReleaseDate   *time.Time `json:"releaseDate,omitempty"`
	ImageURL      string     `json:"imageURL,omitempty"`
	Platforms     []string   `json:"platform"`
	Genres        []string   `json:"genre"`
	AverageRating float64    `json:"averageRating"` // 0-5, computed by the server.
	TotalRatings  int        `json:"totalRatings"`
}

// HasReleaseDate reports whether the game carries a release date.
func (g Game) HasReleaseDate() bool {
	return g.ReleaseDate != nil && !g.ReleaseDate.IsZero()
}

// ReleaseKey returns the canonical day bucket of the release date: the UTC
// calendar date formatted as YYYY-MM-DD. Games without a date return "".
func (g Game) ReleaseKey() string {
	if !g.HasReleaseDate() {
		return ""
	}

	return g.ReleaseDate.UTC().Format(time.DateOnly)
}

// GameDetail is a game together with the reviews fetched alongside it.
type GameDetail struct {
	Game    Game
	Reviews []Review
}

// GameDraft is the admin form payload used to create or update a game.
type GameDraft struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Status      GameStatus `json:"status" validate:"required,oneof=Upcoming Released Cancelled"`
	Description string     `json:"description" validate:"max=5000"`
	ReleaseDate *time.Time `json:"releaseDate"`
	ImageURL    string     `json:"imageURL" validate:"omitempty,max=2048"`
	Platforms   []string   `json:"platform" validate:"dive,required"`
	Genres      []string   `json:"genre" validate:"dive,required"`
}

// CatalogStats summarizes the catalog for the header counters.
type CatalogStats struct {
	Total    int `json:"total"`
	Upcoming int `json:"upcoming"`
	Released int `json:"released"`
}

// Facets holds the distinct platform and genre values observed in the catalog.
type Facets struct {
	Platforms []string `json:"platforms"`
	Genres    []string `json:"genres"`
}
