package entity

import (
	"encoding/json"
	"time"
)

// IntentKind names a user action forwarded by the rendering surface.
type IntentKind string

const (
	IntentNavigate       IntentKind = "navigate"
	IntentApplyFilters   IntentKind = "applyFilters"
	IntentClearFilters   IntentKind = "clearFilters"
	IntentToggleFacet    IntentKind = "toggleFacet"
	IntentRefreshCatalog IntentKind = "refreshCatalog"
	IntentLogin          IntentKind = "login"
	IntentRegister       IntentKind = "register"
	IntentLogout         IntentKind = "logout"
	IntentToggleFavorite IntentKind = "toggleFavorite"
	IntentRemoveFavorite IntentKind = "removeFavorite"
	IntentOpenGame       IntentKind = "openGame"
	IntentCloseGame      IntentKind = "closeGame"
	IntentPostReview     IntentKind = "postReview"
	IntentEditReview     IntentKind = "editReview"
	IntentDeleteReview   IntentKind = "deleteReview"
	IntentSaveGame       IntentKind = "saveGame"
	IntentDeleteGame     IntentKind = "deleteGame"
	IntentLoadModeration IntentKind = "loadModeration"
	IntentCalendarPrev   IntentKind = "calendarPrev"
	IntentCalendarNext   IntentKind = "calendarNext"
	IntentCalendarToday  IntentKind = "calendarToday"
	IntentSetEndpoint    IntentKind = "setEndpoint"
	IntentDismissNotice  IntentKind = "dismissNotice"
)

// Intent is a user action: a kind plus a kind-specific JSON payload.
type Intent struct {
	Type    IntentKind      `json:"type" validate:"required"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NavigatePayload asks for a route change.
type NavigatePayload struct {
	Route Route `json:"route" validate:"required,oneof=catalog calendar favorites admin"`
}

// FiltersPayload carries the filter controls as the surface last saw them.
type FiltersPayload struct {
	Query        string     `json:"query" validate:"max=200"`
	Status       GameStatus `json:"status" validate:"omitempty,max=32"`
	Platforms    []string   `json:"platforms" validate:"dive,required"`
	Genres       []string   `json:"genres" validate:"dive,required"`
	MinRating    *float64   `json:"minRating" validate:"omitempty,min=0,max=5"`
	ReleasedFrom string     `json:"releasedFrom" validate:"omitempty,datetime=2006-01-02"`
	ReleasedTo   string     `json:"releasedTo" validate:"omitempty,datetime=2006-01-02"`
	Sort         SortKey    `json:"sort" validate:"omitempty,oneof=titleAsc ratingDesc releaseAsc releaseDesc"`
}

// Criteria converts the payload into filter criteria. Date bounds are
// interpreted as calendar days in loc.
func (p FiltersPayload) Criteria(loc *time.Location) FilterCriteria {
	c := FilterCriteria{
		Query:     p.Query,
		Status:    p.Status,
		Platforms: NewStringSet(p.Platforms...),
		Genres:    NewStringSet(p.Genres...),
		MinRating: p.MinRating,
		Sort:      p.Sort,
	}
	if t, err := time.ParseInLocation(time.DateOnly, p.ReleasedFrom, loc); err == nil {
		c.ReleasedFrom = &t
	}
	if t, err := time.ParseInLocation(time.DateOnly, p.ReleasedTo, loc); err == nil {
		c.ReleasedTo = &t
	}

	return c
}

// FacetPayload flips one facet value.
type FacetPayload struct {
	Kind  FacetKind `json:"kind" validate:"required,oneof=platform genre"`
	Value string    `json:"value" validate:"required"`
}

// GamePayload targets one game.
type GamePayload struct {
	GameID string `json:"gameId" validate:"required"`
}

// ReviewPayload targets one review.
type ReviewPayload struct {
	ReviewID string `json:"reviewId" validate:"required"`
}

// PostReviewPayload creates a review. The rating is clamped, not rejected.
type PostReviewPayload struct {
	GameID string  `json:"gameId" validate:"required"`
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

// EditReviewPayload changes an existing review.
type EditReviewPayload struct {
	ReviewID string  `json:"reviewId" validate:"required"`
	Text     *string `json:"text"`
	Rating   *int    `json:"rating"`
}

// SaveGamePayload creates a game when GameID is empty and updates it otherwise.
type SaveGamePayload struct {
	GameID      string   `json:"gameId"`
	Title       string   `json:"title" validate:"required,max=200"`
	Status      string   `json:"status" validate:"required,oneof=Upcoming Released Cancelled"`
	Description string   `json:"description" validate:"max=5000"`
	ReleaseDate string   `json:"releaseDate" validate:"omitempty,datetime=2006-01-02"`
	ImageURL    string   `json:"imageURL" validate:"omitempty,max=2048"`
	Platforms   []string `json:"platform" validate:"dive,required"`
	Genres      []string `json:"genre" validate:"dive,required"`
}

// Draft converts the payload into a game draft.
func (p SaveGamePayload) Draft() GameDraft {
	d := GameDraft{
		Title:       p.Title,
		Status:      GameStatus(p.Status),
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Platforms:   p.Platforms,
		Genres:      p.Genres,
	}
	if t, err := time.Parse(time.DateOnly, p.ReleaseDate); err == nil {
		d.ReleaseDate = &t
	}

	return d
}

// EndpointPayload overrides the Catalog API base URL.
type EndpointPayload struct {
	BaseURL string `json:"baseURL" validate:"required,url"`
}
