package entity

import "time"

// CardAction is the secondary button a game card offers to the current role.
type CardAction string

const (
	CardActionLogin    CardAction = "login"    // Guest: prompt to log in before favoriting.
	CardActionFavorite CardAction = "favorite" // User: toggle favorite.
	CardActionAdmin    CardAction = "admin"    // Admin: disabled placeholder.
)

// ComposerState is what the review area of the detail view offers.
type ComposerState string

const (
	ComposerLoginRequired ComposerState = "login_required"
	ComposerAdmin         ComposerState = "admin"
	ComposerAlreadyPosted ComposerState = "already_reviewed"
	ComposerOpen          ComposerState = "open"
)

// NoticeLevel classifies a dismissible message.
type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// ViewState is the declarative description of everything the rendering
// surface should paint. The presentation layer never reads anything back
// except the intents it forwards.
type ViewState struct {
	Version    uint64    `json:"version"`
	RenderedAt time.Time `json:"renderedAt"`
	Endpoint   string    `json:"endpoint"`

	Route    Route       `json:"route"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Session  SessionView `json:"session"`
	Nav      NavView     `json:"nav"`

	Stats    CatalogStats   `json:"stats"`
	Criteria FilterCriteria `json:"criteria"`
	Facets   FacetView      `json:"facets"`
	Catalog  []GameCard     `json:"catalog"`

	Calendar  *CalendarGrid    `json:"calendar,omitempty"`
	Favorites []GameCard       `json:"favorites,omitempty"`
	Admin     *AdminView       `json:"admin,omitempty"`
	Detail    *GameDetailView  `json:"detail,omitempty"`
	Notice    *Notice          `json:"notice,omitempty"`
	Prompt    *LoginPromptView `json:"prompt,omitempty"`
}

// SessionView is the session badge.
type SessionView struct {
	LoggedIn bool   `json:"loggedIn"`
	Name     string `json:"name"`
	Label    string `json:"label"`
	Role     Role   `json:"role"`
}

// NavView controls the visibility of role-gated navigation entries.
type NavView struct {
	Favorites bool `json:"favorites"`
	Admin     bool `json:"admin"`
}

// FacetChip is one selectable facet value.
type FacetChip struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

// FacetView pairs the facet vocabularies with the current selection.
type FacetView struct {
	Platforms []FacetChip `json:"platforms"`
	Genres    []FacetChip `json:"genres"`
}

// GameCard is a game prepared for a grid.
type GameCard struct {
	Game      Game       `json:"game"`
	Image     string     `json:"image"`
	Action    CardAction `json:"action"`
	Favorited bool       `json:"favorited"`
}

// AdminView is the admin route's content.
type AdminView struct {
	Games            []Game            `json:"games"`
	Moderation       []ModerationEntry `json:"moderation"`
	ModerationLoaded bool              `json:"moderationLoaded"`
}

// ReviewView is a review with the affordances the session has on it.
type ReviewView struct {
	Review    Review `json:"review"`
	Author    string `json:"author"`
	Mine      bool   `json:"mine"`
	CanEdit   bool   `json:"canEdit"`
	CanDelete bool   `json:"canDelete"`
}

// GameDetailView is the open game dialog.
type GameDetailView struct {
	Game     Game          `json:"game"`
	Image    string        `json:"image"`
	Composer ComposerState `json:"composer"`
	CanFavor bool          `json:"canFavorite"`
	Reviews  []ReviewView  `json:"reviews"`
}

// Notice is a dismissible message.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message"`
}

// LoginPromptView asks the surface to open the login dialog.
type LoginPromptView struct {
	Reason string `json:"reason"`
}
