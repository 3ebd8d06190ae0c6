package catalogapi

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"time"

	"vgb/internal/domain/entity"
)

// The Catalog API is a document store behind a thin REST layer. Its payloads
// are loose: identifiers come as _id or id, list fields as arrays or
// comma-separated strings, references as raw ids or embedded documents.
// The types below absorb that and convert to entities.

// flexStrings accepts an array of strings, a comma-separated string or null.
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(data []byte) error {
	*f = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw []string
	if data[0] == '[' {
		var items []any
		if err := json.Unmarshal(data, &items); err != nil {
			return nil
		}
		for _, item := range items {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	} else {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = strings.Split(s, ",")
	}

	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			*f = append(*f, s)
		}
	}

	return nil
}

// flexTime accepts an RFC 3339 timestamp, a YYYY-MM-DD date or null.
// Anything unparsable reads as absent.
type flexTime struct {
	t *time.Time
}

func (f *flexTime) UnmarshalJSON(data []byte) error {
	f.t = nil

	var s string
	if err := json.Unmarshal(data, &s); err != nil || s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			f.t = &t

			return nil
		}
	}

	return nil
}

func (f flexTime) value() time.Time {
	if f.t == nil {
		return time.Time{}
	}

	return *f.t
}

// docID carries both identifier spellings.
type docID struct {
	MongoID string `json:"_id"`
	ID      string `json:"id"`
}

func (d docID) id() string {
	if d.MongoID != "" {
		return d.MongoID
	}

	return d.ID
}

type gameDTO struct {
	docID
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Status        string      `json:"status"`
	ReleaseDate   flexTime    `json:"releaseDate"`
	ImageURL      string      `json:"imageURL"`
	Platform      flexStrings `json:"platform"`
	Genre         flexStrings `json:"genre"`
	AverageRating *float64    `json:"averageRating"`
	TotalRatings  *float64    `json:"totalRatings"`
}

func (g gameDTO) toEntity() entity.Game {
	game := entity.Game{
		ID:          g.id(),
		Title:       g.Title,
		Description: g.Description,
		Status:      entity.GameStatus(g.Status),
		ReleaseDate: g.ReleaseDate.t,
		ImageURL:    g.ImageURL,
		Platforms:   []string(g.Platform),
		Genres:      []string(g.Genre),
	}
	if g.AverageRating != nil {
		game.AverageRating = *g.AverageRating
	}
	if g.TotalRatings != nil {
		game.TotalRatings = int(*g.TotalRatings)
	}

	return game
}

func gamesToEntities(dtos []gameDTO) []entity.Game {
	games := make([]entity.Game, 0, len(dtos))
	for _, dto := range dtos {
		games = append(games, dto.toEntity())
	}

	return games
}

// userRef is a raw user id or an embedded profile.
type userRef struct {
	ID       string
	Username string
}

func (u *userRef) UnmarshalJSON(data []byte) error {
	*u = userRef{}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		u.ID = id

		return nil
	}

	var doc struct {
		docID
		Username string `json:"username"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	u.ID = doc.id()
	u.Username = doc.Username

	return nil
}

// gameRef is a raw game id or an embedded game document.
type gameRef struct {
	ID   string
	Game *gameDTO
}

func (g *gameRef) UnmarshalJSON(data []byte) error {
	*g = gameRef{}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		g.ID = id

		return nil
	}

	var doc gameDTO
	if err := json.Unmarshal(data, &doc); err != nil || doc.id() == "" {
		return nil
	}
	g.ID = doc.id()
	g.Game = &doc

	return nil
}

type reviewDTO struct {
	docID
	UserID    userRef  `json:"userId"`
	GameID    gameRef  `json:"gameId"`
	Rating    *float64 `json:"rating"`
	Text      string   `json:"text"`
	CreatedAt flexTime `json:"createdAt"`
}

func (r reviewDTO) toEntity() entity.Review {
	review := entity.Review{
		ID:        r.id(),
		GameID:    r.GameID.ID,
		Author:    entity.ReviewAuthor{ID: r.UserID.ID, Username: r.UserID.Username},
		Text:      r.Text,
		CreatedAt: r.CreatedAt.value(),
	}
	if r.Rating != nil {
		rating := int(math.Round(*r.Rating))
		review.Rating = &rating
	}

	return review
}

func reviewsToEntities(dtos []reviewDTO) []entity.Review {
	reviews := make([]entity.Review, 0, len(dtos))
	for _, dto := range dtos {
		reviews = append(reviews, dto.toEntity())
	}

	return reviews
}

// detailDTO is either {game, reviews} or a bare game document.
type detailDTO struct {
	Game    gameDTO
	Reviews []reviewDTO
}

func (d *detailDTO) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Game    *gameDTO    `json:"game"`
		Reviews []reviewDTO `json:"reviews"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if wrapped.Game != nil {
		d.Game = *wrapped.Game
		d.Reviews = wrapped.Reviews

		return nil
	}

	return json.Unmarshal(data, &d.Game)
}

// favoriteDTO is one favorites entry; the game is embedded under gameId.
type favoriteDTO struct {
	docID
	GameID gameRef `json:"gameId"`
}

type userDTO struct {
	docID
	Username string `json:"username"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

type authDTO struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

func (a authDTO) toSession() entity.Session {
	return entity.Session{
		Token: a.Token,
		User: entity.User{
			ID:       a.User.id(),
			Username: a.User.Username,
			Email:    a.User.Email,
			Role:     entity.RoleFromUserType(a.User.UserType),
		},
	}
}

// gameBody is the game form as the backend accepts it: list fields joined
// with commas, the release date as a timestamp or null.
type gameBody struct {
	Title       string  `json:"title"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	ReleaseDate *string `json:"releaseDate"`
	ImageURL    string  `json:"imageURL"`
	Platform    string  `json:"platform"`
	Genre       string  `json:"genre"`
}

func newGameBody(draft entity.GameDraft) gameBody {
	body := gameBody{
		Title:       draft.Title,
		Status:      string(draft.Status),
		Description: draft.Description,
		ImageURL:    draft.ImageURL,
		Platform:    strings.Join(draft.Platforms, ", "),
		Genre:       strings.Join(draft.Genres, ", "),
	}
	if draft.ReleaseDate != nil {
		ts := draft.ReleaseDate.UTC().Format("2006-01-02T15:04:05.000Z07:00")
		body.ReleaseDate = &ts
	}

	return body
}

type reviewBody struct {
	GameID string  `json:"gameId,omitempty"`
	Text   *string `json:"text,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

type favoriteBody struct {
	GameID string `json:"gameId"`
}

// errorBody is the error envelope. Older endpoints use message.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
