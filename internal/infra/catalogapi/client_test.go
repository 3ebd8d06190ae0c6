package catalogapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vgb/config"
	deliverycontext "vgb/internal/delivery/context"
	"vgb/internal/domain/constants"
	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"
	"vgb/internal/domain/service"
	"vgb/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) service.CatalogAPI {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL
	cfg.API.Timeout = 2 * time.Second

	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func reply(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    error
		message string
	}{
		{
			name:    "conflict status",
			status:  http.StatusConflict,
			body:    `{"error":"Game already in favorites"}`,
			kind:    domainerrors.ErrConflict,
			message: "Game already in favorites",
		},
		{
			name:    "already message on generic status",
			status:  http.StatusBadRequest,
			body:    `{"error":"You have already reviewed this game"}`,
			kind:    domainerrors.ErrConflict,
			message: "You have already reviewed this game",
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"error":"Invalid credentials"}`,
			kind:    domainerrors.ErrAuthRequired,
			message: "Invalid credentials",
		},
		{
			name:    "forbidden uses legacy message field",
			status:  http.StatusForbidden,
			body:    `{"message":"Admins only"}`,
			kind:    domainerrors.ErrRoleNotAllowed,
			message: "Admins only",
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"error":"Game not found"}`,
			kind:    domainerrors.ErrNotFound,
			message: "Game not found",
		},
		{
			name:    "no body falls back to status",
			status:  http.StatusInternalServerError,
			body:    ``,
			kind:    domainerrors.ErrNetwork,
			message: "HTTP 500",
		},
		{
			name:    "non-json body falls back to status",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			kind:    domainerrors.ErrNetwork,
			message: "HTTP 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				reply(w, tt.status, tt.body)
			})

			err := api.AddFavorite(context.Background(), "tok", "g1")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			appErr, ok := domainerrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}

func TestClient_TransportFailureIsNetworkError(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusOK, `[`)
	})

	_, err := api.ListGames(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNetwork)

	cfg := &config.Config{}
	cfg.API.BaseURL = "http://127.0.0.1:1"
	unreachable := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err = unreachable.ListGames(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNetwork)
}

func TestClient_ListGamesToleratesLoosePayloads(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/games", r.URL.Path)
		reply(w, http.StatusOK, `[
			{"_id":"g1","title":"Alpha","status":"Released","releaseDate":"2024-01-01T00:00:00.000Z",
			 "platform":"PC, PS5 ,","genre":["RPG"],"averageRating":4.5,"totalRatings":2},
			{"id":"g2","title":"Beta","status":"Upcoming","releaseDate":"soon","platform":null}
		]`)
	})

	games, err := api.ListGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, "g1", games[0].ID)
	assert.Equal(t, []string{"PC", "PS5"}, games[0].Platforms)
	assert.Equal(t, []string{"RPG"}, games[0].Genres)
	assert.Equal(t, "2024-01-01", games[0].ReleaseKey())
	assert.InDelta(t, 4.5, games[0].AverageRating, 0.001)
	assert.Equal(t, 2, games[0].TotalRatings)

	assert.Equal(t, "g2", games[1].ID)
	assert.False(t, games[1].HasReleaseDate())
	assert.Empty(t, games[1].Platforms)
}

func TestClient_GetGameAcceptsBothDetailShapes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		reviews int
	}{
		{name: "wrapped", body: `{"game":{"_id":"g1","title":"Alpha"},"reviews":[{"_id":"r1","userId":"u1","rating":4.4}]}`, reviews: 1},
		{name: "bare game", body: `{"_id":"g1","title":"Alpha"}`, reviews: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				reply(w, http.StatusOK, tt.body)
			})

			detail, err := api.GetGame(context.Background(), "g1")
			require.NoError(t, err)

			assert.Equal(t, "Alpha", detail.Game.Title)
			assert.Len(t, detail.Reviews, tt.reviews)
		})
	}
}

func TestClient_ListReviewsNormalizesAuthorsAndRatings(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reviews/game/g1", r.URL.Path)
		reply(w, http.StatusOK, `[
			{"_id":"r1","userId":{"_id":"u1","username":"ada"},"gameId":"g1","rating":3.6,"text":"ok","createdAt":"2024-02-02T10:00:00Z"},
			{"_id":"r2","userId":"u2","text":"no stars"}
		]`)
	})

	reviews, err := api.ListReviews(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, entity.ReviewAuthor{ID: "u1", Username: "ada"}, reviews[0].Author)
	require.NotNil(t, reviews[0].Rating)
	assert.Equal(t, 4, *reviews[0].Rating)
	assert.Equal(t, "u2", reviews[1].Author.ID)
	assert.Nil(t, reviews[1].Rating)
	assert.Equal(t, "g1", reviews[1].GameID)
}

func TestClient_ListFavoritesSkipsMissingGames(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		reply(w, http.StatusOK, `[
			{"_id":"f1","gameId":{"_id":"g1","title":"Alpha"}},
			{"_id":"f2","gameId":"g-deleted"}
		]`)
	})

	games, err := api.ListFavorites(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "g1", games[0].ID)
}

func TestClient_RequestHeadersAndBody(t *testing.T) {
	var got struct {
		auth      string
		requestID string
		body      map[string]any
	}
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got.auth = r.Header.Get("Authorization")
		got.requestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got.body))
		reply(w, http.StatusCreated, `{}`)
	})

	release := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	err := api.CreateGame(ctx, "tok", entity.GameDraft{
		Title:       "Gamma",
		Status:      entity.StatusUpcoming,
		ReleaseDate: &release,
		Platforms:   []string{"PC", "Switch"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", got.auth)
	assert.Equal(t, "req-1", got.requestID)
	assert.Equal(t, "Gamma", got.body["title"])
	assert.Equal(t, "PC, Switch", got.body["platform"])
	assert.Equal(t, "2025-03-01T00:00:00.000Z", got.body["releaseDate"])
}

func TestClient_AnonymousCallsGenerateRequestID(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(deliverycontext.HeaderXRequestID))
		reply(w, http.StatusOK, `[]`)
	})

	games, err := api.ListGames(context.Background())
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestClient_LoginValidatesAuthResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		role    entity.Role
	}{
		{name: "admin", body: `{"token":"t","user":{"_id":"u1","username":"root","userType":"Admin"}}`, role: entity.RoleAdmin},
		{name: "unknown type is user", body: `{"token":"t","user":{"id":"u2","username":"ada","userType":"Moderator"}}`, role: entity.RoleUser},
		{name: "missing token", body: `{"user":{"_id":"u1"}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/auth/login", r.URL.Path)
				reply(w, http.StatusOK, tt.body)
			})

			session, err := api.Login(context.Background(), service.Credentials{Email: "a@b.c", Password: "pw"})
			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrNetwork))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.role, session.Role())
		})
	}
}

func TestClient_ResolveAsset(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.BaseURL = "http://api.example/"
	api := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, constants.FallbackImage, api.ResolveAsset("  "))
	assert.Equal(t, "https://cdn.example/a.png", api.ResolveAsset("https://cdn.example/a.png"))
	assert.Equal(t, "http://api.example/uploads/a.png", api.ResolveAsset("/uploads/a.png"))

	api.SetBaseURL("http://other.example")
	assert.Equal(t, "http://other.example", api.BaseURL())
	assert.Equal(t, "http://other.example/uploads/a.png", api.ResolveAsset("/uploads/a.png"))
}
