// Package catalogapi is the HTTP client of the remote Catalog API.
package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"vgb/config"
	deliverycontext "vgb/internal/delivery/context"
	"vgb/internal/domain/constants"
	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"
	"vgb/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 8 << 20
)

// conflictMessage recognizes duplicate errors from endpoints that answer
// them with a generic status.
var conflictMessage = regexp.MustCompile(`(?i)already`)

// client implements service.CatalogAPI over net/http.
type client struct {
	httpClient *http.Client
	prefix     string
	logger     *slog.Logger

	mu      sync.RWMutex
	baseURL string
}

// New creates a Catalog API client from the api config section.
func New(cfg *config.Config, logger *slog.Logger) service.CatalogAPI {
	baseURL := cfg.API.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultAPIBaseURL
	}
	prefix := cfg.API.PathPrefix
	if prefix == "" {
		prefix = constants.DefaultAPIPathPrefix
	}
	timeout := cfg.API.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		httpClient: &http.Client{Timeout: timeout},
		prefix:     "/" + strings.Trim(prefix, "/"),
		logger:     logger,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.baseURL
}

func (c *client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.baseURL = strings.TrimRight(baseURL, "/")
}

// ResolveAsset keeps absolute URLs, resolves root-relative paths against
// the API host and falls back to the placeholder image.
func (c *client) ResolveAsset(ref string) string {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return constants.FallbackImage
	case strings.HasPrefix(strings.ToLower(ref), "http://"), strings.HasPrefix(strings.ToLower(ref), "https://"):
		return ref
	case strings.HasPrefix(ref, "/"):
		return c.BaseURL() + ref
	default:
		return ref
	}
}

func (c *client) Login(ctx context.Context, creds service.Credentials) (*entity.Session, error) {
	var out authDTO
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", creds, &out); err != nil {
		return nil, err
	}

	return sessionFrom(out)
}

func (c *client) Register(ctx context.Context, reg service.Registration) (*entity.Session, error) {
	var out authDTO
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", reg, &out); err != nil {
		return nil, err
	}

	return sessionFrom(out)
}

func (c *client) ListGames(ctx context.Context) ([]entity.Game, error) {
	var out []gameDTO
	if err := c.do(ctx, http.MethodGet, "/games", "", nil, &out); err != nil {
		return nil, err
	}

	return gamesToEntities(out), nil
}

func (c *client) GetGame(ctx context.Context, gameID string) (*entity.GameDetail, error) {
	var out detailDTO
	if err := c.do(ctx, http.MethodGet, "/games/"+url.PathEscape(gameID), "", nil, &out); err != nil {
		return nil, err
	}

	detail := &entity.GameDetail{
		Game:    out.Game.toEntity(),
		Reviews: reviewsToEntities(out.Reviews),
	}
	if detail.Game.ID == "" {
		detail.Game.ID = gameID
	}

	return detail, nil
}

func (c *client) CreateGame(ctx context.Context, token string, draft entity.GameDraft) error {
	return c.do(ctx, http.MethodPost, "/games", token, newGameBody(draft), nil)
}

func (c *client) UpdateGame(ctx context.Context, token, gameID string, draft entity.GameDraft) error {
	return c.do(ctx, http.MethodPut, "/games/"+url.PathEscape(gameID), token, newGameBody(draft), nil)
}

func (c *client) DeleteGame(ctx context.Context, token, gameID string) error {
	return c.do(ctx, http.MethodDelete, "/games/"+url.PathEscape(gameID), token, nil, nil)
}

// ListFavorites returns the embedded games; entries whose game is missing
// are skipped.
func (c *client) ListFavorites(ctx context.Context, token string) ([]entity.Game, error) {
	var out []favoriteDTO
	if err := c.do(ctx, http.MethodGet, "/favorites", token, nil, &out); err != nil {
		return nil, err
	}

	games := make([]entity.Game, 0, len(out))
	for _, fav := range out {
		if fav.GameID.Game == nil {
			continue
		}
		games = append(games, fav.GameID.Game.toEntity())
	}

	return games, nil
}

func (c *client) AddFavorite(ctx context.Context, token, gameID string) error {
	return c.do(ctx, http.MethodPost, "/favorites", token, favoriteBody{GameID: gameID}, nil)
}

func (c *client) RemoveFavorite(ctx context.Context, token, gameID string) error {
	return c.do(ctx, http.MethodDelete, "/favorites/"+url.PathEscape(gameID), token, nil, nil)
}

func (c *client) ListReviews(ctx context.Context, gameID string) ([]entity.Review, error) {
	var out []reviewDTO
	if err := c.do(ctx, http.MethodGet, "/reviews/game/"+url.PathEscape(gameID), "", nil, &out); err != nil {
		return nil, err
	}

	reviews := reviewsToEntities(out)
	for i := range reviews {
		if reviews[i].GameID == "" {
			reviews[i].GameID = gameID
		}
	}

	return reviews, nil
}

func (c *client) CreateReview(ctx context.Context, token, gameID string, draft entity.ReviewDraft) error {
	body := reviewBody{GameID: gameID, Text: draft.Text, Rating: draft.Rating}

	return c.do(ctx, http.MethodPost, "/reviews", token, body, nil)
}

func (c *client) UpdateReview(ctx context.Context, token, reviewID string, draft entity.ReviewDraft) error {
	body := reviewBody{Text: draft.Text, Rating: draft.Rating}

	return c.do(ctx, http.MethodPut, "/reviews/"+url.PathEscape(reviewID), token, body, nil)
}

func (c *client) DeleteReview(ctx context.Context, token, reviewID string) error {
	return c.do(ctx, http.MethodDelete, "/reviews/"+url.PathEscape(reviewID), token, nil, nil)
}

// do sends one request. Transport failures and undecodable bodies become
// network errors; error statuses become classified remote errors.
func (c *client) do(ctx context.Context, method, path, token string, in, out any) error {
	endpoint := c.BaseURL() + c.prefix + path
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return domainerrors.NewNetworkError(errors.WithStack(err), method+" "+path)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	req.Header.Set(deliverycontext.HeaderXRequestID, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("Catalog request failed", slog.String("method", method), slog.String("path", path), slog.Any("error", err))

		return domainerrors.NewNetworkError(errors.WithStack(err), method+" "+path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domainerrors.NewNetworkError(errors.WithStack(err), "failed to read response")
	}

	logger.Debug("Catalog request",
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.WithStack(classify(resp.StatusCode, raw))
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domainerrors.NewNetworkError(errors.WithStack(err), fmt.Sprintf("malformed response from %s %s", method, path))
	}

	return nil
}

// classify turns an error response into a remote error carrying the
// server's message verbatim.
func classify(status int, raw []byte) *domainerrors.RemoteError {
	message := fmt.Sprintf("HTTP %d", status)

	var envelope errorBody
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Error != "" {
			message = envelope.Error
		} else if envelope.Message != "" {
			message = envelope.Message
		}
	}

	var kind *domainerrors.BaseError
	switch {
	case status == http.StatusConflict, conflictMessage.MatchString(message):
		kind = domainerrors.ErrConflict
	case status == http.StatusUnauthorized:
		kind = domainerrors.ErrAuthRequired
	case status == http.StatusForbidden:
		kind = domainerrors.ErrRoleNotAllowed
	case status == http.StatusNotFound:
		kind = domainerrors.ErrNotFound
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		kind = domainerrors.ErrValidationFailed
	default:
		kind = domainerrors.ErrNetwork
	}

	return domainerrors.NewRemoteError(status, message, kind)
}

func sessionFrom(out authDTO) (*entity.Session, error) {
	session := out.toSession()
	if session.Token == "" || session.User.ID == "" {
		return nil, domainerrors.NewNetworkError(errors.New("auth response without token or user"), "malformed auth response")
	}

	return &session, nil
}
