package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	deliverycontext "vgb/internal/delivery/context"
	"vgb/internal/domain/catalog"
	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"
	"vgb/internal/domain/service"
	"vgb/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	session usecase.SessionUsecase
	catalog usecase.CatalogUsecase
	reviews usecase.ReviewUsecase
	api     service.CatalogAPI
	routes  usecase.RouteTracker
	gate    usecase.ActionGate
	policy  service.AccessPolicy
	logger  *slog.Logger

	mu         sync.RWMutex
	moderation []entity.ModerationEntry
	loaded     bool
}

// AdminServiceParams holds dependencies for the admin service.
type AdminServiceParams struct {
	fx.In

	Session usecase.SessionUsecase
	Catalog usecase.CatalogUsecase
	Reviews usecase.ReviewUsecase
	API     service.CatalogAPI
	Routes  usecase.RouteTracker
	Gate    usecase.ActionGate
	Policy  service.AccessPolicy
	Logger  *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	srv := &adminService{
		session: params.Session,
		catalog: params.Catalog,
		reviews: params.Reviews,
		api:     params.API,
		routes:  params.Routes,
		gate:    params.Gate,
		policy:  params.Policy,
		logger:  params.Logger,
	}
	params.Session.OnChange(srv.onSessionChange)

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) Enter(ctx context.Context) error {
	if err := srv.catalog.Refresh(ctx); err != nil {
		return err
	}

	if _, loaded := srv.Moderation(); loaded {
		return srv.LoadModeration(ctx)
	}

	return nil
}

func (srv *adminService) Games() []entity.Game {
	return catalog.SortedByTitle(srv.catalog.Games())
}

func (srv *adminService) SaveGame(ctx context.Context, gameID string, draft entity.GameDraft) error {
	session, err := srv.authorize(service.ObjectGame, service.ActionManage)
	if err != nil {
		return err
	}

	draft, err = normalizeGameDraft(draft)
	if err != nil {
		return err
	}

	if gameID == "" {
		if err := srv.api.CreateGame(ctx, session.Token, draft); err != nil {
			return errors.Wrap(err, "failed to create game")
		}
		srv.log(ctx).Info("Game created", slog.String("title", draft.Title))
	} else {
		release, err := srv.gate.Acquire(gameKey(gameID))
		if err != nil {
			return err
		}
		defer release()

		if err := srv.api.UpdateGame(ctx, session.Token, gameID, draft); err != nil {
			return errors.Wrap(err, "failed to update game")
		}
		srv.log(ctx).Info("Game updated", slog.String("game_id", gameID))
	}

	return srv.catalog.Refresh(ctx)
}

func (srv *adminService) DeleteGame(ctx context.Context, gameID string) error {
	session, err := srv.authorize(service.ObjectGame, service.ActionManage)
	if err != nil {
		return err
	}

	release, err := srv.gate.Acquire(gameKey(gameID))
	if err != nil {
		return err
	}
	defer release()

	if err := srv.api.DeleteGame(ctx, session.Token, gameID); err != nil {
		return errors.Wrap(err, "failed to delete game")
	}
	srv.log(ctx).Info("Game deleted", slog.String("game_id", gameID))

	srv.mu.Lock()
	srv.moderation = slices.DeleteFunc(srv.moderation, func(e entity.ModerationEntry) bool {
		return e.Review.GameID == gameID
	})
	srv.mu.Unlock()

	return srv.catalog.Refresh(ctx)
}

// LoadModeration fetches the reviews game by game. Results are dropped when
// the route changed meanwhile.
func (srv *adminService) LoadModeration(ctx context.Context) error {
	if _, err := srv.authorize(service.ObjectReview, service.ActionModerate); err != nil {
		return err
	}

	ticket := srv.routes.Ticket()

	var entries []entity.ModerationEntry
	skipped := 0
	for _, game := range srv.catalog.Games() {
		reviews, err := srv.reviews.Fetch(ctx, game.ID)
		if err != nil {
			skipped++
			srv.log(ctx).Debug("Skipping reviews of game", slog.String("game_id", game.ID), slog.Any("error", err))

			continue
		}
		for _, r := range reviews {
			if r.GameID == "" {
				r.GameID = game.ID
			}
			entries = append(entries, entity.ModerationEntry{Review: r, GameTitle: game.Title})
		}
	}
	slices.SortStableFunc(entries, func(a, b entity.ModerationEntry) int {
		return b.Review.CreatedAt.Compare(a.Review.CreatedAt)
	})

	if !srv.routes.Current(ticket) {
		srv.log(ctx).Debug("Dropping moderation list loaded for a previous view")

		return nil
	}

	srv.mu.Lock()
	srv.moderation = entries
	srv.loaded = true
	srv.mu.Unlock()
	srv.log(ctx).Debug("Moderation list loaded", slog.Int("reviews", len(entries)), slog.Int("skipped_games", skipped))

	return nil
}

func (srv *adminService) Moderation() ([]entity.ModerationEntry, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return slices.Clone(srv.moderation), srv.loaded
}

func (srv *adminService) DeleteReview(ctx context.Context, reviewID string) error {
	if _, err := srv.authorize(service.ObjectReview, service.ActionModerate); err != nil {
		return err
	}
	if err := srv.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}

	srv.mu.Lock()
	srv.moderation = slices.DeleteFunc(srv.moderation, func(e entity.ModerationEntry) bool {
		return e.Review.ID == reviewID
	})
	srv.mu.Unlock()

	return nil
}

func (srv *adminService) authorize(object, action string) (entity.Session, error) {
	session := srv.session.Current()
	if session.IsGuest() {
		return session, errors.Wrap(domainerrors.ErrAuthRequired, "admin actions need a session")
	}
	if !srv.policy.Allowed(session.Role(), object, action) {
		return session, errors.Wrapf(domainerrors.ErrRoleNotAllowed, "%s accounts cannot %s %s", session.Role(), action, object)
	}

	return session, nil
}

// onSessionChange forgets moderation data when the admin leaves.
func (srv *adminService) onSessionChange(_ context.Context, prev, next entity.Session) {
	if prev.User.ID == next.User.ID {
		return
	}

	srv.mu.Lock()
	srv.moderation = nil
	srv.loaded = false
	srv.mu.Unlock()
}

// normalizeGameDraft trims the form fields and drops empty list values.
func normalizeGameDraft(draft entity.GameDraft) (entity.GameDraft, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	draft.Description = strings.TrimSpace(draft.Description)
	draft.ImageURL = strings.TrimSpace(draft.ImageURL)
	draft.Platforms = compactValues(draft.Platforms)
	draft.Genres = compactValues(draft.Genres)

	if draft.Title == "" {
		return draft, domainerrors.Validation("Title is required")
	}
	switch draft.Status {
	case entity.StatusUpcoming, entity.StatusReleased, entity.StatusCancelled:
	default:
		return draft, domainerrors.Validation("Status must be Upcoming, Released or Cancelled")
	}

	return draft, nil
}

func compactValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}

	return out
}
