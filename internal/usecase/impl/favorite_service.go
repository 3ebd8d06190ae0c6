package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "vgb/internal/delivery/context"
	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"
	"vgb/internal/domain/service"
	"vgb/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	session usecase.SessionUsecase
	catalog usecase.CatalogUsecase
	api     service.CatalogAPI
	routes  usecase.RouteTracker
	gate    usecase.ActionGate
	policy  service.AccessPolicy
	logger  *slog.Logger

	mu    sync.RWMutex
	set   entity.FavoriteSet
	stale bool
}

// FavoriteServiceParams holds dependencies for the favorite service.
type FavoriteServiceParams struct {
	fx.In

	Session usecase.SessionUsecase
	Catalog usecase.CatalogUsecase
	API     service.CatalogAPI
	Routes  usecase.RouteTracker
	Gate    usecase.ActionGate
	Policy  service.AccessPolicy
	Logger  *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService. The set is
// dropped whenever the session changes hands.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	srv := &favoriteService{
		session: params.Session,
		catalog: params.Catalog,
		api:     params.API,
		routes:  params.Routes,
		gate:    params.Gate,
		policy:  params.Policy,
		logger:  params.Logger,
		set:     entity.NewFavoriteSet(nil),
		stale:   true,
	}
	params.Session.OnChange(srv.onSessionChange)

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle runs the two-step protocol: AttemptAdd, then Compensate when the
// pair already existed. Actions on the same game never overlap.
func (srv *favoriteService) Toggle(ctx context.Context, gameID string) (entity.FavoriteState, error) {
	session, err := srv.authorize()
	if err != nil {
		return srv.state(gameID), err
	}

	release, err := srv.gate.Acquire(favoriteKey(gameID))
	if err != nil {
		return srv.state(gameID), err
	}
	defer release()

	added, err := srv.AttemptAdd(ctx, session.Token, gameID)
	if err != nil {
		return srv.state(gameID), err
	}

	state := entity.Favorited
	if !added {
		if err := srv.Compensate(ctx, session.Token, gameID); err != nil {
			return srv.state(gameID), err
		}
		state = entity.NotFavorited
	}
	srv.log(ctx).Info("Favorite toggled", slog.String("game_id", gameID), slog.String("state", string(state)))

	srv.settle(ctx, gameID, state)

	return state, nil
}

func (srv *favoriteService) AttemptAdd(ctx context.Context, token, gameID string) (bool, error) {
	err := srv.api.AddFavorite(ctx, token, gameID)
	if errors.Is(err, domainerrors.ErrConflict) {
		srv.log(ctx).Debug("Favorite already present", slog.String("game_id", gameID))

		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to add favorite")
	}

	return true, nil
}

func (srv *favoriteService) Compensate(ctx context.Context, token, gameID string) error {
	if err := srv.api.RemoveFavorite(ctx, token, gameID); err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

// Remove drops a game from the favorites, as offered by the favorites view.
func (srv *favoriteService) Remove(ctx context.Context, gameID string) error {
	session, err := srv.authorize()
	if err != nil {
		return err
	}

	release, err := srv.gate.Acquire(favoriteKey(gameID))
	if err != nil {
		return err
	}
	defer release()

	if err := srv.Compensate(ctx, session.Token, gameID); err != nil {
		return err
	}

	srv.settle(ctx, gameID, entity.NotFavorited)

	return nil
}

func (srv *favoriteService) Refresh(ctx context.Context) error {
	session, err := srv.authorize()
	if err != nil {
		return err
	}

	ticket := srv.routes.Ticket()
	games, err := srv.api.ListFavorites(ctx, session.Token)
	if err != nil {
		return errors.Wrap(err, "failed to load favorites")
	}

	if !srv.routes.Current(ticket) || srv.session.Current().Token != session.Token {
		srv.log(ctx).Debug("Dropping favorites loaded for a previous view")

		return nil
	}

	srv.mu.Lock()
	srv.set = entity.NewFavoriteSet(games)
	srv.stale = false
	srv.mu.Unlock()

	return nil
}

func (srv *favoriteService) Favorites() entity.FavoriteSet {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.set
}

func (srv *favoriteService) Stale() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.stale
}

// settle brings the local set in line after a successful mutation: a full
// reload when the favorites view is showing, a local patch otherwise. A failed
// reload keeps the patched set marked stale; the mutation itself stands.
func (srv *favoriteService) settle(ctx context.Context, gameID string, state entity.FavoriteState) {
	srv.mu.Lock()
	if state == entity.Favorited {
		game, ok := srv.catalog.Game(gameID)
		if !ok {
			game = entity.Game{ID: gameID}
		}
		srv.set = srv.set.With(game)
	} else {
		srv.set = srv.set.Without(gameID)
	}
	srv.stale = true
	srv.mu.Unlock()

	if srv.routes.Active() != entity.RouteFavorites {
		return
	}

	if err := srv.Refresh(ctx); err != nil {
		srv.log(ctx).Warn("Failed to reload favorites after change",
			slog.String("game_id", gameID),
			slog.Any("error", err),
		)
	}
}

// authorize returns the session if it may manage favorites.
func (srv *favoriteService) authorize() (entity.Session, error) {
	session := srv.session.Current()
	if session.IsGuest() {
		return session, errors.Wrap(domainerrors.ErrAuthRequired, "favorites need a session")
	}
	if !srv.policy.Allowed(session.Role(), service.ObjectFavorite, service.ActionToggle) {
		return session, errors.Wrapf(domainerrors.ErrRoleNotAllowed, "%s accounts cannot favorite", session.Role())
	}

	return session, nil
}

func (srv *favoriteService) state(gameID string) entity.FavoriteState {
	if srv.Favorites().Has(gameID) {
		return entity.Favorited
	}

	return entity.NotFavorited
}

func (srv *favoriteService) onSessionChange(ctx context.Context, prev, next entity.Session) {
	if prev.User.ID == next.User.ID && prev.Token == next.Token {
		return
	}

	srv.mu.Lock()
	srv.set = entity.NewFavoriteSet(nil)
	srv.stale = true
	srv.mu.Unlock()
	srv.log(ctx).Debug("Favorites reset for new session")
}
