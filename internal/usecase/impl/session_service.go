package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	deliverycontext "vgb/internal/delivery/context"
	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"
	"vgb/internal/domain/repository"
	"vgb/internal/domain/service"
	"vgb/internal/errors"
	"vgb/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	store  repository.SlotStore
	api    service.CatalogAPI
	tokens service.TokenInspector
	logger *slog.Logger
	now    func() time.Time

	mu        sync.RWMutex
	current   entity.Session
	listeners []usecase.SessionListener
}

// SessionServiceParams holds dependencies for the session service.
type SessionServiceParams struct {
	fx.In

	Store  repository.SlotStore
	API    service.CatalogAPI
	Tokens service.TokenInspector
	Logger *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		store:   params.Store,
		api:     params.API,
		tokens:  params.Tokens,
		logger:  params.Logger,
		now:     time.Now,
		current: entity.GuestSession(),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Restore reads the persisted session. Listeners are not notified: restore
// happens before the first route is entered.
func (srv *sessionService) Restore(ctx context.Context) (entity.Session, error) {
	token, tokenErr := srv.readSlot(ctx, repository.SlotToken)
	profile, profileErr := srv.readSlot(ctx, repository.SlotUser)
	if err := errors.Join(tokenErr, profileErr); err != nil {
		srv.setCurrent(entity.GuestSession())

		return entity.GuestSession(), errors.Wrap(err, "failed to read session slots")
	}

	if token == "" && profile == "" {
		srv.setCurrent(entity.GuestSession())

		return entity.GuestSession(), nil
	}

	session, reason := srv.decode(token, profile)
	if reason != "" {
		srv.log(ctx).Info("Discarding persisted session", slog.String("reason", reason))
		srv.clearSlots(ctx)
		srv.setCurrent(entity.GuestSession())

		return entity.GuestSession(), nil
	}

	srv.setCurrent(session)
	srv.log(ctx).Debug("Session restored", slog.String("user_id", session.User.ID), slog.String("role", session.Role().String()))

	return session, nil
}

// decode rebuilds a session from the slots. A non-empty reason means the
// persisted state is unusable.
func (srv *sessionService) decode(token, profile string) (entity.Session, string) {
	if token == "" || profile == "" {
		return entity.Session{}, "orphaned slot"
	}

	var user entity.User
	if err := json.Unmarshal([]byte(profile), &user); err != nil {
		return entity.Session{}, "unreadable profile"
	}
	if user.ID == "" {
		return entity.Session{}, "profile without id"
	}
	user.Role = entity.RoleFromUserType(string(user.Role))

	if srv.tokens.Expired(token, srv.now()) {
		return entity.Session{}, "token expired"
	}

	return entity.Session{User: user, Token: token}, ""
}

// Adopt persists the token and then the profile. When the profile cannot be
// written the token slot is rolled back to the session still in memory, so
// the slots on disk always describe the current session.
func (srv *sessionService) Adopt(ctx context.Context, session entity.Session) error {
	if session.IsGuest() || !session.Valid() {
		return domainerrors.Validation("session must carry a token and a user")
	}

	profile, err := json.Marshal(session.User)
	if err != nil {
		return errors.Wrap(err, "failed to encode user profile")
	}

	previous := srv.Current()
	if err := srv.store.Set(ctx, repository.SlotToken, session.Token); err != nil {
		return errors.Wrap(err, "failed to persist token")
	}
	if err := srv.store.Set(ctx, repository.SlotUser, string(profile)); err != nil {
		if rbErr := srv.rollbackToken(ctx, previous); rbErr != nil {
			srv.log(ctx).Warn("Failed to roll back token slot", slog.Any("error", rbErr))
		}

		return errors.Wrap(err, "failed to persist user profile")
	}

	srv.log(ctx).Info("Session adopted", slog.String("user_id", session.User.ID), slog.String("role", session.Role().String()))
	srv.change(ctx, session)

	return nil
}

// rollbackToken restores the token slot of the previous session, or clears
// it when there was none. The profile slot still holds the previous profile.
func (srv *sessionService) rollbackToken(ctx context.Context, previous entity.Session) error {
	if previous.IsGuest() {
		return srv.store.Remove(ctx, repository.SlotToken)
	}

	return srv.store.Set(ctx, repository.SlotToken, previous.Token)
}

// Login authenticates against the API and adopts the returned session.
func (srv *sessionService) Login(ctx context.Context, creds service.Credentials) (entity.Session, error) {
	session, err := srv.api.Login(ctx, creds)
	if err != nil {
		return srv.Current(), errors.Wrap(err, "failed to log in")
	}
	if err := srv.Adopt(ctx, *session); err != nil {
		return srv.Current(), err
	}

	return *session, nil
}

// Register creates an account and adopts the returned session.
func (srv *sessionService) Register(ctx context.Context, reg service.Registration) (entity.Session, error) {
	session, err := srv.api.Register(ctx, reg)
	if err != nil {
		return srv.Current(), errors.Wrap(err, "failed to register")
	}
	if err := srv.Adopt(ctx, *session); err != nil {
		return srv.Current(), err
	}

	return *session, nil
}

// Logout always ends the in-memory session; slot removal failures are
// reported after the fact.
func (srv *sessionService) Logout(ctx context.Context) error {
	err := errors.Join(
		srv.store.Remove(ctx, repository.SlotToken),
		srv.store.Remove(ctx, repository.SlotUser),
	)

	srv.log(ctx).Info("Session ended", slog.String("user_id", srv.Current().User.ID))
	srv.change(ctx, entity.GuestSession())

	if err != nil {
		return errors.Wrap(err, "failed to clear session slots")
	}

	return nil
}

func (srv *sessionService) Current() entity.Session {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.current
}

func (srv *sessionService) OnChange(listener usecase.SessionListener) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.listeners = append(srv.listeners, listener)
}

func (srv *sessionService) setCurrent(session entity.Session) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.current = session
}

// change swaps the session and notifies listeners outside the lock.
func (srv *sessionService) change(ctx context.Context, next entity.Session) {
	srv.mu.Lock()
	prev := srv.current
	srv.current = next
	listeners := append([]usecase.SessionListener(nil), srv.listeners...)
	srv.mu.Unlock()

	for _, listener := range listeners {
		listener(ctx, prev, next)
	}
}

func (srv *sessionService) readSlot(ctx context.Context, slot repository.Slot) (string, error) {
	value, err := srv.store.Get(ctx, slot)
	if errors.Is(err, repository.ErrSlotNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read slot %s", slot)
	}

	return value, nil
}

func (srv *sessionService) clearSlots(ctx context.Context) {
	for _, slot := range []repository.Slot{repository.SlotToken, repository.SlotUser} {
		if err := srv.store.Remove(ctx, slot); err != nil {
			srv.log(ctx).Warn("Failed to clear slot", slog.String("slot", string(slot)), slog.Any("error", err))
		}
	}
}
