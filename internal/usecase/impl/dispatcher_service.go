package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "vgb/internal/delivery/context"
	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"
	"vgb/internal/domain/service"
	"vgb/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PayloadValidator checks decoded intent payloads.
type PayloadValidator interface {
	Validate(i any) error
}

// payloadError marks an intent that could not be interpreted.
type payloadError struct {
	err error
}

func (e *payloadError) Error() string { return e.err.Error() }
func (e *payloadError) Unwrap() error { return e.err }

type intentHandler func(ctx context.Context, payload json.RawMessage) error

// dispatcherService implements the DispatcherUsecase interface.
type dispatcherService struct {
	session   usecase.SessionUsecase
	catalog   usecase.CatalogUsecase
	calendar  usecase.CalendarUsecase
	favorites usecase.FavoriteUsecase
	reviews   usecase.ReviewUsecase
	admin     usecase.AdminUsecase
	router    usecase.RouterUsecase
	settings  usecase.SettingsUsecase
	presenter usecase.PresenterUsecase
	validator PayloadValidator
	logger    *slog.Logger
	location  *time.Location

	handlers map[entity.IntentKind]intentHandler
}

// DispatcherServiceParams holds dependencies for the dispatcher.
type DispatcherServiceParams struct {
	fx.In

	Session   usecase.SessionUsecase
	Catalog   usecase.CatalogUsecase
	Calendar  usecase.CalendarUsecase
	Favorites usecase.FavoriteUsecase
	Reviews   usecase.ReviewUsecase
	Admin     usecase.AdminUsecase
	Router    usecase.RouterUsecase
	Settings  usecase.SettingsUsecase
	Presenter usecase.PresenterUsecase
	Validator PayloadValidator
	Logger    *slog.Logger
}

// NewDispatcherService is the constructor for dispatcherService.
func NewDispatcherService(params DispatcherServiceParams) usecase.DispatcherUsecase {
	srv := &dispatcherService{
		session:   params.Session,
		catalog:   params.Catalog,
		calendar:  params.Calendar,
		favorites: params.Favorites,
		reviews:   params.Reviews,
		admin:     params.Admin,
		router:    params.Router,
		settings:  params.Settings,
		presenter: params.Presenter,
		validator: params.Validator,
		logger:    params.Logger,
		location:  time.Local,
	}
	srv.handlers = map[entity.IntentKind]intentHandler{
		entity.IntentNavigate:       srv.navigate,
		entity.IntentApplyFilters:   srv.applyFilters,
		entity.IntentClearFilters:   srv.clearFilters,
		entity.IntentToggleFacet:    srv.toggleFacet,
		entity.IntentRefreshCatalog: srv.refreshCatalog,
		entity.IntentLogin:          srv.login,
		entity.IntentRegister:       srv.register,
		entity.IntentLogout:         srv.logout,
		entity.IntentToggleFavorite: srv.toggleFavorite,
		entity.IntentRemoveFavorite: srv.removeFavorite,
		entity.IntentOpenGame:       srv.openGame,
		entity.IntentCloseGame:      srv.closeGame,
		entity.IntentPostReview:     srv.postReview,
		entity.IntentEditReview:     srv.editReview,
		entity.IntentDeleteReview:   srv.deleteReview,
		entity.IntentSaveGame:       srv.saveGame,
		entity.IntentDeleteGame:     srv.deleteGame,
		entity.IntentLoadModeration: srv.loadModeration,
		entity.IntentCalendarPrev:   srv.calendarPrev,
		entity.IntentCalendarNext:   srv.calendarNext,
		entity.IntentCalendarToday:  srv.calendarToday,
		entity.IntentSetEndpoint:    srv.setEndpoint,
		entity.IntentDismissNotice:  srv.dismissNotice,
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *dispatcherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dispatch clears the previous notice, runs the intent and renders. Every
// outcome, failure included, ends in a render.
func (srv *dispatcherService) Dispatch(ctx context.Context, intent entity.Intent) (*entity.ViewState, error) {
	var rejected error

	handler, ok := srv.handlers[intent.Type]
	if !ok {
		rejected = domainerrors.Validation("Unknown intent " + string(intent.Type))
		srv.presenter.Report(rejected)
	} else {
		srv.presenter.Dismiss()

		start := time.Now()
		err := handler(ctx, intent.Payload)
		srv.log(ctx).Debug("Intent handled",
			slog.String("intent", string(intent.Type)),
			slog.Duration("latency", time.Since(start)),
			slog.Bool("failed", err != nil),
		)
		if err != nil {
			srv.presenter.Report(err)
			var pe *payloadError
			if errors.As(err, &pe) {
				rejected = pe.err
			} else {
				srv.log(ctx).Info("Intent failed", slog.String("intent", string(intent.Type)), slog.Any("error", err))
			}
		}
	}

	view, err := srv.presenter.Render(ctx)
	if err != nil {
		srv.log(ctx).Warn("Render after intent failed", slog.String("intent", string(intent.Type)), slog.Any("error", err))
	}

	return view, rejected
}

// decodePayload unmarshals and validates a payload of type T.
func decodePayload[T any](v PayloadValidator, raw json.RawMessage) (T, error) {
	var payload T
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &payload); err != nil {
			return payload, &payloadError{err: domainerrors.Validation("Malformed intent payload")}
		}
	}
	if err := v.Validate(&payload); err != nil {
		return payload, &payloadError{err: err}
	}

	return payload, nil
}

func (srv *dispatcherService) navigate(ctx context.Context, raw json.RawMessage) error {
	p, err := decodePayload[entity.NavigatePayload](srv.validator, raw)
	if err != nil {
		return err
	}
	_, err = srv.router.Navigate(ctx, p.Route)

	return err
}

func (srv *dispatcherService) applyFilters(_ context.Context, raw json.RawMessage) error {
	p, err := decodePayload[entity.FiltersPayload](srv.validator, raw)
	if err != nil {
		return err
	}
	srv.catalog.ApplyFilters(p.Criteria(srv.location))

	return nil
}

func (srv *dispatcherService) clearFilters(context.Context, json.RawMessage) error {
	srv.catalog.ClearFilters()

	return nil
}

func (srv *dispatcherService) toggleFacet(_ context.Context, raw json.RawMessage) error {
	p, err := decodePayload[entity.FacetPayload](srv.validator, raw)
	if err != nil {
		return err
	}
	srv.catalog.ToggleFacet(p.Kind, p.Value)

	return nil
}

func (srv *dispatcherService) refreshCatalog(ctx context.Context, _ json.RawMessage) error {
	return srv.catalog.Refresh(ctx)
}

func (srv *dispatcherService) login(ctx context.Context, raw json.RawMessage) error {
	p, err := decodePayload[service.Credentials](srv.validator, raw)
	if err != nil {
		return err
	}
	session, err := srv.session.Login(ctx, p)
	if err != nil {
		return err
	}
	srv.presenter.Notify(entity.Notice{Level: entity.NoticeInfo, Message: "Welcome back, " + session.User.Username})

	return nil
}

func (srv *dispatcherService) register(ctx context.Context, raw json.RawMessage) error {
	p, err := decodePayload[service.Registration](srv.validator, raw)
	if err != nil {
		return err
	}
	session, err := srv.session.Register(ctx, p)
	if err != nil {
		return err
	}
	srv.presenter.Notify(entity.Notice{Level: entity.NoticeInfo, Message: "Account created for " + session.User.Username})

	return nil
}

func (srv *dispatcherService) logout(ctx context.Context, _ json.RawMessage) error {
	srv.reviews.Close()

	return srv.session.Logout(ctx)
}

func (srv *dispatcherService) toggleFavorite(ctx context.Context, raw json.RawMessage) error {
	p, err := decodePayload[entity.GamePayload](srv.validator, raw)
	if err != nil {
		return err
	}
	state, err := srv.favorites.Toggle(ctx, p.GameID)
	if err != nil {
		return err
	}

	message := "Removed from favorites"
	if state == entity.Favorited {
		message = "Added to favorites"
	}
	srv.presenter.Notify(entity.Notice{Level: entity.NoticeInfo, Message: message})

	return nil
}

func (srv *dispatcherService) removeFavorite(ctx context.Context, raw json.RawMessage) error {
	p, err := decodePayload[entity.GamePayload](srv.validator, raw)
	if err != nil {
		return err
	}

	return srv.favorites.Remove(ctx, p.GameID)
}

func (srv *dispatcherService) openGame(ctx context.Context, raw json.RawMessage) error {
	p, err := decodePayload[entity.GamePayload](srv.validator, raw)
	if err != nil {
		return err
	}
	_, err = srv.reviews.Open(ctx, p.GameID)

	return err
}

func (srv *dispatcherService) closeGame(context.Context, json.RawMessage) error {
	srv.reviews.Close()

	return nil
}

func (srv *dispatcherService) postReview(ctx context.Context, raw json.RawMessage) error {
	p, err := decodePayload[entity.PostReviewPayload](srv.validator, raw)
	if err != nil {
		return err
	}
	if err := srv.reviews.Post(ctx, p.GameID, entity.ReviewDraft{Text: p.Text, Rating: p.Rating}); err != nil {
		return err
	}
	srv.presenter.Notify(entity.Notice{Level: entity.NoticeInfo, Message: "Review posted"})

	return nil
}

func (srv *dispatcherService) editReview(ctx context.Context, raw json.RawMessage) error {
	p, err := decodePayload[entity.EditReviewPayload](srv.validator, raw)
	if err != nil {
		return err
	}

	return srv.reviews.Edit(ctx, p.ReviewID, entity.ReviewDraft{Text: p.Text, Rating: p.Rating})
}

// deleteReview goes through the admin coordinator for admins so the
// moderation list follows.
func (srv *dispatcherService) deleteReview(ctx context.Context, raw json.RawMessage) error {
	p, err := decodePayload[entity.ReviewPayload](srv.validator, raw)
	if err != nil {
		return err
	}
	if srv.session.Current().IsAdmin() {
		return srv.admin.DeleteReview(ctx, p.ReviewID)
	}

	return srv.reviews.Delete(ctx, p.ReviewID)
}

func (srv *dispatcherService) saveGame(ctx context.Context, raw json.RawMessage) error {
	p, err := decodePayload[entity.SaveGamePayload](srv.validator, raw)
	if err != nil {
		return err
	}
	if err := srv.admin.SaveGame(ctx, p.GameID, p.Draft()); err != nil {
		return err
	}
	srv.presenter.Notify(entity.Notice{Level: entity.NoticeInfo, Message: "Game saved"})

	return nil
}

func (srv *dispatcherService) deleteGame(ctx context.Context, raw json.RawMessage) error {
	p, err := decodePayload[entity.GamePayload](srv.validator, raw)
	if err != nil {
		return err
	}

	return srv.admin.DeleteGame(ctx, p.GameID)
}

func (srv *dispatcherService) loadModeration(ctx context.Context, _ json.RawMessage) error {
	return srv.admin.LoadModeration(ctx)
}

func (srv *dispatcherService) calendarPrev(context.Context, json.RawMessage) error {
	srv.calendar.Previous()

	return nil
}

func (srv *dispatcherService) calendarNext(context.Context, json.RawMessage) error {
	srv.calendar.Next()

	return nil
}

func (srv *dispatcherService) calendarToday(context.Context, json.RawMessage) error {
	srv.calendar.Today()

	return nil
}

func (srv *dispatcherService) setEndpoint(ctx context.Context, raw json.RawMessage) error {
	p, err := decodePayload[entity.EndpointPayload](srv.validator, raw)
	if err != nil {
		return err
	}

	return srv.settings.SetEndpoint(ctx, p.BaseURL)
}

func (srv *dispatcherService) dismissNotice(context.Context, json.RawMessage) error {
	srv.presenter.Dismiss()

	return nil
}
