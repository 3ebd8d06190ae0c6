package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "vgb/internal/delivery/context"
	"vgb/internal/domain/catalog"
	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"
	"vgb/internal/domain/service"
	"vgb/internal/errors"
	"vgb/internal/usecase"

	"go.uber.org/fx"
)

// presenterService implements the PresenterUsecase interface.
type presenterService struct {
	session   usecase.SessionUsecase
	catalog   usecase.CatalogUsecase
	calendar  usecase.CalendarUsecase
	favorites usecase.FavoriteUsecase
	reviews   usecase.ReviewUsecase
	admin     usecase.AdminUsecase
	router    usecase.RouterUsecase
	api       service.CatalogAPI
	policy    service.AccessPolicy
	renderer  service.Renderer
	logger    *slog.Logger
	now       func() time.Time

	// mu serializes renders; the surface never sees two at once.
	mu      sync.Mutex
	version uint64
	latest  *entity.ViewState

	noticeMu sync.Mutex
	notice   *entity.Notice
	prompt   *entity.LoginPromptView
}

// PresenterServiceParams holds dependencies for the presenter.
type PresenterServiceParams struct {
	fx.In

	Session   usecase.SessionUsecase
	Catalog   usecase.CatalogUsecase
	Calendar  usecase.CalendarUsecase
	Favorites usecase.FavoriteUsecase
	Reviews   usecase.ReviewUsecase
	Admin     usecase.AdminUsecase
	Router    usecase.RouterUsecase
	API       service.CatalogAPI
	Policy    service.AccessPolicy
	Renderer  service.Renderer
	Logger    *slog.Logger
}

// NewPresenterService is the constructor for presenterService.
func NewPresenterService(params PresenterServiceParams) usecase.PresenterUsecase {
	return &presenterService{
		session:   params.Session,
		catalog:   params.Catalog,
		calendar:  params.Calendar,
		favorites: params.Favorites,
		reviews:   params.Reviews,
		admin:     params.Admin,
		router:    params.Router,
		api:       params.API,
		policy:    params.Policy,
		renderer:  params.Renderer,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *presenterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *presenterService) Render(ctx context.Context) (*entity.ViewState, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.version++
	view := srv.compose()
	view.Version = srv.version
	srv.latest = view

	if err := srv.renderer.Render(ctx, view); err != nil {
		srv.log(ctx).Warn("Renderer rejected view", slog.Uint64("version", view.Version), slog.Any("error", err))

		return view, errors.Wrap(err, "failed to render view")
	}

	return view, nil
}

func (srv *presenterService) Latest() *entity.ViewState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.latest
}

// Report shows err as a notice. AuthRequired also opens the login prompt.
func (srv *presenterService) Report(err error) {
	if err == nil {
		return
	}

	notice := entity.Notice{
		Level:   entity.NoticeError,
		Code:    domainerrors.ErrInternalError.ErrorCode(),
		Message: "Something went wrong",
	}
	if appErr, ok := domainerrors.AsAppError(err); ok {
		notice.Code = appErr.ErrorCode()
		notice.Message = appErr.Message()
	}

	srv.noticeMu.Lock()
	defer srv.noticeMu.Unlock()

	srv.notice = &notice
	if errors.Is(err, domainerrors.ErrAuthRequired) {
		srv.prompt = &entity.LoginPromptView{Reason: notice.Message}
	}
}

func (srv *presenterService) Notify(notice entity.Notice) {
	srv.noticeMu.Lock()
	defer srv.noticeMu.Unlock()

	srv.notice = &notice
}

func (srv *presenterService) Dismiss() {
	srv.noticeMu.Lock()
	defer srv.noticeMu.Unlock()

	srv.notice = nil
	srv.prompt = nil
}

// compose reads every component's slice. Callers hold mu.
func (srv *presenterService) compose() *entity.ViewState {
	session := srv.session.Current()
	role := session.Role()
	route := srv.router.Active()
	title, subtitle := route.Heading()
	favorites := srv.favorites.Favorites()
	facets := srv.catalog.Facets()
	criteria := srv.catalog.Criteria()

	view := &entity.ViewState{
		RenderedAt: srv.now(),
		Endpoint:   srv.api.BaseURL(),
		Route:      route,
		Title:      title,
		Subtitle:   subtitle,
		Session:    sessionView(session),
		Nav: entity.NavView{
			Favorites: srv.router.Permitted(role, entity.RouteFavorites),
			Admin:     srv.router.Permitted(role, entity.RouteAdmin),
		},
		Stats:    srv.catalog.Stats(),
		Criteria: criteria,
		Facets: entity.FacetView{
			Platforms: catalog.Chips(facets.Platforms, criteria.Platforms),
			Genres:    catalog.Chips(facets.Genres, criteria.Genres),
		},
		Catalog: srv.cards(srv.catalog.Filtered(), role, favorites),
	}

	switch route {
	case entity.RouteCalendar:
		grid := srv.calendar.Recompute()
		view.Calendar = &grid
	case entity.RouteFavorites:
		view.Favorites = srv.cards(favorites.Games(), role, favorites)
	case entity.RouteAdmin:
		moderation, loaded := srv.admin.Moderation()
		view.Admin = &entity.AdminView{
			Games:            srv.admin.Games(),
			Moderation:       moderation,
			ModerationLoaded: loaded,
		}
	}

	if detail, ok := srv.reviews.Opened(); ok {
		view.Detail = srv.detail(detail, session)
	}

	srv.noticeMu.Lock()
	view.Notice = srv.notice
	view.Prompt = srv.prompt
	srv.noticeMu.Unlock()

	return view
}

func (srv *presenterService) cards(games []entity.Game, role entity.Role, favorites entity.FavoriteSet) []entity.GameCard {
	action := entity.CardActionAdmin
	switch {
	case role == entity.RoleGuest:
		action = entity.CardActionLogin
	case srv.policy.Allowed(role, service.ObjectFavorite, service.ActionToggle):
		action = entity.CardActionFavorite
	}

	cards := make([]entity.GameCard, 0, len(games))
	for _, g := range games {
		cards = append(cards, entity.GameCard{
			Game:      g,
			Image:     srv.api.ResolveAsset(g.ImageURL),
			Action:    action,
			Favorited: favorites.Has(g.ID),
		})
	}

	return cards
}

func (srv *presenterService) detail(detail entity.GameDetail, session entity.Session) *entity.GameDetailView {
	role := session.Role()
	moderate := srv.policy.Allowed(role, service.ObjectReview, service.ActionModerate)

	reviews := make([]entity.ReviewView, 0, len(detail.Reviews))
	for _, r := range detail.Reviews {
		mine := r.WrittenBy(session.User.ID)
		author := r.Author.Username
		if author == "" {
			author = "User"
		}
		reviews = append(reviews, entity.ReviewView{
			Review:    r,
			Author:    author,
			Mine:      mine,
			CanEdit:   mine && srv.policy.Allowed(role, service.ObjectReview, service.ActionEditOwn),
			CanDelete: (mine && srv.policy.Allowed(role, service.ObjectReview, service.ActionDeleteOwn)) || moderate,
		})
	}

	return &entity.GameDetailView{
		Game:     detail.Game,
		Image:    srv.api.ResolveAsset(detail.Game.ImageURL),
		Composer: srv.reviews.Composer(detail.Game.ID),
		CanFavor: srv.policy.Allowed(role, service.ObjectFavorite, service.ActionToggle),
		Reviews:  reviews,
	}
}

func sessionView(session entity.Session) entity.SessionView {
	if session.IsGuest() {
		return entity.SessionView{Name: "Guest", Label: "Browsing", Role: entity.RoleGuest}
	}

	return entity.SessionView{
		LoggedIn: true,
		Name:     session.User.Username,
		Label:    session.Role().String(),
		Role:     session.Role(),
	}
}
