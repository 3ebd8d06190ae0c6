package impl

import (
	"context"
	"log/slog"

	deliverycontext "vgb/internal/delivery/context"
	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"
	"vgb/internal/domain/service"
	"vgb/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// routerService implements the RouterUsecase interface.
type routerService struct {
	session   usecase.SessionUsecase
	routes    usecase.RouteTracker
	favorites usecase.FavoriteUsecase
	calendar  usecase.CalendarUsecase
	admin     usecase.AdminUsecase
	policy    service.AccessPolicy
	logger    *slog.Logger
}

// RouterServiceParams holds dependencies for the router service.
type RouterServiceParams struct {
	fx.In

	Session   usecase.SessionUsecase
	Routes    usecase.RouteTracker
	Favorites usecase.FavoriteUsecase
	Calendar  usecase.CalendarUsecase
	Admin     usecase.AdminUsecase
	Policy    service.AccessPolicy
	Logger    *slog.Logger
}

// NewRouterService is the constructor for routerService. It follows session
// changes: login lands on the role's default route, logout on the catalog,
// and a route the new role may not see is left.
func NewRouterService(params RouterServiceParams) usecase.RouterUsecase {
	srv := &routerService{
		session:   params.Session,
		routes:    params.Routes,
		favorites: params.Favorites,
		calendar:  params.Calendar,
		admin:     params.Admin,
		policy:    params.Policy,
		logger:    params.Logger,
	}
	params.Session.OnChange(srv.onSessionChange)

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *routerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *routerService) Navigate(ctx context.Context, route entity.Route) (entity.Route, error) {
	if !route.IsValid() {
		return srv.Active(), errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("Unknown view " + string(route)))
	}

	role := srv.session.Current().Role()
	target, guardErr := srv.guard(role, route)

	entryErr := srv.enter(ctx, target)
	srv.log(ctx).Debug("Route entered",
		slog.String("requested", string(route)),
		slog.String("route", string(target)),
		slog.String("role", role.String()),
	)

	if guardErr != nil {
		return target, guardErr
	}

	return target, entryErr
}

func (srv *routerService) Active() entity.Route {
	return srv.routes.Active()
}

func (srv *routerService) Permitted(role entity.Role, route entity.Route) bool {
	return srv.policy.Allowed(role, service.RouteObject(route), service.ActionView)
}

// guard picks the route actually entered. An Admin asking for favorites is
// sent to the admin view without complaint; everyone else is told why.
func (srv *routerService) guard(role entity.Role, route entity.Route) (entity.Route, error) {
	if srv.Permitted(role, route) {
		return route, nil
	}

	target := role.DefaultRoute()
	switch {
	case role == entity.RoleAdmin && route == entity.RouteFavorites:
		return target, nil
	case role == entity.RoleGuest && route == entity.RouteFavorites:
		return target, errors.Wrap(domainerrors.ErrAuthRequired, "favorites need a session")
	default:
		return target, errors.Wrapf(domainerrors.ErrRoleNotAllowed, "%s accounts cannot open %s", role, route)
	}
}

// enter activates route and runs its entry action.
func (srv *routerService) enter(ctx context.Context, route entity.Route) error {
	srv.routes.Enter(route)

	switch route {
	case entity.RouteFavorites:
		return srv.favorites.Refresh(ctx)
	case entity.RouteCalendar:
		srv.calendar.Recompute()
	case entity.RouteAdmin:
		return srv.admin.Enter(ctx)
	}

	return nil
}

func (srv *routerService) onSessionChange(ctx context.Context, prev, next entity.Session) {
	var target entity.Route
	switch {
	case prev.IsGuest() && !next.IsGuest():
		target = next.Role().DefaultRoute()
	case !prev.IsGuest() && next.IsGuest():
		target = entity.RouteCatalog
	case !srv.Permitted(next.Role(), srv.Active()):
		target = next.Role().DefaultRoute()
	default:
		return
	}

	if err := srv.enter(ctx, target); err != nil {
		srv.log(ctx).Warn("Entry action failed after session change", slog.String("route", string(target)), slog.Any("error", err))
	}
}
