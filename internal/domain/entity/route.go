package entity

// Route is one of the mutually exclusive top-level views.
type Route string

const (
	RouteCatalog   Route = "catalog"
	RouteCalendar  Route = "calendar"
	RouteFavorites Route = "favorites"
	RouteAdmin     Route = "admin"
)

// AllRoutes lists every route in navigation order.
var AllRoutes = []Route{RouteCatalog, RouteCalendar, RouteFavorites, RouteAdmin}

// IsValid checks if the Route is one of the known views.
func (r Route) IsValid() bool {
	switch r {
	case RouteCatalog, RouteCalendar, RouteFavorites, RouteAdmin:
		return true
	default:
		return false
	}
}

// Heading returns the view title and subtitle shown for the route.
func (r Route) Heading() (title, subtitle string) {
	switch r {
	case RouteCalendar:
		return "Release Calendar", "Monthly view of releases with cover images."
	case RouteFavorites:
		return "Favorites", "Your saved games."
	case RouteAdmin:
		return "Admin", "Manage games and moderate reviews."
	default:
		return "Catalog", "Browse games and open details to read reviews."
	}
}

// RouteTicket captures the active route at the moment an asynchronous
// operation started. Results are only written back while the ticket is
// still current.
type RouteTicket struct {
	Route      Route
	Generation uint64
}
