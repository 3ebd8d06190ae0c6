package service

import "vgb/internal/domain/entity"

// Objects and actions understood by the AccessPolicy.
const (
	ActionView = "view"

	ObjectFavorite = "favorite"
	ObjectReview   = "review"
	ObjectGame     = "game"

	ActionToggle    = "toggle"
	ActionCompose   = "compose"
	ActionEditOwn   = "edit_own"
	ActionDeleteOwn = "delete_own"
	ActionModerate  = "moderate"
	ActionManage    = "manage"
)

// RouteObject names the policy object guarding a route.
func RouteObject(route entity.Route) string {
	return "route:" + string(route)
}

// AccessPolicy decides what a role may see and do.
type AccessPolicy interface {
	Allowed(role entity.Role, object, action string) bool
}
