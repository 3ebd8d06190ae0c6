// Package policy decides role permissions with a casbin enforcer.
package policy

import (
	"log/slog"

	"vgb/config"
	"vgb/internal/domain/entity"
	"vgb/internal/domain/service"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// roleModel is a plain RBAC model: roles inherit through g.
const roleModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// defaultPolicies grants Guest the public routes. User and Admin inherit
// from Guest and add their own capabilities; Admin cannot favorite or
// write reviews.
var defaultPolicies = [][]string{
	{string(entity.RoleGuest), service.RouteObject(entity.RouteCatalog), service.ActionView},
	{string(entity.RoleGuest), service.RouteObject(entity.RouteCalendar), service.ActionView},

	{string(entity.RoleUser), service.RouteObject(entity.RouteFavorites), service.ActionView},
	{string(entity.RoleUser), service.ObjectFavorite, service.ActionToggle},
	{string(entity.RoleUser), service.ObjectReview, service.ActionCompose},
	{string(entity.RoleUser), service.ObjectReview, service.ActionEditOwn},
	{string(entity.RoleUser), service.ObjectReview, service.ActionDeleteOwn},

	{string(entity.RoleAdmin), service.RouteObject(entity.RouteAdmin), service.ActionView},
	{string(entity.RoleAdmin), service.ObjectGame, service.ActionManage},
	{string(entity.RoleAdmin), service.ObjectReview, service.ActionModerate},
}

var defaultGroupings = [][]string{
	{string(entity.RoleUser), string(entity.RoleGuest)},
	{string(entity.RoleAdmin), string(entity.RoleGuest)},
}

// Params defines the parameters required for the access policy
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type casbinPolicy struct {
	enforcer *casbin.Enforcer
	logger   *slog.Logger
}

// New builds the access policy. When both policy paths are configured the
// model and rules are loaded from files; otherwise the built-in rules apply.
func New(params Params) (service.AccessPolicy, error) {
	cfg := params.Config.Policy
	if cfg.ModelPath != "" && cfg.PolicyPath != "" {
		enforcer, err := casbin.NewEnforcer(cfg.ModelPath, cfg.PolicyPath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load casbin policy files")
		}
		params.Logger.Info("Loaded access policy from files",
			slog.String("model", cfg.ModelPath),
			slog.String("policy", cfg.PolicyPath),
		)

		return &casbinPolicy{enforcer: enforcer, logger: params.Logger}, nil
	}

	enforcer, err := NewDefaultEnforcer()
	if err != nil {
		return nil, err
	}

	return &casbinPolicy{enforcer: enforcer, logger: params.Logger}, nil
}

// NewDefaultEnforcer returns an enforcer loaded with the built-in rules.
func NewDefaultEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(roleModel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse role model")
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create enforcer")
	}

	if _, err := enforcer.AddPolicies(defaultPolicies); err != nil {
		return nil, errors.Wrap(err, "failed to add default policies")
	}
	if _, err := enforcer.AddGroupingPolicies(defaultGroupings); err != nil {
		return nil, errors.Wrap(err, "failed to add role inheritance")
	}

	return enforcer, nil
}

// Allowed denies on enforcer errors.
func (p *casbinPolicy) Allowed(role entity.Role, object, action string) bool {
	allowed, err := p.enforcer.Enforce(string(role), object, action)
	if err != nil {
		p.logger.Warn("Access policy evaluation failed",
			slog.String("role", string(role)),
			slog.String("object", object),
			slog.String("action", action),
			slog.Any("error", err),
		)

		return false
	}

	return allowed
}
