package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"vgb/config"
	"vgb/internal/domain/entity"
	"vgb/internal/domain/service"
	"vgb/internal/infra/policy"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPolicy(t *testing.T) service.AccessPolicy {
	t.Helper()

	p, err := policy.New(policy.Params{Config: &config.Config{}, Logger: newDiscardLogger()})
	require.NoError(t, err)

	return p
}

func userSession() entity.Session {
	return entity.Session{
		Token: "tok-user",
		User:  entity.User{ID: "u1", Username: "ada", Role: entity.RoleUser},
	}
}

func adminSession() entity.Session {
	return entity.Session{
		Token: "tok-admin",
		User:  entity.User{ID: "a1", Username: "root", Role: entity.RoleAdmin},
	}
}

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)

	return &t
}
