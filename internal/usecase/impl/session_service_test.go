package impl

import (
	"context"
	"testing"

	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"
	"vgb/internal/domain/repository"
	"vgb/internal/domain/service"
	mockRepo "vgb/internal/mocks/repository"
	mockService "vgb/internal/mocks/service"
	"vgb/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service usecase.SessionUsecase
	store   *mockRepo.MockSlotStore
	api     *mockService.MockCatalogAPI
	tokens  *mockService.MockTokenInspector
	changes *[][2]entity.Session
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	store := mockRepo.NewMockSlotStore(t)
	api := mockService.NewMockCatalogAPI(t)
	tokens := mockService.NewMockTokenInspector(t)

	service := NewSessionService(SessionServiceParams{
		Store:  store,
		API:    api,
		Tokens: tokens,
		Logger: newDiscardLogger(),
	})

	changes := &[][2]entity.Session{}
	service.OnChange(func(_ context.Context, prev, next entity.Session) {
		*changes = append(*changes, [2]entity.Session{prev, next})
	})

	return sessionServiceFixtures{
		service: service,
		store:   store,
		api:     api,
		tokens:  tokens,
		changes: changes,
	}
}

func TestSessionService_Restore(t *testing.T) {
	const profile = `{"id":"u1","username":"ada","userType":"Admin"}`

	tests := []struct {
		name      string
		token     string
		profile   string
		expired   *bool
		wantRole  entity.Role
		wantClear bool
	}{
		{name: "nothing persisted", wantRole: entity.RoleGuest},
		{name: "valid session", token: "tok", profile: profile, expired: boolPtr(false), wantRole: entity.RoleAdmin},
		{name: "expired token", token: "tok", profile: profile, expired: boolPtr(true), wantRole: entity.RoleGuest, wantClear: true},
		{name: "token without profile", token: "tok", wantRole: entity.RoleGuest, wantClear: true},
		{name: "profile without token", profile: profile, wantRole: entity.RoleGuest, wantClear: true},
		{name: "unreadable profile", token: "tok", profile: "{", wantRole: entity.RoleGuest, wantClear: true},
		{name: "profile without id", token: "tok", profile: `{"username":"ada"}`, wantRole: entity.RoleGuest, wantClear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)
			ctx := context.Background()

			for slot, value := range map[repository.Slot]string{repository.SlotToken: tt.token, repository.SlotUser: tt.profile} {
				if value == "" {
					fx.store.EXPECT().Get(ctx, slot).Return("", repository.ErrSlotNotFound)
				} else {
					fx.store.EXPECT().Get(ctx, slot).Return(value, nil)
				}
			}
			if tt.expired != nil {
				fx.tokens.EXPECT().Expired(tt.token, mock.Anything).Return(*tt.expired)
			}
			if tt.wantClear {
				fx.store.EXPECT().Remove(ctx, repository.SlotToken).Return(nil)
				fx.store.EXPECT().Remove(ctx, repository.SlotUser).Return(nil)
			}

			session, err := fx.service.Restore(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, session.Role())
			assert.Equal(t, session, fx.service.Current())
			assert.Empty(t, *fx.changes, "restore must not notify listeners")
		})
	}
}

func TestSessionService_Restore_StoreFailureFallsBackToGuest(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.store.EXPECT().Get(ctx, repository.SlotToken).Return("", errors.New("disk gone"))
	fx.store.EXPECT().Get(ctx, repository.SlotUser).Return("", repository.ErrSlotNotFound)

	session, err := fx.service.Restore(ctx)

	require.Error(t, err)
	assert.True(t, session.IsGuest())
}

func TestSessionService_Adopt_PersistsBothSlots(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	session := userSession()

	fx.store.EXPECT().Set(ctx, repository.SlotToken, "tok-user").Return(nil)
	fx.store.EXPECT().Set(ctx, repository.SlotUser, `{"id":"u1","username":"ada","userType":"User"}`).Return(nil)

	require.NoError(t, fx.service.Adopt(ctx, session))

	assert.Equal(t, session, fx.service.Current())
	require.Len(t, *fx.changes, 1)
	assert.True(t, (*fx.changes)[0][0].IsGuest())
	assert.Equal(t, session, (*fx.changes)[0][1])
}

func TestSessionService_Adopt_RollsBackTokenWhenProfileFails(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.store.EXPECT().Set(ctx, repository.SlotToken, "tok-user").Return(nil)
	fx.store.EXPECT().Set(ctx, repository.SlotUser, mock.Anything).Return(errors.New("quota exceeded"))
	fx.store.EXPECT().Remove(ctx, repository.SlotToken).Return(nil)

	err := fx.service.Adopt(ctx, userSession())

	require.Error(t, err)
	assert.True(t, fx.service.Current().IsGuest())
	assert.Empty(t, *fx.changes)
}

func TestSessionService_Adopt_RestoresPreviousTokenWhenProfileFails(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	previous := adminSession()

	fx.store.EXPECT().Set(ctx, repository.SlotToken, "tok-admin").Return(nil).Times(2)
	fx.store.EXPECT().Set(ctx, repository.SlotUser, `{"id":"a1","username":"root","userType":"Admin"}`).Return(nil).Once()
	require.NoError(t, fx.service.Adopt(ctx, previous))

	fx.store.EXPECT().Set(ctx, repository.SlotToken, "tok-user").Return(nil).Once()
	fx.store.EXPECT().Set(ctx, repository.SlotUser, `{"id":"u1","username":"ada","userType":"User"}`).Return(errors.New("quota exceeded")).Once()

	err := fx.service.Adopt(ctx, userSession())

	require.Error(t, err)
	assert.Equal(t, previous, fx.service.Current())
	fx.store.AssertNotCalled(t, "Remove", ctx, repository.SlotToken)
	assert.Len(t, *fx.changes, 1)
}

func TestSessionService_Adopt_RejectsPartialSession(t *testing.T) {
	fx := createTestSessionService(t)

	partial := entity.Session{Token: "tok", User: entity.User{ID: "u1", Role: entity.RoleGuest}}
	err := fx.service.Adopt(context.Background(), partial)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.True(t, fx.service.Current().IsGuest())
}

func TestSessionService_Login(t *testing.T) {
	t.Run("success adopts the session", func(t *testing.T) {
		fx := createTestSessionService(t)
		ctx := context.Background()
		creds := service.Credentials{Email: "ada@example.com", Password: "secret"}
		admin := adminSession()

		fx.api.EXPECT().Login(ctx, creds).Return(&admin, nil)
		fx.store.EXPECT().Set(ctx, repository.SlotToken, admin.Token).Return(nil)
		fx.store.EXPECT().Set(ctx, repository.SlotUser, mock.Anything).Return(nil)

		session, err := fx.service.Login(ctx, creds)

		require.NoError(t, err)
		assert.True(t, session.IsAdmin())
		assert.True(t, fx.service.Current().IsAdmin())
	})

	t.Run("rejected credentials keep the guest session", func(t *testing.T) {
		fx := createTestSessionService(t)
		ctx := context.Background()
		creds := service.Credentials{Email: "ada@example.com", Password: "wrong"}

		fx.api.EXPECT().Login(ctx, creds).
			Return(nil, errors.WithStack(domainerrors.ErrAuthRequired.WithMessage("Invalid credentials")))

		session, err := fx.service.Login(ctx, creds)

		assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
		assert.True(t, session.IsGuest())
		assert.Empty(t, *fx.changes)
	})
}

func TestSessionService_Register(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	reg := service.Registration{Username: "ada", Email: "ada@example.com", Password: "secret1"}
	user := userSession()

	fx.api.EXPECT().Register(ctx, reg).Return(&user, nil)
	fx.store.EXPECT().Set(ctx, mock.Anything, mock.Anything).Return(nil).Twice()

	session, err := fx.service.Register(ctx, reg)

	require.NoError(t, err)
	assert.Equal(t, user, session)
	assert.Len(t, *fx.changes, 1)
}

func TestSessionService_Logout_EndsSessionEvenWhenClearingFails(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.store.EXPECT().Set(ctx, mock.Anything, mock.Anything).Return(nil).Twice()
	require.NoError(t, fx.service.Adopt(ctx, userSession()))

	fx.store.EXPECT().Remove(ctx, repository.SlotToken).Return(errors.New("locked"))
	fx.store.EXPECT().Remove(ctx, repository.SlotUser).Return(nil)

	err := fx.service.Logout(ctx)

	require.Error(t, err)
	assert.True(t, fx.service.Current().IsGuest())
	require.Len(t, *fx.changes, 2)
	assert.True(t, (*fx.changes)[1][1].IsGuest())
}
