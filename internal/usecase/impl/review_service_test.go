package impl

import (
	"context"
	"testing"
	"time"

	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"
	mockService "vgb/internal/mocks/service"
	mockUsecase "vgb/internal/mocks/usecase"
	"vgb/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service usecase.ReviewUsecase
	session *mockUsecase.MockSessionUsecase
	catalog *mockUsecase.MockCatalogUsecase
	api     *mockService.MockCatalogAPI
	gate    usecase.ActionGate
	current *entity.Session
}

func createTestReviewService(t *testing.T, session entity.Session) *reviewServiceFixtures {
	fx := &reviewServiceFixtures{
		session: mockUsecase.NewMockSessionUsecase(t),
		catalog: mockUsecase.NewMockCatalogUsecase(t),
		api:     mockService.NewMockCatalogAPI(t),
		gate:    NewActionGate(),
		current: &session,
	}
	fx.session.EXPECT().Current().RunAndReturn(func() entity.Session { return *fx.current }).Maybe()

	fx.service = NewReviewService(ReviewServiceParams{
		Session: fx.session,
		Catalog: fx.catalog,
		API:     fx.api,
		Gate:    fx.gate,
		Policy:  newTestPolicy(t),
		Logger:  newDiscardLogger(),
	})

	return fx
}

func review(id, authorID string, rating int) entity.Review {
	return entity.Review{
		ID:        id,
		GameID:    "g1",
		Author:    entity.ReviewAuthor{ID: authorID},
		Rating:    intPtr(rating),
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

// openGame loads g1 with the given reviews into the detail view.
func (fx *reviewServiceFixtures) openGame(t *testing.T, reviews ...entity.Review) {
	t.Helper()

	fx.api.EXPECT().GetGame(mock.Anything, "g1").
		Return(&entity.GameDetail{Game: entity.Game{ID: "g1", Title: "Alpha"}, Reviews: reviews}, nil).Once()

	_, err := fx.service.Open(context.Background(), "g1")
	require.NoError(t, err)
}

func TestReviewService_Post_RejectsSecondReviewLocally(t *testing.T) {
	fx := createTestReviewService(t, userSession())
	fx.openGame(t, review("r1", "u1", 4))

	err := fx.service.Post(context.Background(), "g1", entity.ReviewDraft{Text: strPtr("again")})

	assert.ErrorIs(t, err, domainerrors.ErrConflict)
	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "You have already reviewed this game", appErr.Message())
	fx.api.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewService_Post_FetchesListWhenNeverLoaded(t *testing.T) {
	fx := createTestReviewService(t, userSession())
	ctx := context.Background()

	fx.api.EXPECT().ListReviews(ctx, "g1").Return([]entity.Review{review("r1", "u1", 3)}, nil).Once()

	err := fx.service.Post(ctx, "g1", entity.ReviewDraft{Rating: intPtr(5)})

	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestReviewService_Post_RequiresRatingOrText(t *testing.T) {
	fx := createTestReviewService(t, userSession())

	err := fx.service.Post(context.Background(), "g1", entity.ReviewDraft{Text: strPtr("   ")})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_Post_RefreshesReviewsThenRating(t *testing.T) {
	fx := createTestReviewService(t, userSession())
	ctx := context.Background()
	fx.openGame(t, review("r9", "u9", 2))

	var order []string
	fx.api.EXPECT().CreateReview(ctx, "tok-user", "g1", mock.MatchedBy(func(d entity.ReviewDraft) bool {
		return d.Rating != nil && *d.Rating == 5 && d.Text != nil && *d.Text == "Great"
	})).Return(nil)
	fx.api.EXPECT().ListReviews(ctx, "g1").
		Run(func(context.Context, string) { order = append(order, "reviews") }).
		Return([]entity.Review{review("r9", "u9", 2), review("r10", "u1", 5)}, nil)
	fx.catalog.EXPECT().RefreshGame(ctx, "g1").
		Run(func(context.Context, string) { order = append(order, "rating") }).
		Return(nil)

	err := fx.service.Post(ctx, "g1", entity.ReviewDraft{Text: strPtr("  Great "), Rating: intPtr(9)})

	require.NoError(t, err)
	assert.Equal(t, []string{"reviews", "rating"}, order)
	assert.Equal(t, entity.ComposerAlreadyPosted, fx.service.Composer("g1"))
}

func TestReviewService_Post_ConflictReloadsList(t *testing.T) {
	fx := createTestReviewService(t, userSession())
	ctx := context.Background()
	fx.openGame(t)

	fx.api.EXPECT().CreateReview(ctx, "tok-user", "g1", mock.Anything).
		Return(conflict("You have already reviewed this game"))
	fx.api.EXPECT().ListReviews(ctx, "g1").Return([]entity.Review{review("r1", "u1", 4)}, nil)

	err := fx.service.Post(ctx, "g1", entity.ReviewDraft{Rating: intPtr(4)})

	assert.ErrorIs(t, err, domainerrors.ErrConflict)
	assert.Equal(t, entity.ComposerAlreadyPosted, fx.service.Composer("g1"))
}

func TestReviewService_Edit(t *testing.T) {
	t.Run("clamps the rating of an own review", func(t *testing.T) {
		fx := createTestReviewService(t, userSession())
		ctx := context.Background()
		fx.openGame(t, review("r1", "u1", 3))

		fx.api.EXPECT().UpdateReview(ctx, "tok-user", "r1", mock.MatchedBy(func(d entity.ReviewDraft) bool {
			return d.Rating != nil && *d.Rating == entity.MaxRating && d.Text == nil
		})).Return(nil)
		fx.api.EXPECT().ListReviews(ctx, "g1").Return([]entity.Review{review("r1", "u1", 5)}, nil)
		fx.catalog.EXPECT().RefreshGame(ctx, "g1").Return(nil)

		require.NoError(t, fx.service.Edit(ctx, "r1", entity.ReviewDraft{Rating: intPtr(9)}))

		reviews, ok := fx.service.Reviews("g1")
		require.True(t, ok)
		assert.Equal(t, 5, *reviews[0].Rating)
	})

	t.Run("refuses someone else's review", func(t *testing.T) {
		fx := createTestReviewService(t, userSession())
		fx.openGame(t, review("r2", "u2", 3))

		err := fx.service.Edit(context.Background(), "r2", entity.ReviewDraft{Rating: intPtr(1)})

		assert.ErrorIs(t, err, domainerrors.ErrRoleNotAllowed)
	})

	t.Run("unknown review", func(t *testing.T) {
		fx := createTestReviewService(t, userSession())

		err := fx.service.Edit(context.Background(), "missing", entity.ReviewDraft{Rating: intPtr(1)})

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestReviewService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		session entity.Session
		author  string
		wantErr error
	}{
		{name: "user deletes own review", session: userSession(), author: "u1"},
		{name: "user cannot delete others", session: userSession(), author: "u2", wantErr: domainerrors.ErrRoleNotAllowed},
		{name: "admin moderates any review", session: adminSession(), author: "u2"},
		{name: "guest must log in", session: entity.GuestSession(), author: "u2", wantErr: domainerrors.ErrAuthRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t, tt.session)
			ctx := context.Background()
			fx.openGame(t, review("r1", tt.author, 4))

			if tt.wantErr == nil {
				fx.api.EXPECT().DeleteReview(ctx, tt.session.Token, "r1").Return(nil)
				fx.api.EXPECT().ListReviews(ctx, "g1").Return([]entity.Review{}, nil)
				fx.catalog.EXPECT().RefreshGame(ctx, "g1").Return(nil)
			}

			err := fx.service.Delete(ctx, "r1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			reviews, _ := fx.service.Reviews("g1")
			assert.Empty(t, reviews)
		})
	}
}

func TestReviewService_Composer(t *testing.T) {
	tests := []struct {
		name    string
		session entity.Session
		reviews []entity.Review
		want    entity.ComposerState
	}{
		{name: "guest", session: entity.GuestSession(), want: entity.ComposerLoginRequired},
		{name: "admin", session: adminSession(), want: entity.ComposerAdmin},
		{name: "user with a review", session: userSession(), reviews: []entity.Review{review("r1", "u1", 4)}, want: entity.ComposerAlreadyPosted},
		{name: "user without a review", session: userSession(), reviews: []entity.Review{review("r1", "u2", 4)}, want: entity.ComposerOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t, tt.session)
			fx.openGame(t, tt.reviews...)

			assert.Equal(t, tt.want, fx.service.Composer("g1"))
		})
	}
}

func TestReviewService_OpenedPrefersCatalogRecord(t *testing.T) {
	fx := createTestReviewService(t, entity.GuestSession())
	fx.openGame(t, review("r1", "u2", 4))

	fx.catalog.EXPECT().Game("g1").Return(entity.Game{ID: "g1", Title: "Alpha", AverageRating: 4}, true)

	detail, ok := fx.service.Opened()
	require.True(t, ok)
	assert.InDelta(t, 4.0, detail.Game.AverageRating, 0.001)
	assert.Len(t, detail.Reviews, 1)

	fx.service.Close()
	_, ok = fx.service.Opened()
	assert.False(t, ok)
}

func TestReviewService_Open_DropsDetailAfterClose(t *testing.T) {
	fx := createTestReviewService(t, entity.GuestSession())
	ctx := context.Background()

	fx.api.EXPECT().GetGame(ctx, "g1").
		RunAndReturn(func(context.Context, string) (*entity.GameDetail, error) {
			fx.service.Close()

			return &entity.GameDetail{Game: entity.Game{ID: "g1"}}, nil
		})

	_, err := fx.service.Open(ctx, "g1")

	require.NoError(t, err)
	_, ok := fx.service.Opened()
	assert.False(t, ok)
}
