package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	deliverycontext "vgb/internal/delivery/context"
	"vgb/internal/domain/entity"
	domainerrors "vgb/internal/domain/errors"
	"vgb/internal/domain/service"
	"vgb/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	session usecase.SessionUsecase
	catalog usecase.CatalogUsecase
	api     service.CatalogAPI
	gate    usecase.ActionGate
	policy  service.AccessPolicy
	logger  *slog.Logger

	mu sync.RWMutex
	// lists holds the most recently fetched review list per game.
	lists map[string][]entity.Review
	// owners maps a review to its game for every review in lists.
	owners  map[string]string
	opened  *entity.GameDetail
	openSeq uint64
}

// ReviewServiceParams holds dependencies for the review service.
type ReviewServiceParams struct {
	fx.In

	Session usecase.SessionUsecase
	Catalog usecase.CatalogUsecase
	API     service.CatalogAPI
	Gate    usecase.ActionGate
	Policy  service.AccessPolicy
	Logger  *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		session: params.Session,
		catalog: params.Catalog,
		api:     params.API,
		gate:    params.Gate,
		policy:  params.Policy,
		logger:  params.Logger,
		lists:   make(map[string][]entity.Review),
		owners:  make(map[string]string),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Open loads the game detail. A response arriving after the dialog was
// closed or another game was opened is dropped.
func (srv *reviewService) Open(ctx context.Context, gameID string) (*entity.GameDetail, error) {
	srv.mu.Lock()
	srv.openSeq++
	seq := srv.openSeq
	srv.mu.Unlock()

	detail, err := srv.api.GetGame(ctx, gameID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load game details")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.record(gameID, detail.Reviews)
	if seq != srv.openSeq {
		srv.log(ctx).Debug("Dropping superseded game detail", slog.String("game_id", gameID))

		return detail, nil
	}
	srv.opened = detail

	return detail, nil
}

func (srv *reviewService) Close() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.openSeq++
	srv.opened = nil
}

// Opened returns the open game with its latest review list and, when the
// catalog holds a newer copy, the catalog's record of the game.
func (srv *reviewService) Opened() (entity.GameDetail, bool) {
	srv.mu.RLock()
	if srv.opened == nil {
		srv.mu.RUnlock()

		return entity.GameDetail{}, false
	}
	detail := entity.GameDetail{
		Game:    srv.opened.Game,
		Reviews: slices.Clone(srv.lists[srv.opened.Game.ID]),
	}
	srv.mu.RUnlock()

	if game, ok := srv.catalog.Game(detail.Game.ID); ok {
		detail.Game = game
	}

	return detail, true
}

func (srv *reviewService) Fetch(ctx context.Context, gameID string) ([]entity.Review, error) {
	reviews, err := srv.api.ListReviews(ctx, gameID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load reviews of game %s", gameID)
	}

	srv.mu.Lock()
	srv.record(gameID, reviews)
	srv.mu.Unlock()

	return slices.Clone(reviews), nil
}

func (srv *reviewService) Reviews(gameID string) ([]entity.Review, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	reviews, ok := srv.lists[gameID]

	return slices.Clone(reviews), ok
}

func (srv *reviewService) Composer(gameID string) entity.ComposerState {
	session := srv.session.Current()
	switch {
	case session.IsGuest():
		return entity.ComposerLoginRequired
	case !srv.policy.Allowed(session.Role(), service.ObjectReview, service.ActionCompose):
		return entity.ComposerAdmin
	}

	reviews, _ := srv.Reviews(gameID)
	if hasReviewBy(reviews, session.User.ID) {
		return entity.ComposerAlreadyPosted
	}

	return entity.ComposerOpen
}

// CanCompose only reaches the network when no review list of the game was
// ever fetched.
func (srv *reviewService) CanCompose(ctx context.Context, gameID string) error {
	session := srv.session.Current()
	if session.IsGuest() {
		return errors.Wrap(domainerrors.ErrAuthRequired, "reviews need a session")
	}
	if !srv.policy.Allowed(session.Role(), service.ObjectReview, service.ActionCompose) {
		return errors.Wrapf(domainerrors.ErrRoleNotAllowed, "%s accounts cannot post reviews", session.Role())
	}

	reviews, ok := srv.Reviews(gameID)
	if !ok {
		var err error
		if reviews, err = srv.Fetch(ctx, gameID); err != nil {
			return err
		}
	}
	if hasReviewBy(reviews, session.User.ID) {
		return errors.WithStack(domainerrors.ErrConflict.WithMessage("You have already reviewed this game"))
	}

	return nil
}

func (srv *reviewService) Post(ctx context.Context, gameID string, draft entity.ReviewDraft) error {
	draft, err := normalizeDraft(draft)
	if err != nil {
		return err
	}
	if err := srv.CanCompose(ctx, gameID); err != nil {
		return err
	}

	release, err := srv.gate.Acquire(reviewPostKey(gameID))
	if err != nil {
		return err
	}
	defer release()

	token := srv.session.Current().Token
	if err := srv.api.CreateReview(ctx, token, gameID, draft); err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			// The local list was out of date; pick up the existing review.
			if _, fetchErr := srv.Fetch(ctx, gameID); fetchErr != nil {
				srv.log(ctx).Debug("Failed to reload reviews after conflict", slog.Any("error", fetchErr))
			}
		}

		return errors.Wrap(err, "failed to post review")
	}
	srv.log(ctx).Info("Review posted", slog.String("game_id", gameID))

	return srv.settle(ctx, gameID)
}

func (srv *reviewService) Edit(ctx context.Context, reviewID string, draft entity.ReviewDraft) error {
	session := srv.session.Current()
	if session.IsGuest() {
		return errors.Wrap(domainerrors.ErrAuthRequired, "reviews need a session")
	}
	review, gameID, err := srv.find(reviewID)
	if err != nil {
		return err
	}
	if !review.WrittenBy(session.User.ID) ||
		!srv.policy.Allowed(session.Role(), service.ObjectReview, service.ActionEditOwn) {
		return errors.WithStack(domainerrors.ErrRoleNotAllowed.WithMessage("You can only edit your own review"))
	}

	draft, err = normalizeDraft(draft)
	if err != nil {
		return err
	}

	release, err := srv.gate.Acquire(reviewKey(reviewID))
	if err != nil {
		return err
	}
	defer release()

	if err := srv.api.UpdateReview(ctx, session.Token, reviewID, draft); err != nil {
		return errors.Wrap(err, "failed to update review")
	}
	srv.log(ctx).Info("Review updated", slog.String("review_id", reviewID))

	return srv.settle(ctx, gameID)
}

func (srv *reviewService) Delete(ctx context.Context, reviewID string) error {
	session := srv.session.Current()
	if session.IsGuest() {
		return errors.Wrap(domainerrors.ErrAuthRequired, "reviews need a session")
	}
	review, gameID, err := srv.find(reviewID)
	if err != nil {
		return err
	}

	own := review.WrittenBy(session.User.ID) &&
		srv.policy.Allowed(session.Role(), service.ObjectReview, service.ActionDeleteOwn)
	if !own && !srv.policy.Allowed(session.Role(), service.ObjectReview, service.ActionModerate) {
		return errors.WithStack(domainerrors.ErrRoleNotAllowed.WithMessage("You can only delete your own review"))
	}

	release, err := srv.gate.Acquire(reviewKey(reviewID))
	if err != nil {
		return err
	}
	defer release()

	if err := srv.api.DeleteReview(ctx, session.Token, reviewID); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}
	srv.log(ctx).Info("Review deleted", slog.String("review_id", reviewID), slog.Bool("moderated", !own))

	return srv.settle(ctx, gameID)
}

// settle refreshes the review list of the game and then its catalog entry,
// in that order, so the aggregate rating follows the mutation.
func (srv *reviewService) settle(ctx context.Context, gameID string) error {
	if _, err := srv.Fetch(ctx, gameID); err != nil {
		return err
	}
	if err := srv.catalog.RefreshGame(ctx, gameID); err != nil {
		return errors.Wrap(err, "failed to refresh game rating")
	}

	return nil
}

// find locates a review among the fetched lists.
func (srv *reviewService) find(reviewID string) (entity.Review, string, error) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	gameID, ok := srv.owners[reviewID]
	if ok {
		for _, r := range srv.lists[gameID] {
			if r.ID == reviewID {
				return r, gameID, nil
			}
		}
	}

	return entity.Review{}, "", errors.Wrapf(domainerrors.ErrNotFound, "review %s is not loaded", reviewID)
}

// record stores the list as the latest for the game. Callers hold mu.
func (srv *reviewService) record(gameID string, reviews []entity.Review) {
	for _, r := range srv.lists[gameID] {
		delete(srv.owners, r.ID)
	}
	srv.lists[gameID] = slices.Clone(reviews)
	for _, r := range reviews {
		srv.owners[r.ID] = gameID
	}
}

func hasReviewBy(reviews []entity.Review, userID string) bool {
	return slices.ContainsFunc(reviews, func(r entity.Review) bool {
		return r.WrittenBy(userID)
	})
}

// normalizeDraft trims the text and clamps the rating. A draft with neither
// is rejected before anything is sent.
func normalizeDraft(draft entity.ReviewDraft) (entity.ReviewDraft, error) {
	var out entity.ReviewDraft
	if draft.Text != nil {
		if text := strings.TrimSpace(*draft.Text); text != "" {
			out.Text = &text
		}
	}
	if draft.Rating != nil {
		rating := entity.ClampRating(*draft.Rating)
		out.Rating = &rating
	}
	if out.Text == nil && out.Rating == nil {
		return out, domainerrors.Validation("Please add a rating or some review text")
	}

	return out, nil
}
