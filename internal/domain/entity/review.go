package entity

import "time"

const (
	// MinRating is the lowest star rating a review may carry.
	MinRating = 1
	// MaxRating is the highest star rating a review may carry.
	MaxRating = 5
)

// ReviewAuthor identifies the user who wrote a review. The backend sends
// either a bare identifier or an embedded profile; Username is empty in the
// former case.
type ReviewAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Review is a user's rating and/or text for one game.
type Review struct {
	ID        string       `json:"id"`
	GameID    string       `json:"gameId"`
	Author    ReviewAuthor `json:"author"`
	Rating    *int         `json:"rating,omitempty"`
	Text      string       `json:"text,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// WrittenBy reports whether the review belongs to the given user.
func (r Review) WrittenBy(userID string) bool {
	return userID != "" && r.Author.ID == userID
}

// ReviewDraft is the payload of a create or edit request. At least one of
// Text and Rating must be present.
type ReviewDraft struct {
	Text   *string `json:"text,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

// ClampRating bounds a star rating to [MinRating, MaxRating].
func ClampRating(rating int) int {
	return max(MinRating, min(MaxRating, rating))
}

// ModerationEntry is a review listed in the admin moderation queue together
// with the title of the game it belongs to.
type ModerationEntry struct {
	Review    Review `json:"review"`
	GameTitle string `json:"gameTitle"`
}
