// Package catalog holds the pure functions deriving views from the game
// catalog: filtering, sorting, facet vocabularies and counters.
package catalog

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"vgb/internal/domain/entity"
)

// Filter returns the games matching every set criterion, ordered by the
// criteria's sort key. The input slice is not modified. Criteria fields that
// are empty or absent impose no constraint.
func Filter(games []entity.Game, criteria entity.FilterCriteria) []entity.Game {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))
	from, to := dateBounds(criteria)

	out := make([]entity.Game, 0, len(games))
	for _, g := range games {
		if query != "" && !matchesQuery(g, query) {
			continue
		}
		if criteria.Status != "" && g.Status != criteria.Status {
			continue
		}
		if len(criteria.Platforms) > 0 && !criteria.Platforms.Intersects(g.Platforms) {
			continue
		}
		if len(criteria.Genres) > 0 && !criteria.Genres.Intersects(g.Genres) {
			continue
		}
		if criteria.MinRating != nil && g.AverageRating < *criteria.MinRating {
			continue
		}
		if criteria.HasDateRange() && !withinRange(g, from, to) {
			continue
		}
		out = append(out, g)
	}

	Sort(out, criteria.Sort)

	return out
}

// Sort orders games in place. Ties keep their prior relative order; an
// unset or unknown key leaves the slice untouched.
func Sort(games []entity.Game, key entity.SortKey) {
	var compare func(a, b entity.Game) int

	switch key {
	case entity.SortTitleAsc:
		compare = func(a, b entity.Game) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case entity.SortRatingDesc:
		compare = func(a, b entity.Game) int {
			return cmp.Compare(b.AverageRating, a.AverageRating)
		}
	case entity.SortReleaseAsc:
		compare = func(a, b entity.Game) int {
			return cmp.Compare(releaseMillis(a), releaseMillis(b))
		}
	case entity.SortReleaseDesc:
		compare = func(a, b entity.Game) int {
			return cmp.Compare(releaseMillis(b), releaseMillis(a))
		}
	default:
		return
	}

	slices.SortStableFunc(games, compare)
}

// EndOfDay returns the last millisecond of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func matchesQuery(g entity.Game, query string) bool {
	return strings.Contains(strings.ToLower(g.Title), query) ||
		strings.Contains(strings.ToLower(g.Description), query)
}

// dateBounds resolves the inclusive range; a zero time means "unbounded".
func dateBounds(criteria entity.FilterCriteria) (from, to time.Time) {
	if criteria.ReleasedFrom != nil {
		from = *criteria.ReleasedFrom
	}
	if criteria.ReleasedTo != nil {
		to = EndOfDay(*criteria.ReleasedTo)
	}

	return from, to
}

// withinRange fails games without a release date: there is nothing to compare.
func withinRange(g entity.Game, from, to time.Time) bool {
	if !g.HasReleaseDate() {
		return false
	}
	release := *g.ReleaseDate
	if !from.IsZero() && release.Before(from) {
		return false
	}
	if !to.IsZero() && release.After(to) {
		return false
	}

	return true
}

// releaseMillis treats a missing date as the epoch so such games sort to an end.
func releaseMillis(g entity.Game) int64 {
	if !g.HasReleaseDate() {
		return 0
	}

	return g.ReleaseDate.UnixMilli()
}
