package catalog

import (
	"testing"
	"time"

	"vgb/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}

	return &t
}

func ratingPtr(v float64) *float64 { return &v }

func titles(games []entity.Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.Title)
	}

	return out
}

func scenarioCatalog() []entity.Game {
	return []entity.Game{
		{ID: "a", Title: "Alpha", Status: entity.StatusReleased, ReleaseDate: date("2024-01-01"), AverageRating: 4.5},
		{ID: "b", Title: "Beta", Status: entity.StatusUpcoming, ReleaseDate: date("2024-06-01"), AverageRating: 0},
	}
}

func sampleCatalog() []entity.Game {
	return []entity.Game{
		{ID: "1", Title: "Stellar Drift", Description: "Space racing", Status: entity.StatusReleased,
			ReleaseDate: date("2023-03-10"), Platforms: []string{"PC", "PS5"}, Genres: []string{"Racing"}, AverageRating: 3.9},
		{ID: "2", Title: "Moss Garden", Description: "A calm puzzle about gardens", Status: entity.StatusUpcoming,
			ReleaseDate: date("2025-09-01"), Platforms: []string{"Switch"}, Genres: []string{"Puzzle"}, AverageRating: 0},
		{ID: "3", Title: "iron tide", Description: "Naval STRATEGY", Status: entity.StatusReleased,
			Platforms: []string{"PC"}, Genres: []string{"Strategy"}, AverageRating: 4.7},
		{ID: "4", Title: "Echo Vale", Description: "", Status: entity.StatusCancelled,
			ReleaseDate: date("2024-12-24"), Platforms: []string{"Xbox"}, Genres: []string{"RPG", "Puzzle"}, AverageRating: 2.1},
	}
}

func TestFilter_EmptyCriteriaIsIdentity(t *testing.T) {
	games := sampleCatalog()

	got := Filter(games, entity.FilterCriteria{})

	assert.Equal(t, games, got)
}

func TestFilter_Scenarios(t *testing.T) {
	games := scenarioCatalog()

	released := Filter(games, entity.FilterCriteria{Status: entity.StatusReleased})
	assert.Equal(t, []string{"Alpha"}, titles(released))

	byRating := Filter(games, entity.FilterCriteria{Sort: entity.SortRatingDesc})
	assert.Equal(t, []string{"Alpha", "Beta"}, titles(byRating))
}

func TestFilter_Predicates(t *testing.T) {
	games := sampleCatalog()

	tests := []struct {
		name     string
		criteria entity.FilterCriteria
		want     []string
	}{
		{
			name:     "query matches title case-insensitively",
			criteria: entity.FilterCriteria{Query: "  IRON "},
			want:     []string{"iron tide"},
		},
		{
			name:     "query matches description substring",
			criteria: entity.FilterCriteria{Query: "garden"},
			want:     []string{"Moss Garden"},
		},
		{
			name:     "platform facet uses OR semantics",
			criteria: entity.FilterCriteria{Platforms: entity.NewStringSet("PS5", "Xbox")},
			want:     []string{"Stellar Drift", "Echo Vale"},
		},
		{
			name:     "genre facet intersects multi-valued genres",
			criteria: entity.FilterCriteria{Genres: entity.NewStringSet("Puzzle")},
			want:     []string{"Moss Garden", "Echo Vale"},
		},
		{
			name:     "empty facet selection imposes nothing",
			criteria: entity.FilterCriteria{Platforms: entity.StringSet{}, Genres: entity.StringSet{}},
			want:     []string{"Stellar Drift", "Moss Garden", "iron tide", "Echo Vale"},
		},
		{
			name:     "minimum rating treats missing as zero",
			criteria: entity.FilterCriteria{MinRating: ratingPtr(3.9)},
			want:     []string{"Stellar Drift", "iron tide"},
		},
		{
			name:     "facets AND with status",
			criteria: entity.FilterCriteria{Status: entity.StatusReleased, Platforms: entity.NewStringSet("PC")},
			want:     []string{"Stellar Drift", "iron tide"},
		},
		{
			name:     "title sort is case-insensitive",
			criteria: entity.FilterCriteria{Sort: entity.SortTitleAsc},
			want:     []string{"Echo Vale", "iron tide", "Moss Garden", "Stellar Drift"},
		},
		{
			name:     "release ascending puts undated games first",
			criteria: entity.FilterCriteria{Sort: entity.SortReleaseAsc},
			want:     []string{"iron tide", "Stellar Drift", "Echo Vale", "Moss Garden"},
		},
		{
			name:     "release descending puts undated games last",
			criteria: entity.FilterCriteria{Sort: entity.SortReleaseDesc},
			want:     []string{"Moss Garden", "Echo Vale", "Stellar Drift", "iron tide"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(Filter(games, tt.criteria)))
		})
	}
}

func TestFilter_PlatformExclusion(t *testing.T) {
	games := sampleCatalog()
	selected := entity.NewStringSet("Switch")

	for _, g := range Filter(games, entity.FilterCriteria{Platforms: selected}) {
		assert.True(t, selected.Intersects(g.Platforms), "game %s should share a platform", g.Title)
	}
	for _, g := range games {
		if !selected.Intersects(g.Platforms) {
			assert.NotContains(t, titles(Filter(games, entity.FilterCriteria{Platforms: selected})), g.Title)
		}
	}
}

func TestFilter_DateRangeExcludesUndatedGames(t *testing.T) {
	games := []entity.Game{
		{ID: "x", Title: "Undated"},
		{ID: "y", Title: "Dated", ReleaseDate: date("2024-05-05")},
	}

	bounds := []entity.FilterCriteria{
		{ReleasedFrom: date("1970-01-01")},
		{ReleasedTo: date("2999-12-31")},
		{ReleasedFrom: date("1970-01-01"), ReleasedTo: date("2999-12-31")},
	}
	for _, c := range bounds {
		assert.Equal(t, []string{"Dated"}, titles(Filter(games, c)))
	}
}

func TestFilter_UpperBoundIncludesWholeDay(t *testing.T) {
	late := time.Date(2024, 3, 15, 23, 59, 59, int(500*time.Millisecond), time.Local)
	next := time.Date(2024, 3, 16, 0, 0, 0, 0, time.Local)
	games := []entity.Game{
		{ID: "late", Title: "Late", ReleaseDate: &late},
		{ID: "next", Title: "Next", ReleaseDate: &next},
	}
	to := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	from := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)

	got := Filter(games, entity.FilterCriteria{ReleasedFrom: &from, ReleasedTo: &to})

	require.Len(t, got, 1)
	assert.Equal(t, "Late", got[0].Title)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	games := sampleCatalog()
	before := titles(games)

	_ = Filter(games, entity.FilterCriteria{Sort: entity.SortTitleAsc})

	assert.Equal(t, before, titles(games))
}

func TestBuildFacetsAndStats(t *testing.T) {
	games := sampleCatalog()

	facets := BuildFacets(games)
	assert.Equal(t, []string{"PC", "PS5", "Switch", "Xbox"}, facets.Platforms)
	assert.Equal(t, []string{"Puzzle", "RPG", "Racing", "Strategy"}, facets.Genres)

	stats := Stats(games)
	assert.Equal(t, entity.CatalogStats{Total: 4, Upcoming: 1, Released: 2}, stats)

	chips := Chips(facets.Platforms, entity.NewStringSet("PS5"))
	assert.Equal(t, entity.FacetChip{Value: "PS5", Selected: true}, chips[1])
	assert.False(t, chips[0].Selected)
}
