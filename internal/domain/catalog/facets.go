package catalog

import (
	"slices"

	"vgb/internal/domain/entity"
)

// BuildFacets collects the distinct platform and genre values of the catalog,
// each sorted ascending.
func BuildFacets(games []entity.Game) entity.Facets {
	platforms := entity.StringSet{}
	genres := entity.StringSet{}
	for _, g := range games {
		addAll(platforms, g.Platforms)
		addAll(genres, g.Genres)
	}

	return entity.Facets{
		Platforms: platforms.Sorted(),
		Genres:    genres.Sorted(),
	}
}

// Chips pairs a vocabulary with the current selection.
func Chips(vocabulary []string, selected entity.StringSet) []entity.FacetChip {
	chips := make([]entity.FacetChip, 0, len(vocabulary))
	for _, v := range vocabulary {
		chips = append(chips, entity.FacetChip{Value: v, Selected: selected.Has(v)})
	}

	return chips
}

// Stats counts the catalog for the header.
func Stats(games []entity.Game) entity.CatalogStats {
	stats := entity.CatalogStats{Total: len(games)}
	for _, g := range games {
		switch g.Status {
		case entity.StatusUpcoming:
			stats.Upcoming++
		case entity.StatusReleased:
			stats.Released++
		}
	}

	return stats
}

// SortedByTitle returns a title-ordered copy, as the admin list shows it.
func SortedByTitle(games []entity.Game) []entity.Game {
	out := slices.Clone(games)
	Sort(out, entity.SortTitleAsc)

	return out
}

func addAll(set entity.StringSet, values []string) {
	for _, v := range values {
		if v != "" {
			set[v] = struct{}{}
		}
	}
}
