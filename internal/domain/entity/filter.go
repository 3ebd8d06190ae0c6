package entity

import (
	"encoding/json"
	"slices"
	"time"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	// SortUnset keeps the catalog order.
	SortUnset       SortKey = ""
	SortTitleAsc    SortKey = "titleAsc"
	SortRatingDesc  SortKey = "ratingDesc"
	SortReleaseAsc  SortKey = "releaseAsc"
	SortReleaseDesc SortKey = "releaseDesc"
)

// FacetKind names a filterable attribute dimension.
type FacetKind string

const (
	FacetPlatform FacetKind = "platform"
	FacetGenre    FacetKind = "genre"
)

// StringSet is an unordered set of strings that serializes as a sorted array.
type StringSet map[string]struct{}

// NewStringSet builds a set from the given values.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}

	return s
}

// Has reports whether v is in the set.
func (s StringSet) Has(v string) bool {
	_, ok := s[v]

	return ok
}

// Toggle flips the membership of v and reports whether it is now present.
func (s StringSet) Toggle(v string) bool {
	if s.Has(v) {
		delete(s, v)

		return false
	}
	s[v] = struct{}{}

	return true
}

// Intersects reports whether any of values is in the set.
func (s StringSet) Intersects(values []string) bool {
	for _, v := range values {
		if s.Has(v) {
			return true
		}
	}

	return false
}

// Sorted returns the members in ascending order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// Clone returns an independent copy of the set.
func (s StringSet) Clone() StringSet {
	out := make(StringSet, len(s))
	for v := range s {
		out[v] = struct{}{}
	}

	return out
}

// MarshalJSON encodes the set as a sorted array.
func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of strings into the set.
func (s *StringSet) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = NewStringSet(values...)

	return nil
}

// FilterCriteria is the transient filter state rebuilt from the UI controls.
// Absent or empty fields impose no constraint.
type FilterCriteria struct {
	Query        string     `json:"query"`
	Status       GameStatus `json:"status,omitempty"`
	Platforms    StringSet  `json:"platforms"`
	Genres       StringSet  `json:"genres"`
	MinRating    *float64   `json:"minRating,omitempty"`
	ReleasedFrom *time.Time `json:"releasedFrom,omitempty"` // Start of a calendar day, inclusive.
	ReleasedTo   *time.Time `json:"releasedTo,omitempty"`   // Calendar day, inclusive through its last millisecond.
	Sort         SortKey    `json:"sort,omitempty"`
}

// Clone returns a copy that shares no mutable state with c.
func (c FilterCriteria) Clone() FilterCriteria {
	out := c
	out.Platforms = c.Platforms.Clone()
	out.Genres = c.Genres.Clone()

	return out
}

// HasDateRange reports whether either release date bound is set.
func (c FilterCriteria) HasDateRange() bool {
	return c.ReleasedFrom != nil || c.ReleasedTo != nil
}

// Cleared returns the criteria with every filter reset. The sort key is kept
// because it is not a filter.
func (c FilterCriteria) Cleared() FilterCriteria {
	return FilterCriteria{
		Platforms: StringSet{},
		Genres:    StringSet{},
		Sort:      c.Sort,
	}
}

// Facet returns the selection set for the given facet kind.
func (c FilterCriteria) Facet(kind FacetKind) StringSet {
	if kind == FacetGenre {
		return c.Genres
	}

	return c.Platforms
}
