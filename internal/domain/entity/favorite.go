package entity

// FavoriteState is the membership of one game in the user's favorites.
type FavoriteState string

const (
	Favorited    FavoriteState = "favorited"
	NotFavorited FavoriteState = "not_favorited"
)

// FavoriteSet maps game identifiers to the favorited game snapshot, keeping
// the order the backend returned them in.
type FavoriteSet struct {
	games []Game
	ids   map[string]struct{}
}

// NewFavoriteSet builds a set from the favorites list, dropping duplicates
// and games without an identifier.
func NewFavoriteSet(games []Game) FavoriteSet {
	set := FavoriteSet{
		games: make([]Game, 0, len(games)),
		ids:   make(map[string]struct{}, len(games)),
	}
	for _, g := range games {
		if g.ID == "" {
			continue
		}
		if _, dup := set.ids[g.ID]; dup {
			continue
		}
		set.ids[g.ID] = struct{}{}
		set.games = append(set.games, g)
	}

	return set
}

// Has reports whether the game is in the set.
func (s FavoriteSet) Has(gameID string) bool {
	_, ok := s.ids[gameID]

	return ok
}

// Len returns the number of favorited games.
func (s FavoriteSet) Len() int {
	return len(s.games)
}

// Games returns a copy of the favorited games in backend order.
func (s FavoriteSet) Games() []Game {
	out := make([]Game, len(s.games))
	copy(out, s.games)

	return out
}

// With returns a copy of the set that also holds game.
func (s FavoriteSet) With(game Game) FavoriteSet {
	if s.Has(game.ID) {
		return s
	}

	return NewFavoriteSet(append(s.Games(), game))
}

// Without returns a copy of the set lacking the game.
func (s FavoriteSet) Without(gameID string) FavoriteSet {
	if !s.Has(gameID) {
		return s
	}

	games := make([]Game, 0, len(s.games))
	for _, g := range s.games {
		if g.ID != gameID {
			games = append(games, g)
		}
	}

	return NewFavoriteSet(games)
}
