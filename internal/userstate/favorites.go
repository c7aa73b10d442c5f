// Package userstate holds the three per-profile state services: favorites,
// the compare list and the mock session. Each owns its own persistence
// boundary; none of them know about HTTP.
package userstate

import (
	"context"

	"github.com/nestfinder/browse-api/internal/prefstore"
)

// FavoritesKey is the stored payload name, a JSON array of listing ids.
const FavoritesKey = "nest_finder_favorites"

// Favorites tracks which listing ids the profile has marked. The set is
// loaded once at construction; a corrupt or absent payload starts empty.
type Favorites struct {
	store prefstore.Store
	ids   []string
	index map[string]bool
}

func NewFavorites(ctx context.Context, store prefstore.Store) *Favorites {
	f := &Favorites{store: store, index: make(map[string]bool)}
	var ids []string
	if prefstore.ReadJSON(ctx, store, FavoritesKey, &ids) {
		for _, id := range ids {
			if !f.index[id] {
				f.index[id] = true
				f.ids = append(f.ids, id)
			}
		}
	}
	return f
}

// Toggle adds the id if absent and removes it if present, persisting the
// new set before committing it to memory. Calling twice restores the
// original state.
func (f *Favorites) Toggle(ctx context.Context, id string) (nowFavorite bool, err error) {
	var next []string
	if f.index[id] {
		next = make([]string, 0, len(f.ids)-1)
		for _, v := range f.ids {
			if v != id {
				next = append(next, v)
			}
		}
		nowFavorite = false
	} else {
		next = append(append([]string(nil), f.ids...), id)
		nowFavorite = true
	}
	if err := prefstore.WriteJSON(ctx, f.store, FavoritesKey, next); err != nil {
		return f.index[id], err
	}
	f.ids = next
	f.index[id] = nowFavorite
	if !nowFavorite {
		delete(f.index, id)
	}
	return nowFavorite, nil
}

func (f *Favorites) IsFavorite(id string) bool { return f.index[id] }

func (f *Favorites) Count() int { return len(f.ids) }

// IDs returns the favorite listing ids in the order they were added.
func (f *Favorites) IDs() []string { return append([]string(nil), f.ids...) }

// Clear empties the set and drops the persisted payload.
func (f *Favorites) Clear(ctx context.Context) error {
	if err := f.store.Remove(ctx, FavoritesKey); err != nil {
		return err
	}
	f.ids = nil
	f.index = make(map[string]bool)
	return nil
}
