package store

import (
	"strings"

	"github.com/dori/ckanban/internal/model"
)

// AddBookmark appends a bookmark at the end of the bookmark order
func (s *Store) AddBookmark(name, url string) {
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" || url == "" {
		return
	}
	s.Update(func(b *model.Board) bool {
		b.Bookmarks = append(b.Bookmarks, &model.Bookmark{
			ID:        s.newID(),
			Title:     name,
			URL:       url,
			CreatedAt: s.now(),
			Order:     len(b.Bookmarks),
		})
		return true
	})
}

// DeleteBookmark removes a bookmark and renumbers the rest densely
func (s *Store) DeleteBookmark(id string) {
	s.Update(func(b *model.Board) bool {
		kept := make([]*model.Bookmark, 0, len(b.Bookmarks))
		for _, bm := range b.Bookmarks {
			if bm.ID != id {
				kept = append(kept, bm)
			}
		}
		if len(kept) == len(b.Bookmarks) {
			return false
		}
		for i, bm := range kept {
			bm.Order = i
		}
		b.Bookmarks = kept
		return true
	})
}
