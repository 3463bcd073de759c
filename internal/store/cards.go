package store

import (
	"strings"

	"github.com/dori/ckanban/internal/model"
)

// AddCard creates a regular card at the end of the project's backlog
func (s *Store) AddCard(projectID, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	s.Update(func(b *model.Board) bool {
		proj := b.FindProject(projectID)
		if proj == nil {
			return false
		}
		now := s.now()
		id := s.newID()
		b.Cards[id] = &model.Card{
			ID:              id,
			ProjectID:       projectID,
			Title:           title,
			Type:            model.TypeCard,
			CreatedAt:       now,
			UpdatedAt:       now,
			StatusChangedAt: now,
			TimeEntries:     map[string]float64{},
		}
		proj.Columns.Backlog = append(proj.Columns.Backlog, id)
		return true
	})
}

// AddLink creates a link card at the end of the project's links column
func (s *Store) AddLink(projectID, name, url string) {
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" || url == "" {
		return
	}
	s.Update(func(b *model.Board) bool {
		proj := b.FindProject(projectID)
		if proj == nil {
			return false
		}
		now := s.now()
		id := s.newID()
		b.Cards[id] = &model.Card{
			ID:              id,
			ProjectID:       projectID,
			Title:           name,
			Type:            model.TypeLink,
			URL:             url,
			CreatedAt:       now,
			UpdatedAt:       now,
			StatusChangedAt: now,
		}
		proj.Columns.Links = append(proj.Columns.Links, id)
		return true
	})
}

// DeleteCard removes the card from whichever column holds it and drops
// the card record
func (s *Store) DeleteCard(cardID string) {
	s.Update(func(b *model.Board) bool {
		card, ok := b.Cards[cardID]
		if !ok {
			return false
		}
		proj := b.FindProject(card.ProjectID)
		if proj == nil {
			return false
		}
		for _, status := range model.Statuses() {
			proj.Columns.Set(status, removeID(proj.Columns.Get(status), cardID))
		}
		delete(b.Cards, cardID)
		return true
	})
}

// EditCard replaces the title; statusChangedAt is left alone
func (s *Store) EditCard(cardID, newTitle string) {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return
	}
	s.Update(func(b *model.Board) bool {
		card, ok := b.Cards[cardID]
		if !ok {
			return false
		}
		card.Title = newTitle
		card.UpdatedAt = s.now()
		return true
	})
}

// MoveCard removes the card id from the source column and inserts it
// into the destination column at targetIndex, clamped to the valid
// range; any index outside [0, len] appends. Both updatedAt and
// statusChangedAt are stamped on every move, including a reorder within
// the same column — this is the only operation that touches
// statusChangedAt.
func (s *Store) MoveCard(cardID, projectID string, from, to model.Status, targetIndex int) {
	if !from.Valid() || !to.Valid() {
		return
	}
	s.Update(func(b *model.Board) bool {
		proj := b.FindProject(projectID)
		if proj == nil {
			return false
		}
		card, ok := b.Cards[cardID]
		if !ok {
			return false
		}
		fromIDs := proj.Columns.Get(from)
		srcIdx := -1
		for i, id := range fromIDs {
			if id == cardID {
				srcIdx = i
				break
			}
		}
		if srcIdx == -1 {
			return false
		}
		proj.Columns.Set(from, append(fromIDs[:srcIdx], fromIDs[srcIdx+1:]...))

		toIDs := proj.Columns.Get(to)
		insertAt := targetIndex
		if insertAt < 0 || insertAt > len(toIDs) {
			insertAt = len(toIDs)
		}
		toIDs = append(toIDs, "")
		copy(toIDs[insertAt+1:], toIDs[insertAt:])
		toIDs[insertAt] = cardID
		proj.Columns.Set(to, toIDs)

		now := s.now()
		card.UpdatedAt = now
		card.StatusChangedAt = now
		return true
	})
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
