package store

import (
	"github.com/dori/ckanban/internal/model"
)

// AddTimeEntry logs hours on a card for a calendar date. Hours for a
// date that already holds an entry accumulate rather than replace.
// Link cards, malformed dates and non-positive hours are rejected.
func (s *Store) AddTimeEntry(cardID, date string, hours float64) {
	canon := model.CanonicalDate(date)
	if canon == "" || !model.ValidHours(hours) {
		return
	}
	s.Update(func(b *model.Board) bool {
		card, ok := b.Cards[cardID]
		if !ok || card.IsLink() {
			return false
		}
		if card.TimeEntries == nil {
			card.TimeEntries = map[string]float64{}
		}
		card.TimeEntries[canon] = model.RoundHours(card.TimeEntries[canon] + model.RoundHours(hours))
		card.UpdatedAt = s.now()
		return true
	})
}

// UpdateTimeEntry edits an existing entry. Same canonical date: the
// hours replace the stored value outright. Date change: the old entry
// is removed and the hours merge into whatever already exists at the
// new date, same as AddTimeEntry.
func (s *Store) UpdateTimeEntry(cardID, oldDate, newDate string, hours float64) {
	newCanon := model.CanonicalDate(newDate)
	if newCanon == "" || !model.ValidHours(hours) {
		return
	}
	oldCanon := model.CanonicalDate(oldDate)
	s.Update(func(b *model.Board) bool {
		card, ok := b.Cards[cardID]
		if !ok || card.IsLink() {
			return false
		}
		if card.TimeEntries == nil {
			card.TimeEntries = map[string]float64{}
		}
		if oldCanon == newCanon {
			card.TimeEntries[newCanon] = model.RoundHours(hours)
		} else {
			delete(card.TimeEntries, oldCanon)
			card.TimeEntries[newCanon] = model.RoundHours(card.TimeEntries[newCanon] + model.RoundHours(hours))
		}
		card.UpdatedAt = s.now()
		return true
	})
}

// DeleteTimeEntry removes the entry for a date if present
func (s *Store) DeleteTimeEntry(cardID, date string) {
	canon := model.CanonicalDate(date)
	if canon == "" {
		return
	}
	s.Update(func(b *model.Board) bool {
		card, ok := b.Cards[cardID]
		if !ok {
			return false
		}
		if _, present := card.TimeEntries[canon]; !present {
			return false
		}
		delete(card.TimeEntries, canon)
		card.UpdatedAt = s.now()
		return true
	})
}
