package model

import (
	"sort"
	"time"
)

// CardType distinguishes regular cards from link cards
type CardType string

const (
	TypeCard CardType = "card"
	TypeLink CardType = "link"
)

// Card is a board item. Link cards carry a URL and never track time;
// regular cards may hold per-date hour entries keyed by YYYY-MM-DD.
type Card struct {
	ID              string             `json:"id"`
	ProjectID       string             `json:"projectId"`
	Title           string             `json:"title"`
	Type            CardType           `json:"type"`
	URL             string             `json:"url,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	StatusChangedAt time.Time          `json:"statusChangedAt"`
	TimeEntries     map[string]float64 `json:"timeEntries,omitempty"`
}

// IsLink reports whether the card is a link card
func (c *Card) IsLink() bool {
	return c.Type == TypeLink
}

// TotalHours sums all time entries on the card
func (c *Card) TotalHours() float64 {
	var total float64
	for _, h := range c.TimeEntries {
		total += h
	}
	return RoundHours(total)
}

// HoursOn returns the hours logged on a canonical date, zero if none
func (c *Card) HoursOn(date string) float64 {
	return c.TimeEntries[date]
}

// TimeEntry is a (date, hours) pair surfaced for display
type TimeEntry struct {
	Date  string
	Hours float64
}

// SortedEntries returns the card's time entries sorted by date descending
func (c *Card) SortedEntries() []TimeEntry {
	entries := make([]TimeEntry, 0, len(c.TimeEntries))
	for date, hours := range c.TimeEntries {
		entries = append(entries, TimeEntry{Date: date, Hours: hours})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date > entries[j].Date })
	return entries
}
