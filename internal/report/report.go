// Package report holds the read-only daily review queries. Everything
// here is a pure function over a board snapshot; nothing mutates state.
package report

import (
	"sort"

	"github.com/dori/ckanban/internal/model"
)

// Activity groups the cards whose status last changed on a given
// calendar date, keyed by the column the card currently sits in
type Activity struct {
	Date    string
	ByState map[model.Status][]*model.Card
	Total   int
}

// ActivityOn reports the cards whose statusChangedAt falls on date.
// The links column is excluded; link cards never count as activity.
func ActivityOn(b *model.Board, date string) Activity {
	canon := model.CanonicalDate(date)
	act := Activity{Date: canon, ByState: map[model.Status][]*model.Card{}}
	if canon == "" {
		return act
	}
	for _, p := range b.SortedProjects() {
		for _, status := range model.Statuses() {
			if status == model.StatusLinks {
				continue
			}
			for _, id := range p.Columns.Get(status) {
				card, ok := b.Cards[id]
				if !ok || card.IsLink() {
					continue
				}
				if changedAt := card.StatusChangedAt; !changedAt.IsZero() && model.DateOf(changedAt) == canon {
					act.ByState[status] = append(act.ByState[status], card)
					act.Total++
				}
			}
		}
	}
	return act
}

// CardHours pairs a card with the hours it logged on a date
type CardHours struct {
	Card  *model.Card
	Hours float64
}

// DailyHours is the hours review for one calendar date
type DailyHours struct {
	Date  string
	Cards []CardHours
	Total float64
}

// HoursOn reports every card with a non-zero time entry on date,
// sorted by hours descending, with the day's total.
func HoursOn(b *model.Board, date string) DailyHours {
	canon := model.CanonicalDate(date)
	day := DailyHours{Date: canon}
	if canon == "" {
		return day
	}
	for _, card := range b.Cards {
		if h := card.HoursOn(canon); h > 0 {
			day.Cards = append(day.Cards, CardHours{Card: card, Hours: h})
			day.Total += h
		}
	}
	day.Total = model.RoundHours(day.Total)
	sort.Slice(day.Cards, func(i, j int) bool {
		if day.Cards[i].Hours != day.Cards[j].Hours {
			return day.Cards[i].Hours > day.Cards[j].Hours
		}
		return day.Cards[i].Card.ID < day.Cards[j].Card.ID
	})
	return day
}
