package model

import (
	"sort"
	"time"
)

// SchemaVersion is the board document schema version
const SchemaVersion = 1

// DefaultColor is the sentinel color assigned to new projects
const DefaultColor = "#6272a4"

// Board is the single root document: all projects, cards and bookmarks.
// Exactly one Board exists per installation; it is the sole unit of
// persistence and the sole subject of every mutation.
type Board struct {
	Version      int              `json:"version"`
	Projects     []*Project       `json:"projects"`
	Cards        map[string]*Card `json:"cards"`
	Bookmarks    []*Bookmark      `json:"bookmarks"`
	LastModified time.Time        `json:"lastModified"`
}

// NewBoard returns an empty board document
func NewBoard() *Board {
	return &Board{
		Version:      SchemaVersion,
		Projects:     []*Project{},
		Cards:        map[string]*Card{},
		Bookmarks:    []*Bookmark{},
		LastModified: time.Now(),
	}
}

// Project is a named row of five columns. Columns hold card ids only;
// the card records themselves live in Board.Cards.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Order     int       `json:"order"`
	Collapsed bool      `json:"collapsed"`
	Color     string    `json:"color,omitempty"`
	Columns   Columns   `json:"columns"`
	Notes     Notes     `json:"notes"`
}

// Notes is free-form project text; UpdatedAt is nil until first edited
type Notes struct {
	Text      string     `json:"text"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Columns holds the ordered card ids of each status bucket
type Columns struct {
	Links      []string `json:"links"`
	Backlog    []string `json:"backlog"`
	InProgress []string `json:"inProgress"`
	OnHold     []string `json:"onHold"`
	Complete   []string `json:"complete"`
}

// EmptyColumns returns a Columns value with all five buckets allocated
func EmptyColumns() Columns {
	return Columns{
		Links:      []string{},
		Backlog:    []string{},
		InProgress: []string{},
		OnHold:     []string{},
		Complete:   []string{},
	}
}

// Get returns the id slice for a status; nil for an unknown status
func (c *Columns) Get(s Status) []string {
	switch s {
	case StatusLinks:
		return c.Links
	case StatusBacklog:
		return c.Backlog
	case StatusInProgress:
		return c.InProgress
	case StatusOnHold:
		return c.OnHold
	case StatusComplete:
		return c.Complete
	}
	return nil
}

// Set replaces the id slice for a status
func (c *Columns) Set(s Status, ids []string) {
	switch s {
	case StatusLinks:
		c.Links = ids
	case StatusBacklog:
		c.Backlog = ids
	case StatusInProgress:
		c.InProgress = ids
	case StatusOnHold:
		c.OnHold = ids
	case StatusComplete:
		c.Complete = ids
	}
}

// Bookmark is a standalone saved link, ordered densely like projects
type Bookmark struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	Order     int       `json:"order"`
}

// FindProject returns the project with the given id, or nil
func (b *Board) FindProject(id string) *Project {
	for _, p := range b.Projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// SortedProjects returns the projects ordered by their Order field.
// The returned slice is fresh; the elements are shared.
func (b *Board) SortedProjects() []*Project {
	out := make([]*Project, len(b.Projects))
	copy(out, b.Projects)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
