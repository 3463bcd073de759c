package model

// Normalize canonicalizes a board document in place and returns it.
// It is the single entry point for externally supplied boards (initial
// load, import) and backfills everything legacy documents may lack:
// missing collections, collapsed/color/notes defaults, statusChangedAt,
// and time-entry hygiene (canonical dates, 2-decimal rounding, pruning
// of non-positive values). Project and bookmark order is renumbered
// densely in existing relative order.
func Normalize(b *Board) *Board {
	if b.Version == 0 {
		b.Version = SchemaVersion
	}
	if b.Projects == nil {
		b.Projects = []*Project{}
	}
	if b.Cards == nil {
		b.Cards = map[string]*Card{}
	}
	if b.Bookmarks == nil {
		b.Bookmarks = []*Bookmark{}
	}

	ordered := b.SortedProjects()
	for i, p := range ordered {
		p.Order = i
		if p.Color == "" {
			p.Color = DefaultColor
		}
		normalizeColumns(&p.Columns)
	}
	b.Projects = ordered

	for id, c := range b.Cards {
		if c.ID == "" {
			c.ID = id
		}
		if c.Type == "" {
			c.Type = TypeCard
		}
		if c.UpdatedAt.IsZero() {
			c.UpdatedAt = c.CreatedAt
		}
		if c.StatusChangedAt.IsZero() {
			c.StatusChangedAt = c.UpdatedAt
		}
		normalizeEntries(c)
	}

	for i, bm := range b.Bookmarks {
		bm.Order = i
	}
	return b
}

func normalizeColumns(c *Columns) {
	if c.Links == nil {
		c.Links = []string{}
	}
	if c.Backlog == nil {
		c.Backlog = []string{}
	}
	if c.InProgress == nil {
		c.InProgress = []string{}
	}
	if c.OnHold == nil {
		c.OnHold = []string{}
	}
	if c.Complete == nil {
		c.Complete = []string{}
	}
}

// normalizeEntries rewrites entry keys to canonical dates, rounds values
// and drops anything that may not persist. Link cards never carry entries.
func normalizeEntries(c *Card) {
	if c.IsLink() {
		c.TimeEntries = nil
		return
	}
	if len(c.TimeEntries) == 0 {
		return
	}
	clean := make(map[string]float64, len(c.TimeEntries))
	for date, hours := range c.TimeEntries {
		canon := CanonicalDate(date)
		if canon == "" || !ValidHours(hours) {
			continue
		}
		clean[canon] = RoundHours(clean[canon] + RoundHours(hours))
	}
	c.TimeEntries = clean
}
