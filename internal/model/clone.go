package model

// Clone returns a deep copy of the board. Mutations always operate on a
// clone and publish it as the new snapshot, so observers holding an older
// snapshot never see it change underneath them.
func (b *Board) Clone() *Board {
	out := &Board{
		Version:      b.Version,
		Projects:     make([]*Project, len(b.Projects)),
		Cards:        make(map[string]*Card, len(b.Cards)),
		Bookmarks:    make([]*Bookmark, len(b.Bookmarks)),
		LastModified: b.LastModified,
	}
	for i, p := range b.Projects {
		out.Projects[i] = p.clone()
	}
	for id, c := range b.Cards {
		out.Cards[id] = c.clone()
	}
	for i, bm := range b.Bookmarks {
		cp := *bm
		out.Bookmarks[i] = &cp
	}
	return out
}

func (p *Project) clone() *Project {
	cp := *p
	cp.Columns = Columns{
		Links:      append([]string{}, p.Columns.Links...),
		Backlog:    append([]string{}, p.Columns.Backlog...),
		InProgress: append([]string{}, p.Columns.InProgress...),
		OnHold:     append([]string{}, p.Columns.OnHold...),
		Complete:   append([]string{}, p.Columns.Complete...),
	}
	if p.Notes.UpdatedAt != nil {
		t := *p.Notes.UpdatedAt
		cp.Notes.UpdatedAt = &t
	}
	return &cp
}

func (c *Card) clone() *Card {
	cp := *c
	if c.TimeEntries != nil {
		cp.TimeEntries = make(map[string]float64, len(c.TimeEntries))
		for date, hours := range c.TimeEntries {
			cp.TimeEntries[date] = hours
		}
	}
	return &cp
}
