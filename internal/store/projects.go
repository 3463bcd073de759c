package store

import (
	"strings"

	"github.com/dori/ckanban/internal/model"
)

// AddProject creates a project at the end of the display order.
// A name that trims to empty is ignored.
func (s *Store) AddProject(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	s.Update(func(b *model.Board) bool {
		b.Projects = append(b.Projects, &model.Project{
			ID:        s.newID(),
			Name:      name,
			CreatedAt: s.now(),
			Order:     len(b.Projects),
			Collapsed: true,
			Color:     model.DefaultColor,
			Columns:   model.EmptyColumns(),
		})
		return true
	})
}

// DeleteProject removes a project, cascading over every card its
// columns reference, then renumbers the remaining projects densely.
func (s *Store) DeleteProject(id string) {
	s.Update(func(b *model.Board) bool {
		proj := b.FindProject(id)
		if proj == nil {
			return false
		}
		for _, status := range model.Statuses() {
			for _, cid := range proj.Columns.Get(status) {
				delete(b.Cards, cid)
			}
		}
		remaining := make([]*model.Project, 0, len(b.Projects)-1)
		for _, p := range b.Projects {
			if p.ID != id {
				remaining = append(remaining, p)
			}
		}
		b.Projects = remaining
		b.Projects = b.SortedProjects()
		renumberProjects(b)
		return true
	})
}

// RenameProject trims and applies a new name; an empty result is a cancel
func (s *Store) RenameProject(id, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	s.Update(func(b *model.Board) bool {
		proj := b.FindProject(id)
		if proj == nil {
			return false
		}
		proj.Name = name
		return true
	})
}

// SetProjectColor replaces the project color. Any hex string is accepted.
func (s *Store) SetProjectColor(id, color string) {
	if color == "" {
		return
	}
	s.Update(func(b *model.Board) bool {
		proj := b.FindProject(id)
		if proj == nil {
			return false
		}
		proj.Color = color
		return true
	})
}

// ToggleProjectCollapse flips the collapsed flag of one project
func (s *Store) ToggleProjectCollapse(id string) {
	s.Update(func(b *model.Board) bool {
		proj := b.FindProject(id)
		if proj == nil {
			return false
		}
		proj.Collapsed = !proj.Collapsed
		return true
	})
}

// SetAllProjectsCollapsed sets the collapsed flag on every project
func (s *Store) SetAllProjectsCollapsed(collapsed bool) {
	s.Update(func(b *model.Board) bool {
		if len(b.Projects) == 0 {
			return false
		}
		for _, p := range b.Projects {
			p.Collapsed = collapsed
		}
		return true
	})
}

// UpdateProjectNotes replaces the notes text and stamps its timestamp.
// Empty text is a valid value and clears the notes.
func (s *Store) UpdateProjectNotes(id, text string) {
	s.Update(func(b *model.Board) bool {
		proj := b.FindProject(id)
		if proj == nil {
			return false
		}
		now := s.now()
		proj.Notes.Text = text
		proj.Notes.UpdatedAt = &now
		return true
	})
}

// ReorderProjects moves the dragged project immediately before or after
// the target project. The dragged project is removed from the ordered
// sequence before the target's index is looked up, so the insertion
// point is correct even when the drag crosses the target.
func (s *Store) ReorderProjects(dragID, targetID string, insertBefore bool) {
	if dragID == targetID {
		return
	}
	s.Update(func(b *model.Board) bool {
		ordered := b.SortedProjects()
		dragIdx := indexOfProject(ordered, dragID)
		if dragIdx == -1 || indexOfProject(ordered, targetID) == -1 {
			return false
		}
		drag := ordered[dragIdx]
		ordered = append(ordered[:dragIdx], ordered[dragIdx+1:]...)

		targetIdx := indexOfProject(ordered, targetID)
		insertAt := targetIdx
		if !insertBefore {
			insertAt = targetIdx + 1
		}
		ordered = append(ordered, nil)
		copy(ordered[insertAt+1:], ordered[insertAt:])
		ordered[insertAt] = drag

		b.Projects = ordered
		renumberProjects(b)
		return true
	})
}

func indexOfProject(projects []*model.Project, id string) int {
	for i, p := range projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// renumberProjects assigns dense 0..N-1 order in current slice order
func renumberProjects(b *model.Board) {
	for i, p := range b.Projects {
		p.Order = i
	}
}
