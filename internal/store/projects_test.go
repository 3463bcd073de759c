package store

import (
	"testing"

	"github.com/dori/ckanban/internal/model"
)

func TestAddProjectDefaults(t *testing.T) {
	s, now := newTestStore()
	s.AddProject("  Alpha  ")

	b := s.Get()
	if len(b.Projects) != 1 {
		t.Fatalf("projects = %d", len(b.Projects))
	}
	p := b.Projects[0]
	if p.Name != "Alpha" {
		t.Errorf("name = %q, want trimmed", p.Name)
	}
	if p.Order != 0 || !p.Collapsed || p.Color != model.DefaultColor {
		t.Errorf("defaults wrong: %+v", p)
	}
	if !p.CreatedAt.Equal(*now) {
		t.Error("createdAt not stamped")
	}
	if p.Columns.Links == nil || p.Columns.Complete == nil {
		t.Error("columns not allocated")
	}
	if p.Notes.UpdatedAt != nil {
		t.Error("fresh project has notes timestamp")
	}

	s.AddProject("Beta")
	if s.Get().Projects[1].Order != 1 {
		t.Error("second project order != 1")
	}
}

func TestDenseOrderAfterDeletes(t *testing.T) {
	s, _ := newTestStore()
	for _, name := range []string{"A", "B", "C", "D"} {
		s.AddProject(name)
	}
	s.DeleteProject(projectByName(s.Get(), "B").ID)

	b := s.Get()
	seen := map[int]bool{}
	for _, p := range b.Projects {
		seen[p.Order] = true
	}
	for i := 0; i < len(b.Projects); i++ {
		if !seen[i] {
			t.Fatalf("order gap at %d: %v", i, seen)
		}
	}
	ordered := b.SortedProjects()
	if ordered[0].Name != "A" || ordered[1].Name != "C" || ordered[2].Name != "D" {
		t.Errorf("relative order broken: %s %s %s", ordered[0].Name, ordered[1].Name, ordered[2].Name)
	}
}

func TestDeleteProjectCascadesCards(t *testing.T) {
	s, _ := newTestStore()
	s.AddProject("Alpha")
	s.AddProject("Beta")
	alpha := projectByName(s.Get(), "Alpha")
	beta := projectByName(s.Get(), "Beta")
	s.AddCard(alpha.ID, "a1")
	s.AddLink(alpha.ID, "l1", "https://example.com")
	s.AddCard(beta.ID, "b1")

	s.DeleteProject(alpha.ID)

	b := s.Get()
	if len(b.Cards) != 1 {
		t.Fatalf("cards = %d, want only beta's card", len(b.Cards))
	}
	for _, c := range b.Cards {
		if c.ProjectID != beta.ID {
			t.Errorf("orphan card survived: %+v", c)
		}
	}
}

func TestReorderProjectsAfterTarget(t *testing.T) {
	s, _ := newTestStore()
	for _, name := range []string{"A", "B", "C"} {
		s.AddProject(name)
	}
	b := s.Get()
	s.ReorderProjects(projectByName(b, "A").ID, projectByName(b, "C").ID, false)

	ordered := s.Get().SortedProjects()
	want := []string{"B", "C", "A"}
	for i, name := range want {
		if ordered[i].Name != name || ordered[i].Order != i {
			t.Fatalf("pos %d = %s(order %d), want %s(%d)", i, ordered[i].Name, ordered[i].Order, name, i)
		}
	}
}

func TestReorderProjectsBeforeTarget(t *testing.T) {
	s, _ := newTestStore()
	for _, name := range []string{"A", "B", "C"} {
		s.AddProject(name)
	}
	b := s.Get()
	s.ReorderProjects(projectByName(b, "C").ID, projectByName(b, "A").ID, true)

	ordered := s.Get().SortedProjects()
	want := []string{"C", "A", "B"}
	for i, name := range want {
		if ordered[i].Name != name {
			t.Fatalf("pos %d = %s, want %s", i, ordered[i].Name, name)
		}
	}
}

func TestReorderProjectsNoops(t *testing.T) {
	s, _ := newTestStore()
	s.AddProject("A")
	s.AddProject("B")
	snap := s.Get()
	a := projectByName(snap, "A").ID

	s.ReorderProjects(a, a, true)
	s.ReorderProjects(a, "missing", true)
	s.ReorderProjects("missing", a, false)
	if s.Get() != snap {
		t.Error("no-op reorder replaced the snapshot")
	}
}

func TestCollapseOperations(t *testing.T) {
	s, _ := newTestStore()
	s.AddProject("A")
	s.AddProject("B")
	a := projectByName(s.Get(), "A").ID

	s.ToggleProjectCollapse(a)
	if projectByName(s.Get(), "A").Collapsed {
		t.Error("toggle did not expand")
	}
	s.SetAllProjectsCollapsed(false)
	for _, p := range s.Get().Projects {
		if p.Collapsed {
			t.Error("setAll(false) left a collapsed project")
		}
	}
	s.SetAllProjectsCollapsed(true)
	for _, p := range s.Get().Projects {
		if !p.Collapsed {
			t.Error("setAll(true) left an expanded project")
		}
	}
}

func TestRenameProject(t *testing.T) {
	s, _ := newTestStore()
	s.AddProject("Old")
	id := s.Get().Projects[0].ID

	s.RenameProject(id, "  New  ")
	if s.Get().Projects[0].Name != "New" {
		t.Errorf("name = %q", s.Get().Projects[0].Name)
	}
	snap := s.Get()
	s.RenameProject(id, "   ")
	if s.Get() != snap {
		t.Error("empty rename was not a cancel")
	}
}

func TestUpdateProjectNotes(t *testing.T) {
	s, now := newTestStore()
	s.AddProject("A")
	id := s.Get().Projects[0].ID

	s.UpdateProjectNotes(id, "remember the milk")
	p := s.Get().Projects[0]
	if p.Notes.Text != "remember the milk" || p.Notes.UpdatedAt == nil || !p.Notes.UpdatedAt.Equal(*now) {
		t.Errorf("notes = %+v", p.Notes)
	}

	// empty text is a valid value, it clears the notes
	s.UpdateProjectNotes(id, "")
	p = s.Get().Projects[0]
	if p.Notes.Text != "" || p.Notes.UpdatedAt == nil {
		t.Errorf("cleared notes = %+v", p.Notes)
	}
}

func TestSetProjectColor(t *testing.T) {
	s, _ := newTestStore()
	s.AddProject("A")
	id := s.Get().Projects[0].ID
	s.SetProjectColor(id, "#ff79c6")
	if s.Get().Projects[0].Color != "#ff79c6" {
		t.Errorf("color = %q", s.Get().Projects[0].Color)
	}
}
