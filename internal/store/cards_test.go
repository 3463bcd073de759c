package store

import (
	"testing"
	"time"

	"github.com/dori/ckanban/internal/model"
)

func setupProjectWithCards(t *testing.T) (*Store, *time.Time, *model.Project, []string) {
	t.Helper()
	s, now := newTestStore()
	s.AddProject("Alpha")
	proj := s.Get().Projects[0]
	for _, title := range []string{"one", "two", "three"} {
		s.AddCard(proj.ID, title)
	}
	b := s.Get()
	proj = b.Projects[0]
	ids := append([]string{}, proj.Columns.Backlog...)
	return s, now, proj, ids
}

// checkPartition verifies that every card id appears in exactly one
// column of exactly one project and that ownership matches.
func checkPartition(t *testing.T, b *model.Board) {
	t.Helper()
	seen := map[string]string{}
	for _, p := range b.Projects {
		for _, status := range model.Statuses() {
			for _, id := range p.Columns.Get(status) {
				if prior, dup := seen[id]; dup {
					t.Fatalf("card %s appears in %s and %s/%s", id, prior, p.ID, status)
				}
				seen[id] = p.ID + "/" + string(status)
				card, ok := b.Cards[id]
				if !ok {
					t.Fatalf("column references missing card %s", id)
				}
				if card.ProjectID != p.ID {
					t.Fatalf("card %s owned by %s but referenced by %s", id, card.ProjectID, p.ID)
				}
			}
		}
	}
	if len(seen) != len(b.Cards) {
		t.Fatalf("%d cards referenced, %d records", len(seen), len(b.Cards))
	}
}

func TestAddCardAppendsToBacklog(t *testing.T) {
	s, now, proj, ids := setupProjectWithCards(t)
	if len(ids) != 3 {
		t.Fatalf("backlog = %v", ids)
	}
	b := s.Get()
	card := b.Cards[ids[0]]
	if card.Type != model.TypeCard || card.ProjectID != proj.ID {
		t.Errorf("card = %+v", card)
	}
	if !card.CreatedAt.Equal(*now) || !card.UpdatedAt.Equal(*now) || !card.StatusChangedAt.Equal(*now) {
		t.Error("timestamps not stamped to now")
	}
	if card.TimeEntries == nil {
		t.Error("card has no time entry map")
	}
	checkPartition(t, b)
}

func TestAddLinkAppendsToLinks(t *testing.T) {
	s, _ := newTestStore()
	s.AddProject("Alpha")
	proj := s.Get().Projects[0]
	s.AddLink(proj.ID, "repo", "https://example.com/repo")
	s.AddLink(proj.ID, "  ", "https://example.com")
	s.AddLink(proj.ID, "name", "  ")

	b := s.Get()
	links := b.Projects[0].Columns.Links
	if len(links) != 1 {
		t.Fatalf("links = %v", links)
	}
	card := b.Cards[links[0]]
	if !card.IsLink() || card.URL != "https://example.com/repo" {
		t.Errorf("link card = %+v", card)
	}
	if card.TimeEntries != nil {
		t.Error("link card carries time entries")
	}
}

func TestMoveCardAcrossColumns(t *testing.T) {
	s, now, proj, ids := setupProjectWithCards(t)
	*now = now.Add(time.Hour)
	s.MoveCard(ids[1], proj.ID, model.StatusBacklog, model.StatusInProgress, 0)

	b := s.Get()
	p := b.Projects[0]
	if len(p.Columns.Backlog) != 2 || len(p.Columns.InProgress) != 1 {
		t.Fatalf("backlog=%v inProgress=%v", p.Columns.Backlog, p.Columns.InProgress)
	}
	if p.Columns.InProgress[0] != ids[1] {
		t.Errorf("wrong card moved: %v", p.Columns.InProgress)
	}
	card := b.Cards[ids[1]]
	if !card.UpdatedAt.Equal(*now) || !card.StatusChangedAt.Equal(*now) {
		t.Error("move did not stamp both timestamps")
	}
	checkPartition(t, b)
}

func TestMoveCardSameColumnReorderStampsStatusChangedAt(t *testing.T) {
	s, now, proj, ids := setupProjectWithCards(t)
	*now = now.Add(time.Hour)
	s.MoveCard(ids[2], proj.ID, model.StatusBacklog, model.StatusBacklog, 0)

	b := s.Get()
	got := b.Projects[0].Columns.Backlog
	want := []string{ids[2], ids[0], ids[1]}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("backlog = %v, want %v", got, want)
		}
	}
	card := b.Cards[ids[2]]
	if !card.StatusChangedAt.Equal(*now) {
		t.Error("same-column reorder must stamp statusChangedAt")
	}
	checkPartition(t, b)
}

func TestMoveCardClampsTargetIndex(t *testing.T) {
	s, _, proj, ids := setupProjectWithCards(t)
	// out-of-range appends
	s.MoveCard(ids[0], proj.ID, model.StatusBacklog, model.StatusBacklog, 99)
	got := s.Get().Projects[0].Columns.Backlog
	if got[len(got)-1] != ids[0] {
		t.Errorf("index 99 did not append: %v", got)
	}
	s.MoveCard(ids[0], proj.ID, model.StatusBacklog, model.StatusOnHold, -1)
	onHold := s.Get().Projects[0].Columns.OnHold
	if len(onHold) != 1 || onHold[0] != ids[0] {
		t.Errorf("negative index did not append: %v", onHold)
	}
}

func TestMoveCardInvalidInputsNoop(t *testing.T) {
	s, _, proj, ids := setupProjectWithCards(t)
	snap := s.Get()

	s.MoveCard(ids[0], proj.ID, model.Status("bogus"), model.StatusComplete, 0)
	s.MoveCard(ids[0], proj.ID, model.StatusBacklog, model.Status("bogus"), 0)
	s.MoveCard(ids[0], "missing", model.StatusBacklog, model.StatusComplete, 0)
	s.MoveCard("missing", proj.ID, model.StatusBacklog, model.StatusComplete, 0)
	// card exists but not in the claimed source column
	s.MoveCard(ids[0], proj.ID, model.StatusOnHold, model.StatusComplete, 0)

	if s.Get() != snap {
		t.Error("invalid move replaced the snapshot")
	}
}

func TestEditCardLeavesStatusChangedAt(t *testing.T) {
	s, now, _, ids := setupProjectWithCards(t)
	statusStamp := s.Get().Cards[ids[0]].StatusChangedAt

	*now = now.Add(time.Hour)
	s.EditCard(ids[0], "  renamed  ")

	card := s.Get().Cards[ids[0]]
	if card.Title != "renamed" {
		t.Errorf("title = %q", card.Title)
	}
	if !card.UpdatedAt.Equal(*now) {
		t.Error("edit did not stamp updatedAt")
	}
	if !card.StatusChangedAt.Equal(statusStamp) {
		t.Error("edit touched statusChangedAt")
	}
}

func TestDeleteCardRemovesFromOwningColumn(t *testing.T) {
	s, _, proj, ids := setupProjectWithCards(t)
	s.MoveCard(ids[1], proj.ID, model.StatusBacklog, model.StatusComplete, -1)
	s.DeleteCard(ids[1])

	b := s.Get()
	if _, ok := b.Cards[ids[1]]; ok {
		t.Error("card record survived delete")
	}
	if len(b.Projects[0].Columns.Complete) != 0 {
		t.Errorf("complete = %v", b.Projects[0].Columns.Complete)
	}
	checkPartition(t, b)
}

func TestIdempotentDelete(t *testing.T) {
	s, _, _, ids := setupProjectWithCards(t)
	s.DeleteCard(ids[0])
	snap := s.Get()
	s.DeleteCard(ids[0])
	if s.Get() != snap {
		t.Error("second delete was not a no-op")
	}
}
