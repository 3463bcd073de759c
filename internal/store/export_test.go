package store

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dori/ckanban/internal/model"
)

func TestExportImportRoundtrip(t *testing.T) {
	s, _ := newTestStore()
	s.AddProject("Alpha")
	proj := s.Get().Projects[0]
	s.AddCard(proj.ID, "one")
	s.AddLink(proj.ID, "repo", "https://example.com")
	s.AddBookmark("news", "https://example.org")
	cardID := s.Get().Projects[0].Columns.Backlog[0]
	s.AddTimeEntry(cardID, "2024-01-01", 2.5)

	data, err := s.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	dst, _ := newTestStore()
	if err := dst.Import(data); err != nil {
		t.Fatalf("Import: %v", err)
	}

	b := dst.Get()
	if len(b.Projects) != 1 || b.Projects[0].Name != "Alpha" {
		t.Fatalf("projects = %+v", b.Projects)
	}
	if len(b.Cards) != 2 {
		t.Fatalf("cards = %d", len(b.Cards))
	}
	if b.Cards[cardID].TimeEntries["2024-01-01"] != 2.5 {
		t.Errorf("time entries lost: %v", b.Cards[cardID].TimeEntries)
	}
	if len(b.Bookmarks) != 1 || b.Bookmarks[0].Title != "news" {
		t.Errorf("bookmarks = %+v", b.Bookmarks)
	}
}

func TestExportPayloadShape(t *testing.T) {
	s, _ := newTestStore()
	s.AddProject("Alpha")
	data, err := s.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc["schema"] != Schema {
		t.Errorf("schema = %v", doc["schema"])
	}
	for _, key := range []string{"exportedAt", "projects", "cards", "bookmarks"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("payload missing %q", key)
		}
	}
}

func TestImportRejectsMissingColumn(t *testing.T) {
	s, _ := newTestStore()
	s.AddProject("Keep me")
	snap := s.Get()

	payload := `{
		"schema": "kanban.v1",
		"projects": [
			{"id": "p1", "columns": {"links": [], "backlog": [], "inProgress": [], "complete": []}}
		],
		"cards": {},
		"bookmarks": []
	}`
	err := s.Import([]byte(payload))
	if err == nil {
		t.Fatal("import accepted a project missing the onHold column")
	}
	if !strings.Contains(err.Error(), "onHold") {
		t.Errorf("err = %v", err)
	}
	if s.Get() != snap {
		t.Error("failed import touched the live board")
	}
}

func TestImportRejectsWrongSchema(t *testing.T) {
	s, _ := newTestStore()
	snap := s.Get()
	if err := s.Import([]byte(`{"schema":"kanban.v2","projects":[],"cards":{}}`)); err == nil {
		t.Fatal("wrong schema accepted")
	}
	if err := s.Import([]byte(`{"projects":[],"cards":{}}`)); err == nil {
		t.Fatal("missing schema accepted")
	}
	if err := s.Import([]byte(`{"schema":"kanban.v1","projects":{},"cards":{}}`)); err == nil {
		t.Fatal("non-array projects accepted")
	}
	if err := s.Import([]byte(`{"schema":"kanban.v1","projects":[],"cards":[]}`)); err == nil {
		t.Fatal("non-object cards accepted")
	}
	if err := s.Import([]byte(`not json`)); err == nil {
		t.Fatal("garbage accepted")
	}
	if s.Get() != snap {
		t.Error("rejected imports touched the live board")
	}
}

func TestImportNormalizesLegacyRecords(t *testing.T) {
	s, _ := newTestStore()
	payload := `{
		"schema": "kanban.v1",
		"projects": [
			{"id": "p1", "name": "Legacy", "order": 5,
			 "columns": {"links": [], "backlog": ["c1"], "inProgress": [], "onHold": [], "complete": []}}
		],
		"cards": {
			"c1": {"projectId": "p1", "title": "old card",
			       "createdAt": "2023-01-01T00:00:00Z", "updatedAt": "2023-02-01T00:00:00Z",
			       "timeEntries": {"2023-01-05": 2, "2023-01-06": -1}}
		}
	}`
	if err := s.Import([]byte(payload)); err != nil {
		t.Fatalf("Import: %v", err)
	}

	b := s.Get()
	p := b.Projects[0]
	if p.Order != 0 {
		t.Errorf("order not densified: %d", p.Order)
	}
	if p.Color == "" {
		t.Error("color not backfilled")
	}
	c := b.Cards["c1"]
	if c.StatusChangedAt.IsZero() {
		t.Error("statusChangedAt not backfilled")
	}
	if _, ok := c.TimeEntries["2023-01-06"]; ok {
		t.Error("negative entry survived import")
	}
	if b.Bookmarks == nil {
		t.Error("bookmarks not backfilled")
	}
}

func TestClear(t *testing.T) {
	s, _ := newTestStore()
	s.AddProject("Alpha")
	s.AddBookmark("b", "https://example.com")
	var notified bool
	s.Subscribe(func(b *model.Board) { notified = true })

	s.Clear()
	b := s.Get()
	if len(b.Projects) != 0 || len(b.Cards) != 0 || len(b.Bookmarks) != 0 {
		t.Errorf("clear left data: %+v", b)
	}
	if !notified {
		t.Error("clear did not notify subscribers")
	}
}
