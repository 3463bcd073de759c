package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/dori/ckanban/internal/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadBoardEmpty(t *testing.T) {
	db := openTestDB(t)
	board, err := db.LoadBoard()
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	if board != nil {
		t.Fatalf("expected nil board from a fresh database, got %+v", board)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	db := openTestDB(t)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	board := model.NewBoard()
	board.LastModified = now
	board.Projects = append(board.Projects, &model.Project{
		ID: "p1", Name: "Alpha", CreatedAt: now, Collapsed: true,
		Color: model.DefaultColor, Columns: model.EmptyColumns(),
	})
	board.Projects[0].Columns.Backlog = []string{"c1"}
	board.Cards["c1"] = &model.Card{
		ID: "c1", ProjectID: "p1", Title: "one", Type: model.TypeCard,
		CreatedAt: now, UpdatedAt: now, StatusChangedAt: now,
		TimeEntries: map[string]float64{"2024-06-01": 1.5},
	}

	if err := db.SaveBoard(board); err != nil {
		t.Fatalf("SaveBoard: %v", err)
	}

	loaded, err := db.LoadBoard()
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadBoard returned nil after save")
	}
	if len(loaded.Projects) != 1 || loaded.Projects[0].Name != "Alpha" {
		t.Errorf("projects = %+v", loaded.Projects)
	}
	if loaded.Cards["c1"].TimeEntries["2024-06-01"] != 1.5 {
		t.Errorf("time entries = %v", loaded.Cards["c1"].TimeEntries)
	}
	if !loaded.LastModified.Equal(now) {
		t.Errorf("lastModified = %v", loaded.LastModified)
	}
}

func TestSaveBoardOverwrites(t *testing.T) {
	db := openTestDB(t)

	first := model.NewBoard()
	first.Projects = append(first.Projects, &model.Project{ID: "p1", Name: "First", Columns: model.EmptyColumns()})
	if err := db.SaveBoard(first); err != nil {
		t.Fatalf("SaveBoard: %v", err)
	}

	second := model.NewBoard()
	second.Projects = append(second.Projects, &model.Project{ID: "p2", Name: "Second", Columns: model.EmptyColumns()})
	if err := db.SaveBoard(second); err != nil {
		t.Fatalf("SaveBoard: %v", err)
	}

	loaded, err := db.LoadBoard()
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	if len(loaded.Projects) != 1 || loaded.Projects[0].Name != "Second" {
		t.Errorf("expected the second document, got %+v", loaded.Projects)
	}

	// still a single row under the fixed key
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM board_documents`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want 1", count)
	}
}
