package app

import (
	"path/filepath"
	"testing"
	"time"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	return &Config{
		DataDir:   dir,
		DBPath:    filepath.Join(dir, "ckanban.db"),
		SaveDelay: 10 * time.Millisecond,
	}
}

func TestBoardSurvivesRestart(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.Store.AddProject("Persistent")
	projID := a.Store.Get().Projects[0].ID
	a.Store.AddCard(projID, "survives")
	if err := a.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := New(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer b.Close()

	board := b.Store.Get()
	if len(board.Projects) != 1 || board.Projects[0].Name != "Persistent" {
		t.Fatalf("projects = %+v", board.Projects)
	}
	if len(board.Cards) != 1 {
		t.Fatalf("cards = %d", len(board.Cards))
	}
	// normalized on load
	if board.Projects[0].Color == "" {
		t.Error("color missing after load")
	}
}

func TestSecondInstanceRejected(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if _, err := New(cfg); err == nil {
		t.Fatal("second instance acquired the lock")
	}
}
