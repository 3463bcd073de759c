package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dori/ckanban/internal/model"
)

// BoardKey is the fixed document key of the live board, namespaced by
// schema version
const BoardKey = "ckanban.board.v1"

// LoadBoard returns the stored board document, or nil when none has
// been saved yet. The caller is expected to run model.Normalize on the
// result before using it.
func (db *DB) LoadBoard() (*model.Board, error) {
	var data string
	err := db.QueryRow(`
		SELECT data FROM board_documents WHERE key = ?
	`, BoardKey).Scan(&data)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	var board model.Board
	if err := json.Unmarshal([]byte(data), &board); err != nil {
		return nil, fmt.Errorf("failed to decode board document: %w", err)
	}
	return &board, nil
}

// SaveBoard replaces the stored board document with the given snapshot
func (db *DB) SaveBoard(board *model.Board) error {
	data, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("failed to encode board document: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO board_documents (key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, BoardKey, string(data), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	return nil
}
