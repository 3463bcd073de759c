package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dori/ckanban/internal/model"
)

// Schema is the export payload schema identifier
const Schema = "kanban.v1"

// ExportPayload is the on-disk interchange document
type ExportPayload struct {
	Schema     string                 `json:"schema"`
	ExportedAt time.Time              `json:"exportedAt"`
	Projects   []*model.Project       `json:"projects"`
	Cards      map[string]*model.Card `json:"cards"`
	Bookmarks  []*model.Bookmark      `json:"bookmarks"`
}

// Export serializes the current snapshot as a kanban.v1 payload
func (s *Store) Export() ([]byte, error) {
	b := s.Get()
	payload := ExportPayload{
		Schema:     Schema,
		ExportedAt: s.now(),
		Projects:   b.Projects,
		Cards:      b.Cards,
		Bookmarks:  b.Bookmarks,
	}
	return json.MarshalIndent(payload, "", "  ")
}

// Import validates a kanban.v1 payload and atomically replaces the live
// board with the normalized result. Any validation failure leaves the
// current board completely unchanged.
func (s *Store) Import(data []byte) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validateImport(doc); err != nil {
		return err
	}

	var payload ExportPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}

	board := &model.Board{
		Version:      model.SchemaVersion,
		Projects:     payload.Projects,
		Cards:        payload.Cards,
		Bookmarks:    payload.Bookmarks,
		LastModified: s.now(),
	}
	s.Set(model.Normalize(board))
	return nil
}

// Clear replaces the live board with an empty document
func (s *Store) Clear() {
	s.Set(model.NewBoard())
}

func validateImport(doc map[string]any) error {
	if doc["schema"] != Schema {
		return fmt.Errorf("unsupported schema %v", doc["schema"])
	}
	projects, ok := doc["projects"].([]any)
	if !ok {
		return fmt.Errorf("projects is not an array")
	}
	if _, ok := doc["cards"].(map[string]any); !ok {
		return fmt.Errorf("cards is not an object")
	}
	for i, raw := range projects {
		proj, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("project %d is not an object", i)
		}
		if id, _ := proj["id"].(string); id == "" {
			return fmt.Errorf("project %d has no id", i)
		}
		columns, ok := proj["columns"].(map[string]any)
		if !ok {
			return fmt.Errorf("project %d has no columns", i)
		}
		for _, status := range model.Statuses() {
			if _, ok := columns[string(status)].([]any); !ok {
				return fmt.Errorf("project %d is missing the %s column", i, status)
			}
		}
	}
	return nil
}
