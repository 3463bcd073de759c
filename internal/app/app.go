package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dori/ckanban/internal/db"
	"github.com/dori/ckanban/internal/model"
	"github.com/dori/ckanban/internal/store"
	"github.com/gofrs/flock"
)

// App holds the application state and dependencies: the open database,
// the board store and the debounced saver wired between them.
type App struct {
	DB       *db.DB
	Store    *store.Store
	DataDir  string
	saver    *db.Saver
	unsub    func()
	lockFile *flock.Flock
}

// Config holds application configuration
type Config struct {
	DataDir   string
	DBPath    string
	SaveDelay time.Duration
}

// DefaultConfig returns the default application configuration
func DefaultConfig() *Config {
	dataDir := db.DefaultDataDir()
	return &Config{
		DataDir:   dataDir,
		DBPath:    filepath.Join(dataDir, "ckanban.db"),
		SaveDelay: db.SaveDelay,
	}
}

// New creates a new application instance: acquires the single-instance
// lock, opens the database, loads and normalizes the persisted board
// (or starts empty), and subscribes the debounced saver to the store.
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Ensure data directory exists
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	app := &App{DataDir: cfg.DataDir}

	// Acquire lock to ensure single instance
	if err := app.acquireLock(); err != nil {
		return nil, err
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		app.releaseLock()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	app.DB = database

	board, err := database.LoadBoard()
	if err != nil {
		database.Close()
		app.releaseLock()
		return nil, fmt.Errorf("failed to load board: %w", err)
	}
	if board == nil {
		board = model.NewBoard()
	} else {
		model.Normalize(board)
	}

	app.Store = store.New(board)
	app.saver = db.NewSaver(database, cfg.SaveDelay)
	app.unsub = app.Store.Subscribe(app.saver.Request)

	return app, nil
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.DataDir, "ckanban.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another instance of ckanban is already running")
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close flushes any pending write and cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.unsub != nil {
		a.unsub()
	}
	if a.saver != nil {
		a.saver.Flush()
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	a.releaseLock()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
