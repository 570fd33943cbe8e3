// Package state persists the queue session to a local sqlite database so a
// restart picks up the pending sequence, the play history, and the anchor
// exactly where they were.
package state

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "cueline"
	dbFileName = "cueline.db"
)

type Manager struct {
	db *sql.DB
}

// Open opens the default state database under the xdg data directory.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens a state database at an explicit path, creating parent
// directories and the schema as needed.
func OpenPath(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// SaveQueue persists a full session snapshot, replacing any previous one.
func (m *Manager) SaveQueue(snapshot Snapshot) error {
	return saveQueue(m.db, snapshot)
}

// GetQueue loads the saved session snapshot. Returns nil when nothing has
// been saved yet.
func (m *Manager) GetQueue() (*Snapshot, error) {
	return getQueue(m.db)
}
