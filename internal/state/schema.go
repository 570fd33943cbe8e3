package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS queue_session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			session_id TEXT NOT NULL,
			loop_enabled INTEGER NOT NULL DEFAULT 0,
			saved_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS queue_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slot TEXT NOT NULL CHECK (slot IN ('pending', 'played')),
			position INTEGER NOT NULL,
			kind TEXT NOT NULL CHECK (kind IN ('single', 'group')),
			track_id INTEGER,
			path TEXT,
			title TEXT,
			artist TEXT,
			album TEXT,
			track_number INTEGER,
			duration_ms INTEGER,
			group_id INTEGER,
			group_artist TEXT,
			group_title TEXT,
			state INTEGER NOT NULL DEFAULT 0,
			source_kind INTEGER NOT NULL DEFAULT 0,
			source_id INTEGER NOT NULL DEFAULT 0,
			by_human INTEGER NOT NULL DEFAULT 0,
			UNIQUE(slot, position)
		);

		CREATE INDEX IF NOT EXISTS idx_queue_entries_slot ON queue_entries(slot, position);

		CREATE TABLE IF NOT EXISTS group_tracks (
			entry_id INTEGER NOT NULL REFERENCES queue_entries(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			track_id INTEGER,
			path TEXT NOT NULL,
			title TEXT NOT NULL,
			artist TEXT,
			album TEXT,
			track_number INTEGER,
			duration_ms INTEGER,
			UNIQUE(entry_id, position)
		);

		CREATE TABLE IF NOT EXISTS shuffle_order (
			position INTEGER PRIMARY KEY,
			item_index INTEGER NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
