package state

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	dbutil "cueline/internal/db"
	"cueline/internal/media"
	"cueline/queue"
)

const (
	slotPending = "pending"
	slotPlayed  = "played"

	kindSingle = "single"
	kindGroup  = "group"
)

// Snapshot is the persisted form of a queue session.
type Snapshot struct {
	SessionID string
	Items     []media.QueueItem
	Played    []media.QueueItem
	Loop      bool
	Shuffle   []int
}

func saveQueue(sqlDB *sql.DB, snapshot Snapshot) error {
	sessionID := snapshot.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	return dbutil.WithTx(sqlDB, func(tx *sql.Tx) error {
		// Replace the previous snapshot wholesale.
		if _, err := tx.Exec(`DELETE FROM queue_entries`); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM shuffle_order`); err != nil {
			return err
		}

		_, err := tx.Exec(`
			INSERT INTO queue_session (id, session_id, loop_enabled, saved_at)
			VALUES (1, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				session_id = excluded.session_id,
				loop_enabled = excluded.loop_enabled,
				saved_at = excluded.saved_at
		`, sessionID, snapshot.Loop, time.Now().Unix())
		if err != nil {
			return err
		}

		if err := insertEntries(tx, slotPending, snapshot.Items); err != nil {
			return err
		}
		if err := insertEntries(tx, slotPlayed, snapshot.Played); err != nil {
			return err
		}

		for i, idx := range snapshot.Shuffle {
			if _, err := tx.Exec(`
				INSERT INTO shuffle_order (position, item_index) VALUES (?, ?)
			`, i, idx); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertEntries(tx *sql.Tx, slot string, items []media.QueueItem) error {
	entryStmt, err := tx.Prepare(`
		INSERT INTO queue_entries (
			slot, position, kind,
			track_id, path, title, artist, album, track_number, duration_ms,
			group_id, group_artist, group_title,
			state, source_kind, source_id, by_human
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer entryStmt.Close()

	memberStmt, err := tx.Prepare(`
		INSERT INTO group_tracks (
			entry_id, position, track_id, path, title, artist, album, track_number, duration_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer memberStmt.Close()

	for i, item := range items {
		if album, ok := item.Value.Group(); ok {
			res, err := entryStmt.Exec(
				slot, i, kindGroup,
				nil, nil, nil, nil, nil, nil, nil,
				album.ID, album.Artist, album.Title,
				item.State, item.Source.Kind, item.Source.ID, item.ByHuman,
			)
			if err != nil {
				return err
			}
			entryID, err := res.LastInsertId()
			if err != nil {
				return err
			}
			for j, t := range album.Tracks() {
				if _, err := memberStmt.Exec(
					entryID, j, t.ID, t.Path, t.Title, t.Artist, t.Album,
					t.TrackNumber, t.Duration.Milliseconds(),
				); err != nil {
					return err
				}
			}
			continue
		}

		t, _ := item.Value.Single()
		if _, err := entryStmt.Exec(
			slot, i, kindSingle,
			t.ID, t.Path, t.Title, t.Artist, t.Album, t.TrackNumber, t.Duration.Milliseconds(),
			nil, nil, nil,
			item.State, item.Source.Kind, item.Source.ID, item.ByHuman,
		); err != nil {
			return err
		}
	}
	return nil
}

func getQueue(sqlDB *sql.DB) (*Snapshot, error) {
	snapshot := &Snapshot{}

	row := sqlDB.QueryRow(`SELECT session_id, loop_enabled FROM queue_session WHERE id = 1`)
	err := row.Scan(&snapshot.SessionID, &snapshot.Loop)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if snapshot.Items, err = loadEntries(sqlDB, slotPending); err != nil {
		return nil, err
	}
	if snapshot.Played, err = loadEntries(sqlDB, slotPlayed); err != nil {
		return nil, err
	}

	rows, err := sqlDB.Query(`SELECT item_index FROM shuffle_order ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var idx int
		if err := rows.Scan(&idx); err != nil {
			return nil, err
		}
		snapshot.Shuffle = append(snapshot.Shuffle, idx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func loadEntries(sqlDB *sql.DB, slot string) ([]media.QueueItem, error) {
	rows, err := sqlDB.Query(`
		SELECT id, kind,
			track_id, path, title, artist, album, track_number, duration_ms,
			group_id, group_artist, group_title,
			state, source_kind, source_id, by_human
		FROM queue_entries
		WHERE slot = ?
		ORDER BY position
	`, slot)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []media.QueueItem
	for rows.Next() {
		var (
			entryID     int64
			kind        string
			trackID     sql.NullInt64
			path        sql.NullString
			title       sql.NullString
			artist      sql.NullString
			album       sql.NullString
			trackNumber sql.NullInt64
			durationMS  sql.NullInt64
			groupID     sql.NullInt64
			groupArtist sql.NullString
			groupTitle  sql.NullString
			state       uint8
			sourceKind  uint8
			sourceID    int64
			byHuman     bool
		)
		if err := rows.Scan(
			&entryID, &kind,
			&trackID, &path, &title, &artist, &album, &trackNumber, &durationMS,
			&groupID, &groupArtist, &groupTitle,
			&state, &sourceKind, &sourceID, &byHuman,
		); err != nil {
			return nil, err
		}

		item := media.QueueItem{
			State:   queue.State(state),
			Source:  media.Source{Kind: media.SourceKind(sourceKind), ID: sourceID},
			ByHuman: byHuman,
		}

		switch kind {
		case kindSingle:
			item.Value = media.Single(media.Track{
				ID:          dbutil.NullInt64Value(trackID),
				Path:        dbutil.NullStringValue(path),
				Title:       dbutil.NullStringValue(title),
				Artist:      dbutil.NullStringValue(artist),
				Album:       dbutil.NullStringValue(album),
				TrackNumber: int(dbutil.NullInt64Value(trackNumber)),
				Duration:    time.Duration(dbutil.NullInt64Value(durationMS)) * time.Millisecond,
			})
		case kindGroup:
			members, err := loadGroupTracks(sqlDB, entryID)
			if err != nil {
				return nil, err
			}
			item.Value = media.Multi(&media.Album{
				ID:     dbutil.NullInt64Value(groupID),
				Artist: dbutil.NullStringValue(groupArtist),
				Title:  dbutil.NullStringValue(groupTitle),
				List:   members,
			})
		default:
			return nil, fmt.Errorf("state: unknown queue entry kind %q", kind)
		}

		items = append(items, item)
	}
	return items, rows.Err()
}

func loadGroupTracks(sqlDB *sql.DB, entryID int64) ([]media.Track, error) {
	rows, err := sqlDB.Query(`
		SELECT track_id, path, title, artist, album, track_number, duration_ms
		FROM group_tracks
		WHERE entry_id = ?
		ORDER BY position
	`, entryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []media.Track
	for rows.Next() {
		var (
			trackID     sql.NullInt64
			t           media.Track
			artist      sql.NullString
			album       sql.NullString
			trackNumber sql.NullInt64
			durationMS  sql.NullInt64
		)
		if err := rows.Scan(&trackID, &t.Path, &t.Title, &artist, &album, &trackNumber, &durationMS); err != nil {
			return nil, err
		}
		t.ID = dbutil.NullInt64Value(trackID)
		t.Artist = dbutil.NullStringValue(artist)
		t.Album = dbutil.NullStringValue(album)
		t.TrackNumber = int(dbutil.NullInt64Value(trackNumber))
		t.Duration = time.Duration(dbutil.NullInt64Value(durationMS)) * time.Millisecond
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}
