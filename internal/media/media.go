// Package media provides the concrete track, album, and source types the
// rest of the application feeds into the queue engine.
package media

import (
	"time"

	"cueline/queue"
)

// Track represents a single playable track.
type Track struct {
	ID          int64  // library track ID (0 if from filesystem)
	Path        string // file path for playback
	Title       string
	Artist      string
	Album       string
	TrackNumber int
	Duration    time.Duration
}

// Album is a group payload: one queue entry standing for a whole album.
// Always queued by pointer so entries stay comparable.
type Album struct {
	ID     int64
	Artist string
	Title  string
	List   []Track
}

// Tracks returns the album's track list.
func (a *Album) Tracks() []Track {
	return a.List
}

// SourceKind identifies where a queue entry came from.
type SourceKind uint8

const (
	SourceUnknown SourceKind = iota
	SourceLibrary
	SourcePlaylist
	SourceRadio
	SourceSearch
)

func (k SourceKind) String() string {
	switch k {
	case SourceLibrary:
		return "library"
	case SourcePlaylist:
		return "playlist"
	case SourceRadio:
		return "radio"
	case SourceSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Source tags a queue entry with its provenance. The zero value means
// "no source recorded".
type Source struct {
	Kind SourceKind
	ID   int64 // playlist or library ID when the kind has one
}

// Engine type instantiations used throughout the application.
type (
	Queue     = queue.Queue[Track, *Album, Source]
	QueueItem = queue.Item[Track, *Album, Source]
	ItemType  = queue.ItemType[Track, *Album]
)

// NewQueue creates an empty queue over the application types.
func NewQueue() *Queue {
	return queue.New[Track, *Album, Source]()
}

// Single wraps one track as a queue payload.
func Single(t Track) ItemType {
	return queue.Single[Track, *Album](t)
}

// Multi wraps an album as a queue payload.
func Multi(a *Album) ItemType {
	return queue.Multi[Track, *Album](a)
}
