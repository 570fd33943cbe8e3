package playback

import "cueline/internal/media"

// QueueChange is emitted when the pending sequence or history changes.
type QueueChange struct {
	Items  []media.QueueItem
	Played []media.QueueItem
}

// TrackChange is emitted when navigation lands on a different track.
//
// Emitted by Advance, Retreat, and JumpTo. Queue mutations (Add, Remove,
// reordering) emit QueueChange only, so rapid editing does not spam
// track notifications.
type TrackChange struct {
	Previous *media.Track
	Current  *media.Track
}

// ErrorEvent is emitted when a queue operation fails.
type ErrorEvent struct {
	Operation string // e.g. "advance", "jump"
	Err       error
}
