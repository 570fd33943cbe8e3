// Package playback wraps one queue engine instance behind a mutex and an
// event stream. The engine itself performs no locking; this service is the
// single place that serializes access for the rest of the application.
package playback

import (
	"cueline/internal/media"
)

// Service defines the playback queue service contract.
type Service interface {
	// Queue manipulation
	Add(value media.ItemType, source media.Source, byHuman bool)
	AddNext(value media.ItemType, source media.Source)
	AddMulti(values []media.ItemType, source media.Source, byHuman bool)
	AddMultiNext(values []media.ItemType, source media.Source)
	Insert(index int, value media.ItemType, source media.Source, addHere bool) error
	Remove(index int) (media.QueueItem, error)
	Clear()
	ClearPlayed()
	ClearAll()
	ClearExcept(index int) error

	// Navigation
	CurrentTrack() *media.Track
	Advance() (*media.Track, error)
	Retreat() (*media.Track, error)
	JumpTo(index int) error

	// Reordering
	Swap(a, b int) bool
	MoveItem(from, to int) bool

	// Session restore
	Restore(items, played []media.QueueItem, loop bool, shuffle []int)

	// State queries
	Items() []media.QueueItem
	Played() []media.QueueItem
	Len() int
	PlayedLen() int
	IsEmpty() bool
	Loop() bool
	SetLoop(loop bool)
	ShuffleOrder() []int

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
