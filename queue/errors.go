package queue

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQueue is returned when an operation needs a pending entry
	// that does not exist. Remove reports it for any invalid index, empty
	// queue or not.
	ErrEmptyQueue = errors.New("queue: no pending items")

	// ErrEmptyPlayed is returned by Prev when the history is empty.
	ErrEmptyPlayed = errors.New("queue: no played items")

	// ErrNoNext is returned by Next when the advance succeeded but left
	// the pending queue empty.
	ErrNoNext = errors.New("queue: no next item")

	// ErrGroupUnsupported is returned when a navigation operation lands
	// on a group entry. Group expansion is not implemented; failing loudly
	// beats playing the wrong thing.
	ErrGroupUnsupported = errors.New("queue: group entries are not supported during navigation")
)

// OutOfBoundsError reports an index outside the pending queue for
// positional insert and ClearExcept.
type OutOfBoundsError struct {
	Index int
	Len   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("queue: index %d out of bounds for length %d", e.Index, e.Len)
}
