// Package queue implements a playback queue for media applications: an
// ordered pending sequence, a chronological history of played entries, and
// a movable insertion anchor that decides where explicitly queued items
// land relative to items queued by other means (autoplay, radio).
//
// The engine is generic over the singular item type, the group type, and
// the provenance tag type; it never inspects those payloads beyond storing,
// copying, and comparing them.
//
// A Queue is not safe for concurrent use. Every operation is a bounded,
// synchronous computation; callers using a queue from multiple goroutines
// must serialize access themselves (see internal/playback for the canonical
// wrapper).
package queue

// Queue holds the pending sequence and the play history. The front of the
// pending sequence is the current playback position; history is ordered
// oldest first.
//
// At most one pending entry carries the AddHere state at any time. Zero is
// legal too ("no explicit anchor") and every operation tolerates it.
type Queue[T comparable, U Group[T], L Location] struct {
	items  []Item[T, U, L]
	played []Item[T, U, L]

	// Reserved: loop-around and shuffle are accepted as configuration but
	// not acted on by any operation yet.
	loop    bool
	shuffle []int
}

// New creates an empty queue.
func New[T comparable, U Group[T], L Location]() *Queue[T, U, L] {
	return &Queue[T, U, L]{}
}

// hasAddHere reports whether any pending entry is the anchor.
func (q *Queue[T, U, L]) hasAddHere() bool {
	for i := range q.items {
		if q.items[i].State == AddHere {
			return true
		}
	}
	return false
}

func (q *Queue[T, U, L]) insertAt(index int, item Item[T, U, L]) {
	q.items = append(q.items[:index], append([]Item[T, U, L]{item}, q.items[index:]...)...)
}

// SetItems replaces the pending sequence wholesale. History is untouched.
func (q *Queue[T, U, L]) SetItems(items []Item[T, U, L]) {
	q.items = q.items[:0]
	q.items = append(q.items, items...)
}

// SetPlayed replaces the history wholesale, oldest first. Used when
// restoring a saved session.
func (q *Queue[T, U, L]) SetPlayed(played []Item[T, U, L]) {
	q.played = q.played[:0]
	q.played = append(q.played, played...)
}

// Add inserts an entry immediately after the anchor (or at the front when
// no anchor exists) and makes the new entry the anchor.
func (q *Queue[T, U, L]) Add(value ItemType[T, U], source L, byHuman bool) {
	i := 0
	for j := range q.items {
		if q.items[j].State == AddHere {
			i = j
			q.items[j].State = NoState
		}
	}

	pos := i
	if len(q.items) > 0 {
		pos = i + 1
	}
	q.insertAt(pos, Item[T, U, L]{
		Value:   value,
		State:   AddHere,
		Source:  source,
		ByHuman: byHuman,
	})
}

// AddNext inserts an entry right after the current position, attributed to
// a human. It becomes the anchor only when position 1 was free or no anchor
// existed; an anchor sitting elsewhere is left alone, so repeated calls do
// not fight over it.
func (q *Queue[T, U, L]) AddNext(value ItemType[T, U], source L) {
	state := NoState
	if len(q.items) < 2 || !q.hasAddHere() {
		state = AddHere
	}

	pos := 1
	if len(q.items) == 0 {
		pos = 0
	}
	q.insertAt(pos, Item[T, U, L]{
		Value:   value,
		State:   state,
		Source:  source,
		ByHuman: true,
	})
}

// AddMulti inserts a batch after the anchor, preserving the caller's order.
// The last entry of the batch becomes the new anchor. An empty batch is a
// no-op.
func (q *Queue[T, U, L]) AddMulti(values []ItemType[T, U], source L, byHuman bool) {
	if len(values) == 0 {
		return
	}

	i := 0
	for j := range q.items {
		if q.items[j].State == AddHere {
			i = j
			q.items[j].State = NoState
		}
	}

	empty := len(q.items) == 0
	pos := i
	if !empty {
		pos = i + 1
	}
	for k := len(values) - 1; k >= 0; k-- {
		q.insertAt(pos, Item[T, U, L]{
			Value:   values[k],
			State:   NoState,
			Source:  source,
			ByHuman: byHuman,
		})
	}

	last := i + len(values)
	if empty {
		last--
	}
	q.items[last].State = AddHere
}

// AddMultiNext inserts a batch right after the current position, attributed
// to a human, preserving the caller's order. Under the same condition as
// AddNext the last entry of the batch becomes the anchor; otherwise the
// existing anchor stays put. An empty batch is a no-op.
func (q *Queue[T, U, L]) AddMultiNext(values []ItemType[T, U], source L) {
	if len(values) == 0 {
		return
	}

	empty := len(q.items) == 0
	takeAnchor := len(q.items) < 2 || !q.hasAddHere()

	pos := 1
	if empty {
		pos = 0
	}
	for k := len(values) - 1; k >= 0; k-- {
		q.insertAt(pos, Item[T, U, L]{
			Value:   values[k],
			State:   NoState,
			Source:  source,
			ByHuman: true,
		})
	}

	if takeAnchor {
		last := len(values)
		if empty {
			last--
		}
		q.items[last].State = AddHere
	}
}

// Insert places an entry at an arbitrary pending index (0 through Len
// inclusive). When addHere is set, any existing anchor is cleared first and
// the new entry becomes the anchor.
func (q *Queue[T, U, L]) Insert(index int, value ItemType[T, U], source L, addHere bool) error {
	if index < 0 || index > len(q.items) {
		return &OutOfBoundsError{Index: index, Len: len(q.items)}
	}

	item := NewItem[T, U, L](value, source)
	if addHere {
		for i := range q.items {
			if q.items[i].State == AddHere {
				q.items[i].State = NoState
			}
		}
		item.State = AddHere
	}
	q.insertAt(index, item)
	return nil
}

// Remove deletes and returns the entry at index. The following entry, if
// any, inherits the removed entry's state, so removing the anchor hands the
// anchor to its successor. Any invalid index reports ErrEmptyQueue,
// whether the queue is empty or merely shorter than index.
func (q *Queue[T, U, L]) Remove(index int) (Item[T, U, L], error) {
	if index < 0 || index >= len(q.items) {
		return Item[T, U, L]{}, ErrEmptyQueue
	}

	if index+1 < len(q.items) {
		q.items[index+1].State = q.items[index].State
	}
	removed := q.items[index]
	q.items = append(q.items[:index], q.items[index+1:]...)
	return removed, nil
}

// Clear empties the pending sequence. History is untouched.
func (q *Queue[T, U, L]) Clear() {
	q.items = q.items[:0]
}

// ClearPlayed empties the history.
func (q *Queue[T, U, L]) ClearPlayed() {
	q.played = q.played[:0]
}

// ClearAll empties both sequences.
func (q *Queue[T, U, L]) ClearAll() {
	q.items = q.items[:0]
	q.played = q.played[:0]
}

// ClearExcept drops every pending entry not value-equal to the entry at
// index, then forces the new front entry to be the anchor. Matching is by
// full value equality, so duplicates of the kept entry survive too.
func (q *Queue[T, U, L]) ClearExcept(index int) error {
	if len(q.items) == 0 {
		return ErrEmptyQueue
	}
	if index < 0 || index >= len(q.items) {
		return &OutOfBoundsError{Index: index, Len: len(q.items)}
	}

	keep := q.items[index]
	kept := q.items[:0]
	for _, item := range q.items {
		if item == keep {
			kept = append(kept, item)
		}
	}
	q.items = kept
	q.items[0].State = AddHere
	return nil
}

// Current returns the entry at the front of the pending sequence.
func (q *Queue[T, U, L]) Current() (*Item[T, U, L], error) {
	if len(q.items) == 0 {
		return nil, ErrEmptyQueue
	}
	if q.items[0].Value.IsGroup() {
		return nil, ErrGroupUnsupported
	}
	return &q.items[0], nil
}

// Next moves the front entry into history and returns the new front. When
// the front entry is the anchor, or no anchor exists at all, the anchor
// rolls forward onto the next entry; an anchor sitting further down is left
// alone. Returns ErrNoNext when the advance emptied the pending sequence.
func (q *Queue[T, U, L]) Next() (*Item[T, U, L], error) {
	if len(q.items) == 0 {
		// Loop-around is reserved; an exhausted queue just reports empty.
		return nil, ErrEmptyQueue
	}
	if q.items[0].Value.IsGroup() {
		return nil, ErrGroupUnsupported
	}

	if q.items[0].State == AddHere || !q.hasAddHere() {
		q.items[0].State = NoState
		if len(q.items) > 1 {
			q.items[1].State = AddHere
		}
	}

	item := q.items[0]
	q.items = append(q.items[:0], q.items[1:]...)
	q.played = append(q.played, item)

	if len(q.items) == 0 {
		return nil, ErrNoNext
	}
	return &q.items[0], nil
}

// Prev pops the most recently played entry out of history and reinserts it
// at the front of the pending sequence. Absent intervening mutation, a Prev
// directly after a Next restores the pending sequence and every entry's
// state exactly.
func (q *Queue[T, U, L]) Prev() (*Item[T, U, L], error) {
	if len(q.played) == 0 {
		return nil, ErrEmptyPlayed
	}

	item := q.played[len(q.played)-1]
	if item.Value.IsGroup() {
		return nil, ErrGroupUnsupported
	}
	if len(q.items) > 0 && q.items[0].Value.IsGroup() {
		return nil, ErrGroupUnsupported
	}

	q.played = q.played[:len(q.played)-1]
	q.insertAt(0, item)
	return &q.items[0], nil
}

// MoveTo pops front entries into history until the front is value-equal to
// the entry currently at index, transferring the anchor forward whenever a
// popped entry held it. Matching is by value, so with duplicates ahead of
// the target the traversal stops at the first equal value.
func (q *Queue[T, U, L]) MoveTo(index int) error {
	if len(q.items) == 0 || index < 0 || index >= len(q.items) {
		return ErrEmptyQueue
	}

	target := q.items[index]
	if target.Value.IsGroup() {
		return ErrGroupUnsupported
	}

	for {
		if len(q.items) == 0 {
			return ErrEmptyQueue
		}
		if q.items[0].Value == target.Value {
			return nil
		}
		if q.items[0].State == AddHere && len(q.items) > 1 {
			q.items[1].State = AddHere
		}
		item := q.items[0]
		q.items = append(q.items[:0], q.items[1:]...)
		q.played = append(q.played, item)
	}
}

// Swap exchanges two pending entries. State travels with the entry, so no
// anchor repair is needed. Panics on an invalid index, like any slice
// access.
func (q *Queue[T, U, L]) Swap(a, b int) {
	q.items[a], q.items[b] = q.items[b], q.items[a]
}

// Move relocates the entry at from to index to. State travels with the
// entry. Panics on an invalid index.
func (q *Queue[T, U, L]) Move(from, to int) {
	item := q.items[from]
	if from != to {
		q.items = append(q.items[:from], q.items[from+1:]...)
	}
	q.insertAt(to, item)
}

// TrimPlayed drops history entries oldest-first until at most limit remain.
func (q *Queue[T, U, L]) TrimPlayed(limit int) {
	if limit < 0 {
		limit = 0
	}
	if excess := len(q.played) - limit; excess > 0 {
		q.played = append(q.played[:0], q.played[excess:]...)
	}
}

// Items returns a copy of the pending sequence.
func (q *Queue[T, U, L]) Items() []Item[T, U, L] {
	result := make([]Item[T, U, L], len(q.items))
	copy(result, q.items)
	return result
}

// Played returns a copy of the history, oldest first.
func (q *Queue[T, U, L]) Played() []Item[T, U, L] {
	result := make([]Item[T, U, L], len(q.played))
	copy(result, q.played)
	return result
}

// Len returns the number of pending entries.
func (q *Queue[T, U, L]) Len() int {
	return len(q.items)
}

// PlayedLen returns the number of history entries.
func (q *Queue[T, U, L]) PlayedLen() int {
	return len(q.played)
}

// IsEmpty returns true if the pending sequence has no entries.
func (q *Queue[T, U, L]) IsEmpty() bool {
	return len(q.items) == 0
}

// Loop reports the loop-around flag. Reserved: no operation acts on it yet.
func (q *Queue[T, U, L]) Loop() bool {
	return q.loop
}

// SetLoop sets the loop-around flag. Reserved: no operation acts on it yet.
func (q *Queue[T, U, L]) SetLoop(loop bool) {
	q.loop = loop
}

// ShuffleOrder returns the stored shuffle permutation, or nil. Reserved: no
// operation acts on it yet.
func (q *Queue[T, U, L]) ShuffleOrder() []int {
	if q.shuffle == nil {
		return nil
	}
	result := make([]int, len(q.shuffle))
	copy(result, q.shuffle)
	return result
}

// SetShuffleOrder stores a shuffle permutation. Reserved: no operation acts
// on it yet.
func (q *Queue[T, U, L]) SetShuffleOrder(order []int) {
	if order == nil {
		q.shuffle = nil
		return
	}
	q.shuffle = make([]int, len(order))
	copy(q.shuffle, order)
}
