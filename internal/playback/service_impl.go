package playback

import (
	"errors"
	"sync"

	"cueline/internal/media"
	"cueline/queue"
)

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	mu sync.RWMutex

	queue        *media.Queue
	historyLimit int

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// New creates a playback queue service around q. historyLimit bounds the
// play history after every advance; zero or negative means unbounded.
func New(q *media.Queue, historyLimit int) Service {
	return &serviceImpl{
		queue:        q,
		historyLimit: historyLimit,
	}
}

func (s *serviceImpl) Add(value media.ItemType, source media.Source, byHuman bool) {
	s.mu.Lock()
	s.queue.Add(value, source, byHuman)
	s.mu.Unlock()
	s.emitQueue()
}

func (s *serviceImpl) AddNext(value media.ItemType, source media.Source) {
	s.mu.Lock()
	s.queue.AddNext(value, source)
	s.mu.Unlock()
	s.emitQueue()
}

func (s *serviceImpl) AddMulti(values []media.ItemType, source media.Source, byHuman bool) {
	s.mu.Lock()
	s.queue.AddMulti(values, source, byHuman)
	s.mu.Unlock()
	s.emitQueue()
}

func (s *serviceImpl) AddMultiNext(values []media.ItemType, source media.Source) {
	s.mu.Lock()
	s.queue.AddMultiNext(values, source)
	s.mu.Unlock()
	s.emitQueue()
}

func (s *serviceImpl) Insert(index int, value media.ItemType, source media.Source, addHere bool) error {
	s.mu.Lock()
	err := s.queue.Insert(index, value, source, addHere)
	s.mu.Unlock()
	if err != nil {
		s.emitError("insert", err)
		return err
	}
	s.emitQueue()
	return nil
}

func (s *serviceImpl) Remove(index int) (media.QueueItem, error) {
	s.mu.Lock()
	item, err := s.queue.Remove(index)
	s.mu.Unlock()
	if err != nil {
		s.emitError("remove", err)
		return item, err
	}
	s.emitQueue()
	return item, nil
}

func (s *serviceImpl) Clear() {
	s.mu.Lock()
	s.queue.Clear()
	s.mu.Unlock()
	s.emitQueue()
}

func (s *serviceImpl) ClearPlayed() {
	s.mu.Lock()
	s.queue.ClearPlayed()
	s.mu.Unlock()
	s.emitQueue()
}

func (s *serviceImpl) ClearAll() {
	s.mu.Lock()
	s.queue.ClearAll()
	s.mu.Unlock()
	s.emitQueue()
}

func (s *serviceImpl) ClearExcept(index int) error {
	s.mu.Lock()
	err := s.queue.ClearExcept(index)
	s.mu.Unlock()
	if err != nil {
		s.emitError("clear-except", err)
		return err
	}
	s.emitQueue()
	return nil
}

// CurrentTrack returns the track at the front of the queue, or nil when
// the queue is empty or fronted by a group entry.
func (s *serviceImpl) CurrentTrack() *media.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentTrackLocked()
}

func (s *serviceImpl) currentTrackLocked() *media.Track {
	item, err := s.queue.Current()
	if err != nil {
		return nil
	}
	track, ok := item.Value.Single()
	if !ok {
		return nil
	}
	return &track
}

// Advance moves the front entry into history and returns the new front
// track. The history bound is applied after every successful advance.
func (s *serviceImpl) Advance() (*media.Track, error) {
	s.mu.Lock()
	previous := s.currentTrackLocked()
	item, err := s.queue.Next()
	if err == nil || errors.Is(err, queue.ErrNoNext) {
		if s.historyLimit > 0 {
			s.queue.TrimPlayed(s.historyLimit)
		}
	}
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, queue.ErrNoNext) {
			// The advance itself happened; the queue is just exhausted.
			s.emitQueue()
			s.emitTrack(previous, nil)
		} else {
			s.emitError("advance", err)
		}
		return nil, err
	}

	track, _ := item.Value.Single()
	s.emitQueue()
	s.emitTrack(previous, &track)
	return &track, nil
}

// Retreat pulls the most recently played entry back to the front and
// returns its track.
func (s *serviceImpl) Retreat() (*media.Track, error) {
	s.mu.Lock()
	previous := s.currentTrackLocked()
	item, err := s.queue.Prev()
	s.mu.Unlock()

	if err != nil {
		s.emitError("retreat", err)
		return nil, err
	}

	track, _ := item.Value.Single()
	s.emitQueue()
	s.emitTrack(previous, &track)
	return &track, nil
}

// JumpTo plays forward through the queue until the entry at index is the
// front.
func (s *serviceImpl) JumpTo(index int) error {
	s.mu.Lock()
	previous := s.currentTrackLocked()
	err := s.queue.MoveTo(index)
	if err == nil && s.historyLimit > 0 {
		s.queue.TrimPlayed(s.historyLimit)
	}
	current := s.currentTrackLocked()
	s.mu.Unlock()

	if err != nil {
		s.emitError("jump", err)
		return err
	}
	s.emitQueue()
	s.emitTrack(previous, current)
	return nil
}

// Swap exchanges two pending entries. Returns false if either index is out
// of range.
func (s *serviceImpl) Swap(a, b int) bool {
	s.mu.Lock()
	n := s.queue.Len()
	if a < 0 || a >= n || b < 0 || b >= n {
		s.mu.Unlock()
		return false
	}
	s.queue.Swap(a, b)
	s.mu.Unlock()
	s.emitQueue()
	return true
}

// MoveItem relocates a pending entry. Returns false if either index is out
// of range; from == to is a no-op.
func (s *serviceImpl) MoveItem(from, to int) bool {
	s.mu.Lock()
	n := s.queue.Len()
	if from < 0 || from >= n || to < 0 || to >= n {
		s.mu.Unlock()
		return false
	}
	if from != to {
		s.queue.Move(from, to)
	}
	s.mu.Unlock()
	s.emitQueue()
	return true
}

// Restore replaces the whole session from a saved snapshot.
func (s *serviceImpl) Restore(items, played []media.QueueItem, loop bool, shuffle []int) {
	s.mu.Lock()
	s.queue.SetItems(items)
	s.queue.SetPlayed(played)
	s.queue.SetLoop(loop)
	s.queue.SetShuffleOrder(shuffle)
	s.mu.Unlock()
	s.emitQueue()
}

func (s *serviceImpl) Items() []media.QueueItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Items()
}

func (s *serviceImpl) Played() []media.QueueItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Played()
}

func (s *serviceImpl) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Len()
}

func (s *serviceImpl) PlayedLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.PlayedLen()
}

func (s *serviceImpl) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.IsEmpty()
}

func (s *serviceImpl) Loop() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Loop()
}

func (s *serviceImpl) SetLoop(loop bool) {
	s.mu.Lock()
	s.queue.SetLoop(loop)
	s.mu.Unlock()
}

func (s *serviceImpl) ShuffleOrder() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.ShuffleOrder()
}

// Subscribe registers a new event subscriber.
func (s *serviceImpl) Subscribe() *Subscription {
	sub := newSubscription()
	s.subsMu.Lock()
	s.subs = append(s.subs, sub)
	s.subsMu.Unlock()
	return sub
}

// Close signals all subscribers and drops them.
func (s *serviceImpl) Close() error {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	return nil
}

func (s *serviceImpl) emitQueue() {
	s.mu.RLock()
	e := QueueChange{
		Items:  s.queue.Items(),
		Played: s.queue.Played(),
	}
	s.mu.RUnlock()

	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendQueue(e)
	}
}

func (s *serviceImpl) emitTrack(previous, current *media.Track) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendTrack(TrackChange{Previous: previous, Current: current})
	}
}

func (s *serviceImpl) emitError(operation string, err error) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendError(ErrorEvent{Operation: operation, Err: err})
	}
}
