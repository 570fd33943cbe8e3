//nolint:goconst // test file with repeated string literals
package queue

import (
	"errors"
	"testing"
)

type testGroup struct {
	name   string
	tracks []string
}

func (g *testGroup) Tracks() []string { return g.tracks }

type testSource struct {
	id int
}

func newTestQueue() *Queue[string, *testGroup, testSource] {
	return New[string, *testGroup, testSource]()
}

func single(s string) ItemType[string, *testGroup] {
	return Single[string, *testGroup](s)
}

func multi(g *testGroup) ItemType[string, *testGroup] {
	return Multi[string, *testGroup](g)
}

// values returns the singular payloads of the pending sequence in order.
func values(q *Queue[string, *testGroup, testSource]) []string {
	items := q.Items()
	result := make([]string, len(items))
	for i, item := range items {
		s, _ := item.Value.Single()
		result[i] = s
	}
	return result
}

// states returns the states of the pending sequence in order.
func states(q *Queue[string, *testGroup, testSource]) []State {
	items := q.Items()
	result := make([]State, len(items))
	for i, item := range items {
		result[i] = item.State
	}
	return result
}

func wantValues(t *testing.T, q *Queue[string, *testGroup, testSource], want ...string) {
	t.Helper()
	got := values(q)
	if len(got) != len(want) {
		t.Fatalf("pending = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pending = %v, want %v", got, want)
		}
	}
}

func wantStates(t *testing.T, q *Queue[string, *testGroup, testSource], want ...State) {
	t.Helper()
	got := states(q)
	if len(got) != len(want) {
		t.Fatalf("states = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("states = %v, want %v", got, want)
		}
	}
}

// countAnchors returns how many pending entries hold the anchor state.
func countAnchors(q *Queue[string, *testGroup, testSource]) int {
	n := 0
	for _, item := range q.Items() {
		if item.State == AddHere {
			n++
		}
	}
	return n
}

func TestNew(t *testing.T) {
	q := newTestQueue()

	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
	if q.PlayedLen() != 0 {
		t.Errorf("PlayedLen() = %d, want 0", q.PlayedLen())
	}
	if !q.IsEmpty() {
		t.Error("IsEmpty() should be true for a new queue")
	}
}

func TestQueue_Add_Empty(t *testing.T) {
	q := newTestQueue()

	q.Add(single("A"), testSource{}, false)

	wantValues(t, q, "A")
	wantStates(t, q, AddHere)
}

func TestQueue_Add_AfterAnchor(t *testing.T) {
	q := newTestQueue()
	q.Add(single("A"), testSource{}, false)
	q.Add(single("B"), testSource{}, false)

	wantValues(t, q, "A", "B")
	wantStates(t, q, NoState, AddHere)

	// A third add lands after B, which loses the anchor.
	q.Add(single("C"), testSource{}, false)

	wantValues(t, q, "A", "B", "C")
	wantStates(t, q, NoState, NoState, AddHere)
}

func TestQueue_Add_MidQueueAnchor(t *testing.T) {
	q := newTestQueue()
	q.SetItems([]Item[string, *testGroup, testSource]{
		{Value: single("A")},
		{Value: single("B"), State: AddHere},
		{Value: single("C")},
	})

	q.Add(single("X"), testSource{}, false)

	wantValues(t, q, "A", "B", "X", "C")
	wantStates(t, q, NoState, NoState, AddHere, NoState)
}

func TestQueue_Add_NoAnchor(t *testing.T) {
	q := newTestQueue()
	q.SetItems([]Item[string, *testGroup, testSource]{
		{Value: single("A")},
		{Value: single("B")},
	})

	// No anchor anywhere: the add lands right after the front.
	q.Add(single("X"), testSource{}, false)

	wantValues(t, q, "A", "X", "B")
	wantStates(t, q, NoState, AddHere, NoState)
}

func TestQueue_Add_KeepsSourceAndFlag(t *testing.T) {
	q := newTestQueue()

	q.Add(single("A"), testSource{id: 7}, true)

	item := q.Items()[0]
	if item.Source != (testSource{id: 7}) {
		t.Errorf("Source = %v, want {7}", item.Source)
	}
	if !item.ByHuman {
		t.Error("ByHuman should be true")
	}
}

func TestQueue_AddNext_Empty(t *testing.T) {
	q := newTestQueue()

	q.AddNext(single("A"), testSource{})

	wantValues(t, q, "A")
	wantStates(t, q, AddHere)
	if !q.Items()[0].ByHuman {
		t.Error("AddNext entries should always be attributed to a human")
	}
}

func TestQueue_AddNext_TakesAnchorWhenSlotFree(t *testing.T) {
	q := newTestQueue()
	q.Add(single("A"), testSource{}, false) // [A(AddHere)]

	q.AddNext(single("B"), testSource{})

	wantValues(t, q, "A", "B")
	// Position 1 was free, so B takes the anchor. AddNext never clears an
	// existing anchor, so A keeps a stale one; the next Add scans from the
	// front and resolves it.
	wantStates(t, q, AddHere, AddHere)
}

func TestQueue_AddNext_LeavesExistingAnchor(t *testing.T) {
	q := newTestQueue()
	q.Add(single("A"), testSource{}, false)
	q.Add(single("B"), testSource{}, false) // [A, B(AddHere)]

	q.AddNext(single("C"), testSource{})

	wantValues(t, q, "A", "C", "B")
	wantStates(t, q, NoState, NoState, AddHere)
}

func TestQueue_AddNext_NoAnchorAnywhere(t *testing.T) {
	q := newTestQueue()
	q.SetItems([]Item[string, *testGroup, testSource]{
		{Value: single("A")},
		{Value: single("B")},
	})

	q.AddNext(single("C"), testSource{})

	wantValues(t, q, "A", "C", "B")
	wantStates(t, q, NoState, AddHere, NoState)
}

func TestQueue_AddMulti_Empty(t *testing.T) {
	q := newTestQueue()

	q.AddMulti([]ItemType[string, *testGroup]{single("A"), single("B"), single("C")}, testSource{}, false)

	wantValues(t, q, "A", "B", "C")
	wantStates(t, q, NoState, NoState, AddHere)
}

func TestQueue_AddMulti_AfterAnchor(t *testing.T) {
	q := newTestQueue()
	q.SetItems([]Item[string, *testGroup, testSource]{
		{Value: single("A"), State: AddHere},
		{Value: single("B")},
	})

	q.AddMulti([]ItemType[string, *testGroup]{single("X"), single("Y")}, testSource{}, false)

	wantValues(t, q, "A", "X", "Y", "B")
	wantStates(t, q, NoState, NoState, AddHere, NoState)
}

func TestQueue_AddMulti_EmptyBatch(t *testing.T) {
	q := newTestQueue()
	q.Add(single("A"), testSource{}, false)

	q.AddMulti(nil, testSource{}, false)

	wantValues(t, q, "A")
	wantStates(t, q, AddHere)
}

func TestQueue_AddMultiNext(t *testing.T) {
	q := newTestQueue()
	q.SetItems([]Item[string, *testGroup, testSource]{
		{Value: single("A")},
		{Value: single("B")},
	})

	// No anchor, so the batch's last entry takes it.
	q.AddMultiNext([]ItemType[string, *testGroup]{single("X"), single("Y")}, testSource{})

	wantValues(t, q, "A", "X", "Y", "B")
	wantStates(t, q, NoState, NoState, AddHere, NoState)
}

func TestQueue_AddMultiNext_ExistingAnchor(t *testing.T) {
	q := newTestQueue()
	q.SetItems([]Item[string, *testGroup, testSource]{
		{Value: single("A")},
		{Value: single("B"), State: AddHere},
	})

	q.AddMultiNext([]ItemType[string, *testGroup]{single("X"), single("Y")}, testSource{})

	wantValues(t, q, "A", "X", "Y", "B")
	wantStates(t, q, NoState, NoState, NoState, AddHere)
}

func TestQueue_AddMultiNext_EmptyQueue(t *testing.T) {
	q := newTestQueue()

	q.AddMultiNext([]ItemType[string, *testGroup]{single("X"), single("Y")}, testSource{})

	wantValues(t, q, "X", "Y")
	wantStates(t, q, NoState, AddHere)
}

func TestQueue_Insert(t *testing.T) {
	q := newTestQueue()
	q.SetItems([]Item[string, *testGroup, testSource]{
		{Value: single("A")},
		{Value: single("B")},
	})

	if err := q.Insert(1, single("X"), testSource{}, false); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	wantValues(t, q, "A", "X", "B")
	wantStates(t, q, NoState, NoState, NoState)
}

func TestQueue_Insert_AtEnd(t *testing.T) {
	q := newTestQueue()
	q.Add(single("A"), testSource{}, false)

	// One past the end is the append position and must be accepted.
	if err := q.Insert(1, single("B"), testSource{}, false); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	wantValues(t, q, "A", "B")
}

func TestQueue_Insert_AddHere(t *testing.T) {
	q := newTestQueue()
	q.SetItems([]Item[string, *testGroup, testSource]{
		{Value: single("A"), State: AddHere},
		{Value: single("B")},
	})

	if err := q.Insert(2, single("X"), testSource{}, true); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	wantStates(t, q, NoState, NoState, AddHere)
	if countAnchors(q) != 1 {
		t.Errorf("anchors = %d, want 1", countAnchors(q))
	}
}

func TestQueue_Insert_OutOfBounds(t *testing.T) {
	q := newTestQueue()
	q.Add(single("A"), testSource{}, false)

	err := q.Insert(3, single("X"), testSource{}, false)

	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("Insert() error = %v, want OutOfBoundsError", err)
	}
	if oob.Index != 3 || oob.Len != 1 {
		t.Errorf("OutOfBoundsError = %+v, want {Index: 3, Len: 1}", oob)
	}
	wantValues(t, q, "A")
}

func TestQueue_Remove(t *testing.T) {
	q := newTestQueue()
	q.SetItems([]Item[string, *testGroup, testSource]{
		{Value: single("A")},
		{Value: single("B"), State: AddHere},
		{Value: single("C")},
	})

	removed, err := q.Remove(1)
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if s, _ := removed.Value.Single(); s != "B" {
		t.Errorf("removed = %q, want B", s)
	}
	// C inherits the anchor from the removed B.
	wantValues(t, q, "A", "C")
	wantStates(t, q, NoState, AddHere)
}

func TestQueue_Remove_OutOfRange(t *testing.T) {
	q := newTestQueue()

	// Empty queue and index-too-large report the same error kind.
	if _, err := q.Remove(0); !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("Remove(0) on empty queue: error = %v, want ErrEmptyQueue", err)
	}

	q.Add(single("A"), testSource{}, false)
	if _, err := q.Remove(1); !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("Remove(len): error = %v, want ErrEmptyQueue", err)
	}
}

func TestQueue_ClearFamily(t *testing.T) {
	q := newTestQueue()
	q.Add(single("A"), testSource{}, false)
	q.Add(single("B"), testSource{}, false)
	if _, err := q.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", q.Len())
	}
	if q.PlayedLen() != 1 {
		t.Errorf("PlayedLen() after Clear = %d, want 1", q.PlayedLen())
	}

	q.ClearPlayed()
	if q.PlayedLen() != 0 {
		t.Errorf("PlayedLen() after ClearPlayed = %d, want 0", q.PlayedLen())
	}

	q.Add(single("C"), testSource{}, false)
	q.AddNext(single("D"), testSource{})
	if _, err := q.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	q.ClearAll()
	if q.Len() != 0 || q.PlayedLen() != 0 {
		t.Errorf("after ClearAll: Len() = %d, PlayedLen() = %d, want 0, 0", q.Len(), q.PlayedLen())
	}
}

func TestQueue_ClearExcept(t *testing.T) {
	q := newTestQueue()
	q.SetItems([]Item[string, *testGroup, testSource]{
		{Value: single("A")},
		{Value: single("B")},
		{Value: single("C")},
	})

	if err := q.ClearExcept(1); err != nil {
		t.Fatalf("ClearExcept() error = %v", err)
	}

	wantValues(t, q, "B")
	wantStates(t, q, AddHere)
}

func TestQueue_ClearExcept_Duplicates(t *testing.T) {
	q := newTestQueue()
	q.SetItems([]Item[string, *testGroup, testSource]{
		{Value: single("A")},
		{Value: single("B")},
		{Value: single("A")},
	})

	// Retention is by value equality: both copies of A survive.
	if err := q.ClearExcept(0); err != nil {
		t.Fatalf("ClearExcept() error = %v", err)
	}

	wantValues(t, q, "A", "A")
	wantStates(t, q, AddHere, NoState)
}

func TestQueue_ClearExcept_Errors(t *testing.T) {
	q := newTestQueue()

	if err := q.ClearExcept(0); !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("ClearExcept on empty queue: error = %v, want ErrEmptyQueue", err)
	}

	q.Add(single("A"), testSource{}, false)
	err := q.ClearExcept(5)
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("ClearExcept(5): error = %v, want OutOfBoundsError", err)
	}
	if oob.Index != 5 || oob.Len != 1 {
		t.Errorf("OutOfBoundsError = %+v, want {Index: 5, Len: 1}", oob)
	}
}

func TestQueue_Current(t *testing.T) {
	q := newTestQueue()

	if _, err := q.Current(); !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("Current() on empty queue: error = %v, want ErrEmptyQueue", err)
	}

	q.Add(single("A"), testSource{}, false)
	item, err := q.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if s, _ := item.Value.Single(); s != "A" {
		t.Errorf("Current() = %q, want A", s)
	}
}

func TestQueue_Current_Group(t *testing.T) {
	q := newTestQueue()
	q.Add(multi(&testGroup{name: "album"}), testSource{}, false)

	if _, err := q.Current(); !errors.Is(err, ErrGroupUnsupported) {
		t.Errorf("Current() on group front: error = %v, want ErrGroupUnsupported", err)
	}
}

func TestQueue_Next_AnchorRollsForward(t *testing.T) {
	q := newTestQueue()
	q.Add(single("A"), testSource{}, false)
	q.Add(single("B"), testSource{}, false)
	// Anchor sits on B; advance past A first so the front holds it.
	q.Swap(0, 1) // [B(AddHere), A]

	item, err := q.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	if s, _ := item.Value.Single(); s != "A" {
		t.Errorf("Next() = %q, want A", s)
	}
	wantStates(t, q, AddHere)
	played := q.Played()
	if len(played) != 1 || played[0].State != NoState {
		t.Errorf("played = %v, want one entry in NoState", played)
	}
}

func TestQueue_Next_AnchorElsewhereStays(t *testing.T) {
	q := newTestQueue()
	q.SetItems([]Item[string, *testGroup, testSource]{
		{Value: single("A")},
		{Value: single("B")},
		{Value: single("C"), State: AddHere},
	})

	item, err := q.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	if s, _ := item.Value.Single(); s != "B" {
		t.Errorf("Next() = %q, want B", s)
	}
	wantStates(t, q, NoState, AddHere)
}

func TestQueue_Next_Errors(t *testing.T) {
	q := newTestQueue()

	if _, err := q.Next(); !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("Next() on empty queue: error = %v, want ErrEmptyQueue", err)
	}

	q.Add(single("A"), testSource{}, false)
	if _, err := q.Next(); !errors.Is(err, ErrNoNext) {
		t.Errorf("Next() emptying the queue: error = %v, want ErrNoNext", err)
	}
	// The advance itself still happened.
	if q.PlayedLen() != 1 {
		t.Errorf("PlayedLen() = %d, want 1", q.PlayedLen())
	}
}

func TestQueue_Next_Group(t *testing.T) {
	q := newTestQueue()
	q.Add(multi(&testGroup{name: "album"}), testSource{}, false)

	if _, err := q.Next(); !errors.Is(err, ErrGroupUnsupported) {
		t.Errorf("Next() on group front: error = %v, want ErrGroupUnsupported", err)
	}
	// Failed navigation must not mutate either sequence.
	if q.Len() != 1 || q.PlayedLen() != 0 {
		t.Errorf("after failed Next: Len() = %d, PlayedLen() = %d, want 1, 0", q.Len(), q.PlayedLen())
	}
}

func TestQueue_Prev(t *testing.T) {
	q := newTestQueue()

	if _, err := q.Prev(); !errors.Is(err, ErrEmptyPlayed) {
		t.Errorf("Prev() with empty history: error = %v, want ErrEmptyPlayed", err)
	}

	q.Add(single("A"), testSource{}, false)
	q.Add(single("B"), testSource{}, false)
	q.Swap(0, 1) // [B(AddHere), A]
	if _, err := q.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	item, err := q.Prev()
	if err != nil {
		t.Fatalf("Prev() error = %v", err)
	}
	if s, _ := item.Value.Single(); s != "B" {
		t.Errorf("Prev() = %q, want B", s)
	}
	if q.PlayedLen() != 0 {
		t.Errorf("PlayedLen() = %d, want 0", q.PlayedLen())
	}
}

func TestQueue_RoundTrip(t *testing.T) {
	q := newTestQueue()
	q.Add(single("A"), testSource{id: 1}, false)
	q.Add(single("B"), testSource{id: 2}, true)
	q.AddNext(single("C"), testSource{id: 3})

	before := q.Items()

	for range 2 {
		if _, err := q.Next(); err != nil {
			t.Fatalf("Next() error = %v", err)
		}
	}
	for range 2 {
		if _, err := q.Prev(); err != nil {
			t.Fatalf("Prev() error = %v", err)
		}
	}

	after := q.Items()
	if len(after) != len(before) {
		t.Fatalf("length after round-trip = %d, want %d", len(after), len(before))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("item %d after round-trip = %+v, want %+v", i, after[i], before[i])
		}
	}
	if q.PlayedLen() != 0 {
		t.Errorf("PlayedLen() = %d, want 0", q.PlayedLen())
	}
}

func TestQueue_MoveTo(t *testing.T) {
	q := newTestQueue()
	q.SetItems([]Item[string, *testGroup, testSource]{
		{Value: single("A"), State: AddHere},
		{Value: single("B")},
		{Value: single("C")},
	})

	if err := q.MoveTo(2); err != nil {
		t.Fatalf("MoveTo() error = %v", err)
	}

	wantValues(t, q, "C")
	// The anchor rode the front forward as A, then B, were popped.
	wantStates(t, q, AddHere)
	if q.PlayedLen() != 2 {
		t.Errorf("PlayedLen() = %d, want 2", q.PlayedLen())
	}
}

func TestQueue_MoveTo_Conservation(t *testing.T) {
	q := newTestQueue()
	q.SetItems([]Item[string, *testGroup, testSource]{
		{Value: single("A")},
		{Value: single("B")},
		{Value: single("C")},
		{Value: single("D")},
	})

	if err := q.MoveTo(2); err != nil {
		t.Fatalf("MoveTo() error = %v", err)
	}

	if total := q.Len() + q.PlayedLen(); total != 4 {
		t.Errorf("Len()+PlayedLen() = %d, want 4", total)
	}
}

func TestQueue_MoveTo_DuplicateStopsEarly(t *testing.T) {
	q := newTestQueue()
	q.SetItems([]Item[string, *testGroup, testSource]{
		{Value: single("A")},
		{Value: single("B")},
		{Value: single("A")},
	})

	// The target at index 2 is value-equal to the front, so the traversal
	// stops immediately. Matching is by value, not position.
	if err := q.MoveTo(2); err != nil {
		t.Fatalf("MoveTo() error = %v", err)
	}

	wantValues(t, q, "A", "B", "A")
	if q.PlayedLen() != 0 {
		t.Errorf("PlayedLen() = %d, want 0", q.PlayedLen())
	}
}

func TestQueue_MoveTo_Errors(t *testing.T) {
	q := newTestQueue()

	if err := q.MoveTo(0); !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("MoveTo on empty queue: error = %v, want ErrEmptyQueue", err)
	}

	q.Add(single("A"), testSource{}, false)
	if err := q.MoveTo(4); !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("MoveTo out of range: error = %v, want ErrEmptyQueue", err)
	}

	q.Add(multi(&testGroup{name: "album"}), testSource{}, false)
	if err := q.MoveTo(1); !errors.Is(err, ErrGroupUnsupported) {
		t.Errorf("MoveTo group target: error = %v, want ErrGroupUnsupported", err)
	}
}

func TestQueue_Swap(t *testing.T) {
	q := newTestQueue()
	q.Add(single("A"), testSource{}, false)
	q.Add(single("B"), testSource{}, false)

	q.Swap(0, 1)

	wantValues(t, q, "B", "A")
	// State travels with the entry: no anchor repair needed.
	wantStates(t, q, AddHere, NoState)
}

func TestQueue_Move(t *testing.T) {
	q := newTestQueue()
	q.SetItems([]Item[string, *testGroup, testSource]{
		{Value: single("A"), State: AddHere},
		{Value: single("B")},
		{Value: single("C")},
	})

	q.Move(0, 2)

	wantValues(t, q, "B", "C", "A")
	wantStates(t, q, NoState, NoState, AddHere)
}

func TestQueue_Move_SamePosition(t *testing.T) {
	q := newTestQueue()
	q.Add(single("A"), testSource{}, false)

	q.Move(0, 0)

	// The entry is duplicated: removal is skipped when from == to.
	wantValues(t, q, "A", "A")
}

func TestQueue_TrimPlayed(t *testing.T) {
	q := newTestQueue()
	for _, s := range []string{"A", "B", "C", "D"} {
		q.Add(single(s), testSource{}, false)
	}
	for range 3 {
		if _, err := q.Next(); err != nil {
			t.Fatalf("Next() error = %v", err)
		}
	}

	q.TrimPlayed(2)

	played := q.Played()
	if len(played) != 2 {
		t.Fatalf("PlayedLen() = %d, want 2", len(played))
	}
	// Oldest-first eviction keeps the most recent entries in order.
	if s, _ := played[0].Value.Single(); s != "B" {
		t.Errorf("played[0] = %q, want B", s)
	}
	if s, _ := played[1].Value.Single(); s != "C" {
		t.Errorf("played[1] = %q, want C", s)
	}

	q.TrimPlayed(0)
	if q.PlayedLen() != 0 {
		t.Errorf("PlayedLen() after TrimPlayed(0) = %d, want 0", q.PlayedLen())
	}
}

func TestQueue_AnchorUniqueness(t *testing.T) {
	q := newTestQueue()

	q.Add(single("A"), testSource{}, false)
	q.AddMulti([]ItemType[string, *testGroup]{single("B"), single("C")}, testSource{}, false)
	q.Add(single("D"), testSource{}, true)
	q.AddMultiNext([]ItemType[string, *testGroup]{single("E")}, testSource{})
	if err := q.Insert(0, single("F"), testSource{}, true); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if countAnchors(q) != 1 {
		t.Errorf("anchors = %d, want 1", countAnchors(q))
	}
}

func TestQueue_LengthConservation(t *testing.T) {
	q := newTestQueue()
	adds := 0

	q.Add(single("A"), testSource{}, false)
	adds++
	q.AddNext(single("B"), testSource{})
	adds++
	if err := q.Insert(1, single("C"), testSource{}, false); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	adds++

	if q.Len() != adds {
		t.Fatalf("Len() = %d, want %d", q.Len(), adds)
	}

	if _, err := q.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if total := q.Len() + q.PlayedLen(); total != adds {
		t.Errorf("Len()+PlayedLen() = %d, want %d", total, adds)
	}
}

// TestQueue_Scenario walks the canonical anchor interaction end to end.
func TestQueue_Scenario(t *testing.T) {
	q := newTestQueue()

	q.Add(single("A"), testSource{}, false)
	wantValues(t, q, "A")
	wantStates(t, q, AddHere)

	q.Add(single("B"), testSource{}, false)
	wantValues(t, q, "A", "B")
	wantStates(t, q, NoState, AddHere)

	// An anchor exists and position 1 is occupied: C slots in without
	// taking the anchor.
	q.AddNext(single("C"), testSource{})
	wantValues(t, q, "A", "C", "B")
	wantStates(t, q, NoState, NoState, AddHere)

	// Front is A with the anchor elsewhere: no transfer on advance.
	item, err := q.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if s, _ := item.Value.Single(); s != "C" {
		t.Errorf("Next() = %q, want C", s)
	}
	wantValues(t, q, "C", "B")
	wantStates(t, q, NoState, AddHere)
	if q.PlayedLen() != 1 {
		t.Fatalf("PlayedLen() = %d, want 1", q.PlayedLen())
	}

	item, err = q.Prev()
	if err != nil {
		t.Fatalf("Prev() error = %v", err)
	}
	if s, _ := item.Value.Single(); s != "A" {
		t.Errorf("Prev() = %q, want A", s)
	}
	wantValues(t, q, "A", "C", "B")
	wantStates(t, q, NoState, NoState, AddHere)
	if q.PlayedLen() != 0 {
		t.Errorf("PlayedLen() = %d, want 0", q.PlayedLen())
	}
}
