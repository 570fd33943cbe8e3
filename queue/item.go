package queue

// State marks the role of an entry within the pending queue.
type State uint8

const (
	// NoState is the default, inert state.
	NoState State = iota
	// Played and First are reserved for loop-around handling, which is
	// not wired in yet. They are stored and compared but never assigned
	// by any operation.
	Played
	First
	// AddHere marks the insertion anchor: the entry after which the next
	// explicit add lands.
	AddHere
)

func (s State) String() string {
	switch s {
	case NoState:
		return "none"
	case Played:
		return "played"
	case First:
		return "first"
	case AddHere:
		return "addhere"
	default:
		return "unknown"
	}
}

// Group is the multi-item capability: a single queue entry standing for
// several singular items. The engine stores and compares groups as opaque
// payloads; Tracks exists for callers (expansion during navigation is not
// supported yet). Implement it on a pointer type so the payload stays
// comparable.
type Group[T any] interface {
	comparable
	Tracks() []T
}

// Location is the provenance capability: an opaque tag recording where an
// entry came from. The engine only stores, copies, and compares it.
type Location interface {
	comparable
}

type itemKind uint8

const (
	kindSingle itemKind = iota
	kindGroup
)

// ItemType is a closed two-variant sum: either one singular item or one
// group. Build values with Single or Multi; the zero value is a zero
// singular item. Comparable, so == is structural equality.
type ItemType[T comparable, U Group[T]] struct {
	kind   itemKind
	single T
	group  U
}

// Single wraps one singular item.
func Single[T comparable, U Group[T]](item T) ItemType[T, U] {
	return ItemType[T, U]{kind: kindSingle, single: item}
}

// Multi wraps one group payload.
func Multi[T comparable, U Group[T]](group U) ItemType[T, U] {
	return ItemType[T, U]{kind: kindGroup, group: group}
}

// IsGroup returns true if the value holds a group payload.
func (it ItemType[T, U]) IsGroup() bool {
	return it.kind == kindGroup
}

// Single returns the singular payload. ok is false for group values.
func (it ItemType[T, U]) Single() (T, bool) {
	if it.kind != kindSingle {
		var zero T
		return zero, false
	}
	return it.single, true
}

// Group returns the group payload. ok is false for singular values.
func (it ItemType[T, U]) Group() (U, bool) {
	if it.kind != kindGroup {
		var zero U
		return zero, false
	}
	return it.group, true
}

// Item is one queue entry: a payload plus its pending-queue state, an
// optional provenance tag (zero value when absent), and whether a person
// rather than an automated process queued it.
//
// Items carry no identity beyond their value: two entries with equal
// payload, state, source, and flag are indistinguishable to the engine.
type Item[T comparable, U Group[T], L Location] struct {
	Value   ItemType[T, U]
	State   State
	Source  L
	ByHuman bool
}

// NewItem builds an entry in the default state, not attributed to a human.
func NewItem[T comparable, U Group[T], L Location](value ItemType[T, U], source L) Item[T, U, L] {
	return Item[T, U, L]{
		Value:  value,
		State:  NoState,
		Source: source,
	}
}
