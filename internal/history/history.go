// Package history implements a linear visit history with a movable
// pointer, the navigation model behind the browser's back/forward
// controls. Pushing while the pointer sits mid-list discards the
// forward tail before appending, so forward entries never survive a
// new visit.
package history

// History holds an ordered list of visited entries and the index of the
// current one. The zero value is empty and unusable until the first Push.
type History[T any] struct {
	entries []T
	idx     int
}

// New returns a history seeded with a first entry. The pointer starts on it.
func New[T any](first T) *History[T] {
	return &History[T]{entries: []T{first}}
}

// Push truncates everything after the current entry, appends e, and moves
// the pointer onto it.
func (h *History[T]) Push(e T) {
	h.idx++
	h.entries = append(h.entries[:h.idx], e)
}

// Current returns the entry under the pointer.
func (h *History[T]) Current() T {
	return h.entries[h.idx]
}

// Back moves the pointer one entry toward the start. It reports false, and
// moves nothing, when already at the first entry.
func (h *History[T]) Back() bool {
	if h.idx == 0 {
		return false
	}
	h.idx--
	return true
}

// Forward moves the pointer one entry toward the end. It reports false, and
// moves nothing, when already at the last entry.
func (h *History[T]) Forward() bool {
	if h.idx >= len(h.entries)-1 {
		return false
	}
	h.idx++
	return true
}

// JumpTo moves the pointer to an absolute index. Out-of-range indices are
// rejected and leave the pointer in place.
func (h *History[T]) JumpTo(i int) bool {
	if i < 0 || i >= len(h.entries) {
		return false
	}
	h.idx = i
	return true
}

// CanBack reports whether Back would move the pointer.
func (h *History[T]) CanBack() bool { return h.idx > 0 }

// CanForward reports whether Forward would move the pointer.
func (h *History[T]) CanForward() bool { return h.idx < len(h.entries)-1 }

// Index returns the pointer position.
func (h *History[T]) Index() int { return h.idx }

// Len returns the number of stored entries.
func (h *History[T]) Len() int { return len(h.entries) }

// Entries returns the stored entries oldest first. The slice is shared;
// callers must not mutate it.
func (h *History[T]) Entries() []T { return h.entries }
