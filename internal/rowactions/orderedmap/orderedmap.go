// Package orderedmap provides a string-keyed list that preserves insertion
// order and supports positional splicing relative to an existing key.
//
// Go maps do not keep key order, so both the action registry and the rendered
// row-action lists use this type wherever relative position matters.
package orderedmap

// Entry is a single key/value pair in a List.
type Entry[V any] struct {
	Key   string
	Value V
}

// List is an insertion-ordered sequence of key/value pairs. Keys are unique;
// setting an existing key replaces the value in place.
//
// The zero value is an empty list ready for use.
type List[V any] struct {
	entries []Entry[V]
}

// New returns an empty list with capacity for n entries.
func New[V any](n int) *List[V] {
	return &List[V]{entries: make([]Entry[V], 0, n)}
}

// Len returns the number of entries.
func (l *List[V]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Get returns the value stored under key.
func (l *List[V]) Get(key string) (V, bool) {
	if l != nil {
		for _, entry := range l.entries {
			if entry.Key == key {
				return entry.Value, true
			}
		}
	}
	var zero V
	return zero, false
}

// Set stores value under key, replacing in place when the key already exists
// and appending at the end otherwise.
func (l *List[V]) Set(key string, value V) {
	for i, entry := range l.entries {
		if entry.Key == key {
			l.entries[i].Value = value
			return
		}
	}
	l.entries = append(l.entries, Entry[V]{Key: key, Value: value})
}

// Delete removes key from the list. Missing keys are a no-op.
func (l *List[V]) Delete(key string) {
	if l == nil {
		return
	}
	for i, entry := range l.entries {
		if entry.Key == key {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

// Keys returns the keys in order.
func (l *List[V]) Keys() []string {
	if l == nil {
		return nil
	}
	keys := make([]string, len(l.entries))
	for i, entry := range l.entries {
		keys[i] = entry.Key
	}
	return keys
}

// Entries returns a copy of the ordered entries.
func (l *List[V]) Entries() []Entry[V] {
	if l == nil {
		return nil
	}
	out := make([]Entry[V], len(l.entries))
	copy(out, l.entries)
	return out
}

// InsertAfter splices entries immediately after refKey, preserving the
// relative order of everything else. When refKey is absent the entries are
// appended at the end; callers cannot assume the reference action still
// exists in a host-supplied list.
func (l *List[V]) InsertAfter(refKey string, entries ...Entry[V]) {
	l.spliceAt(l.indexAfter(refKey), entries)
}

// InsertBefore splices entries immediately before refKey. When refKey is
// absent the entries are prepended at the start.
func (l *List[V]) InsertBefore(refKey string, entries ...Entry[V]) {
	index := 0
	for i, entry := range l.entries {
		if entry.Key == refKey {
			index = i
			break
		}
	}
	l.spliceAt(index, entries)
}

func (l *List[V]) indexAfter(refKey string) int {
	for i, entry := range l.entries {
		if entry.Key == refKey {
			return i + 1
		}
	}
	return len(l.entries)
}

func (l *List[V]) spliceAt(index int, entries []Entry[V]) {
	for _, incoming := range entries {
		for i, entry := range l.entries {
			if entry.Key == incoming.Key {
				l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
				if i < index {
					index--
				}
				break
			}
		}
		if index > len(l.entries) {
			index = len(l.entries)
		}
		spliced := make([]Entry[V], 0, len(l.entries)+1)
		spliced = append(spliced, l.entries[:index]...)
		spliced = append(spliced, incoming)
		spliced = append(spliced, l.entries[index:]...)
		l.entries = spliced
		index++
	}
}
