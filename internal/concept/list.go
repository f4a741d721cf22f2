package concept

import (
	"iter"

	"shape-generator/internal/meta"
)

// Entry is a concept with its priority.
type Entry[I any] struct {
	Concept  Concept[I]
	Priority int
}

// List is an immutable sequence of entries sorted by descending priority.
// The zero List is empty and ready to use.
type List[I any] struct {
	entries meta.Seq[Entry[I]]
}

// Build returns a list holding c alone.
func Build[I any](c Concept[I], priority int) List[I] {
	return List[I]{}.Add(c, priority)
}

// Add returns a new list with c inserted at its priority. An entry goes
// ahead of every entry of equal priority already present, so among ties the
// concept added last is tried first.
func (l List[I]) Add(c Concept[I], priority int) List[I] {
	return List[I]{entries: meta.Insert(l.entries, Entry[I]{Concept: c, Priority: priority}, atLeast[I])}
}

// FromEntries builds a list from entries in the given order. Entries of
// equal priority keep that order.
func FromEntries[I any](entries ...Entry[I]) List[I] {
	return List[I]{entries: meta.Sort(meta.Of(entries...), outranks[I])}
}

func outranks[I any](a, b Entry[I]) bool {
	return a.Priority > b.Priority
}

func atLeast[I any](a, b Entry[I]) bool {
	return a.Priority >= b.Priority
}

// Len returns the number of entries.
func (l List[I]) Len() int {
	return l.entries.Len()
}

// Entries returns a copy of the entries in priority order.
func (l List[I]) Entries() []Entry[I] {
	return l.entries.Slice()
}

// All iterates over the entries in priority order.
func (l List[I]) All() iter.Seq2[int, Entry[I]] {
	return l.entries.All()
}

// Names returns the concept names in priority order.
func (l List[I]) Names() []string {
	return meta.Map(l.entries, func(e Entry[I]) string { return e.Concept.Name() }).Slice()
}
