package meta

import (
	"iter"
	"slices"
)

// Seq is an immutable ordered sequence. The zero value is the empty sequence.
type Seq[E any] struct {
	elems []E
}

// Of returns a sequence holding a copy of elems.
func Of[E any](elems ...E) Seq[E] {
	return Seq[E]{elems: slices.Clone(elems)}
}

// Len returns the number of elements.
func (s Seq[E]) Len() int {
	return len(s.elems)
}

// IsEmpty returns true if the sequence has no elements.
func (s Seq[E]) IsEmpty() bool {
	return len(s.elems) == 0
}

// At returns the i-th element. It panics if i is out of range.
func (s Seq[E]) At(i int) E {
	return s.elems[i]
}

// All iterates over index/element pairs in order.
func (s Seq[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, e := range s.elems {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Values iterates over the elements in order.
func (s Seq[E]) Values() iter.Seq[E] {
	return slices.Values(s.elems)
}

// Slice returns a copy of the elements.
func (s Seq[E]) Slice() []E {
	return slices.Clone(s.elems)
}

// Append returns a new sequence with e added at the end.
func Append[E any](s Seq[E], e E) Seq[E] {
	out := make([]E, 0, len(s.elems)+1)
	out = append(out, s.elems...)
	out = append(out, e)

	return Seq[E]{elems: out}
}

// Concat returns a new sequence holding the elements of a followed by b.
func Concat[E any](a, b Seq[E]) Seq[E] {
	return Seq[E]{elems: slices.Concat(a.elems, b.elems)}
}

// Insert places e into s, which is assumed sorted under before.
//
// The element is inserted just before the first element next for which
// before(e, next) holds, or appended when there is none. Elements equal to
// e (before is false both ways) stay ahead of it.
func Insert[E any](s Seq[E], e E, before func(e, next E) bool) Seq[E] {
	out := make([]E, 0, len(s.elems)+1)

	pos := len(s.elems)
	for i, next := range s.elems {
		if before(e, next) {
			pos = i
			break
		}
	}

	out = append(out, s.elems[:pos]...)
	out = append(out, e)
	out = append(out, s.elems[pos:]...)

	return Seq[E]{elems: out}
}

// Sort returns s ordered by the strict comparator before using insertion
// sort. Each element, taken in input order, is inserted into the sorted
// prefix with Insert, so elements that compare equal keep their input order.
func Sort[E any](s Seq[E], before func(a, b E) bool) Seq[E] {
	var sorted Seq[E]
	for _, e := range s.elems {
		sorted = Insert(sorted, e, before)
	}

	return sorted
}

// Map applies f to every element, preserving length and order.
func Map[E, F any](s Seq[E], f func(E) F) Seq[F] {
	if len(s.elems) == 0 {
		return Seq[F]{}
	}

	out := make([]F, len(s.elems))
	for i, e := range s.elems {
		out[i] = f(e)
	}

	return Seq[F]{elems: out}
}

// FindFirstOr returns the leftmost element satisfying pred, or def when no
// element does. The empty sequence always yields def.
func FindFirstOr[E any](s Seq[E], pred func(E) bool, def E) E {
	e, ok := FindFirst(s, pred)
	if !ok {
		return def
	}

	return e
}

// FindFirst returns the leftmost element satisfying pred and true, or the
// zero value and false.
func FindFirst[E any](s Seq[E], pred func(E) bool) (E, bool) {
	for _, e := range s.elems {
		if pred(e) {
			return e, true
		}
	}

	var zero E

	return zero, false
}

// Equal reports whether a and b have the same length and pairwise equal
// elements under eq.
func Equal[E any](a, b Seq[E], eq func(x, y E) bool) bool {
	return slices.EqualFunc(a.elems, b.elems, eq)
}
