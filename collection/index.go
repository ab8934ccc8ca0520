package collection

import "sort"

// Idx is an opaque typed handle to a position inside one collection.
// The zero value is the first position of its collection; an Idx only has
// meaning together with the collection that produced it.
type Idx[T any] struct {
	pos uint32
}

// Pos returns the underlying position. It is mainly useful for diagnostics
// and deterministic ordering; positions equal insertion order.
func (i Idx[T]) Pos() uint32 { return i.pos }

func newIdx[T any](pos int) Idx[T] { return Idx[T]{pos: uint32(pos)} }

// IdxSet is an unordered, deduplicated set of indices of one entity type.
type IdxSet[T any] map[Idx[T]]struct{}

// NewIdxSet builds a set from the given indices.
func NewIdxSet[T any](idxs ...Idx[T]) IdxSet[T] {
	s := make(IdxSet[T], len(idxs))
	for _, idx := range idxs {
		s[idx] = struct{}{}
	}
	return s
}

// Add inserts idx into the set.
func (s IdxSet[T]) Add(idx Idx[T]) { s[idx] = struct{}{} }

// Contains reports whether idx is in the set.
func (s IdxSet[T]) Contains(idx Idx[T]) bool {
	_, ok := s[idx]
	return ok
}

// Union inserts every index of other into the set.
func (s IdxSet[T]) Union(other IdxSet[T]) {
	for idx := range other {
		s[idx] = struct{}{}
	}
}

// Len returns the number of indices in the set.
func (s IdxSet[T]) Len() int { return len(s) }

// Slice returns the indices ordered by position. Iteration over the map
// itself is randomized; tests and any output path should use Slice.
func (s IdxSet[T]) Slice() []Idx[T] {
	out := make([]Idx[T], 0, len(s))
	for idx := range s {
		out = append(out, idx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].pos < out[j].pos })
	return out
}
