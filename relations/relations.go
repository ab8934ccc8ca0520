package relations

import (
	"errors"
	"fmt"

	"github.com/theoremus-urban-solutions/transit-model/collection"
)

// ErrReferentialIntegrity reports a foreign key naming an identifier absent
// from the target collection.
var ErrReferentialIntegrity = errors.New("referential integrity violation")

// Relation is a precomputed bidirectional mapping between the indices of
// two entity types. Implementations materialize both directions at
// construction; queries never fail.
type Relation[F, T any] interface {
	// ForwardDomain returns every index of the from side that has at least
	// one correspondent, ordered by position.
	ForwardDomain() []collection.Idx[F]
	// CorrespondingForward returns the union of the related sets of every
	// index in from.
	CorrespondingForward(from collection.IdxSet[F]) collection.IdxSet[T]
	// CorrespondingBackward returns the union of the related sets of every
	// index in to.
	CorrespondingBackward(to collection.IdxSet[T]) collection.IdxSet[F]
}

// OneToMany is a primitive relation built from a foreign-key field on the
// right collection pointing at the left collection's identifiers. Backward
// is one-to-one: every right entity has exactly one left correspondent.
type OneToMany[L, R collection.Identifier] struct {
	name     string
	forward  map[collection.Idx[L]]collection.IdxSet[R]
	backward map[collection.Idx[R]]collection.Idx[L]
}

// NewOneToMany scans right and resolves foreignKey against left's
// identifiers. An unresolved key fails with ErrReferentialIntegrity
// carrying the relation name and the offending id.
func NewOneToMany[L, R collection.Identifier](
	left *collection.CollectionWithID[L],
	right *collection.CollectionWithID[R],
	name string,
	foreignKey func(*R) string,
) (*OneToMany[L, R], error) {
	rel := &OneToMany[L, R]{
		name:     name,
		forward:  map[collection.Idx[L]]collection.IdxSet[R]{},
		backward: map[collection.Idx[R]]collection.Idx[L]{},
	}
	for rIdx, r := range right.All() {
		key := foreignKey(r)
		lIdx, ok := left.GetIdx(key)
		if !ok {
			return nil, fmt.Errorf("%w in %s: unknown id %q", ErrReferentialIntegrity, name, key)
		}
		set, ok := rel.forward[lIdx]
		if !ok {
			set = collection.NewIdxSet[R]()
			rel.forward[lIdx] = set
		}
		set.Add(rIdx)
		rel.backward[rIdx] = lIdx
	}
	return rel, nil
}

// Name returns the relation name used in diagnostics.
func (r *OneToMany[L, R]) Name() string { return r.name }

// ForwardDomain returns every left index with at least one right
// correspondent, ordered by position.
func (r *OneToMany[L, R]) ForwardDomain() []collection.Idx[L] {
	domain := collection.NewIdxSet[L]()
	for lIdx := range r.forward {
		domain.Add(lIdx)
	}
	return domain.Slice()
}

// CorrespondingForward returns every right index related to the given left
// indices.
func (r *OneToMany[L, R]) CorrespondingForward(from collection.IdxSet[L]) collection.IdxSet[R] {
	out := collection.NewIdxSet[R]()
	for lIdx := range from {
		out.Union(r.forward[lIdx])
	}
	return out
}

// CorrespondingBackward returns the left index of every given right index.
func (r *OneToMany[L, R]) CorrespondingBackward(to collection.IdxSet[R]) collection.IdxSet[L] {
	out := collection.NewIdxSet[L]()
	for rIdx := range to {
		if lIdx, ok := r.backward[rIdx]; ok {
			out.Add(lIdx)
		}
	}
	return out
}

// ManyToMany is a relation whose two directions are arbitrary index sets,
// either built directly from a forward map or derived by composing other
// relations.
type ManyToMany[A, B any] struct {
	forward  map[collection.Idx[A]]collection.IdxSet[B]
	backward map[collection.Idx[B]]collection.IdxSet[A]
}

// ManyToManyFromForward builds a relation from an explicit forward map,
// deriving the backward map immediately. It takes ownership of forward.
func ManyToManyFromForward[A, B any](forward map[collection.Idx[A]]collection.IdxSet[B]) *ManyToMany[A, B] {
	rel := &ManyToMany[A, B]{
		forward:  forward,
		backward: map[collection.Idx[B]]collection.IdxSet[A]{},
	}
	for aIdx, bs := range forward {
		for bIdx := range bs {
			set, ok := rel.backward[bIdx]
			if !ok {
				set = collection.NewIdxSet[A]()
				rel.backward[bIdx] = set
			}
			set.Add(aIdx)
		}
	}
	return rel
}

// ManyToManyFromChain composes A↔M and M↔B into the transitive A↔B: every
// B reachable from an A through any of its intermediates.
func ManyToManyFromChain[A, M, B any](am Relation[A, M], mb Relation[M, B]) *ManyToMany[A, B] {
	forward := map[collection.Idx[A]]collection.IdxSet[B]{}
	for _, aIdx := range am.ForwardDomain() {
		ms := am.CorrespondingForward(collection.NewIdxSet(aIdx))
		bs := mb.CorrespondingForward(ms)
		if bs.Len() > 0 {
			forward[aIdx] = bs
		}
	}
	return ManyToManyFromForward(forward)
}

// ManyToManyFromSink joins A↔M and B↔M on the shared intermediate: every A
// and B related to a common M become correspondents.
func ManyToManyFromSink[A, M, B any](am Relation[A, M], bm Relation[B, M]) *ManyToMany[A, B] {
	forward := map[collection.Idx[A]]collection.IdxSet[B]{}
	for _, aIdx := range am.ForwardDomain() {
		ms := am.CorrespondingForward(collection.NewIdxSet(aIdx))
		bs := bm.CorrespondingBackward(ms)
		if bs.Len() > 0 {
			forward[aIdx] = bs
		}
	}
	return ManyToManyFromForward(forward)
}

// ForwardDomain returns every from-side index with at least one
// correspondent, ordered by position.
func (r *ManyToMany[A, B]) ForwardDomain() []collection.Idx[A] {
	domain := collection.NewIdxSet[A]()
	for aIdx := range r.forward {
		domain.Add(aIdx)
	}
	return domain.Slice()
}

// CorrespondingForward returns every to-side index related to the given
// from-side indices.
func (r *ManyToMany[A, B]) CorrespondingForward(from collection.IdxSet[A]) collection.IdxSet[B] {
	out := collection.NewIdxSet[B]()
	for aIdx := range from {
		out.Union(r.forward[aIdx])
	}
	return out
}

// CorrespondingBackward returns every from-side index related to the given
// to-side indices.
func (r *ManyToMany[A, B]) CorrespondingBackward(to collection.IdxSet[B]) collection.IdxSet[A] {
	out := collection.NewIdxSet[A]()
	for bIdx := range to {
		out.Union(r.backward[bIdx])
	}
	return out
}
