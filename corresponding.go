package transitmodel

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/theoremus-urban-solutions/transit-model/collection"
	"github.com/theoremus-urban-solutions/transit-model/relations"
)

// The generic cross-type lookup is dispatched through an explicit registry
// keyed by (from, to) entity type pairs. Every relation registers both of
// its directions at model construction. Primitive and direct relations
// carry weight 1.0; derived shortcuts that could also be reached by
// composing two exposed relations carry weight 1.9, so a lower-weight path
// wins if one is ever registered for the same pair.

const (
	weightPrimitive = 1.0
	weightShortcut  = 1.9
)

type typePair struct {
	from reflect.Type
	to   reflect.Type
}

type correspondence struct {
	weight float64
	lookup any // func(collection.IdxSet[A]) collection.IdxSet[B]
}

func typeOf[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

func registerRelation[A, B any](m *Model, rel relations.Relation[A, B], weight float64) {
	forward := typePair{from: typeOf[A](), to: typeOf[B]()}
	m.registry[forward] = append(m.registry[forward], correspondence{
		weight: weight,
		lookup: func(from collection.IdxSet[A]) collection.IdxSet[B] {
			return rel.CorrespondingForward(from)
		},
	})
	backward := typePair{from: typeOf[B](), to: typeOf[A]()}
	m.registry[backward] = append(m.registry[backward], correspondence{
		weight: weight,
		lookup: func(to collection.IdxSet[B]) collection.IdxSet[A] {
			return rel.CorrespondingBackward(to)
		},
	})
}

func (m *Model) sortRegistry() {
	for _, entries := range m.registry {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].weight < entries[j].weight
		})
	}
}

// GetCorresponding returns every B related to the given set of A indices,
// following the lowest-weight relation registered for the (A, B) pair in
// either direction. An empty input yields an empty set.
//
// The set of supported pairs is fixed by the schema; asking for an
// unregistered pair is programmer error and panics.
func GetCorresponding[A, B any](m *Model, from collection.IdxSet[A]) collection.IdxSet[B] {
	pair := typePair{from: typeOf[A](), to: typeOf[B]()}
	entries := m.registry[pair]
	if len(entries) == 0 {
		panic(fmt.Sprintf("transitmodel: no relation registered between %s and %s", pair.from, pair.to))
	}
	lookup := entries[0].lookup.(func(collection.IdxSet[A]) collection.IdxSet[B])
	return lookup(from)
}
