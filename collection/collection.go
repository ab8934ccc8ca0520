package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
)

// ErrDuplicateID reports an insert or merge whose identifier already exists
// in the target collection.
var ErrDuplicateID = errors.New("duplicate identifier")

// Identifier is implemented by entities carrying a unique string identifier.
type Identifier interface {
	ObjectID() string
}

// CollectionWithID is an ordered arena of identified entities with an O(1)
// id lookup. Insertion order is stable and removal is not supported.
type CollectionWithID[T Identifier] struct {
	objects []T
	idToIdx map[string]Idx[T]
}

// NewCollectionWithID builds a collection from objects, in order. It fails
// with ErrDuplicateID if two objects share an identifier.
func NewCollectionWithID[T Identifier](objects []T) (*CollectionWithID[T], error) {
	c := &CollectionWithID[T]{
		objects: make([]T, 0, len(objects)),
		idToIdx: make(map[string]Idx[T], len(objects)),
	}
	for _, obj := range objects {
		if _, err := c.Push(obj); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *CollectionWithID[T]) init() {
	if c.idToIdx == nil {
		c.idToIdx = map[string]Idx[T]{}
	}
}

// Push appends obj and returns its index. If the identifier already exists
// the collection is left unchanged and ErrDuplicateID is returned.
func (c *CollectionWithID[T]) Push(obj T) (Idx[T], error) {
	c.init()
	id := obj.ObjectID()
	if _, exists := c.idToIdx[id]; exists {
		return Idx[T]{}, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	idx := newIdx[T](len(c.objects))
	c.objects = append(c.objects, obj)
	c.idToIdx[id] = idx
	return idx, nil
}

// Get returns the entity with the given identifier.
// The pointer is valid until the next mutation of the collection.
func (c *CollectionWithID[T]) Get(id string) (*T, bool) {
	idx, ok := c.idToIdx[id]
	if !ok {
		return nil, false
	}
	return &c.objects[idx.pos], true
}

// GetIdx returns the index of the entity with the given identifier.
func (c *CollectionWithID[T]) GetIdx(id string) (Idx[T], bool) {
	idx, ok := c.idToIdx[id]
	return idx, ok
}

// MustGet returns the entity at idx. The index must come from this
// collection; anything else is programmer error.
func (c *CollectionWithID[T]) MustGet(idx Idx[T]) *T {
	return &c.objects[idx.pos]
}

// Len returns the number of entities in the collection.
func (c *CollectionWithID[T]) Len() int { return len(c.objects) }

// All iterates over the collection in insertion order.
func (c *CollectionWithID[T]) All() iter.Seq2[Idx[T], *T] {
	return func(yield func(Idx[T], *T) bool) {
		for i := range c.objects {
			if !yield(newIdx[T](i), &c.objects[i]) {
				return
			}
		}
	}
}

// Merge appends every entity of other. The first identifier collision stops
// the merge and returns ErrDuplicateID with the offending id; entities
// appended before the collision stay appended.
func (c *CollectionWithID[T]) Merge(other *CollectionWithID[T]) error {
	if other == nil {
		return nil
	}
	for _, obj := range other.objects {
		if _, err := c.Push(obj); err != nil {
			return err
		}
	}
	return nil
}

// Take extracts every entity in insertion order and resets the collection.
// Combined with NewCollectionWithID it is the bulk-replace path used when
// every entity must be rewritten, for example global id prefixing.
func (c *CollectionWithID[T]) Take() []T {
	objects := c.objects
	c.objects = nil
	c.idToIdx = map[string]Idx[T]{}
	return objects
}

// MarshalJSON encodes the collection as its ordered entity array.
func (c *CollectionWithID[T]) MarshalJSON() ([]byte, error) {
	if c == nil || c.objects == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.objects)
}

// UnmarshalJSON decodes an entity array, re-checking identifier uniqueness.
func (c *CollectionWithID[T]) UnmarshalJSON(data []byte) error {
	var objects []T
	if err := json.Unmarshal(data, &objects); err != nil {
		return err
	}
	rebuilt, err := NewCollectionWithID(objects)
	if err != nil {
		return err
	}
	*c = *rebuilt
	return nil
}

// Collection is the identifier-less counterpart of CollectionWithID, for
// linking entities that are only ever addressed positionally.
type Collection[T any] struct {
	objects []T
}

// NewCollection builds a collection holding objects in order.
func NewCollection[T any](objects []T) *Collection[T] {
	return &Collection[T]{objects: objects}
}

// Push appends obj and returns its index.
func (c *Collection[T]) Push(obj T) Idx[T] {
	idx := newIdx[T](len(c.objects))
	c.objects = append(c.objects, obj)
	return idx
}

// MustGet returns the entity at idx.
func (c *Collection[T]) MustGet(idx Idx[T]) *T {
	return &c.objects[idx.pos]
}

// Len returns the number of entities in the collection.
func (c *Collection[T]) Len() int { return len(c.objects) }

// All iterates over the collection in insertion order.
func (c *Collection[T]) All() iter.Seq2[Idx[T], *T] {
	return func(yield func(Idx[T], *T) bool) {
		for i := range c.objects {
			if !yield(newIdx[T](i), &c.objects[i]) {
				return
			}
		}
	}
}

// Merge appends every entity of other. Positional entities cannot collide,
// so a merge never fails.
func (c *Collection[T]) Merge(other *Collection[T]) {
	if other == nil {
		return
	}
	c.objects = append(c.objects, other.objects...)
}

// Take extracts every entity in insertion order and resets the collection.
func (c *Collection[T]) Take() []T {
	objects := c.objects
	c.objects = nil
	return objects
}

// MarshalJSON encodes the collection as its ordered entity array.
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	if c == nil || c.objects == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.objects)
}

// UnmarshalJSON decodes an entity array.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	var objects []T
	if err := json.Unmarshal(data, &objects); err != nil {
		return err
	}
	c.objects = objects
	return nil
}
