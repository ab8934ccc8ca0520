/*
Package collection provides arena-backed typed collections of transit
entities with stable positional indices.

# Why indices

Transit entities reference each other in both directions (a Route knows its
VehicleJourneys, a VehicleJourney knows its Route). Direct pointers between
entity records would create ownership cycles and tie every entity to the
memory layout of every other. Instead, every entity lives in exactly one
collection and is addressed by an opaque typed index:

	var stops collection.CollectionWithID[StopPoint]
	idx, err := stops.Push(StopPoint{ID: "sp:01", Name: "Central"})
	sp := stops.MustGet(idx)

An Idx[T] is copyable, comparable and cheap. It stays valid for the lifetime
of the collection that produced it; collections never remove entities, only
whole-collection replacement through Take is supported.

# Identified vs positional entities

CollectionWithID stores entities carrying a unique string identifier
(ObjectID) and maintains an O(1) id → index lookup. Collection is the
simpler variant for linking entities such as transfers that have no natural
identifier and are only ever addressed positionally.

# Contracts

Indices must only be used with the collection that produced them; passing an
index from another collection is programmer error and is not detected at
runtime. Pointers returned by Get and MustGet are valid until the next
mutation of the collection.
*/
package collection
