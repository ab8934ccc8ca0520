/*
Package transitmodel is the in-memory relational data model of a
public-transit data toolkit.

It holds typed arena collections of transit entities (networks, lines,
routes, vehicle journeys, stop points, calendars, transfers, ...), builds
bidirectional and multi-hop relations between them from their foreign-key
fields, validates referential integrity, and exposes a generic,
type-directed lookup that works uniformly across the entity graph.

# Building a model

A format collaborator (a GTFS or NeTEx reader, a fare-enrichment step, a
hand-built test fixture) populates a Collections bag, where every
cross-reference is a plain string identifier:

	var c transitmodel.Collections
	c.Networks.Push(transitmodel.Network{ID: "nw:1", Name: "RET"})
	c.Lines.Push(transitmodel.Line{ID: "l:A", Name: "A", NetworkID: "nw:1", CommercialModeID: "Bus"})
	...
	model, err := transitmodel.New(&c)

New resolves every foreign key into typed indices, builds the primitive
one-to-many relations, derives the remaining relations by chain and sink
composition, and fails with relations.ErrReferentialIntegrity if any
reference dangles. Construction is all-or-nothing.

# Querying

GetCorresponding answers "given these entities of type A, find the related
entities of type B" for every supported type pair, multi-hop pairs
included:

	routeIdx, _ := model.Collections().Routes.GetIdx("r:A:f")
	stops := transitmodel.GetCorresponding[transitmodel.Route, transitmodel.StopPoint](
		model, collection.NewIdxSet(routeIdx))

# Lifecycle

Collections (mutable, partially built) to Model (immutable, fully
validated) is the only transition. IntoCollections reclaims the bag for
re-export or for an edit-then-rebuild cycle. The model is structurally
serializable through its collections; deserializing re-runs full
construction, so a decoded model is always validated.

A built model is safe for concurrent reads; nothing in this package locks,
so any rebuild workflow must be serialized externally.
*/
package transitmodel
