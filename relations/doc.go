/*
Package relations provides precomputed bidirectional mappings between typed
collection indices.

A relation links two entity types through their arena indices. Both
directions are materialized as explicit index-to-index-set maps at
construction time, so every lookup afterwards is a direct map read. Nothing
is computed lazily.

# Primitive relations

OneToMany is built by scanning a foreign-key field on the right collection
against the identifiers of the left collection:

	rel, err := relations.NewOneToMany(routes, journeys, "routes_to_vehicle_journeys",
		func(vj *VehicleJourney) string { return vj.RouteID })

An unresolved foreign key fails construction with a referential-integrity
error naming the relation and the offending id.

# Derived relations

ManyToMany composes existing relations without re-reading any entity field.
ManyToManyFromChain walks A→M then M→B, giving the transitive A↔B.
ManyToManyFromSink joins two relations sharing the intermediate on the
right, pairing every A and B that reach a common M. ManyToManyFromForward
builds a relation directly from an explicit forward map, for entity types
whose records carry several foreign keys at once.

# Queries

CorrespondingForward and CorrespondingBackward take an index set and return
the union of the related sets. Empty input or unrelated indices yield an
empty set, never an error.
*/
package relations
