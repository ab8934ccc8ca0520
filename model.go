package transitmodel

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/transit-model/collection"
	"github.com/theoremus-urban-solutions/transit-model/relations"
)

// Model is the validated, queryable aggregate: it owns the Collections bag
// plus every primitive and derived relation. A Model is immutable after
// construction; rebuilding requires a new call to New with an edited bag.
type Model struct {
	collections *Collections

	networksToLines                *relations.OneToMany[Network, Line]
	commercialModesToLines         *relations.OneToMany[CommercialMode, Line]
	linesToRoutes                  *relations.OneToMany[Line, Route]
	routesToVehicleJourneys        *relations.OneToMany[Route, VehicleJourney]
	physicalModesToVehicleJourneys *relations.OneToMany[PhysicalMode, VehicleJourney]
	stopAreasToStopPoints          *relations.OneToMany[StopArea, StopPoint]
	contributorsToDatasets         *relations.OneToMany[Contributor, Dataset]
	datasetsToVehicleJourneys      *relations.OneToMany[Dataset, VehicleJourney]
	companiesToVehicleJourneys     *relations.OneToMany[Company, VehicleJourney]
	vehicleJourneysToStopPoints    *relations.ManyToMany[VehicleJourney, StopPoint]
	transfersToStopPoints          *relations.ManyToMany[Transfer, StopPoint]

	// shortcuts over the relations above
	routesToStopPoints        *relations.ManyToMany[Route, StopPoint]
	physicalModesToStopPoints *relations.ManyToMany[PhysicalMode, StopPoint]
	physicalModesToRoutes     *relations.ManyToMany[PhysicalMode, Route]
	datasetsToStopPoints      *relations.ManyToMany[Dataset, StopPoint]
	datasetsToRoutes          *relations.ManyToMany[Dataset, Route]
	datasetsToPhysicalModes   *relations.ManyToMany[Dataset, PhysicalMode]

	registry map[typePair][]correspondence
	logger   *zap.Logger
}

// Option configures model construction.
type Option func(*Model)

// WithLogger sets the logger used during construction. The default is a
// no-op logger, keeping the library silent.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// New constructs a Model from the given Collections, taking ownership of
// the bag. Construction is all-or-nothing: any unresolved foreign key fails
// with relations.ErrReferentialIntegrity, any unresolvable optional foreign
// key with ErrAmbiguousForeignKey, and no partially-built model is ever
// returned. The caller must not touch c afterwards.
func New(c *Collections, opts ...Option) (*Model, error) {
	m := &Model{
		collections: c,
		registry:    map[typePair][]correspondence{},
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.resolveOptionalForeignKeys(); err != nil {
		return nil, err
	}

	journeyStops, err := m.journeyStopPointForward()
	if err != nil {
		return nil, err
	}
	transferStops, err := m.transferStopPointForward()
	if err != nil {
		return nil, err
	}

	if err := m.buildPrimitiveRelations(); err != nil {
		return nil, err
	}

	m.vehicleJourneysToStopPoints = relations.ManyToManyFromForward(journeyStops)
	m.transfersToStopPoints = relations.ManyToManyFromForward(transferStops)

	m.routesToStopPoints = relations.ManyToManyFromChain[Route, VehicleJourney, StopPoint](
		m.routesToVehicleJourneys, m.vehicleJourneysToStopPoints)
	m.physicalModesToStopPoints = relations.ManyToManyFromChain[PhysicalMode, VehicleJourney, StopPoint](
		m.physicalModesToVehicleJourneys, m.vehicleJourneysToStopPoints)
	m.physicalModesToRoutes = relations.ManyToManyFromSink[PhysicalMode, VehicleJourney, Route](
		m.physicalModesToVehicleJourneys, m.routesToVehicleJourneys)
	m.datasetsToStopPoints = relations.ManyToManyFromChain[Dataset, VehicleJourney, StopPoint](
		m.datasetsToVehicleJourneys, m.vehicleJourneysToStopPoints)
	m.datasetsToRoutes = relations.ManyToManyFromSink[Dataset, VehicleJourney, Route](
		m.datasetsToVehicleJourneys, m.routesToVehicleJourneys)
	m.datasetsToPhysicalModes = relations.ManyToManyFromSink[Dataset, VehicleJourney, PhysicalMode](
		m.datasetsToVehicleJourneys, m.physicalModesToVehicleJourneys)

	m.registerRelations()
	m.sortRegistry()

	m.logger.Debug("model built",
		zap.Int("networks", c.Networks.Len()),
		zap.Int("lines", c.Lines.Len()),
		zap.Int("routes", c.Routes.Len()),
		zap.Int("vehicle_journeys", c.VehicleJourneys.Len()),
		zap.Int("stop_points", c.StopPoints.Len()),
		zap.Int("transfers", c.Transfers.Len()),
	)
	return m, nil
}

// resolveOptionalForeignKeys fills omitted optional foreign keys under the
// sole-candidate rule: an empty key resolves to the only entity of the
// target collection, and fails when zero or several exist.
func (m *Model) resolveOptionalForeignKeys() error {
	c := m.collections

	var soleNetwork string
	if c.Networks.Len() == 1 {
		for _, n := range c.Networks.All() {
			soleNetwork = n.ID
		}
	}
	for _, line := range c.Lines.All() {
		if line.NetworkID != "" {
			continue
		}
		if soleNetwork == "" {
			return fmt.Errorf("%w: line %q has no network_id and %d networks exist",
				ErrAmbiguousForeignKey, line.ID, c.Networks.Len())
		}
		line.NetworkID = soleNetwork
	}

	var soleCompany string
	if c.Companies.Len() == 1 {
		for _, co := range c.Companies.All() {
			soleCompany = co.ID
		}
	}
	for _, vj := range c.VehicleJourneys.All() {
		if vj.CompanyID != "" {
			continue
		}
		if soleCompany == "" {
			return fmt.Errorf("%w: vehicle journey %q has no company_id and %d companies exist",
				ErrAmbiguousForeignKey, vj.ID, c.Companies.Len())
		}
		vj.CompanyID = soleCompany
	}
	return nil
}

// journeyStopPointForward resolves every stop-time stop point id into the
// forward map of the vehicle-journey↔stop-point relation.
func (m *Model) journeyStopPointForward() (map[collection.Idx[VehicleJourney]]collection.IdxSet[StopPoint], error) {
	c := m.collections
	forward := map[collection.Idx[VehicleJourney]]collection.IdxSet[StopPoint]{}
	for vjIdx, vj := range c.VehicleJourneys.All() {
		stops := collection.NewIdxSet[StopPoint]()
		for _, st := range vj.StopTimes {
			spIdx, ok := c.StopPoints.GetIdx(st.StopPointID)
			if !ok {
				return nil, fmt.Errorf("%w in vehicle_journeys_to_stop_points: unknown id %q",
					relations.ErrReferentialIntegrity, st.StopPointID)
			}
			stops.Add(spIdx)
		}
		if stops.Len() > 0 {
			forward[vjIdx] = stops
		}
	}
	return forward, nil
}

// transferStopPointForward resolves the two endpoint ids of every transfer
// into the forward map of the transfer↔stop-point relation.
func (m *Model) transferStopPointForward() (map[collection.Idx[Transfer]]collection.IdxSet[StopPoint], error) {
	c := m.collections
	forward := map[collection.Idx[Transfer]]collection.IdxSet[StopPoint]{}
	for trIdx, tr := range c.Transfers.All() {
		stops := collection.NewIdxSet[StopPoint]()
		for _, stopID := range []string{tr.FromStopID, tr.ToStopID} {
			spIdx, ok := c.StopPoints.GetIdx(stopID)
			if !ok {
				return nil, fmt.Errorf("%w in transfers_to_stop_points: unknown id %q",
					relations.ErrReferentialIntegrity, stopID)
			}
			stops.Add(spIdx)
		}
		forward[trIdx] = stops
	}
	return forward, nil
}

func (m *Model) buildPrimitiveRelations() error {
	c := m.collections
	var err error

	if m.networksToLines, err = relations.NewOneToMany(&c.Networks, &c.Lines,
		"networks_to_lines", func(l *Line) string { return l.NetworkID }); err != nil {
		return err
	}
	if m.commercialModesToLines, err = relations.NewOneToMany(&c.CommercialModes, &c.Lines,
		"commercial_modes_to_lines", func(l *Line) string { return l.CommercialModeID }); err != nil {
		return err
	}
	if m.linesToRoutes, err = relations.NewOneToMany(&c.Lines, &c.Routes,
		"lines_to_routes", func(r *Route) string { return r.LineID }); err != nil {
		return err
	}
	if m.routesToVehicleJourneys, err = relations.NewOneToMany(&c.Routes, &c.VehicleJourneys,
		"routes_to_vehicle_journeys", func(vj *VehicleJourney) string { return vj.RouteID }); err != nil {
		return err
	}
	if m.physicalModesToVehicleJourneys, err = relations.NewOneToMany(&c.PhysicalModes, &c.VehicleJourneys,
		"physical_modes_to_vehicle_journeys", func(vj *VehicleJourney) string { return vj.PhysicalModeID }); err != nil {
		return err
	}
	if m.stopAreasToStopPoints, err = relations.NewOneToMany(&c.StopAreas, &c.StopPoints,
		"stop_areas_to_stop_points", func(sp *StopPoint) string { return sp.StopAreaID }); err != nil {
		return err
	}
	if m.contributorsToDatasets, err = relations.NewOneToMany(&c.Contributors, &c.Datasets,
		"contributors_to_datasets", func(d *Dataset) string { return d.ContributorID }); err != nil {
		return err
	}
	if m.datasetsToVehicleJourneys, err = relations.NewOneToMany(&c.Datasets, &c.VehicleJourneys,
		"datasets_to_vehicle_journeys", func(vj *VehicleJourney) string { return vj.DatasetID }); err != nil {
		return err
	}
	if m.companiesToVehicleJourneys, err = relations.NewOneToMany(&c.Companies, &c.VehicleJourneys,
		"companies_to_vehicle_journeys", func(vj *VehicleJourney) string { return vj.CompanyID }); err != nil {
		return err
	}
	return nil
}

func (m *Model) registerRelations() {
	registerRelation[Network, Line](m, m.networksToLines, weightPrimitive)
	registerRelation[CommercialMode, Line](m, m.commercialModesToLines, weightPrimitive)
	registerRelation[Line, Route](m, m.linesToRoutes, weightPrimitive)
	registerRelation[Route, VehicleJourney](m, m.routesToVehicleJourneys, weightPrimitive)
	registerRelation[PhysicalMode, VehicleJourney](m, m.physicalModesToVehicleJourneys, weightPrimitive)
	registerRelation[StopArea, StopPoint](m, m.stopAreasToStopPoints, weightPrimitive)
	registerRelation[Contributor, Dataset](m, m.contributorsToDatasets, weightPrimitive)
	registerRelation[Dataset, VehicleJourney](m, m.datasetsToVehicleJourneys, weightPrimitive)
	registerRelation[Company, VehicleJourney](m, m.companiesToVehicleJourneys, weightPrimitive)
	registerRelation[VehicleJourney, StopPoint](m, m.vehicleJourneysToStopPoints, weightPrimitive)
	registerRelation[Transfer, StopPoint](m, m.transfersToStopPoints, weightPrimitive)

	registerRelation[Route, StopPoint](m, m.routesToStopPoints, weightShortcut)
	registerRelation[PhysicalMode, StopPoint](m, m.physicalModesToStopPoints, weightShortcut)
	registerRelation[PhysicalMode, Route](m, m.physicalModesToRoutes, weightShortcut)
	registerRelation[Dataset, StopPoint](m, m.datasetsToStopPoints, weightShortcut)
	registerRelation[Dataset, Route](m, m.datasetsToRoutes, weightShortcut)
	registerRelation[Dataset, PhysicalMode](m, m.datasetsToPhysicalModes, weightShortcut)
}

// Collections gives read access to the owned bag. Callers must not mutate
// it; edit-and-rebuild goes through IntoCollections and New.
func (m *Model) Collections() *Collections { return m.collections }

// IntoCollections reclaims ownership of the underlying Collections,
// consuming the model. The model must not be used afterwards.
func (m *Model) IntoCollections() *Collections {
	c := m.collections
	m.collections = nil
	m.registry = nil
	return c
}

// MarshalJSON encodes the model as its Collections.
func (m *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.collections)
}

// UnmarshalJSON decodes a Collections bag and re-runs full construction;
// a deserialized model is never accepted without re-validation.
func (m *Model) UnmarshalJSON(data []byte) error {
	var c Collections
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	built, err := New(&c)
	if err != nil {
		return err
	}
	*m = *built
	return nil
}
