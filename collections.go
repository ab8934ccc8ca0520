package transitmodel

import (
	"github.com/theoremus-urban-solutions/transit-model/collection"
)

// Collections is the un-validated bag of entity collections a collaborator
// builds before handing it to New. No cross-reference is resolved at this
// stage; entities point at each other through string identifiers only.
type Collections struct {
	Contributors    collection.CollectionWithID[Contributor]    `json:"contributors"`
	Datasets        collection.CollectionWithID[Dataset]        `json:"datasets"`
	Networks        collection.CollectionWithID[Network]        `json:"networks"`
	CommercialModes collection.CollectionWithID[CommercialMode] `json:"commercial_modes"`
	PhysicalModes   collection.CollectionWithID[PhysicalMode]   `json:"physical_modes"`
	Companies       collection.CollectionWithID[Company]        `json:"companies"`
	Lines           collection.CollectionWithID[Line]           `json:"lines"`
	Routes          collection.CollectionWithID[Route]          `json:"routes"`
	StopAreas       collection.CollectionWithID[StopArea]       `json:"stop_areas"`
	StopPoints      collection.CollectionWithID[StopPoint]      `json:"stop_points"`
	VehicleJourneys collection.CollectionWithID[VehicleJourney] `json:"vehicle_journeys"`
	Calendars       collection.CollectionWithID[Calendar]       `json:"calendars"`
	Transfers       collection.Collection[Transfer]             `json:"transfers"`
	AdminStations   collection.Collection[AdminStation]         `json:"admin_stations"`

	// FeedInfos carries arbitrary key/value feed metadata.
	FeedInfos map[string]string `json:"feed_infos,omitempty"`
}

// Merge appends every entity of other into the receiver, collection by
// collection. The first identifier collision aborts with the offending id;
// feed infos merge last-writer-wins.
func (c *Collections) Merge(other *Collections) error {
	if other == nil {
		return nil
	}
	if err := c.Contributors.Merge(&other.Contributors); err != nil {
		return err
	}
	if err := c.Datasets.Merge(&other.Datasets); err != nil {
		return err
	}
	if err := c.Networks.Merge(&other.Networks); err != nil {
		return err
	}
	if err := c.CommercialModes.Merge(&other.CommercialModes); err != nil {
		return err
	}
	if err := c.PhysicalModes.Merge(&other.PhysicalModes); err != nil {
		return err
	}
	if err := c.Companies.Merge(&other.Companies); err != nil {
		return err
	}
	if err := c.Lines.Merge(&other.Lines); err != nil {
		return err
	}
	if err := c.Routes.Merge(&other.Routes); err != nil {
		return err
	}
	if err := c.StopAreas.Merge(&other.StopAreas); err != nil {
		return err
	}
	if err := c.StopPoints.Merge(&other.StopPoints); err != nil {
		return err
	}
	if err := c.VehicleJourneys.Merge(&other.VehicleJourneys); err != nil {
		return err
	}
	if err := c.Calendars.Merge(&other.Calendars); err != nil {
		return err
	}
	c.Transfers.Merge(&other.Transfers)
	c.AdminStations.Merge(&other.AdminStations)
	if len(other.FeedInfos) > 0 {
		if c.FeedInfos == nil {
			c.FeedInfos = map[string]string{}
		}
		for k, v := range other.FeedInfos {
			c.FeedInfos[k] = v
		}
	}
	return nil
}

// AddPrefix namespaces every identifier and every foreign-key string with
// "prefix:". Commercial and physical mode identifiers are standardized
// values shared across datasets and are left untouched. Every collection is
// rewritten through the bulk take-and-rebuild path.
func (c *Collections) AddPrefix(prefix string) error {
	p := func(id string) string {
		if id == "" {
			return ""
		}
		return prefix + ":" + id
	}

	contributors := c.Contributors.Take()
	for i := range contributors {
		contributors[i].ID = p(contributors[i].ID)
	}
	if err := rebuild(&c.Contributors, contributors); err != nil {
		return err
	}

	datasets := c.Datasets.Take()
	for i := range datasets {
		datasets[i].ID = p(datasets[i].ID)
		datasets[i].ContributorID = p(datasets[i].ContributorID)
	}
	if err := rebuild(&c.Datasets, datasets); err != nil {
		return err
	}

	networks := c.Networks.Take()
	for i := range networks {
		networks[i].ID = p(networks[i].ID)
	}
	if err := rebuild(&c.Networks, networks); err != nil {
		return err
	}

	companies := c.Companies.Take()
	for i := range companies {
		companies[i].ID = p(companies[i].ID)
	}
	if err := rebuild(&c.Companies, companies); err != nil {
		return err
	}

	lines := c.Lines.Take()
	for i := range lines {
		lines[i].ID = p(lines[i].ID)
		lines[i].NetworkID = p(lines[i].NetworkID)
	}
	if err := rebuild(&c.Lines, lines); err != nil {
		return err
	}

	routes := c.Routes.Take()
	for i := range routes {
		routes[i].ID = p(routes[i].ID)
		routes[i].LineID = p(routes[i].LineID)
	}
	if err := rebuild(&c.Routes, routes); err != nil {
		return err
	}

	stopAreas := c.StopAreas.Take()
	for i := range stopAreas {
		stopAreas[i].ID = p(stopAreas[i].ID)
	}
	if err := rebuild(&c.StopAreas, stopAreas); err != nil {
		return err
	}

	stopPoints := c.StopPoints.Take()
	for i := range stopPoints {
		stopPoints[i].ID = p(stopPoints[i].ID)
		stopPoints[i].StopAreaID = p(stopPoints[i].StopAreaID)
	}
	if err := rebuild(&c.StopPoints, stopPoints); err != nil {
		return err
	}

	journeys := c.VehicleJourneys.Take()
	for i := range journeys {
		journeys[i].ID = p(journeys[i].ID)
		journeys[i].RouteID = p(journeys[i].RouteID)
		journeys[i].DatasetID = p(journeys[i].DatasetID)
		journeys[i].CompanyID = p(journeys[i].CompanyID)
		journeys[i].ServiceID = p(journeys[i].ServiceID)
		for j := range journeys[i].StopTimes {
			journeys[i].StopTimes[j].StopPointID = p(journeys[i].StopTimes[j].StopPointID)
		}
	}
	if err := rebuild(&c.VehicleJourneys, journeys); err != nil {
		return err
	}

	calendars := c.Calendars.Take()
	for i := range calendars {
		calendars[i].ID = p(calendars[i].ID)
	}
	if err := rebuild(&c.Calendars, calendars); err != nil {
		return err
	}

	transfers := c.Transfers.Take()
	for i := range transfers {
		transfers[i].FromStopID = p(transfers[i].FromStopID)
		transfers[i].ToStopID = p(transfers[i].ToStopID)
	}
	c.Transfers = *collection.NewCollection(transfers)

	adminStations := c.AdminStations.Take()
	for i := range adminStations {
		adminStations[i].StopID = p(adminStations[i].StopID)
	}
	c.AdminStations = *collection.NewCollection(adminStations)

	return nil
}

func rebuild[T collection.Identifier](dst *collection.CollectionWithID[T], objects []T) error {
	rebuilt, err := collection.NewCollectionWithID(objects)
	if err != nil {
		return err
	}
	*dst = *rebuilt
	return nil
}
