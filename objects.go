package transitmodel

// Entity records held by the model. Cross-references between entity types
// are plain string identifiers; they are resolved into typed indices at
// model construction, never into pointers between records.

// Contributor is the provider of one or more datasets.
type Contributor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	License string `json:"license,omitempty"`
	Website string `json:"website,omitempty"`
}

// ObjectID implements collection.Identifier.
func (c Contributor) ObjectID() string { return c.ID }

// Dataset is one published batch of transit data.
type Dataset struct {
	ID            string `json:"id"`
	ContributorID string `json:"contributor_id"`
	StartDate     string `json:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
}

// ObjectID implements collection.Identifier.
func (d Dataset) ObjectID() string { return d.ID }

// Network is the commercial network operating lines.
type Network struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// ObjectID implements collection.Identifier.
func (n Network) ObjectID() string { return n.ID }

// CommercialMode is the rider-facing mode of a line (bus, metro, ...).
type CommercialMode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ObjectID implements collection.Identifier.
func (c CommercialMode) ObjectID() string { return c.ID }

// PhysicalMode is the physical vehicle type of a journey.
type PhysicalMode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ObjectID implements collection.Identifier.
func (p PhysicalMode) ObjectID() string { return p.ID }

// Company operates vehicle journeys.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ObjectID implements collection.Identifier.
func (c Company) ObjectID() string { return c.ID }

// Line is a commercial line of a network.
// NetworkID may be left empty by a collaborator; model construction then
// resolves it to the sole network, or fails when zero or several exist.
type Line struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Code             string `json:"code,omitempty"`
	Color            string `json:"color,omitempty"`
	NetworkID        string `json:"network_id"`
	CommercialModeID string `json:"commercial_mode_id"`
}

// ObjectID implements collection.Identifier.
func (l Line) ObjectID() string { return l.ID }

// Route is one direction or variant of a line.
type Route struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DirectionType string `json:"direction_type,omitempty"`
	LineID        string `json:"line_id"`
}

// ObjectID implements collection.Identifier.
func (r Route) ObjectID() string { return r.ID }

// Coord is a WGS84 position.
type Coord struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// StopArea groups stop points under one rider-facing station.
type StopArea struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Coord    Coord  `json:"coord"`
	Timezone string `json:"timezone,omitempty"`
}

// ObjectID implements collection.Identifier.
func (s StopArea) ObjectID() string { return s.ID }

// StopPoint is a physical boarding position belonging to a stop area.
type StopPoint struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Coord      Coord  `json:"coord"`
	StopAreaID string `json:"stop_area_id"`
}

// ObjectID implements collection.Identifier.
func (s StopPoint) ObjectID() string { return s.ID }

// StopTime is one scheduled passage of a vehicle journey at a stop point.
// Times are seconds since midnight of the service day.
type StopTime struct {
	StopPointID   string `json:"stop_point_id"`
	Sequence      uint32 `json:"sequence"`
	ArrivalTime   int    `json:"arrival_time"`
	DepartureTime int    `json:"departure_time"`
}

// VehicleJourney is a single vehicle run over a route, with its ordered
// stop-time list. CompanyID may be left empty; model construction resolves
// it under the same sole-candidate rule as Line.NetworkID.
type VehicleJourney struct {
	ID             string     `json:"id"`
	RouteID        string     `json:"route_id"`
	PhysicalModeID string     `json:"physical_mode_id"`
	DatasetID      string     `json:"dataset_id"`
	CompanyID      string     `json:"company_id"`
	ServiceID      string     `json:"service_id,omitempty"`
	Headsign       string     `json:"headsign,omitempty"`
	BlockID        string     `json:"block_id,omitempty"`
	StopTimes      []StopTime `json:"stop_times"`
}

// ObjectID implements collection.Identifier.
func (v VehicleJourney) ObjectID() string { return v.ID }

// Calendar is a service pattern: the set of days a journey runs.
// Dates use the YYYYMMDD form.
type Calendar struct {
	ID    string   `json:"id"`
	Dates []string `json:"dates"`
}

// ObjectID implements collection.Identifier.
func (c Calendar) ObjectID() string { return c.ID }

// Transfer links two stop points a rider may connect between. Transfers
// have no natural identifier and are addressed positionally.
type Transfer struct {
	FromStopID      string `json:"from_stop_id"`
	ToStopID        string `json:"to_stop_id"`
	MinTransferTime *int   `json:"min_transfer_time,omitempty"`
}

// AdminStation ties a stop to an administrative area. Positional, carried
// through merge, prefixing and serialization without validation.
type AdminStation struct {
	AdminID   string `json:"admin_id"`
	AdminName string `json:"admin_name,omitempty"`
	StopID    string `json:"stop_id"`
}
