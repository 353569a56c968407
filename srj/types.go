package srj

// Bounds is the board's rectangular extent.
type Bounds struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

// OutlinePoint is one vertex of an optional non-rectangular board outline.
// The core pipeline treats Outline as advisory context only; it routes
// within Bounds (spec.md §1 scopes board-shape-aware routing out).
type OutlinePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Obstacle is an axis-aligned keep-out or pad (spec.md §3).
type Obstacle struct {
	ID     string  `json:"id"`
	CX     float64 `json:"centerX"`
	CY     float64 `json:"centerY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Layers []int   `json:"layers"`

	// ConnectedTo lists the net/trace IDs electrically joined to this pad.
	ConnectedTo []string `json:"connectedTo,omitempty"`

	// OffBoardConnectsTo, when non-empty, declares this pad electrically
	// joined off-board to every other pad sharing one of these tags
	// (spec.md §4.3).
	OffBoardConnectsTo []string `json:"offBoardConnectsTo,omitempty"`
}

// ConnectionPoint is one endpoint of a Connection.
type ConnectionPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	// Layer is used when the point is pinned to a single layer.
	Layer int `json:"layer,omitempty"`
	// Layers is used when the point may land on any of several layers
	// (e.g. a through-hole pad); empty means "use Layer only".
	Layers []int `json:"layers,omitempty"`
}

// AllowedLayers returns the set of layers this point may be routed on.
func (p ConnectionPoint) AllowedLayers() []int {
	if len(p.Layers) > 0 {
		return p.Layers
	}
	return []int{p.Layer}
}

// Connection is an input net (spec.md §3): a name, an optional grouping
// name across MST-split sub-connections, its points, and off-board flags.
type Connection struct {
	Name               string            `json:"name"`
	RootConnectionName string            `json:"rootConnectionName,omitempty"`
	Points             []ConnectionPoint `json:"pointsToConnect"`
	IsOffBoard         bool              `json:"isOffBoard,omitempty"`

	// ExternallyConnectedPointIds groups point indices (by position in
	// Points) that are already joined off-board; a sub-connection whose
	// two endpoints fall in the same group is dropped (spec.md §4.1 skip
	// rule). Keyed by an opaque group label.
	ExternallyConnectedPointIds map[string][]int `json:"externallyConnectedPointIds,omitempty"`
}

// SimpleRouteJson is the pipeline's input (spec.md §6).
type SimpleRouteJson struct {
	LayerCount     int            `json:"layerCount"`
	MinTraceWidth  float64        `json:"minTraceWidth"`
	MinViaDiameter float64        `json:"minViaDiameter,omitempty"`
	Bounds         Bounds         `json:"bounds"`
	Outline        []OutlinePoint `json:"outline,omitempty"`
	Obstacles      []Obstacle     `json:"obstacles"`
	Connections    []Connection   `json:"connections"`
}

// RouteWirePoint is a "wire" entry in a SimplifiedPcbTrace's route.
type RouteWirePoint struct {
	RouteType string  `json:"route_type"` // always "wire"
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Layer     int     `json:"layer"`
}

// RouteViaPoint is a "via" entry in a SimplifiedPcbTrace's route.
type RouteViaPoint struct {
	RouteType  string  `json:"route_type"` // always "via"
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	FromLayer  int     `json:"from_layer"`
	ToLayer    int     `json:"to_layer"`
	ViaDiameter float64 `json:"via_diameter,omitempty"`
}

// RoutePoint is a discriminated union of RouteWirePoint and RouteViaPoint,
// exactly as the JSON contract's route array is a mix of {route_type:
// "wire"} and {route_type: "via"} objects (spec.md §6).
type RoutePoint struct {
	Wire *RouteWirePoint
	Via  *RouteViaPoint
}

// SimplifiedPcbTrace is one output trace (spec.md §6).
type SimplifiedPcbTrace struct {
	Type               string       `json:"type"` // always "pcb_trace"
	PcbTraceID         string       `json:"pcb_trace_id"`
	ConnectionName     string       `json:"connection_name"`
	RootConnectionName string       `json:"root_connection_name,omitempty"`
	Route              []RoutePoint `json:"route"`
}

// Output is a copy of the input SimpleRouteJson plus the produced traces
// (spec.md §6).
type Output struct {
	SimpleRouteJson
	Traces []SimplifiedPcbTrace `json:"traces"`
}
