package srj

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON emits whichever of Wire/Via is set, matching the flat
// {route_type: "wire"|"via", ...} shape of spec.md §6.
func (p RoutePoint) MarshalJSON() ([]byte, error) {
	switch {
	case p.Wire != nil:
		return json.Marshal(p.Wire)
	case p.Via != nil:
		return json.Marshal(p.Via)
	default:
		return nil, fmt.Errorf("srj: RoutePoint has neither Wire nor Via set")
	}
}

// UnmarshalJSON dispatches on the "route_type" discriminator field.
func (p *RoutePoint) UnmarshalJSON(data []byte) error {
	var probe struct {
		RouteType string `json:"route_type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	switch probe.RouteType {
	case "wire":
		var w RouteWirePoint
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		p.Wire = &w
	case "via":
		var v RouteViaPoint
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		p.Via = &v
	default:
		return fmt.Errorf("srj: unknown route_type %q", probe.RouteType)
	}
	return nil
}

// WirePoint builds a wire RoutePoint.
func WirePoint(x, y, width float64, layer int) RoutePoint {
	return RoutePoint{Wire: &RouteWirePoint{RouteType: "wire", X: x, Y: y, Width: width, Layer: layer}}
}

// ViaPoint builds a via RoutePoint.
func ViaPoint(x, y float64, fromLayer, toLayer int, diameter float64) RoutePoint {
	return RoutePoint{Via: &RouteViaPoint{RouteType: "via", X: x, Y: y, FromLayer: fromLayer, ToLayer: toLayer, ViaDiameter: diameter}}
}
