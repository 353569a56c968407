package srj

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoutePoint_RoundTrip(t *testing.T) {
	trace := SimplifiedPcbTrace{
		Type:           "pcb_trace",
		PcbTraceID:     "t1",
		ConnectionName: "n1",
		Route: []RoutePoint{
			WirePoint(1, 1, 0.2, 0),
			ViaPoint(9, 9, 0, 1, 0.6),
			WirePoint(9, 9, 0.2, 1),
		},
	}

	data, err := json.Marshal(trace)
	require.NoError(t, err)

	var got SimplifiedPcbTrace
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got.Route, 3)
	require.NotNil(t, got.Route[0].Wire)
	require.NotNil(t, got.Route[1].Via)
	require.Equal(t, 0.6, got.Route[1].Via.ViaDiameter)
}

func TestConnectionPoint_AllowedLayers(t *testing.T) {
	p := ConnectionPoint{Layer: 2}
	require.Equal(t, []int{2}, p.AllowedLayers())

	p2 := ConnectionPoint{Layers: []int{0, 1}}
	require.Equal(t, []int{0, 1}, p2.AllowedLayers())
}
