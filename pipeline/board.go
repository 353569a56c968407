package pipeline

import (
	"github.com/pcbroute/router/geom"
	"github.com/pcbroute/router/meshmodel"
	"github.com/pcbroute/router/srj"
)

// boundsToRect converts the input board bounds into a center/size Rect.
func boundsToRect(b srj.Bounds) geom.Rect {
	cx := (b.MinX + b.MaxX) / 2
	cy := (b.MinY + b.MaxY) / 2
	return geom.NewRect(cx, cy, b.MaxX-b.MinX, b.MaxY-b.MinY)
}

// findNode returns the first mesh node whose rectangle contains (x, y).
func findNode(mesh *meshmodel.Mesh, x, y float64) (meshmodel.NodeID, bool) {
	for _, n := range mesh.Nodes() {
		if n.Rect.Contains(x, y) {
			return n.ID, true
		}
	}
	return 0, false
}

// pickLayer returns the first layer a connection point allows that the
// chosen node also serves, falling back to the point's first allowed
// layer if the node serves none of them (a meshbuild/obstacle-data
// mismatch the pipeline should still route around rather than abort on).
func pickLayer(mesh *meshmodel.Mesh, node meshmodel.NodeID, p srj.ConnectionPoint) int {
	allowed := p.AllowedLayers()
	n := mesh.Node(node)
	for _, z := range allowed {
		if n != nil && n.AvailableZ(z) {
			return z
		}
	}
	if len(allowed) > 0 {
		return allowed[0]
	}
	return 0
}

func obstacleRect(o srj.Obstacle) geom.Rect {
	return geom.NewRect(o.CX, o.CY, o.Width, o.Height)
}
