package offboard

import "github.com/pcbroute/router/meshmodel"

// dsu is a disjoint-set-union over meshmodel.NodeID, the same
// path-compression-plus-union-by-rank shape as
// lvlath/prim_kruskal.Kruskal's inline DSU.
type dsu struct {
	parent map[meshmodel.NodeID]meshmodel.NodeID
	rank   map[meshmodel.NodeID]int
}

func newDSU() *dsu {
	return &dsu{parent: map[meshmodel.NodeID]meshmodel.NodeID{}, rank: map[meshmodel.NodeID]int{}}
}

func (d *dsu) add(x meshmodel.NodeID) {
	if _, ok := d.parent[x]; !ok {
		d.parent[x] = x
	}
}

func (d *dsu) find(x meshmodel.NodeID) meshmodel.NodeID {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

func (d *dsu) union(a, b meshmodel.NodeID) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return
	}
	if d.rank[ra] < d.rank[rb] {
		d.parent[ra] = rb
	} else {
		d.parent[rb] = ra
		if d.rank[ra] == d.rank[rb] {
			d.rank[ra]++
		}
	}
}
