package netsplit

// dsu is a disjoint-set-union with path compression and union by rank,
// the same shape as lvlath/prim_kruskal.Kruskal's inline union-find,
// generalized from vertex-ID strings to obstacle tag strings.
type dsu struct {
	parent map[string]string
	rank   map[string]int
}

func newDSU() *dsu {
	return &dsu{parent: make(map[string]string), rank: make(map[string]int)}
}

func (d *dsu) add(x string) {
	if _, ok := d.parent[x]; !ok {
		d.parent[x] = x
		d.rank[x] = 0
	}
}

func (d *dsu) find(x string) string {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

func (d *dsu) union(a, b string) {
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
