package highdensity

import "github.com/pcbroute/router/geom"

// hasSameLayerCrossings reports whether any two nets on the same layer
// must cross to connect their assigned port points, by testing the chord
// A-B of each net pair for intersection (spec.md §4.7 classification).
func hasSameLayerCrossings(nets []NetCrossing) bool {
	for i := 0; i < len(nets); i++ {
		for j := i + 1; j < len(nets); j++ {
			if nets[i].Z != nets[j].Z {
				continue
			}
			a := geom.NewSegment(nets[i].A, nets[i].B)
			b := geom.NewSegment(nets[j].A, nets[j].B)
			if a.Intersects(b) {
				return true
			}
		}
	}
	return false
}

// crossingPairs returns the index pairs of nets that cross, used by the
// jumper strategies to decide which pairs need a jumper hop.
func crossingPairs(nets []NetCrossing) [][2]int {
	var out [][2]int
	for i := 0; i < len(nets); i++ {
		for j := i + 1; j < len(nets); j++ {
			if nets[i].Z != nets[j].Z {
				continue
			}
			a := geom.NewSegment(nets[i].A, nets[i].B)
			b := geom.NewSegment(nets[j].A, nets[j].B)
			if a.Intersects(b) {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}
