package brep

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// T-junction splitting:
// ---------------------
// A vertex of one polygon that lies on the inside of an edge of another
// polygon leaves the two faces without a common edge there. Every directed
// edge (a, b) of every polygon is therefore tested against all distinct
// positions of the geometry, and each position found strictly between a and
// b is inserted into the ring in order of its distance along the edge.
//
// Distinct positions are held sorted by x so that only the positions whose x
// falls inside the edge's x extent (padded by the tolerance) are tested. The
// acceptance test is the same as for a full scan.

// sortablePoints orders points by position, breaking ties by key so the
// order is stable for a given input.
type sortablePoints []point

func (ps sortablePoints) Len() int      { return len(ps) }
func (ps sortablePoints) Swap(i, j int) { ps[i], ps[j] = ps[j], ps[i] }
func (ps sortablePoints) Less(i, j int) bool {
	a, b := ps[i].pos, ps[j].pos
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	if a[1] != b[1] {
		return a[1] < b[1]
	}
	if a[2] != b[2] {
		return a[2] < b[2]
	}
	return ps[i].key.Less(ps[j].key)
}

// pointIndex holds one representative position per key. When several input
// positions share a key the last one seen represents it.
type pointIndex struct {
	points sortablePoints
}

func newPointIndex(rings []ring) *pointIndex {
	slot := make(map[Key]int)
	var points sortablePoints
	for _, r := range rings {
		for _, p := range r.points {
			if i, exists := slot[p.key]; exists {
				points[i] = p
				continue
			}
			slot[p.key] = len(points)
			points = append(points, p)
		}
	}
	sort.Sort(points)
	return &pointIndex{points}
}

// eachInXRange calls cb for every indexed point with lo <= x <= hi.
func (pi *pointIndex) eachInXRange(lo, hi float64, cb func(point)) {
	ps := pi.points
	start := sort.Search(len(ps), func(i int) bool { return ps[i].pos[0] >= lo })
	for i := start; i < len(ps) && ps[i].pos[0] <= hi; i++ {
		cb(ps[i])
	}
}

// pointOnSegment reports whether p lies strictly between a and b, within
// eps of the line through them and more than eps away (parametrically) from
// either end. t is the parameter of p along a->b.
func pointOnSegment(a, b, p mgl64.Vec3, eps float64) (t float64, ok bool) {
	ab := Subtract(b, a)
	ap := Subtract(p, a)
	abLen2 := LengthSq(ab)
	if abLen2 < eps*eps {
		return 0, false
	}

	// |ab x ap| / |ab| is the distance of p from the line
	if LengthSq(Cross(ab, ap)) > eps*eps*abLen2 {
		return 0, false
	}

	t = Dot(ap, ab) / abLen2
	return t, t > eps && t < 1-eps
}

type splitPoint struct {
	t float64
	point
}

// splitTJunctions returns rings in which every edge passes through all of
// the geometry's positions that lie on it.
func splitTJunctions(rings []ring, eps, minEdgeLengthSq float64) []ring {
	index := newPointIndex(rings)
	// a point within eps of the segment is within eps of its bounding box
	margin := 2 * eps

	result := make([]ring, 0, len(rings))
	for _, r := range rings {
		n := len(r.points)
		split := ring{index: r.index, points: make([]point, 0, n)}
		for i := 0; i < n; i++ {
			a := r.points[i]
			b := r.points[(i+1)%n]
			split.points = append(split.points, a)

			ab := Subtract(b.pos, a.pos)
			if LengthSq(ab) < minEdgeLengthSq {
				continue
			}

			lo, hi := a.pos[0], b.pos[0]
			if hi < lo {
				lo, hi = hi, lo
			}
			var intermediates []splitPoint
			index.eachInXRange(lo-margin, hi+margin, func(p point) {
				if p.key == a.key || p.key == b.key {
					return
				}
				if t, ok := pointOnSegment(a.pos, b.pos, p.pos, eps); ok {
					intermediates = append(intermediates, splitPoint{t, p})
				}
			})
			if len(intermediates) == 0 {
				continue
			}

			sort.Slice(intermediates, func(i, j int) bool {
				if intermediates[i].t != intermediates[j].t {
					return intermediates[i].t < intermediates[j].t
				}
				return intermediates[i].key.Less(intermediates[j].key)
			})
			for _, sp := range intermediates {
				split.points = append(split.points, sp.point)
			}
		}
		result = append(result, split)
	}
	return result
}

// collapseDuplicates drops every point whose key equals that of the point
// before it, treating the ring as cyclic.
func collapseDuplicates(points []point) []point {
	n := len(points)
	unique := make([]point, 0, n)
	for i, p := range points {
		prev := points[(i+n-1)%n]
		if p.key != prev.key {
			unique = append(unique, p)
		}
	}
	return unique
}
