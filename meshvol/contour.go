package meshvol

import (
	"math"

	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

type cutSegment struct {
	a, b model2d.Coord
}

type segmentKey struct {
	a, b pointKey
}

// CrossSectionContours computes the closed loops where the plane
// z = elevation cuts the mesh surface, stitched together from the
// per-triangle cut segments. With outward-facing triangles, loops wind
// counterclockwise around enclosed regions and clockwise around holes.
// A plane lying exactly in a mesh edge receives that edge's segment
// from the triangle on each side; the duplicates collapse to one.
// Chains that never close, e.g. at surface boundary edges, are
// dropped.
func CrossSectionContours(m *Mesh, elevation float64) [][]model2d.Coord {
	if m == nil {
		return nil
	}
	var segs []cutSegment
	seen := map[segmentKey]bool{}
	var scratch []model3d.Coord3D
	for i := 0; i < m.NumTriangles(); i++ {
		p1, p2, p3 := m.Triangle(i)
		scratch = planeIntersections(p1, p2, p3, elevation, scratch[:0])

		var ends [3]model2d.Coord
		var keys [3]pointKey
		numEnds := 0
		for _, p := range scratch {
			c := model2d.XY(p.X, p.Y)
			k := quantize(c)
			dup := false
			for _, prev := range keys[:numEnds] {
				if prev == k {
					dup = true
					break
				}
			}
			if !dup {
				ends[numEnds] = c
				keys[numEnds] = k
				numEnds++
			}
		}
		if numEnds != 2 {
			continue
		}

		// Orient the segment so that the triangle normal points to
		// its right, walking counterclockwise around the enclosed
		// region.
		a, b := ends[0], ends[1]
		ka, kb := keys[0], keys[1]
		normal := p2.Sub(p1).Cross(p3.Sub(p1))
		leftNormal := model2d.XY(a.Y-b.Y, b.X-a.X)
		if leftNormal.Dot(model2d.XY(normal.X, normal.Y)) >= 0 {
			a, b = b, a
			ka, kb = kb, ka
		}

		// An upper and a lower triangle sharing an edge in the plane
		// both emit that edge, identically oriented. Keep one copy.
		key := segmentKey{a: ka, b: kb}
		if seen[key] {
			continue
		}
		seen[key] = true
		segs = append(segs, cutSegment{a: a, b: b})
	}
	return joinLoops(segs)
}

// joinLoops stitches oriented segments into closed loops by following
// matching endpoints. Endpoints within dedupEpsilon of each other
// connect.
func joinLoops(segs []cutSegment) [][]model2d.Coord {
	starts := map[pointKey][]int{}
	for i, s := range segs {
		k := quantize(s.a)
		starts[k] = append(starts[k], i)
	}

	used := make([]bool, len(segs))
	var loops [][]model2d.Coord
	for i, seg := range segs {
		if used[i] {
			continue
		}
		used[i] = true
		loop := []model2d.Coord{seg.a}
		startKey := quantize(seg.a)
		cur := seg.b
		for {
			k := quantize(cur)
			if k == startKey {
				if len(loop) >= 3 {
					loops = append(loops, loop)
				}
				break
			}
			next := -1
			for _, j := range starts[k] {
				if !used[j] {
					next = j
					break
				}
			}
			if next == -1 {
				break
			}
			used[next] = true
			loop = append(loop, cur)
			cur = segs[next].b
		}
	}
	return loops
}

// CrossSectionContoursArea computes cross-sectional area from the
// reconstructed contour loops. Loop areas are summed with their signs
// before taking the absolute value, so holes subtract from the region
// around them. It costs more than CrossSectionArea but handles concave
// and multi-loop sections that centroid-angle ordering cannot.
func CrossSectionContoursArea(m *Mesh, elevation float64) float64 {
	var sum float64
	for _, loop := range CrossSectionContours(m, elevation) {
		sum += signedPolygonArea(loop)
	}
	return math.Abs(sum)
}
