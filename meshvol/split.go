package meshvol

import "github.com/unixpickle/model3d/model3d"

// SplitAtElevation cuts a mesh with the horizontal plane at the given
// elevation. Triangles crossing the plane are subdivided so that both
// parts meet the plane exactly; triangles touching it from either side
// are kept whole.
func SplitAtElevation(m *Mesh, elevation float64) (below, above *Mesh) {
	var belowTris, aboveTris []*model3d.Triangle
	for i := 0; i < m.NumTriangles(); i++ {
		p1, p2, p3 := m.Triangle(i)
		lo, hi := splitTriangleAtZ(&model3d.Triangle{p1, p2, p3}, elevation)
		belowTris = append(belowTris, lo...)
		aboveTris = append(aboveTris, hi...)
	}
	return NewMeshTriangles(belowTris), NewMeshTriangles(aboveTris)
}

func splitTriangleAtZ(t *model3d.Triangle, elevation float64) (below, above []*model3d.Triangle) {
	var signs [3]bool
	numAbove := 0
	for i, c := range t {
		if c.Z >= elevation {
			signs[i] = true
			numAbove++
		}
	}
	if numAbove == 0 || numAbove == 3 {
		if signs[0] {
			return nil, []*model3d.Triangle{t}
		}
		return []*model3d.Triangle{t}, nil
	}

	// The majority side keeps two corners and gains two crossing
	// points; the minority side keeps one corner. The one edge that
	// does not cross the plane joins the two majority corners.
	majority := numAbove == 2

	majLoop := make([]model3d.Coord3D, 0, 4)
	minLoop := make([]model3d.Coord3D, 0, 3)
	for i, p1 := range t {
		p2 := t[(i+1)%3]
		if signs[i] == signs[(i+1)%3] {
			majLoop = append(majLoop, p1)
			continue
		}

		alpha := (elevation - p1.Z) / (p2.Z - p1.Z)

		// Rounding can push the crossing outside the edge, in which
		// case the triangle is effectively on one side of the plane.
		if alpha <= 0 {
			if signs[(i+1)%3] {
				return nil, []*model3d.Triangle{t}
			}
			return []*model3d.Triangle{t}, nil
		} else if alpha >= 1 {
			if signs[i] {
				return nil, []*model3d.Triangle{t}
			}
			return []*model3d.Triangle{t}, nil
		}

		mid := p1.Add(p2.Sub(p1).Scale(alpha))
		mid.Z = elevation

		if signs[i] == majority {
			majLoop = append(majLoop, p1)
		} else {
			minLoop = append(minLoop, p1)
		}
		majLoop = append(majLoop, mid)
		minLoop = append(minLoop, mid)
	}

	majTris := []*model3d.Triangle{
		{majLoop[0], majLoop[1], majLoop[3]},
		{majLoop[1], majLoop[2], majLoop[3]},
	}
	minTris := []*model3d.Triangle{
		{minLoop[0], minLoop[1], minLoop[2]},
	}
	if majority {
		return minTris, majTris
	}
	return majTris, minTris
}
