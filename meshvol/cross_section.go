package meshvol

import (
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// A SectionFunc measures the cross-sectional area of a mesh at the
// horizontal plane z = elevation.
//
// CrossSectionArea and CrossSectionContoursArea implement it.
type SectionFunc func(m *Mesh, elevation float64) float64

// CrossSection computes the polygon where the plane z = elevation cuts
// the mesh surface. The points are deduplicated and ordered by angle
// around their centroid, which traces the section correctly as long as
// it is star-shaped about that point. For concave or multi-loop
// sections, use CrossSectionContours instead.
//
// Fewer than three points come back when the plane misses the mesh or
// only grazes a vertex or edge.
func CrossSection(m *Mesh, elevation float64) []model2d.Coord {
	if m == nil {
		return nil
	}
	var raw []model3d.Coord3D
	for i := 0; i < m.NumTriangles(); i++ {
		p1, p2, p3 := m.Triangle(i)
		raw = planeIntersections(p1, p2, p3, elevation, raw)
	}
	return sortByCentroidAngle(dedupPoints(raw))
}

// CrossSectionArea computes the area of the CrossSection polygon at
// the given elevation. Degenerate meshes and planes that miss the
// surface yield 0.
func CrossSectionArea(m *Mesh, elevation float64) float64 {
	return PolygonArea(CrossSection(m, elevation))
}
