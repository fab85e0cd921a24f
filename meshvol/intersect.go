package meshvol

import "github.com/unixpickle/model3d/model3d"

// planeIntersections appends the points where a triangle's edges meet
// the horizontal plane at z, returning the extended slice.
//
// A vertex lying exactly on the plane is reported once per adjacent
// crossing edge; downstream deduplication collapses the copies. Edges
// lying entirely in the plane are skipped, since their endpoints are
// recovered through the neighboring edges and interpolating along them
// would divide zero by zero.
func planeIntersections(p1, p2, p3 model3d.Coord3D, z float64, points []model3d.Coord3D) []model3d.Coord3D {
	edges := [3][2]model3d.Coord3D{{p1, p2}, {p2, p3}, {p3, p1}}
	for _, edge := range edges {
		if p, ok := edgeCrossing(edge[0], edge[1], z); ok {
			points = append(points, p)
		}
	}
	return points
}

// edgeCrossing interpolates the point where the segment from start to
// end crosses the plane at z. Endpoints touching the plane count as
// crossings, except when the whole segment lies in the plane.
//
// The Z of the result is exactly z.
func edgeCrossing(start, end model3d.Coord3D, z float64) (model3d.Coord3D, bool) {
	crossesDown := start.Z >= z && end.Z <= z
	crossesUp := start.Z <= z && end.Z >= z
	if (!crossesDown && !crossesUp) || start.Z == end.Z {
		return model3d.Coord3D{}, false
	}
	t := (z - start.Z) / (end.Z - start.Z)
	return model3d.XYZ(
		start.X+(end.X-start.X)*t,
		start.Y+(end.Y-start.Y)*t,
		z,
	), true
}
