package meshvol

import (
	"math"

	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/slices"
)

// dedupEpsilon is the in-plane quantization used to merge intersection
// points. Coordinates that agree to six decimal digits are one point.
const dedupEpsilon = 1e-6

type pointKey struct {
	x, y int64
}

func quantize(c model2d.Coord) pointKey {
	return pointKey{
		x: int64(math.Round(c.X / dedupEpsilon)),
		y: int64(math.Round(c.Y / dedupEpsilon)),
	}
}

// dedupPoints projects intersection points into the cutting plane and
// merges duplicates. A duplicate replaces the value at its key's first
// position rather than re-appending, so the output order depends only
// on the input order.
func dedupPoints(points []model3d.Coord3D) []model2d.Coord {
	indices := map[pointKey]int{}
	res := make([]model2d.Coord, 0, len(points))
	for _, p := range points {
		c := model2d.XY(p.X, p.Y)
		k := quantize(c)
		if i, ok := indices[k]; ok {
			res[i] = c
			continue
		}
		indices[k] = len(res)
		res = append(res, c)
	}
	return res
}

// sortByCentroidAngle orders points in place by their angle around the
// arithmetic mean of the points. This yields a simple polygon whenever
// the point set is star-shaped about its centroid; convex sections
// always are.
func sortByCentroidAngle(points []model2d.Coord) []model2d.Coord {
	if len(points) < 3 {
		return points
	}
	var centroid model2d.Coord
	for _, c := range points {
		centroid = centroid.Add(c)
	}
	centroid = centroid.Scale(1 / float64(len(points)))

	type angledPoint struct {
		coord model2d.Coord
		angle float64
	}
	angled := make([]angledPoint, len(points))
	for i, c := range points {
		angled[i] = angledPoint{
			coord: c,
			angle: math.Atan2(c.Y-centroid.Y, c.X-centroid.X),
		}
	}
	slices.SortFunc(angled, func(a, b angledPoint) bool {
		return a.angle < b.angle
	})
	for i, a := range angled {
		points[i] = a.coord
	}
	return points
}

// PolygonArea computes the area enclosed by an ordered ring of
// vertices using the shoelace formula. Fewer than three vertices
// enclose no area, and either winding gives a positive result.
func PolygonArea(points []model2d.Coord) float64 {
	return math.Abs(signedPolygonArea(points))
}

// signedPolygonArea is positive for counterclockwise rings and
// negative for clockwise ones.
func signedPolygonArea(points []model2d.Coord) float64 {
	if len(points) < 3 {
		return 0
	}
	var sum float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}
