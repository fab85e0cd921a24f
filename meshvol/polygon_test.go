package meshvol

import (
	"math"
	"testing"

	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

func TestDedupPointsMerge(t *testing.T) {
	points := dedupPoints([]model3d.Coord3D{
		model3d.XYZ(0.9999996, 0, 1),
		model3d.XYZ(5, 5, 1),
		model3d.XYZ(1.0000004, 0, 1),
	})
	if len(points) != 2 {
		t.Fatalf("expected 2 points but got %d", len(points))
	}
	if points[0] != model2d.XY(1.0000004, 0) {
		t.Errorf("later duplicate should replace the value in place but got %v", points[0])
	}
	if points[1] != model2d.XY(5, 5) {
		t.Errorf("insertion order should be kept but got %v", points[1])
	}
}

func TestDedupPointsDistinct(t *testing.T) {
	points := dedupPoints([]model3d.Coord3D{
		model3d.XYZ(0, 0, 2),
		model3d.XYZ(1, 0, 2),
		model3d.XYZ(0, 1, 2),
		model3d.XYZ(0, 0.001, 2),
	})
	if len(points) != 4 {
		t.Errorf("expected 4 distinct points but got %d", len(points))
	}
}

func TestSortByCentroidAngle(t *testing.T) {
	points := []model2d.Coord{
		model2d.XY(1, 1),
		model2d.XY(-1, -1),
		model2d.XY(-1, 1),
		model2d.XY(1, -1),
	}
	sortByCentroidAngle(points)
	expected := []model2d.Coord{
		model2d.XY(-1, -1),
		model2d.XY(1, -1),
		model2d.XY(1, 1),
		model2d.XY(-1, 1),
	}
	for i, p := range points {
		if p != expected[i] {
			t.Errorf("point %d should be %v but got %v", i, expected[i], p)
		}
	}
}

func TestSortByCentroidAngleArea(t *testing.T) {
	// A star-shaped ring should come back in traversal order no matter
	// how scrambled the input is.
	scrambled := []model2d.Coord{
		model2d.XY(2, 1),
		model2d.XY(0, 0),
		model2d.XY(1, 2),
		model2d.XY(2, 0),
		model2d.XY(0, 2),
		model2d.XY(1, 0),
		model2d.XY(2, 2),
		model2d.XY(0, 1),
	}
	if a := PolygonArea(sortByCentroidAngle(scrambled)); math.Abs(a-4) > 1e-9 {
		t.Errorf("sorted ring should enclose 4 but got %f", a)
	}
}

func TestPolygonArea(t *testing.T) {
	square := []model2d.Coord{
		model2d.XY(0, 0),
		model2d.XY(1, 0),
		model2d.XY(1, 1),
		model2d.XY(0, 1),
	}
	if a := PolygonArea(square); math.Abs(a-1) > 1e-12 {
		t.Errorf("square area should be 1 but got %f", a)
	}

	// Rotating the ring start or reversing the winding changes nothing.
	rotated := append(square[2:], square[:2]...)
	if a := PolygonArea(rotated); math.Abs(a-1) > 1e-12 {
		t.Errorf("rotated square area should be 1 but got %f", a)
	}
	reversed := []model2d.Coord{square[3], square[2], square[1], square[0]}
	if a := PolygonArea(reversed); math.Abs(a-1) > 1e-12 {
		t.Errorf("reversed square area should be 1 but got %f", a)
	}

	triangle := []model2d.Coord{
		model2d.XY(0, 0),
		model2d.XY(1, 0),
		model2d.XY(0, 1),
	}
	if a := PolygonArea(triangle); math.Abs(a-0.5) > 1e-12 {
		t.Errorf("triangle area should be 0.5 but got %f", a)
	}

	// Extra collinear vertices along an edge do not change the area.
	withMidpoint := []model2d.Coord{
		model2d.XY(0, 0),
		model2d.XY(0.5, 0),
		model2d.XY(1, 0),
		model2d.XY(1, 1),
		model2d.XY(0, 1),
	}
	if a := PolygonArea(withMidpoint); math.Abs(a-1) > 1e-12 {
		t.Errorf("area with midpoint should be 1 but got %f", a)
	}
}

func TestPolygonAreaDegenerate(t *testing.T) {
	if a := PolygonArea(nil); a != 0 {
		t.Errorf("empty ring should have area 0 but got %f", a)
	}
	two := []model2d.Coord{model2d.XY(0, 0), model2d.XY(3, 4)}
	if a := PolygonArea(two); a != 0 {
		t.Errorf("two points should have area 0 but got %f", a)
	}
	collinear := []model2d.Coord{model2d.XY(0, 0), model2d.XY(1, 1), model2d.XY(2, 2)}
	if a := PolygonArea(collinear); a != 0 {
		t.Errorf("collinear points should have area 0 but got %f", a)
	}
}

func TestSignedPolygonArea(t *testing.T) {
	ccw := []model2d.Coord{
		model2d.XY(0, 0),
		model2d.XY(2, 0),
		model2d.XY(2, 2),
		model2d.XY(0, 2),
	}
	if a := signedPolygonArea(ccw); math.Abs(a-4) > 1e-12 {
		t.Errorf("counterclockwise area should be 4 but got %f", a)
	}
	cw := []model2d.Coord{ccw[3], ccw[2], ccw[1], ccw[0]}
	if a := signedPolygonArea(cw); math.Abs(a+4) > 1e-12 {
		t.Errorf("clockwise area should be -4 but got %f", a)
	}
}
