package meshvol

import (
	"math"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestCrossSectionBox(t *testing.T) {
	mesh := boxMesh(model3d.Coord3D{}, model3d.XYZ(2, 2, 2))

	// Halfway up, the four corners plus the four face-diagonal
	// crossings survive deduplication.
	points := CrossSection(mesh, 1)
	if len(points) != 8 {
		t.Errorf("section should have 8 points but got %d", len(points))
	}

	for _, elevation := range []float64{0, 0.5, 1, 1.75, 2} {
		if a := CrossSectionArea(mesh, elevation); math.Abs(a-4) > 1e-9 {
			t.Errorf("area at %f should be 4 but got %f", elevation, a)
		}
	}
	for _, elevation := range []float64{-1, 2.5} {
		if a := CrossSectionArea(mesh, elevation); a != 0 {
			t.Errorf("area at %f should be 0 but got %f", elevation, a)
		}
	}
}

func TestCrossSectionCylinder(t *testing.T) {
	radius := 1.5
	sides := 32
	mesh := cylinderMesh(radius, 2, sides)

	expected := regularPolygonArea(radius, sides)
	for _, elevation := range []float64{0, 0.25, 1, 2} {
		if a := CrossSectionArea(mesh, elevation); math.Abs(a-expected) > 1e-9 {
			t.Errorf("area at %f should be %f but got %f", elevation, expected, a)
		}
	}

	// Rim points plus one shared diagonal crossing per side.
	points := CrossSection(mesh, 1)
	if len(points) != 2*sides {
		t.Errorf("section should have %d points but got %d", 2*sides, len(points))
	}
}

func TestCrossSectionTriangleOrderInvariance(t *testing.T) {
	mesh := boxMesh(model3d.Coord3D{}, model3d.XYZ(2, 2, 2))
	reversed := &Mesh{Positions: mesh.Positions}
	for i := mesh.NumTriangles() - 1; i >= 0; i-- {
		reversed.Indices = append(reversed.Indices, mesh.Indices[i*3:(i+1)*3]...)
	}

	original := CrossSectionArea(mesh, 0.5)
	if a := CrossSectionArea(reversed, 0.5); math.Abs(a-original) > 1e-9 {
		t.Errorf("area should not depend on triangle order: %f vs %f", original, a)
	}
}

func TestCrossSectionGrazing(t *testing.T) {
	// A square pyramid touched exactly at its apex.
	pyramid := NewMesh(
		[]float64{
			-1, -1, 0,
			1, -1, 0,
			1, 1, 0,
			-1, 1, 0,
			0, 0, 1,
		},
		[]int{
			0, 2, 1, 0, 3, 2,
			0, 1, 4, 1, 2, 4, 2, 3, 4, 3, 0, 4,
		},
	)
	points := CrossSection(pyramid, 1)
	if len(points) != 1 {
		t.Errorf("grazing section should have 1 point but got %d", len(points))
	}
	if a := CrossSectionArea(pyramid, 1); a != 0 {
		t.Errorf("grazing area should be 0 but got %f", a)
	}
}

func TestCrossSectionDegenerate(t *testing.T) {
	if points := CrossSection(nil, 1); points != nil {
		t.Errorf("nil mesh should have no section but got %d points", len(points))
	}
	if a := CrossSectionArea(NewMesh(nil, nil), 1); a != 0 {
		t.Errorf("empty mesh should have area 0 but got %f", a)
	}
}
