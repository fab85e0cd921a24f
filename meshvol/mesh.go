package meshvol

import (
	"io"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// A Mesh is a triangulated surface with flat, indexed storage: three
// coordinates per vertex in Positions, and three vertex indices per
// triangle in Indices.
//
// Nothing in this package mutates a Mesh, so one Mesh may be shared
// freely across concurrent calls.
type Mesh struct {
	// Positions is packed as [x0, y0, z0, x1, y1, z1, ...].
	Positions []float64

	// Indices references vertices by position, three per triangle.
	Indices []int
}

// NewMesh creates a Mesh from flat vertex and index data.
//
// The slices are retained, not copied.
func NewMesh(positions []float64, indices []int) *Mesh {
	return &Mesh{Positions: positions, Indices: indices}
}

// NewMeshTriangles creates an indexed Mesh from a triangle soup,
// sharing vertices with exactly equal coordinates.
func NewMeshTriangles(tris []*model3d.Triangle) *Mesh {
	lookup := map[model3d.Coord3D]int{}
	res := &Mesh{}
	for _, t := range tris {
		for _, c := range t {
			idx, ok := lookup[c]
			if !ok {
				idx = res.NumVertices()
				lookup[c] = idx
				res.Positions = append(res.Positions, c.X, c.Y, c.Z)
			}
			res.Indices = append(res.Indices, idx)
		}
	}
	return res
}

// MeshFromModel3D converts a model3d mesh into an indexed Mesh.
func MeshFromModel3D(m *model3d.Mesh) *Mesh {
	tris := make([]*model3d.Triangle, 0, m.NumTriangles())
	m.Iterate(func(t *model3d.Triangle) {
		tris = append(tris, t)
	})
	return NewMeshTriangles(tris)
}

// MergeMeshes combines meshes into one, concatenating their vertices
// without sharing any across the inputs.
func MergeMeshes(ms ...*Mesh) *Mesh {
	res := &Mesh{}
	for _, m := range ms {
		offset := res.NumVertices()
		res.Positions = append(res.Positions, m.Positions...)
		for _, idx := range m.Indices {
			res.Indices = append(res.Indices, idx+offset)
		}
	}
	return res
}

// ReadSTLMesh reads a binary STL file and indexes it as a Mesh.
func ReadSTLMesh(r io.Reader) (*Mesh, error) {
	tris, err := model3d.ReadSTL(r)
	if err != nil {
		return nil, errors.Wrap(err, "read STL mesh")
	}
	return NewMeshTriangles(tris), nil
}

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int {
	return len(m.Positions) / 3
}

// NumTriangles returns the number of triangles.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// Vertex returns the i-th vertex.
func (m *Mesh) Vertex(i int) model3d.Coord3D {
	return model3d.XYZ(m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2])
}

// Triangle returns the corners of the i-th triangle.
func (m *Mesh) Triangle(i int) (p1, p2, p3 model3d.Coord3D) {
	return m.Vertex(m.Indices[i*3]), m.Vertex(m.Indices[i*3+1]), m.Vertex(m.Indices[i*3+2])
}

// Min computes the per-coordinate minimum of all of the vertices.
//
// If the mesh has no vertices, the origin is returned.
func (m *Mesh) Min() model3d.Coord3D {
	if m.NumVertices() == 0 {
		return model3d.Coord3D{}
	}
	res := m.Vertex(0)
	for i := 1; i < m.NumVertices(); i++ {
		res = res.Min(m.Vertex(i))
	}
	return res
}

// Max computes the per-coordinate maximum of all of the vertices.
//
// If the mesh has no vertices, the origin is returned.
func (m *Mesh) Max() model3d.Coord3D {
	if m.NumVertices() == 0 {
		return model3d.Coord3D{}
	}
	res := m.Vertex(0)
	for i := 1; i < m.NumVertices(); i++ {
		res = res.Max(m.Vertex(i))
	}
	return res
}

// Model3D converts the mesh back into a model3d mesh, e.g. for
// rendering or export.
func (m *Mesh) Model3D() *model3d.Mesh {
	res := model3d.NewMesh()
	for i := 0; i < m.NumTriangles(); i++ {
		p1, p2, p3 := m.Triangle(i)
		res.Add(&model3d.Triangle{p1, p2, p3})
	}
	return res
}

// Validate checks the structural invariants of the mesh: position and
// index counts that are multiples of three, and indices within the
// vertex range.
func (m *Mesh) Validate() error {
	if len(m.Positions)%3 != 0 {
		return errors.Errorf("position count %d is not a multiple of 3", len(m.Positions))
	}
	if len(m.Indices)%3 != 0 {
		return errors.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for _, idx := range m.Indices {
		if idx < 0 || idx >= m.NumVertices() {
			return errors.Errorf("index %d out of range for %d vertices", idx, m.NumVertices())
		}
	}
	return nil
}
