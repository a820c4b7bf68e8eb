package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
)

// TriangleMesh is the flat exchange format shared with the loader and the
// renderer: positions plus triangle indices with stride 3.
type TriangleMesh struct {
	Positions []mgl64.Vec3
	Indices   []uint32
}

// TriangleCount returns the number of triangles described by the index
// array.
func (m *TriangleMesh) TriangleCount() int {
	return len(m.Indices) / 3
}
