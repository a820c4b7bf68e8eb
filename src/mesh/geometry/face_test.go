package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func rightTriangle() (*Vertex, *Vertex, *Vertex) {
	return NewVertexWithID(6, mgl64.Vec3{0, 0, 0}),
		NewVertexWithID(2, mgl64.Vec3{2, 0, 0}),
		NewVertexWithID(9, mgl64.Vec3{0, 2, 0})
}

func TestFaceCanonicalRotation(t *testing.T) {
	v0, v1, v2 := rightTriangle()

	for idx, tc := range []struct {
		a, b, c *Vertex
	}{
		{v0, v1, v2},
		{v1, v2, v0},
		{v2, v0, v1},
	} {
		t.Run(fmt.Sprintf("rotation%d", idx), func(t *testing.T) {
			f := NewFace(tc.a, tc.b, tc.c)
			require.Equal(t, [3]*Vertex{v1, v2, v0}, f.Vertices(), "minimum id first, winding preserved")
		})
	}
}

func TestFaceHashAcrossRotations(t *testing.T) {
	v0, v1, v2 := rightTriangle()

	h := NewFace(v0, v1, v2).Hash()
	require.Equal(t, h, NewFace(v1, v2, v0).Hash())
	require.Equal(t, h, NewFace(v2, v0, v1).Hash())

	require.NotEqual(t, h, NewFace(v2, v1, v0).Hash(), "reflection must not hash equal")
}

func TestFaceAreaNormal(t *testing.T) {
	v0, v1, v2 := rightTriangle()
	f := NewFace(v0, v1, v2)

	require.InDelta(t, 2.0, f.Area(), 1e-12)
	require.InDelta(t, 0, f.Normal().Sub(mgl64.Vec3{0, 0, 1}).Len(), 1e-12)

	// area and normal track the vertices, not the construction snapshot
	g := NewFace(
		NewVertexWithID(0, mgl64.Vec3{0, 0, 0}),
		NewVertexWithID(1, mgl64.Vec3{0, 1, 0}),
		NewVertexWithID(2, mgl64.Vec3{0, 0, 1}),
	)
	require.InDelta(t, 0.5, g.Area(), 1e-12)
	require.InDelta(t, 0, g.Normal().Sub(mgl64.Vec3{1, 0, 0}).Len(), 1e-12)
}

func TestFaceDegenerateAssert(t *testing.T) {
	if !DebugChecks {
		t.Skip("degenerate-face precondition is only checked with -tags debug")
	}
	collinear := [3]*Vertex{
		NewVertexWithID(0, mgl64.Vec3{0, 0, 0}),
		NewVertexWithID(1, mgl64.Vec3{1, 0, 0}),
		NewVertexWithID(2, mgl64.Vec3{2, 0, 0}),
	}
	require.Panics(t, func() {
		NewFace(collinear[0], collinear[1], collinear[2])
	})
}

func TestVertexIDBeforeAssignment(t *testing.T) {
	if !DebugChecks {
		t.Skip("id preconditions are only checked with -tags debug")
	}
	v := NewVertex(mgl64.Vec3{1, 2, 3})
	require.Panics(t, func() { v.ID() })

	v.SetID(7)
	require.Equal(t, 7, v.ID())
	require.Panics(t, func() { v.SetID(8) })
}

func TestFaceNormalUnit(t *testing.T) {
	v0, v1, v2 := rightTriangle()
	f := NewFace(v0, v1, v2)
	require.InDelta(t, 1.0, f.Normal().Len(), 1e-12)
	require.False(t, math.IsNaN(f.Normal().X()))
}
