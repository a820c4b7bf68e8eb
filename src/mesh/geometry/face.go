package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Face is an oriented triangle. Its vertex triple is stored in canonical
// rotation: cyclic (winding) order as given, rotated so the minimum-id
// vertex comes first. Two constructions of the same oriented triangle
// therefore compare and hash equal no matter which vertex was passed
// first; the reversed winding does not.
type Face struct {
	vertices [3]*Vertex
	detached bool
}

// NewFace builds a face over three vertices in counter-clockwise order.
// The triangle must be non-degenerate; a collinear triple is a caller
// defect, checked only in debug builds.
func NewFace(v0, v1, v2 *Vertex) *Face {
	f := &Face{vertices: canonicalize(v0, v1, v2)}
	if DebugChecks {
		assert(f.Area() > 0, "NewFace with a degenerate triangle")
	}
	return f
}

// canonicalize rotates the triple so the minimum-id vertex is first,
// preserving cyclic order.
func canonicalize(v0, v1, v2 *Vertex) [3]*Vertex {
	if v1.ID() < v0.ID() && v1.ID() < v2.ID() {
		return [3]*Vertex{v1, v2, v0}
	}
	if v2.ID() < v0.ID() && v2.ID() < v1.ID() {
		return [3]*Vertex{v2, v0, v1}
	}
	return [3]*Vertex{v0, v1, v2}
}

// Vertices returns the canonical triple.
func (f *Face) Vertices() [3]*Vertex {
	assert(!f.detached, "Vertices on a face removed from its mesh")
	return f.vertices
}

// Area is half the magnitude of the cross product of two edge vectors,
// derived from the current vertex positions.
func (f *Face) Area() float64 {
	assert(!f.detached, "Area on a face removed from its mesh")
	return f.cross().Len() / 2
}

// Normal is the unit face normal for the stored winding.
func (f *Face) Normal() mgl64.Vec3 {
	assert(!f.detached, "Normal on a face removed from its mesh")
	return f.cross().Normalize()
}

func (f *Face) cross() mgl64.Vec3 {
	a := f.vertices[0].Position()
	b := f.vertices[1].Position()
	c := f.vertices[2].Position()
	return b.Sub(a).Cross(c.Sub(a))
}

// Hash keys the face by its canonical triple.
func (f *Face) Hash() uint64 {
	assert(!f.detached, "Hash on a face removed from its mesh")
	return tripleHash(f.vertices[0], f.vertices[1], f.vertices[2])
}

func (f *Face) has(v *Vertex) bool {
	return f.vertices[0] == v || f.vertices[1] == v || f.vertices[2] == v
}

// replace swaps one vertex for another and re-canonicalizes. The caller
// re-keys the face table afterwards; the hash changes with the triple.
func (f *Face) replace(old, repl *Vertex) {
	for i, v := range f.vertices {
		if v == old {
			f.vertices[i] = repl
		}
	}
	f.vertices = canonicalize(f.vertices[0], f.vertices[1], f.vertices[2])
}

func (f *Face) detach() {
	f.detached = true
}
