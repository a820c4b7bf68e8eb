package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is a mesh vertex: an id unique within one mesh, a position, and
// a lazily maintained witness half-edge pointing at it. The mesh's vertex
// table is the only owning reference; everything else observes.
type Vertex struct {
	id       int
	idSet    bool
	position mgl64.Vec3
	incident *HalfEdge
	detached bool
}

// NewVertex creates a vertex without an id. The id is assigned when the
// vertex is catalogued into a mesh.
func NewVertex(position mgl64.Vec3) *Vertex {
	return &Vertex{position: position}
}

// NewVertexWithID creates a vertex with a known id, as during
// construction from an indexed triangle list where the index is the id.
func NewVertexWithID(id int, position mgl64.Vec3) *Vertex {
	return &Vertex{id: id, idSet: true, position: position}
}

// ID returns the vertex id. The id must have been assigned first.
func (v *Vertex) ID() int {
	assert(!v.detached, "ID on a vertex removed from its mesh")
	assert(v.idSet, "ID read before assignment")
	return v.id
}

// SetID assigns the id. A vertex id is immutable once set.
func (v *Vertex) SetID(id int) {
	assert(!v.idSet, "SetID on a vertex that already has an id")
	v.id = id
	v.idSet = true
}

func (v *Vertex) Position() mgl64.Vec3 {
	assert(!v.detached, "Position on a vertex removed from its mesh")
	return v.position
}

// HalfEdge returns some half-edge whose destination is v. Any incident
// half-edge is a valid witness.
func (v *Vertex) HalfEdge() *HalfEdge {
	assert(!v.detached, "HalfEdge on a vertex removed from its mesh")
	return v.incident
}

func (v *Vertex) setHalfEdge(e *HalfEdge) {
	v.incident = e
}

func (v *Vertex) hasID() bool {
	return v.idSet
}

func (v *Vertex) detach() {
	v.detached = true
}
