package geometry

// HalfEdge is one traversal direction of an undirected mesh edge. Its
// implicit origin is the destination of its flip. Boundary half-edges,
// where the mesh has no triangle on one side, carry no face and no next.
type HalfEdge struct {
	vertex   *Vertex // destination
	flip     *HalfEdge
	next     *HalfEdge // counter-clockwise around face
	face     *Face
	detached bool
}

// Vertex returns the destination vertex.
func (e *HalfEdge) Vertex() *Vertex {
	assert(!e.detached, "Vertex on a half-edge removed from its mesh")
	return e.vertex
}

// Origin returns the source vertex, i.e. the destination of the flip.
func (e *HalfEdge) Origin() *Vertex {
	assert(!e.detached, "Origin on a half-edge removed from its mesh")
	return e.flip.Vertex()
}

// Flip returns the half-edge for the opposite direction of the same
// undirected edge. Flips exist for every half-edge: they are created in
// pairs, so Flip().Flip() == e always holds.
func (e *HalfEdge) Flip() *HalfEdge {
	assert(!e.detached, "Flip on a half-edge removed from its mesh")
	return e.flip
}

// Next returns the next half-edge counter-clockwise around the owning
// face, or nil for a boundary half-edge.
func (e *HalfEdge) Next() *HalfEdge {
	assert(!e.detached, "Next on a half-edge removed from its mesh")
	return e.next
}

// Face returns the owning face, or nil for a boundary half-edge.
func (e *HalfEdge) Face() *Face {
	assert(!e.detached, "Face on a half-edge removed from its mesh")
	return e.face
}

func (e *HalfEdge) setVertex(v *Vertex) { e.vertex = v }
func (e *HalfEdge) setFlip(f *HalfEdge) { e.flip = f }
func (e *HalfEdge) setNext(n *HalfEdge) { e.next = n }
func (e *HalfEdge) setFace(f *Face)     { e.face = f }

func (e *HalfEdge) detach() {
	e.detached = true
}
