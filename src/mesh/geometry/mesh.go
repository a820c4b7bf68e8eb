package geometry

import (
	"fmt"
)

// HalfEdgeMesh is a triangle mesh held as interlinked vertices, directed
// half-edges and faces. The three tables are the sole owners of their
// entities; every cross-link (flip, next, face, vertex witness) observes
// an entity that must still be catalogued. The structure is
// single-threaded: callers running concurrent simplification passes must
// serialize access themselves.
type HalfEdgeMesh struct {
	vertices map[int]*Vertex
	edges    map[uint64]*HalfEdge // keyed by directed (source, destination) pair
	faces    map[uint64]*Face     // keyed by canonical triple

	// nextID only grows, so ids freed by a collapse are never reissued.
	nextID int
}

// NewHalfEdgeMesh builds the half-edge structure from an indexed triangle
// list. The index array comes from an external loader, so structural
// problems are reported as errors; geometric degeneracy (a zero-area
// triangle) is a defect checked in debug builds only.
func NewHalfEdgeMesh(tm *TriangleMesh) (*HalfEdgeMesh, error) {
	if tm == nil {
		return nil, fmt.Errorf("geometry: nil triangle mesh")
	}
	if len(tm.Indices)%3 != 0 {
		return nil, fmt.Errorf("geometry: index count %d is not a multiple of 3", len(tm.Indices))
	}

	m := &HalfEdgeMesh{
		vertices: make(map[int]*Vertex, len(tm.Positions)),
		edges:    make(map[uint64]*HalfEdge, len(tm.Indices)*2),
		faces:    make(map[uint64]*Face, len(tm.Indices)/3),
	}

	for t := 0; t < len(tm.Indices); t += 3 {
		i, j, k := tm.Indices[t], tm.Indices[t+1], tm.Indices[t+2]
		for _, idx := range []uint32{i, j, k} {
			if int(idx) >= len(tm.Positions) {
				return nil, fmt.Errorf("geometry: index %d out of range (%d positions)", idx, len(tm.Positions))
			}
		}

		vi := m.vertexFor(int(i), tm)
		vj := m.vertexFor(int(j), tm)
		vk := m.vertexFor(int(k), tm)

		eij := m.directedEdge(vi, vj)
		ejk := m.directedEdge(vj, vk)
		eki := m.directedEdge(vk, vi)

		eij.setNext(ejk)
		ejk.setNext(eki)
		eki.setNext(eij)

		f := NewFace(vi, vj, vk)
		eij.setFace(f)
		ejk.setFace(f)
		eki.setFace(f)
		m.faces[f.Hash()] = f
	}

	m.nextID = len(m.vertices)
	return m, nil
}

// vertexFor returns the catalogued vertex for an index, creating it on
// first sight with the index as its id.
func (m *HalfEdgeMesh) vertexFor(id int, tm *TriangleMesh) *Vertex {
	if v, ok := m.vertices[id]; ok {
		return v
	}
	v := NewVertexWithID(id, tm.Positions[id])
	m.vertices[id] = v
	return v
}

// directedEdge returns the half-edge src->dst, creating it if needed.
// The reverse half-edge is created eagerly (faceless) when absent, so
// every half-edge has a resolvable flip from the moment it exists.
func (m *HalfEdgeMesh) directedEdge(src, dst *Vertex) *HalfEdge {
	rev := m.edges[pairHash(dst, src)]
	if rev == nil {
		rev = &HalfEdge{vertex: src}
		m.edges[pairHash(dst, src)] = rev
		src.setHalfEdge(rev)
	}
	fwd := m.edges[pairHash(src, dst)]
	if fwd == nil {
		fwd = &HalfEdge{vertex: dst}
		m.edges[pairHash(src, dst)] = fwd
	}
	fwd.setFlip(rev)
	rev.setFlip(fwd)
	dst.setHalfEdge(fwd)
	return fwd
}

// Vertices exposes the id-keyed vertex table.
func (m *HalfEdgeMesh) Vertices() map[int]*Vertex { return m.vertices }

// Edges exposes the half-edge table, keyed by the directed pair hash.
func (m *HalfEdgeMesh) Edges() map[uint64]*HalfEdge { return m.edges }

// Faces exposes the face table, keyed by the canonical triple hash.
func (m *HalfEdgeMesh) Faces() map[uint64]*Face { return m.faces }

// HalfEdgeBetween returns the catalogued half-edge src->dst, or nil.
func (m *HalfEdgeMesh) HalfEdgeBetween(src, dst *Vertex) *HalfEdge {
	return m.edges[pairHash(src, dst)]
}

// Contract collapses the undirected edge represented by e and its flip,
// replacing both endpoints with the replacement vertex. The (up to) two
// faces spanning the edge degenerate and are removed, together with the
// collapsed half-edge pair and one duplicated half-edge pair per removed
// face. Everything not touched by the collapse keeps its identity and
// links.
//
// e must be catalogued in this mesh and the replacement id must be
// unused; both are caller defects checked in debug builds. If the
// replacement has no id yet it is assigned the next unused one.
func (m *HalfEdgeMesh) Contract(e *HalfEdge, replacement *Vertex) {
	v1 := e.Vertex()
	v0 := e.Origin()
	if DebugChecks {
		assert(m.edges[pairHash(v0, v1)] == e, "Contract on a half-edge not catalogued in this mesh")
	}

	if !replacement.hasID() {
		replacement.SetID(m.nextID)
	}
	if DebugChecks {
		_, taken := m.vertices[replacement.ID()]
		assert(!taken, "Contract replacement id already catalogued")
	}
	if replacement.ID() >= m.nextID {
		m.nextID = replacement.ID() + 1
	}

	flip := e.Flip()

	// Pull every half-edge keyed through either endpoint out of the
	// table before retargeting invalidates the keys. The collapsed pair
	// itself is part of this set.
	var touched []*HalfEdge
	for key, he := range m.edges {
		if he.vertex == v0 || he.vertex == v1 || he.flip.vertex == v0 || he.flip.vertex == v1 {
			delete(m.edges, key)
			touched = append(touched, he)
		}
	}

	delete(m.vertices, v0.ID())
	delete(m.vertices, v1.ID())
	m.vertices[replacement.ID()] = replacement

	for _, he := range touched {
		if he.vertex == v0 || he.vertex == v1 {
			he.setVertex(replacement)
		}
	}

	// Faces spanning the collapsed edge are degenerate: merge each one's
	// two surviving duplicate half-edges into a single pair.
	dead := map[*HalfEdge]bool{e: true, flip: true}
	m.mergeDegenerate(e, replacement, dead)
	m.mergeDegenerate(flip, replacement, dead)

	// Re-key the survivors under their post-collapse endpoints.
	for _, he := range touched {
		if dead[he] {
			continue
		}
		key := pairHash(he.flip.vertex, he.vertex)
		if DebugChecks {
			_, dup := m.edges[key]
			assert(!dup, "Contract left two half-edges over one ordered pair")
		}
		m.edges[key] = he
	}

	// Re-key the surviving incident faces; drop the degenerate ones.
	var faces []*Face
	for key, f := range m.faces {
		if f.has(v0) || f.has(v1) {
			delete(m.faces, key)
			faces = append(faces, f)
		}
	}
	for _, f := range faces {
		if f.has(v0) && f.has(v1) {
			f.detach()
			continue
		}
		f.replace(v0, replacement)
		f.replace(v1, replacement)
		key := f.Hash()
		if DebugChecks {
			_, dup := m.faces[key]
			assert(!dup, "Contract left two faces over one canonical triple")
		}
		m.faces[key] = f
	}

	for he := range dead {
		he.detach()
	}
	v0.detach()
	v1.detach()
}

// mergeDegenerate repairs the face on one side of the collapsed
// half-edge `in`. With the endpoints merged the face's two remaining
// half-edges duplicate the pair on the far side of each: the inner pair
// dies and the two outer half-edges become each other's flip.
func (m *HalfEdgeMesh) mergeDegenerate(in *HalfEdge, replacement *Vertex, dead map[*HalfEdge]bool) {
	if in.face == nil {
		return // boundary: no face to degenerate on this side
	}
	toApex := in.next         // replacement -> apex
	fromApex := toApex.next   // apex -> replacement
	apex := toApex.vertex
	outerIn := toApex.flip    // apex -> replacement, survives
	outerOut := fromApex.flip // replacement -> apex, survives

	outerIn.setFlip(outerOut)
	outerOut.setFlip(outerIn)

	// The dead inner edges may be the witnesses of their destinations.
	apex.setHalfEdge(outerOut)
	replacement.setHalfEdge(outerIn)

	dead[toApex] = true
	dead[fromApex] = true
}

// TriangleMesh flattens the face table back into an indexed triangle
// list for the renderer. Iteration order follows the face table, so the
// output order is unspecified.
func (m *HalfEdgeMesh) TriangleMesh() *TriangleMesh {
	out := &TriangleMesh{
		Indices: make([]uint32, 0, len(m.faces)*3),
	}
	remap := make(map[int]uint32, len(m.vertices))
	for _, f := range m.faces {
		for _, v := range f.Vertices() {
			idx, ok := remap[v.ID()]
			if !ok {
				idx = uint32(len(out.Positions))
				remap[v.ID()] = idx
				out.Positions = append(out.Positions, v.Position())
			}
			out.Indices = append(out.Indices, idx)
		}
	}
	return out
}

// Validate walks the three tables and reports the first inconsistency:
// broken flip symmetry, a mis-keyed table entry, a face whose boundary
// half-edges are missing, or a dangling witness. It exists for tests and
// for debugging mesh surgery.
func (m *HalfEdgeMesh) Validate() error {
	for key, he := range m.edges {
		if he.Flip() == nil {
			return fmt.Errorf("geometry: half-edge %d->%d has no flip", he.Origin().ID(), he.Vertex().ID())
		}
		if he.Flip().Flip() != he {
			return fmt.Errorf("geometry: flip of flip of %d->%d is a different half-edge", he.Origin().ID(), he.Vertex().ID())
		}
		if want := pairHash(he.Origin(), he.Vertex()); key != want {
			return fmt.Errorf("geometry: half-edge %d->%d keyed under the wrong pair hash", he.Origin().ID(), he.Vertex().ID())
		}
		if he.Face() != nil {
			if he.Next() == nil {
				return fmt.Errorf("geometry: interior half-edge %d->%d has no next", he.Origin().ID(), he.Vertex().ID())
			}
			if he.Next().Face() != he.Face() {
				return fmt.Errorf("geometry: next of %d->%d crosses into another face", he.Origin().ID(), he.Vertex().ID())
			}
			if he.Next().Next().Next() != he {
				return fmt.Errorf("geometry: face cycle through %d->%d is not a triangle", he.Origin().ID(), he.Vertex().ID())
			}
		}
	}
	for key, f := range m.faces {
		if key != f.Hash() {
			return fmt.Errorf("geometry: face keyed under the wrong triple hash")
		}
		vs := f.Vertices()
		for i := range vs {
			if m.vertices[vs[i].ID()] != vs[i] {
				return fmt.Errorf("geometry: face references uncatalogued vertex %d", vs[i].ID())
			}
			if m.edges[pairHash(vs[i], vs[(i+1)%3])] == nil {
				return fmt.Errorf("geometry: face edge %d->%d not catalogued", vs[i].ID(), vs[(i+1)%3].ID())
			}
		}
	}
	for id, v := range m.vertices {
		if v.ID() != id {
			return fmt.Errorf("geometry: vertex keyed under id %d but reports %d", id, v.ID())
		}
		if w := v.HalfEdge(); w != nil && w.Vertex() != v {
			return fmt.Errorf("geometry: witness of vertex %d points elsewhere", id)
		}
	}
	return nil
}
