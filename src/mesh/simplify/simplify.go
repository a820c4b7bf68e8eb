// Package simplify drives progressive mesh decimation: it repeatedly
// picks the cheapest edge under a pluggable metric and contracts it.
// The metric decides both which edge goes next and where the merged
// vertex lands; the half-edge surgery itself lives in geometry.
package simplify

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"decimate/src/mesh/geometry"
)

// Metric scores candidate contractions. Lower cost contracts first.
type Metric interface {
	Cost(e *geometry.HalfEdge) float64
	Placement(e *geometry.HalfEdge) mgl64.Vec3
}

// EdgeLength is the simplest useful metric: cost is the edge length and
// the merged vertex lands on the midpoint. A quadric-error metric would
// implement the same interface.
type EdgeLength struct{}

func (EdgeLength) Cost(e *geometry.HalfEdge) float64 {
	return e.Vertex().Position().Sub(e.Origin().Position()).Len()
}

func (EdgeLength) Placement(e *geometry.HalfEdge) mgl64.Vec3 {
	return e.Origin().Position().Add(e.Vertex().Position()).Mul(0.5)
}

// Simplifier owns a mesh for the duration of a decimation pass. The
// mesh is single-threaded; one Simplifier must not be shared across
// goroutines.
type Simplifier struct {
	Mesh   *geometry.HalfEdgeMesh
	Metric Metric
}

func New(mesh *geometry.HalfEdgeMesh, metric Metric) *Simplifier {
	return &Simplifier{Mesh: mesh, Metric: metric}
}

// Step contracts the cheapest edge, placing the merged vertex where the
// metric says. It reports false when no contractible edge remains.
func (s *Simplifier) Step() bool {
	e := s.cheapest()
	if e == nil {
		return false
	}
	s.Mesh.Contract(e, geometry.NewVertex(s.Metric.Placement(e)))
	return true
}

// cheapest scans the half-edge table. Each undirected edge appears
// twice; scoring both directions is harmless since the metric sees the
// same endpoints either way.
func (s *Simplifier) cheapest() *geometry.HalfEdge {
	var best *geometry.HalfEdge
	bestCost := 0.0
	for _, e := range s.Mesh.Edges() {
		if c := s.Metric.Cost(e); best == nil || c < bestCost {
			best = e
			bestCost = c
		}
	}
	return best
}

// Reduce contracts edges until the face table holds at most targetFaces
// faces, returning the number of contractions performed. The target is
// caller input, so an unreachable one is an error rather than a defect.
func (s *Simplifier) Reduce(targetFaces int) (int, error) {
	if targetFaces < 0 {
		return 0, fmt.Errorf("simplify: negative face target %d", targetFaces)
	}
	steps := 0
	for len(s.Mesh.Faces()) > targetFaces {
		if !s.Step() {
			return steps, fmt.Errorf("simplify: no contractible edge left at %d faces (target %d)",
				len(s.Mesh.Faces()), targetFaces)
		}
		steps++
	}
	return steps, nil
}
