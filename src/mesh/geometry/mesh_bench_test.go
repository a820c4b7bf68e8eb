package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var benchMesh *HalfEdgeMesh

func BenchmarkBuildFanPlusRing(b *testing.B) {
	tm := fanPlusRing()
	for i := 0; i < b.N; i++ {
		benchMesh, _ = NewHalfEdgeMesh(tm)
	}
}

func BenchmarkContract(b *testing.B) {
	tm := fanPlusRing()
	for i := 0; i < b.N; i++ {
		m, _ := NewHalfEdgeMesh(tm)
		e := m.HalfEdgeBetween(m.Vertices()[0], m.Vertices()[1])
		m.Contract(e, NewVertex(mgl64.Vec3{}))
		benchMesh = m
	}
}

func BenchmarkTriangleMeshFlatten(b *testing.B) {
	m, _ := NewHalfEdgeMesh(fanPlusRing())
	var flat *TriangleMesh
	for i := 0; i < b.N; i++ {
		flat = m.TriangleMesh()
	}
	_ = flat
}
