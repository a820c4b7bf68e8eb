package geometry

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func vtx(id int) *Vertex {
	return NewVertexWithID(id, mgl64.Vec3{})
}

func TestPairHashDirectional(t *testing.T) {
	for idx, tc := range []struct {
		a, b int
	}{
		{0, 1},
		{1, 2},
		{0, 9},
		{7, 3},
		{100, 101},
		{0, 1 << 30},
	} {
		t.Run(fmt.Sprintf("%d/%d-%d", idx, tc.a, tc.b), func(t *testing.T) {
			va, vb := vtx(tc.a), vtx(tc.b)
			require.NotEqual(t, pairHash(va, vb), pairHash(vb, va))
		})
	}
}

func TestPairHashStable(t *testing.T) {
	va, vb := vtx(4), vtx(11)
	require.Equal(t, pairHash(va, vb), pairHash(va, vb))

	// distinct pairs land on distinct keys
	seen := map[uint64]string{}
	for a := 0; a < 12; a++ {
		for b := 0; b < 12; b++ {
			if a == b {
				continue
			}
			k := pairHash(vtx(a), vtx(b))
			prev, dup := seen[k]
			require.False(t, dup, "pair (%d,%d) collides with %s", a, b, prev)
			seen[k] = fmt.Sprintf("(%d,%d)", a, b)
		}
	}
}

func TestTripleHashRotationInvariant(t *testing.T) {
	v0, v1, v2 := vtx(3), vtx(8), vtx(5)

	h := tripleHash(canonical3(v0, v1, v2))
	require.Equal(t, h, tripleHash(canonical3(v1, v2, v0)))
	require.Equal(t, h, tripleHash(canonical3(v2, v0, v1)))

	// reversing the winding is a different triangle
	require.NotEqual(t, h, tripleHash(canonical3(v2, v1, v0)))
	require.NotEqual(t, h, tripleHash(canonical3(v1, v0, v2)))
	require.NotEqual(t, h, tripleHash(canonical3(v0, v2, v1)))
}

func canonical3(v0, v1, v2 *Vertex) (*Vertex, *Vertex, *Vertex) {
	c := canonicalize(v0, v1, v2)
	return c[0], c[1], c[2]
}

func FuzzPairHashDirectional(f *testing.F) {
	f.Add(0, 1)
	f.Add(3, 7)
	f.Add(1024, 4096)
	f.Fuzz(func(t *testing.T, a, b int) {
		if a < 0 || b < 0 || a == b {
			t.Skip()
		}
		va, vb := vtx(a), vtx(b)
		if pairHash(va, vb) == pairHash(vb, va) {
			t.Errorf("pairHash(%d,%d) matches its reverse", a, b)
		}
	})
}
