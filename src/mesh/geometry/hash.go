package geometry

// Identity hashing for the mesh's three owning tables. Vertices hash to
// their id; directed vertex pairs and canonical vertex triples are mixed
// with a splitmix64-style avalanche so that the pair hash stays sensitive
// to direction and the triple hash to winding.

const hashSeed uint64 = 0x9e3779b97f4a7c15

func avalanche(h uint64) uint64 {
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}

func hashCombine(seed, h uint64) uint64 {
	return seed ^ (avalanche(h) + hashSeed + seed<<6 + seed>>2)
}

func vertexHash(v *Vertex) uint64 {
	return uint64(v.ID())
}

// pairHash keys a directed edge by (source, destination). It is not
// symmetric: pairHash(a, b) != pairHash(b, a) unless a == b.
func pairHash(src, dst *Vertex) uint64 {
	return hashCombine(vertexHash(src), vertexHash(dst))
}

// tripleHash keys an oriented triangle. Callers pass the canonical
// rotation (minimum id first); two triangles with the same cyclic order
// then hash equal, while the reflected winding hashes differently.
func tripleHash(v0, v1, v2 *Vertex) uint64 {
	return hashCombine(hashCombine(vertexHash(v0), vertexHash(v1)), vertexHash(v2))
}
