package render

import (
	"unsafe"

	"github.com/vulkan-go/vulkan"

	"decimate/src/mesh/geometry"
)

// Vertex is the interleaved layout the pipeline consumes: position then
// normal, both float32.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

const vertexStride = uint32(unsafe.Sizeof(Vertex{}))

// BuildBuffers flattens the mesh's face table into a vertex and index
// buffer. Vertices are emitted per face so each triangle carries its
// own face normal; the order follows the face table and is unspecified.
func BuildBuffers(m *geometry.HalfEdgeMesh) ([]Vertex, []uint32) {
	faces := m.Faces()
	vertices := make([]Vertex, 0, len(faces)*3)
	indices := make([]uint32, 0, len(faces)*3)

	for _, f := range faces {
		n := f.Normal()
		normal := [3]float32{float32(n.X()), float32(n.Y()), float32(n.Z())}
		for _, v := range f.Vertices() {
			p := v.Position()
			indices = append(indices, uint32(len(vertices)))
			vertices = append(vertices, Vertex{
				Position: [3]float32{float32(p.X()), float32(p.Y()), float32(p.Z())},
				Normal:   normal,
			})
		}
	}
	return vertices, indices
}

// VertexBindingDescription describes one interleaved binding of Vertex
// records.
func VertexBindingDescription() vulkan.VertexInputBindingDescription {
	return vulkan.VertexInputBindingDescription{
		Binding:   0,
		Stride:    vertexStride,
		InputRate: vulkan.VertexInputRateVertex,
	}
}

// VertexAttributeDescriptions describes the position and normal
// attributes within the binding.
func VertexAttributeDescriptions() []vulkan.VertexInputAttributeDescription {
	return []vulkan.VertexInputAttributeDescription{
		{
			Location: 0,
			Binding:  0,
			Format:   vulkan.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Position)),
		},
		{
			Location: 1,
			Binding:  0,
			Format:   vulkan.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Normal)),
		},
	}
}

// VertexBufferCreateInfo sizes a vertex buffer for the given flattened
// vertices.
func VertexBufferCreateInfo(vertices []Vertex) vulkan.BufferCreateInfo {
	return vulkan.BufferCreateInfo{
		SType:       vulkan.StructureTypeBufferCreateInfo,
		Size:        vulkan.DeviceSize(len(vertices)) * vulkan.DeviceSize(vertexStride),
		Usage:       vulkan.BufferUsageFlags(vulkan.BufferUsageVertexBufferBit),
		SharingMode: vulkan.SharingModeExclusive,
	}
}

// IndexBufferCreateInfo sizes an index buffer for the given indices.
func IndexBufferCreateInfo(indices []uint32) vulkan.BufferCreateInfo {
	return vulkan.BufferCreateInfo{
		SType:       vulkan.StructureTypeBufferCreateInfo,
		Size:        vulkan.DeviceSize(len(indices)) * vulkan.DeviceSize(unsafe.Sizeof(uint32(0))),
		Usage:       vulkan.BufferUsageFlags(vulkan.BufferUsageIndexBufferBit),
		SharingMode: vulkan.SharingModeExclusive,
	}
}
