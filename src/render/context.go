// Package render is the boundary between the half-edge mesh and the
// Vulkan backend: it flattens the current face table into interleaved
// vertex/index buffers and describes their layout to the pipeline. It
// owns no device state; the Context supplies that.
package render

import (
	"github.com/vulkan-go/vulkan"
)

// Context is the slice of the backend the upload path needs.
type Context interface {
	Device() vulkan.Device
	CommandBuffer() vulkan.CommandBuffer
}
