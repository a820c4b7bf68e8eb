package render

import (
	"fmt"

	"github.com/vulkan-go/vulkan"
)

// NewError wraps a non-success vulkan.Result from a mesh upload call.
func NewError(op string, retVal vulkan.Result) error {
	if retVal != vulkan.Success {
		return fmt.Errorf("render: %s: %w (%d)", op, vulkan.Error(retVal), retVal)
	}
	return nil
}

func IsError(retVal vulkan.Result) bool {
	return retVal != vulkan.Success
}

// CheckError converts a panic out of the upload path into an error, for
// use as `defer render.CheckError(&err)`.
func CheckError(err *error) {
	if v := recover(); v != nil {
		*err = fmt.Errorf("%+v", v)
	}
}
