//go:build !windows

package sc4dda

import "reflect"

// Without a host process there is no cdecl callback to hand out; the Go
// entry point of the replacement keeps the installer wiring intact.
func replacementFunctionAddr() uintptr {
	return reflect.ValueOf(occupantTooSmallForDemolitionAnimation).Pointer()
}
