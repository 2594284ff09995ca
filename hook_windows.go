//go:build windows

package sc4dda

import (
	"syscall"

	"github.com/sc4mods/sc4-disable-demolition-animation/internal/sc4"
)

// The game calls the size check with the cdecl convention, so the
// callback must leave argument cleanup to the caller.
var replacementCallback = syscall.NewCallbackCDecl(func(occupant, unknown uintptr) uintptr {
	occupantTooSmallForDemolitionAnimation(sc4.RawOccupant(occupant), nil)
	return 1
})

func replacementFunctionAddr() uintptr {
	return replacementCallback
}
