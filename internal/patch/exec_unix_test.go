//go:build unix

package patch

import (
	"testing"
	"unsafe"

	"github.com/pboyd/malloc"
	"github.com/stretchr/testify/require"
)

// The Go heap is no stand-in for the game's code pages, so the end to
// end test works on an mmap-backed arena and lets InstallCallHook flip
// the real page protection before writing.
func TestInstallCallHookOnProtectedRegion(t *testing.T) {
	require := require.New(t)

	be := malloc.MmapBackend(malloc.MmapProt(mprotectRWX), malloc.MmapFlags(0))
	arena := malloc.NewArena(4096, malloc.Backend(be))
	require.NotNil(arena)

	code, err := malloc.MallocSlice[byte](arena, callLen)
	require.NoError(err)

	site := uintptr(unsafe.Pointer(unsafe.SliceData(code)))

	// Seed the region with a call to the stand-in original callee.
	encodeCall(code, site, site+0x200)

	// Drop write access the way the game's code pages arrive.
	if protBE, ok := be.(malloc.ProtectedArenaBackend); ok {
		require.NoError(protBE.Protect(mprotectRX))
	}

	dest := site + 0x40
	require.NoError(InstallCallHook(site, dest))

	decoded, err := callTarget(code, site)
	require.NoError(err)
	require.Equal(dest, decoded)
}
