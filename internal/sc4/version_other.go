//go:build !windows

package sc4

import "os"

// The game only ships as a Windows executable. Elsewhere the detector
// can still recognize a PE image by its link timestamp, which keeps the
// fallback path exercised on development machines.
func detectGameVersion() uint16 {
	path, err := os.Executable()
	if err != nil {
		return UnknownVersion
	}
	return buildFromExecutableTimestamp(path)
}
