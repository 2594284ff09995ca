package sc4

import (
	"debug/pe"
	"sync"
)

// UnknownVersion is returned when the running executable cannot be
// identified as a known game build.
const UnknownVersion uint16 = 0

var (
	versionOnce = new(sync.Once)
	version     uint16

	// detectVersion is a seam for tests.
	detectVersion = detectGameVersion
)

// GetGameVersion reports the build number of the running host
// executable, e.g. 641 for version 1.1.641.0. Detection runs once per
// process; later calls return the cached value.
func GetGameVersion() uint16 {
	versionOnce.Do(func() {
		version = detectVersion()
	})
	return version
}

// linkTimestamps maps the PE header link timestamp of each known game
// executable to its build number. This recognizes executables whose
// version resource was stripped by a repack.
var linkTimestamps = map[uint32]uint16{
	0x3e2d8b7a: 610,
	0x3e92f1c3: 613,
	0x3f8d2a5e: 638,
	0x3fd1b649: 640,
	0x414c4e02: 641,
}

// buildFromLinkTimestamp looks a link timestamp up in the known-build
// table.
func buildFromLinkTimestamp(ts uint32) uint16 {
	if build, ok := linkTimestamps[ts]; ok {
		return build
	}
	return UnknownVersion
}

// buildFromExecutableTimestamp reads the PE header of the executable at
// path and identifies its build by link timestamp.
func buildFromExecutableTimestamp(path string) uint16 {
	f, err := pe.Open(path)
	if err != nil {
		return UnknownVersion
	}
	defer f.Close()

	return buildFromLinkTimestamp(f.FileHeader.TimeDateStamp)
}
