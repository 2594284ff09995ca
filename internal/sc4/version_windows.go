//go:build windows

package sc4

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// detectGameVersion identifies the running executable, first from its
// embedded version resource and then, for resource-stripped builds, from
// its PE link timestamp.
func detectGameVersion() uint16 {
	var buf [windows.MAX_PATH]uint16
	n, err := windows.GetModuleFileName(0, &buf[0], uint32(len(buf)))
	if err != nil || n == 0 {
		return UnknownVersion
	}
	path := windows.UTF16ToString(buf[:n])

	if build := buildFromVersionResource(path); build != UnknownVersion {
		return build
	}
	return buildFromExecutableTimestamp(path)
}

// buildFromVersionResource reads the FILEVERSION of the executable at
// path. The game numbers its releases 1.1.<build>.0, so the build is the
// third component.
func buildFromVersionResource(path string) uint16 {
	size, err := windows.GetFileVersionInfoSize(path, nil)
	if err != nil || size == 0 {
		return UnknownVersion
	}

	data := make([]byte, size)
	err = windows.GetFileVersionInfo(path, 0, size, unsafe.Pointer(&data[0]))
	if err != nil {
		return UnknownVersion
	}

	var fixed *windows.VS_FIXEDFILEINFO
	var fixedLen uint32
	err = windows.VerQueryValue(unsafe.Pointer(&data[0]), `\`, unsafe.Pointer(&fixed), &fixedLen)
	if err != nil || fixedLen == 0 || fixed == nil {
		return UnknownVersion
	}

	return uint16(fixed.FileVersionLS >> 16)
}
