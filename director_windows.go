//go:build windows

package sc4dda

import (
	"path/filepath"
	"reflect"
	"unsafe"

	"golang.org/x/sys/windows"
)

// pluginFolder resolves the directory holding this DLL, not the host
// executable, so the log file lands next to the plugin.
func pluginFolder() string {
	var module windows.Handle
	err := windows.GetModuleHandleEx(
		windows.GET_MODULE_HANDLE_EX_FLAG_FROM_ADDRESS|windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT,
		(*uint16)(unsafe.Pointer(reflect.ValueOf(pluginFolder).Pointer())),
		&module)
	if err != nil {
		return "."
	}

	var buf [windows.MAX_PATH]uint16
	n, err := windows.GetModuleFileName(module, &buf[0], uint32(len(buf)))
	if err != nil || n == 0 {
		return "."
	}
	return filepath.Dir(windows.UTF16ToString(buf[:n]))
}
