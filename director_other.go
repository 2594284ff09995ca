//go:build !windows

package sc4dda

import (
	"os"
	"path/filepath"
)

func pluginFolder() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
