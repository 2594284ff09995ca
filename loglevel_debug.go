//go:build sc4dbg

package sc4dda

import "github.com/sc4mods/sc4-disable-demolition-animation/internal/logger"

// Diagnostic builds log demolished occupant names.
const logThreshold = logger.Debug
