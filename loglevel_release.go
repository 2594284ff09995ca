//go:build !sc4dbg

package sc4dda

import "github.com/sc4mods/sc4-disable-demolition-animation/internal/logger"

const logThreshold = logger.Error
