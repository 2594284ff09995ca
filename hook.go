package sc4dda

import (
	"github.com/sc4mods/sc4-disable-demolition-animation/internal/logger"
	"github.com/sc4mods/sc4-disable-demolition-animation/internal/patch"
	"github.com/sc4mods/sc4-disable-demolition-animation/internal/sc4"
)

// hookTargets maps each supported game build to the address of the call
// the game makes to decide whether an occupant is too small for a
// demolition animation. Supporting a new build is a data change here,
// not a code change.
var hookTargets = map[uint16]uintptr{
	641: 0x4673bf,
}

// hookTargetForBuild looks up the call site to patch for a build.
func hookTargetForBuild(build uint16) (uintptr, bool) {
	addr, ok := hookTargets[build]
	return addr, ok
}

// activeLog is the process-wide diagnostics sink. The patched call
// cannot carry a logger into the replacement function, so the
// replacement reads this instead.
var activeLog *logger.Logger

// occupantTooSmallForDemolitionAnimation stands in for the game's size
// check. The float out parameter of the original is never written: the
// game only reads it for occupants that are big enough to animate, and
// this version reports that none are.
func occupantTooSmallForDemolitionAnimation(oc sc4.Occupant, _ *float32) bool {
	if activeLog != nil {
		if name := sc4.ExemplarName(oc); name != "" {
			activeLog.WriteLinef(logger.Debug, "Demolished occupant '%s'.", name)
		}
	}
	return true
}

// Installer wires version detection, the hook table and the memory
// patcher together. It runs exactly once, at plugin activation; there is
// no retry and no uninstall short of the host process exiting.
type Installer struct {
	log *logger.Logger

	// Seams for tests.
	gameVersion     func() uint16
	installCallHook func(target, replacement uintptr) error
	replacementAddr func() uintptr
}

// NewInstaller returns an installer bound to the real version detector,
// memory patcher and replacement function.
func NewInstaller(log *logger.Logger) *Installer {
	return &Installer{
		log:             log,
		gameVersion:     sc4.GetGameVersion,
		installCallHook: patch.InstallCallHook,
		replacementAddr: replacementFunctionAddr,
	}
}

// Install redirects the demolition animation size check. Every failure
// is contained here and reported through the log; the host keeps
// running with the animation enabled if the patch cannot be applied.
func (ins *Installer) Install() {
	build := ins.gameVersion()

	target, ok := hookTargetForBuild(build)
	if !ok {
		ins.log.WriteLinef(logger.Error, "Unsupported game version: %d", build)
		return
	}

	if err := ins.installCallHook(target, ins.replacementAddr()); err != nil {
		ins.log.WriteLinef(logger.Error,
			"Failed to install the demolition animations patch: %v", err)
		return
	}

	ins.log.WriteLine(logger.Info, "Disabled the occupant demolition animations.")
}
