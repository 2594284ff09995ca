package sc4dda

import (
	"io"
	"path/filepath"

	"github.com/sc4mods/sc4-disable-demolition-animation/internal/logger"
)

// DirectorID uniquely identifies this plugin to the host's plugin
// loader.
const DirectorID uint32 = 0xD9A81BA1

// LogFileName is created fresh in the plugin's own folder on every game
// start.
const LogFileName = "SC4DisableDemolitionAnimation.log"

// Director is the plugin's registration with the host: one identifier
// and one activation entry point. The host constructs it once at load
// and calls OnStart once afterwards.
type Director struct {
	log       *logger.Logger
	installer *Installer
}

// NewDirector opens the log file next to the plugin and prepares the
// hook installer. A log file that cannot be created leaves the director
// logging nowhere rather than failing the host's plugin load.
func NewDirector() *Director {
	logPath := filepath.Join(pluginFolder(), LogFileName)

	log, err := logger.NewFile(logPath, logThreshold)
	if err != nil {
		log = logger.New(io.Discard, logger.Off)
	}
	log.WriteHeader(PluginName + " v" + PluginVersion)

	activeLog = log

	return &Director{
		log:       log,
		installer: NewInstaller(log),
	}
}

// ID reports the director's plugin identifier.
func (d *Director) ID() uint32 {
	return DirectorID
}

// OnStart installs the demolition animation hook. The host treats a
// false return as a failed plugin load, so OnStart reports success even
// when the patch could not be applied; the log carries the details.
func (d *Director) OnStart() bool {
	d.installer.Install()
	return true
}
