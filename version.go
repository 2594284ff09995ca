package sc4dda

// Plugin identity, mirrored in the log file header.
const (
	PluginName    = "SC4DisableDemolitionAnimation"
	PluginVersion = "1.0.1"
)
