// SimCity 4 plugin that disables the demolition animation.
//
// Before the game picks the demolition animation for an occupant, it
// calls a function to determine whether the occupant is too small for
// one. At plugin activation this package patches that call site so it
// lands in a replacement which reports every occupant as too small,
// which disables the animation for all occupants.
//
// The patch is version gated: only executables whose build appears in
// the hook table are touched. On an unknown build the plugin logs the
// build number and leaves the game running unpatched.
package sc4dda
