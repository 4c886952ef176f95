// Package build holds build-time information for prov.
package build

// Version is the prov release version.
// It defaults to "dev" and is overwritten by linker flags on release builds.
var Version = "dev"
