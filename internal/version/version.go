// Package version holds build version information.
package version

// Version is the current release version, overridden at build time via
// -ldflags "-X .../internal/version.Version=...".
var Version = "0.1.0"
