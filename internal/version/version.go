// Package version exposes the build version, overridable at link time with
// -ldflags "-X github.com/dstam/dividend-tracker/internal/version.Version=...".
package version

// Version is the application version reported by the system endpoints.
var Version = "dev"
