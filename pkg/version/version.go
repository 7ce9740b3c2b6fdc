// Package version reports the build version of contentview.
package version

// version is set at build time with
// -ldflags "-X github.com/rshade/contentview/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Overridden by the linker.
var version = "0.1.0-dev"

// GetVersion returns the build version.
func GetVersion() string {
	return version
}
