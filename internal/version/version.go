// Package version exposes the application version injected at build time.
package version

// set via `-ldflags "-X ...internal/version.version=..."` at build time
var version = "v0.0.0@unreleased" //nolint:gochecknoglobals

// Version returns the application version, without the leading `v`.
func Version() string {
	if len(version) > 1 && version[0] == 'v' {
		return version[1:]
	}

	return version
}
