// Package version exposes the nanolca build version.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// version is set at build time via -ldflags "-X".
var version = "0.1.0-dev"

// GetVersion returns the build version in canonical semver form without a
// leading "v". Strings that are not semver are returned unchanged.
func GetVersion() string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return version
	}
	return v.String()
}
