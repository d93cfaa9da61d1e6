// Package protocol checks external theme plugins against the host's plugin
// protocol: semantic version compatibility and --plugin-info detection.
package protocol

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/themestudio/pkg/plugin"
)

// Version represents a parsed protocol version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses a version string in "MAJOR.MINOR.PATCH" format.
func Parse(version string) (Version, error) {
	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version format: %s (expected MAJOR.MINOR.PATCH)", version)
	}

	var nums [3]int
	for i, label := range []string{"major", "minor", "patch"} {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid %s version: %s", label, parts[i])
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String returns the string representation of the version.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare orders versions, returning -1, 0 or +1.
func (v Version) Compare(o Version) int {
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, o.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, o.Patch)
}

// IsCompatible checks a plugin's protocol version against the host.
// Rules:
// - Major version must match exactly (breaking changes).
// - The version must not be older than plugin.MinCompatibleVersion.
// - Higher minor and patch versions are accepted.
//
// Incompatible versions yield an error wrapping plugin.ErrIncompatibleProtocol.
func IsCompatible(pluginVersionStr string) (bool, error) {
	pluginVersion, err := Parse(pluginVersionStr)
	if err != nil {
		return false, fmt.Errorf("failed to parse plugin version: %w", err)
	}

	current := GetCurrentVersion()
	if pluginVersion.Major != current.Major {
		return false, fmt.Errorf("%w: incompatible major version: plugin is %s, themestudio requires %d.x.x",
			plugin.ErrIncompatibleProtocol, pluginVersion, current.Major)
	}

	minVersion := mustParse(plugin.MinCompatibleVersion)
	if pluginVersion.Compare(minVersion) < 0 {
		return false, fmt.Errorf("%w: plugin version %s is too old, minimum required is %s",
			plugin.ErrIncompatibleProtocol, pluginVersion, minVersion)
	}

	return true, nil
}

// GetCurrentVersion returns the host's protocol version.
func GetCurrentVersion() Version {
	return mustParse(plugin.ProtocolVersion)
}

func mustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		// Only reachable with a malformed constant.
		panic(fmt.Sprintf("invalid protocol version constant: %v", err))
	}
	return v
}
