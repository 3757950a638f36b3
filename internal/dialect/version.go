package dialect

import (
	"fmt"
	"strconv"
	"strings"
)

// Version identifies a PHP language version as major.minor.
type Version struct {
	Major int
	Minor int
}

// Versions with distinct lexical-kind sets. Patch releases never change
// the kind registry, so major.minor is enough.
var (
	V5_3 = Version{5, 3}
	V5_4 = Version{5, 4}
	V5_5 = Version{5, 5}
	V5_6 = Version{5, 6}
	V7_0 = Version{7, 0}
	V7_1 = Version{7, 1}
	V7_4 = Version{7, 4}
	V8_0 = Version{8, 0}
	V8_1 = Version{8, 1}
	V8_2 = Version{8, 2}
	V8_3 = Version{8, 3}
	V8_4 = Version{8, 4}

	// Latest is the newest version the kind table knows about.
	Latest = V8_4
)

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// AtLeast reports whether v >= other.
func (v Version) AtLeast(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor >= other.Minor
}

// Before reports whether v < other.
func (v Version) Before(other Version) bool {
	return !v.AtLeast(other)
}

// ParseVersion parses "8.1"-style version strings as used in
// phpfix.toml and the --php flag.
func ParseVersion(s string) (Version, error) {
	majorStr, minorStr, ok := strings.Cut(s, ".")
	if !ok {
		return Version{}, fmt.Errorf("dialect: malformed version %q, want major.minor", s)
	}
	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return Version{}, fmt.Errorf("dialect: malformed version %q: %w", s, err)
	}
	minor, err := strconv.Atoi(minorStr)
	if err != nil {
		return Version{}, fmt.Errorf("dialect: malformed version %q: %w", s, err)
	}
	if major < 0 || minor < 0 {
		return Version{}, fmt.Errorf("dialect: malformed version %q: negative component", s)
	}
	return Version{Major: major, Minor: minor}, nil
}
