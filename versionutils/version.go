package versionutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

var (
	// MalformedVersion indicates that a version string is missing or is not
	// three dot-separated non-negative integers. Callers can detect it with
	// eris.Is. It is always fatal to the current invocation.
	MalformedVersion = eris.New("version must be of the form X.Y.Z")

	MalformedVersionError = func(raw string) error {
		return eris.Wrapf(MalformedVersion, "invalid version %q", raw)
	}
	MissingVersionError = func() error {
		return eris.Wrap(MalformedVersion, "no version found")
	}
)

var versionRegex = regexp.MustCompile("^[0-9]+[.][0-9]+[.][0-9]+$")

type Version struct {
	Major int
	Minor int
	Patch int
}

func NewVersion(major, minor, patch int) *Version {
	return &Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

// String renders the version the way it is stored in a manifest, without a
// leading "v".
func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// TagName renders the version the way releases are tagged, with a leading "v".
func (v *Version) TagName() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v *Version) Equals(other *Version) bool {
	return *v == *other
}

func (greater *Version) IsGreaterThan(lesser *Version) bool {
	if greater.Major > lesser.Major {
		return true
	} else if greater.Major < lesser.Major {
		return false
	}

	if greater.Minor > lesser.Minor {
		return true
	} else if greater.Minor < lesser.Minor {
		return false
	}

	if greater.Patch > lesser.Patch {
		return true
	} else if greater.Patch < lesser.Patch {
		return false
	}

	return false
}

// BumpPatch returns a new version with the patch component incremented by
// one. Major and minor are never touched.
func (v *Version) BumpPatch() *Version {
	return &Version{
		Major: v.Major,
		Minor: v.Minor,
		Patch: v.Patch + 1,
	}
}

func MatchesRegex(raw string) bool {
	return versionRegex.MatchString(raw)
}

func ParseVersion(raw string) (*Version, error) {
	if raw == "" {
		return nil, MissingVersionError()
	}
	if !MatchesRegex(raw) {
		return nil, MalformedVersionError(raw)
	}
	versionParts := strings.Split(raw, ".")
	major, err := strconv.Atoi(versionParts[0])
	if err != nil {
		return nil, MalformedVersionError(raw)
	}
	minor, err := strconv.Atoi(versionParts[1])
	if err != nil {
		return nil, MalformedVersionError(raw)
	}
	patch, err := strconv.Atoi(versionParts[2])
	if err != nil {
		return nil, MalformedVersionError(raw)
	}

	return &Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}, nil
}

// ParseTag parses a release tag of the form "vX.Y.Z".
func ParseTag(tag string) (*Version, error) {
	if !strings.HasPrefix(tag, "v") {
		return nil, MalformedVersionError(tag)
	}
	return ParseVersion(strings.TrimPrefix(tag, "v"))
}
