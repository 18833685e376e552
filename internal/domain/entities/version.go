package entities

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

const (
	releaseSegments    = 3
	prereleaseSegments = 2
)

var identifierPattern = regexp.MustCompile(`^[0-9A-Za-z-]+$`)

// Prerelease is the IDENTIFIER.ORDINAL suffix of a version (e.g. "rc.2").
type Prerelease struct {
	Identifier string
	Ordinal    int
}

// Version is a MAJOR.MINOR.PATCH[-IDENTIFIER.ORDINAL] semantic version.
// Values are never mutated; every operation returns a new Version.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease *Prerelease
}

// ParseVersion parses a version string in the MAJOR.MINOR.PATCH[-IDENTIFIER.ORDINAL] form.
func ParseVersion(raw string) (Version, error) {
	input := strings.TrimSpace(raw)
	release, pre, hasPre := strings.Cut(input, "-")

	parts := strings.Split(release, ".")
	if len(parts) != releaseSegments {
		return Version{}, invalidVersion(raw, "expected MAJOR.MINOR.PATCH")
	}

	numbers := make([]int, releaseSegments)
	for i, part := range parts {
		n, err := parseNumber(part)
		if err != nil {
			return Version{}, invalidVersion(raw, err.Error())
		}
		numbers[i] = n
	}

	version := Version{Major: numbers[0], Minor: numbers[1], Patch: numbers[2]}
	if hasPre {
		segments := strings.Split(pre, ".")
		if len(segments) != prereleaseSegments {
			return Version{}, invalidVersion(raw, "expected prerelease in the IDENTIFIER.ORDINAL form")
		}
		if !identifierPattern.MatchString(segments[0]) {
			return Version{}, invalidVersion(raw, fmt.Sprintf("invalid prerelease identifier %q", segments[0]))
		}
		ordinal, err := parseNumber(segments[1])
		if err != nil {
			return Version{}, invalidVersion(raw, err.Error())
		}
		version.Prerelease = &Prerelease{Identifier: segments[0], Ordinal: ordinal}
	}

	// leading zeros and the like are rejected by the canonical checker
	if !semver.IsValid("v" + input) {
		return Version{}, invalidVersion(raw, "not a valid semantic version")
	}

	return version, nil
}

func parseNumber(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty numeric component")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-numeric component %q", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("numeric component %q out of range", s)
	}
	return n, nil
}

// String renders the version without any tag prefix.
func (v Version) String() string {
	base := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease == nil {
		return base
	}
	return fmt.Sprintf("%s-%s.%d", base, v.Prerelease.Identifier, v.Prerelease.Ordinal)
}

// IsPrerelease reports whether the version carries a prerelease suffix.
func (v Version) IsPrerelease() bool {
	return v.Prerelease != nil
}

// Compare returns -1, 0 or +1 following semantic version precedence.
func (v Version) Compare(other Version) int {
	return semver.Compare("v"+v.String(), "v"+other.String())
}

// Next computes the version that follows v for the given decision.
func (v Version) Next(decision BumpDecision) (Version, error) {
	switch decision.Kind {
	case BumpNone:
		return v, nil
	case BumpMajor:
		return Version{Major: v.Major + 1}, nil
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case BumpPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	case BumpPrerelease:
		return v.nextPrerelease(decision.Identifier)
	default:
		return Version{}, fmt.Errorf("unknown bump kind %d", decision.Kind)
	}
}

func (v Version) nextPrerelease(identifier string) (Version, error) {
	if identifier == "" {
		return Version{}, ErrMissingPrereleaseIdentifier
	}
	if !identifierPattern.MatchString(identifier) {
		return Version{}, invalidVersion(identifier, "invalid prerelease identifier")
	}

	next := Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
	switch {
	case v.Prerelease == nil:
		next.Patch++
		next.Prerelease = &Prerelease{Identifier: identifier}
	case v.Prerelease.Identifier == identifier:
		next.Prerelease = &Prerelease{Identifier: identifier, Ordinal: v.Prerelease.Ordinal + 1}
	default:
		next.Prerelease = &Prerelease{Identifier: identifier}
	}
	return next, nil
}

// NextVersion parses current and returns the string form of its successor.
func NextVersion(current string, decision BumpDecision) (string, error) {
	version, err := ParseVersion(current)
	if err != nil {
		return "", err
	}
	next, err := version.Next(decision)
	if err != nil {
		return "", err
	}
	return next.String(), nil
}
