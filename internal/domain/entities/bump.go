package entities

// BumpKind identifies which part of a version a bump increments.
type BumpKind int

const (
	BumpNone BumpKind = iota
	BumpPatch
	BumpMinor
	BumpMajor
	BumpPrerelease
)

func (k BumpKind) String() string {
	switch k {
	case BumpNone:
		return "none"
	case BumpPatch:
		return "patch"
	case BumpMinor:
		return "minor"
	case BumpMajor:
		return "major"
	case BumpPrerelease:
		return "prerelease"
	default:
		return "unknown"
	}
}

// BumpDecision is the single bump selected for a run. Identifier is only
// meaningful for BumpPrerelease.
type BumpDecision struct {
	Kind       BumpKind
	Identifier string
}

// WithIdentifier returns a copy of the decision carrying the given prerelease identifier.
func (d BumpDecision) WithIdentifier(identifier string) BumpDecision {
	d.Identifier = identifier
	return d
}

// NoBumpReason explains why a run finished without bumping.
type NoBumpReason string

const (
	ReasonAlreadyBumped          NoBumpReason = "latest commit was a bump"
	ReasonNoMatchingCommits      NoBumpReason = "no commit matched a bump category"
	ReasonNoPrereleaseIdentifier NoBumpReason = "no prerelease identifier could be resolved"
)

// BumpResult is the outcome of a bump run. When Bumped is false, Reason is set
// and NewVersion/Content are empty.
type BumpResult struct {
	Bumped     bool
	Reason     NoBumpReason
	Decision   BumpDecision
	OldVersion string
	NewVersion string
	Content    string
}
