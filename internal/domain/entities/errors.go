package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidVersion is returned when a version string is not MAJOR.MINOR.PATCH[-ID.N].
	ErrInvalidVersion = errors.New("invalid version")

	// ErrMissingPrereleaseIdentifier is returned when a prerelease bump has no identifier.
	ErrMissingPrereleaseIdentifier = errors.New("prerelease bump requires an identifier")

	// ErrUnsupportedDocumentType is returned for an unknown document type tag.
	ErrUnsupportedDocumentType = errors.New("unsupported document type")

	// ErrAmbiguousField is returned when a field appears more than once and nothing else can be written.
	ErrAmbiguousField = errors.New("ambiguous version field")

	// ErrMalformedDocument is returned when a document cannot be parsed.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrVersionNotFound is returned when a document carries no version.
	ErrVersionNotFound = errors.New("version not found in document")
)

// InvalidVersionError carries the offending input of a failed version parse.
type InvalidVersionError struct {
	Input  string
	Reason string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidVersion, e.Input, e.Reason)
}

func (e *InvalidVersionError) Unwrap() error {
	return ErrInvalidVersion
}

func invalidVersion(input, reason string) error {
	return &InvalidVersionError{Input: input, Reason: reason}
}
