//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/autobump/internal/domain/repositories"
)

// StubDocumentRepository implements repositories.DocumentRepository with canned answers.
type StubDocumentRepository struct {
	// --- identity ---
	DocumentName    string
	DocumentAliases []string

	// --- ReadVersion ---
	Version string
	Found   bool
	ReadErr error

	// --- WriteVersion ---
	// Written replaces the content when set; otherwise the content is returned as is.
	Written       string
	WriteErr      error
	WrittenValues []string
}

var _ repositories.DocumentRepository = (*StubDocumentRepository)(nil)

func (s *StubDocumentRepository) Name() string      { return s.DocumentName }
func (s *StubDocumentRepository) Aliases() []string { return s.DocumentAliases }

func (s *StubDocumentRepository) ReadVersion(_ string) (string, bool, error) {
	return s.Version, s.Found, s.ReadErr
}

func (s *StubDocumentRepository) WriteVersion(content, version string) (string, error) {
	s.WrittenValues = append(s.WrittenValues, version)
	if s.WriteErr != nil {
		return "", s.WriteErr
	}
	if s.Written != "" {
		return s.Written, nil
	}
	return content, nil
}
