//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/autobump/internal/domain/entities"
	"github.com/rios0rios0/autobump/internal/domain/repositories"
)

// SpyReleaseRepository implements repositories.ReleaseRepository and records every release.
type SpyReleaseRepository struct {
	PublishErr error
	Releases   []entities.Release
}

var _ repositories.ReleaseRepository = (*SpyReleaseRepository)(nil)

func (s *SpyReleaseRepository) Publish(_ context.Context, release entities.Release) error {
	s.Releases = append(s.Releases, release)
	return s.PublishErr
}

// DummyReleaseRepository is a no-op implementation of repositories.ReleaseRepository.
type DummyReleaseRepository struct{}

var _ repositories.ReleaseRepository = (*DummyReleaseRepository)(nil)

func (d *DummyReleaseRepository) Publish(_ context.Context, _ entities.Release) error { return nil }
