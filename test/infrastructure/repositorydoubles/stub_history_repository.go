//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/autobump/internal/domain/entities"
	"github.com/rios0rios0/autobump/internal/domain/repositories"
)

// StubHistoryRepository implements repositories.HistoryRepository with a fixed history.
type StubHistoryRepository struct {
	SourceName string
	Messages   []string
	Err        error
	CallCount  int
}

var _ repositories.HistoryRepository = (*StubHistoryRepository)(nil)

func (s *StubHistoryRepository) Name() string { return s.SourceName }

func (s *StubHistoryRepository) CommitMessages(_ context.Context, _ *entities.Settings) ([]string, error) {
	s.CallCount++
	return s.Messages, s.Err
}
