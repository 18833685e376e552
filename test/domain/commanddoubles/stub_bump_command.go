//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/autobump/internal/domain/commands"
	"github.com/rios0rios0/autobump/internal/domain/entities"
)

// StubBumpCommand is a stub implementation of commands.Bump.
type StubBumpCommand struct {
	ExecuteCallCount int
	ExecuteResult    entities.BumpResult
	ExecuteErr       error
	LastSettings     *entities.Settings
}

var _ commands.Bump = (*StubBumpCommand)(nil)

func (s *StubBumpCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) (entities.BumpResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.ExecuteResult, s.ExecuteErr
}
