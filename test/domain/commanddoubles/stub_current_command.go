//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/autobump/internal/domain/commands"
	"github.com/rios0rios0/autobump/internal/domain/entities"
)

// StubCurrentCommand is a stub implementation of commands.Current.
type StubCurrentCommand struct {
	ExecuteCallCount int
	Version          string
	ExecuteErr       error
	LastSettings     *entities.Settings
}

var _ commands.Current = (*StubCurrentCommand)(nil)

func (s *StubCurrentCommand) Execute(_ context.Context, settings *entities.Settings) (string, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Version, s.ExecuteErr
}
