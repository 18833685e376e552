package repositories

import (
	"context"

	"github.com/rios0rios0/autobump/internal/domain/entities"
)

// HistoryRepository supplies the commit messages a bump is decided from.
type HistoryRepository interface {
	// Name returns the history source identifier (e.g. "event", "github").
	Name() string

	// CommitMessages returns the commit messages, most recent first.
	CommitMessages(ctx context.Context, settings *entities.Settings) ([]string, error)
}
