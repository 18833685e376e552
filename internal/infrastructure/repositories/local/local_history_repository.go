package local

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/rios0rios0/autobump/internal/domain/entities"
	"github.com/rios0rios0/autobump/internal/domain/repositories"
)

const sourceName = entities.HistoryLocal

// LocalHistoryRepository walks the history of the checked out workspace.
type LocalHistoryRepository struct{}

// NewHistoryRepository creates a local history source.
func NewHistoryRepository() repositories.HistoryRepository {
	return &LocalHistoryRepository{}
}

func (p *LocalHistoryRepository) Name() string { return sourceName }

// CommitMessages walks the log from HEAD, most recent first, stopping at the
// configured limit. Messages are trimmed of the trailing line break git adds.
func (p *LocalHistoryRepository) CommitMessages(ctx context.Context, settings *entities.Settings) ([]string, error) {
	repo, err := git.PlainOpenWithOptions(settings.Workspace, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %q: %w", settings.Workspace, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to read the log: %w", err)
	}
	defer iter.Close()

	limit := settings.History.Limit
	var messages []string
	err = iter.ForEach(func(c *object.Commit) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		messages = append(messages, strings.TrimSpace(c.Message))
		if limit > 0 && len(messages) >= limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk the log: %w", err)
	}

	return messages, nil
}
