package event

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autobump/internal/domain/entities"
	"github.com/rios0rios0/autobump/internal/domain/repositories"
)

const sourceName = entities.HistoryEvent

// EventHistoryRepository reads the commits of the push event that triggered
// the workflow, from the payload file the runner exposes in GITHUB_EVENT_PATH.
type EventHistoryRepository struct{}

// NewHistoryRepository creates an event history source.
func NewHistoryRepository() repositories.HistoryRepository {
	return &EventHistoryRepository{}
}

func (p *EventHistoryRepository) Name() string { return sourceName }

// CommitMessages returns the pushed commit messages. The payload lists them
// oldest first, so they are reversed.
func (p *EventHistoryRepository) CommitMessages(_ context.Context, settings *entities.Settings) ([]string, error) {
	path := settings.History.EventPath
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event payload %q: %w", path, err)
	}

	var event gh.PushEvent
	if unmarshalErr := json.Unmarshal(data, &event); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to decode event payload %q: %w", path, unmarshalErr)
	}

	if len(event.Commits) == 0 {
		logger.Warnf("No commits found in the event payload %q", path)
	}

	messages := make([]string, 0, len(event.Commits))
	for i := len(event.Commits) - 1; i >= 0; i-- {
		messages = append(messages, event.Commits[i].GetMessage())
	}
	return messages, nil
}
