package gitlab

import (
	"context"
	"fmt"
	"net/http"

	logger "github.com/sirupsen/logrus"
	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/rios0rios0/autobump/internal/domain/entities"
	"github.com/rios0rios0/autobump/internal/domain/repositories"
)

const (
	sourceName    = entities.HistoryGitLab
	githubDomain  = "github.com"
	perPage       = 100
)

// GitLabHistoryRepository lists commit messages through the GitLab REST API.
type GitLabHistoryRepository struct {
	httpClient *http.Client
}

// NewHistoryRepository creates a GitLab history source sending requests through httpClient.
func NewHistoryRepository(httpClient *http.Client) repositories.HistoryRepository {
	return &GitLabHistoryRepository{httpClient: httpClient}
}

func (p *GitLabHistoryRepository) Name() string { return sourceName }

// CommitMessages lists the commits of the configured ref, most recent first,
// stopping at the configured limit.
func (p *GitLabHistoryRepository) CommitMessages(
	ctx context.Context,
	settings *entities.Settings,
) ([]string, error) {
	client, err := p.newClient(settings)
	if err != nil {
		return nil, err
	}

	pid := settings.History.Repository
	limit := settings.History.Limit
	opts := &gl.ListCommitsOptions{
		ListOptions: gl.ListOptions{PerPage: perPage},
	}
	if ref := entities.ShortRef(settings.History.Ref); ref != "" {
		opts.RefName = gl.Ptr(ref)
	}

	var messages []string
	for {
		commits, resp, listErr := client.Commits.ListCommits(pid, opts, gl.WithContext(ctx))
		if listErr != nil {
			return nil, fmt.Errorf("failed to list commits of %s: %w", pid, listErr)
		}

		for _, c := range commits {
			messages = append(messages, c.Message)
			if limit > 0 && len(messages) >= limit {
				return messages, nil
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logger.Debugf("Listed %d commits of %s", len(messages), pid)
	return messages, nil
}

// newClient targets gitlab.com unless a base URL or a self-hosted domain is configured.
func (p *GitLabHistoryRepository) newClient(settings *entities.Settings) (*gl.Client, error) {
	options := []gl.ClientOptionFunc{gl.WithHTTPClient(p.httpClient)}

	baseURL := settings.History.BaseURL
	if baseURL == "" && settings.Commit.RepositoryDomain != "" && settings.Commit.RepositoryDomain != githubDomain {
		baseURL = "https://" + settings.Commit.RepositoryDomain
	}
	if baseURL != "" {
		options = append(options, gl.WithBaseURL(baseURL))
	}

	client, err := gl.NewClient(settings.History.Token, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}
	return client, nil
}
