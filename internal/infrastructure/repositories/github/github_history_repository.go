package github

import (
	"context"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autobump/internal/domain/entities"
	"github.com/rios0rios0/autobump/internal/domain/repositories"
)

const (
	sourceName   = entities.HistoryGitHub
	publicDomain = "github.com"
	perPage      = 100
)

// GitHubHistoryRepository lists commit messages through the GitHub REST API.
type GitHubHistoryRepository struct {
	httpClient *http.Client
}

// NewHistoryRepository creates a GitHub history source sending requests through httpClient.
func NewHistoryRepository(httpClient *http.Client) repositories.HistoryRepository {
	return &GitHubHistoryRepository{httpClient: httpClient}
}

func (p *GitHubHistoryRepository) Name() string { return sourceName }

// CommitMessages lists the commits reachable from the configured ref, most
// recent first, stopping at the configured limit.
func (p *GitHubHistoryRepository) CommitMessages(
	ctx context.Context,
	settings *entities.Settings,
) ([]string, error) {
	client, err := p.newClient(settings)
	if err != nil {
		return nil, err
	}

	repo := settings.HistoryRepository()
	limit := settings.History.Limit
	opts := &gh.CommitsListOptions{
		SHA:         entities.ShortRef(repo.DefaultBranch),
		ListOptions: gh.ListOptions{PerPage: pageSize(limit)},
	}

	var messages []string
	for {
		commits, resp, listErr := client.Repositories.ListCommits(ctx, repo.Organization, repo.Name, opts)
		if listErr != nil {
			return nil, fmt.Errorf("failed to list commits of %s/%s: %w", repo.Organization, repo.Name, listErr)
		}

		for _, c := range commits {
			messages = append(messages, c.GetCommit().GetMessage())
			if limit > 0 && len(messages) >= limit {
				return messages, nil
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logger.Debugf("Listed %d commits of %s/%s", len(messages), repo.Organization, repo.Name)
	return messages, nil
}

// newClient targets the public API unless a base URL or an enterprise domain is configured.
func (p *GitHubHistoryRepository) newClient(settings *entities.Settings) (*gh.Client, error) {
	client := gh.NewClient(p.httpClient)
	if token := settings.History.Token; token != "" {
		client = client.WithAuthToken(token)
	}

	baseURL := settings.History.BaseURL
	if baseURL == "" && settings.Commit.RepositoryDomain != "" && settings.Commit.RepositoryDomain != publicDomain {
		baseURL = "https://" + settings.Commit.RepositoryDomain + "/"
	}
	if baseURL == "" {
		return client, nil
	}

	enterprise, err := client.WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub base URL %q: %w", baseURL, err)
	}
	return enterprise, nil
}

func pageSize(limit int) int {
	if limit > 0 && limit < perPage {
		return limit
	}
	return perPage
}
