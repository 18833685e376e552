//go:build unit

package gitlab_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autobump/internal/domain/entities"
	"github.com/rios0rios0/autobump/internal/infrastructure/repositories/gitlab"
)

func newSettings(baseURL string) *entities.Settings {
	settings := entities.DefaultSettings()
	settings.History.Source = entities.HistoryGitLab
	settings.History.Repository = "acme/widget"
	settings.History.Ref = "refs/heads/develop"
	settings.History.Token = "secret"
	settings.History.BaseURL = baseURL
	return settings
}

func TestGitLabHistoryRepository_Name(t *testing.T) {
	t.Parallel()

	t.Run("should return gitlab", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gitlab.NewHistoryRepository(http.DefaultClient)

		// when
		name := repo.Name()

		// then
		assert.Equal(t, "gitlab", name)
	})
}

func TestGitLabHistoryRepository_CommitMessages(t *testing.T) {
	t.Parallel()

	t.Run("should list commits across pages", func(t *testing.T) {
		t.Parallel()

		// given
		var requests []*http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests = append(requests, r)
			w.Header().Set("Content-Type", "application/json")
			if r.URL.Query().Get("page") == "" {
				w.Header().Set("X-Next-Page", "2")
				_, _ = w.Write([]byte(`[{"id":"a","message":"feat: newest"}]`))
				return
			}
			_, _ = w.Write([]byte(`[{"id":"b","message":"fix: older"}]`))
		}))
		defer server.Close()
		repo := gitlab.NewHistoryRepository(server.Client())

		// when
		messages, err := repo.CommitMessages(context.Background(), newSettings(server.URL))

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"feat: newest", "fix: older"}, messages)
		require.Len(t, requests, 2)
		assert.Contains(t, requests[0].URL.EscapedPath(), "/api/v4/projects/acme%2Fwidget/repository/commits")
		assert.Equal(t, "develop", requests[0].URL.Query().Get("ref_name"))
		assert.Equal(t, "secret", requests[0].Header.Get("PRIVATE-TOKEN"))
	})

	t.Run("should stop at the configured limit", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"message":"one"},{"message":"two"},{"message":"three"}]`))
		}))
		defer server.Close()
		repo := gitlab.NewHistoryRepository(server.Client())
		settings := newSettings(server.URL)
		settings.History.Limit = 1

		// when
		messages, err := repo.CommitMessages(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"one"}, messages)
	})

	t.Run("should fail when the API rejects the request", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"401 Unauthorized"}`))
		}))
		defer server.Close()
		repo := gitlab.NewHistoryRepository(server.Client())

		// when
		_, err := repo.CommitMessages(context.Background(), newSettings(server.URL))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list commits of acme/widget")
	})
}
