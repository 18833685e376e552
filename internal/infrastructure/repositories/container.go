package repositories

import (
	"net/http"

	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/autobump/internal/domain/repositories"
	actionsRepo "github.com/rios0rios0/autobump/internal/infrastructure/repositories/actions"
	attributeRepo "github.com/rios0rios0/autobump/internal/infrastructure/repositories/attribute"
	eventRepo "github.com/rios0rios0/autobump/internal/infrastructure/repositories/event"
	gitRepo "github.com/rios0rios0/autobump/internal/infrastructure/repositories/git"
	ghRepo "github.com/rios0rios0/autobump/internal/infrastructure/repositories/github"
	glRepo "github.com/rios0rios0/autobump/internal/infrastructure/repositories/gitlab"
	localRepo "github.com/rios0rios0/autobump/internal/infrastructure/repositories/local"
	manifestRepo "github.com/rios0rios0/autobump/internal/infrastructure/repositories/manifest"
	tfRepo "github.com/rios0rios0/autobump/internal/infrastructure/repositories/terraform"
	"github.com/rios0rios0/autobump/internal/infrastructure/repositories/transport"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(transport.NewHTTPClient); err != nil {
		return err
	}

	// Register document registry with every supported format
	if err := container.Provide(func() *DocumentRegistry {
		reg := NewDocumentRegistry()
		reg.Register(manifestRepo.NewDocumentRepository())
		reg.Register(attributeRepo.NewDocumentRepository())
		reg.Register(tfRepo.NewDocumentRepository())
		return reg
	}); err != nil {
		return err
	}

	// Register history registry with every commit source
	if err := container.Provide(func(httpClient *http.Client) *HistoryRegistry {
		reg := NewHistoryRegistry()
		reg.Register(eventRepo.NewHistoryRepository())
		reg.Register(ghRepo.NewHistoryRepository(httpClient))
		reg.Register(glRepo.NewHistoryRepository(httpClient))
		reg.Register(localRepo.NewHistoryRepository())
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.ReleaseRepository {
		return gitRepo.NewReleaseRepository()
	}); err != nil {
		return err
	}

	return container.Provide(func() domainRepos.OutputRepository {
		return actionsRepo.NewOutputRepository()
	})
}
