package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autobump/internal/domain/entities"
	"github.com/rios0rios0/autobump/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/autobump/internal/infrastructure/repositories"
)

// Current is the interface for the current command.
type Current interface {
	Execute(ctx context.Context, settings *entities.Settings) (string, error)
}

// CurrentCommand reports the version stored in the configured document.
type CurrentCommand struct {
	documentRegistry *infraRepos.DocumentRegistry
}

// NewCurrentCommand creates a new CurrentCommand.
func NewCurrentCommand(documentRegistry *infraRepos.DocumentRegistry) *CurrentCommand {
	return &CurrentCommand{documentRegistry: documentRegistry}
}

// Execute reads and parses the current version without touching anything.
func (it *CurrentCommand) Execute(_ context.Context, settings *entities.Settings) (string, error) {
	doc, err := loadDocument(it.documentRegistry, settings)
	if err != nil {
		return "", err
	}

	logger.Infof("Current version of %q: %s", doc.path, doc.version)
	return doc.version.String(), nil
}

// document is a version-bearing file loaded from the workspace.
type document struct {
	repository repositories.DocumentRepository
	path       string
	mode       fs.FileMode
	content    string
	version    entities.Version
}

// loadDocument resolves the document format, reads the file and parses its version.
func loadDocument(registry *infraRepos.DocumentRegistry, settings *entities.Settings) (*document, error) {
	repository, err := registry.Get(settings.Document.Type)
	if err != nil {
		return nil, err
	}

	path := settings.DocumentPath()
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	content := string(data)

	raw, found, err := repository.ReadVersion(content)
	if err != nil {
		return nil, fmt.Errorf("failed to read the version of %q: %w", path, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %q (%s)", entities.ErrVersionNotFound, path, repository.Name())
	}

	version, err := entities.ParseVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse the version of %q: %w", path, err)
	}

	return &document{
		repository: repository,
		path:       path,
		mode:       info.Mode().Perm(),
		content:    content,
		version:    version,
	}, nil
}
