package repositories

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rios0rios0/autobump/internal/domain/entities"
	domainRepos "github.com/rios0rios0/autobump/internal/domain/repositories"
)

// DocumentRegistry manages all registered document formats, keyed by type tag.
type DocumentRegistry struct {
	documents map[string]domainRepos.DocumentRepository
}

// NewDocumentRegistry creates an empty document registry.
func NewDocumentRegistry() *DocumentRegistry {
	return &DocumentRegistry{
		documents: make(map[string]domainRepos.DocumentRepository),
	}
}

// Register adds a document format under its name and every alias.
func (r *DocumentRegistry) Register(d domainRepos.DocumentRepository) {
	r.documents[strings.ToLower(d.Name())] = d
	for _, alias := range d.Aliases() {
		r.documents[strings.ToLower(alias)] = d
	}
}

// Get returns the document format for the given type tag. Tags are case-insensitive.
func (r *DocumentRegistry) Get(name string) (domainRepos.DocumentRepository, error) {
	document, ok := r.documents[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)",
			entities.ErrUnsupportedDocumentType, name, strings.Join(r.Names(), ", "))
	}
	return document, nil
}

// Names returns the sorted list of accepted type tags, aliases included.
func (r *DocumentRegistry) Names() []string {
	names := make([]string, 0, len(r.documents))
	for name := range r.documents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
