package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/autobump/internal/domain/repositories"
)

// HistoryRegistry manages all registered commit history sources.
type HistoryRegistry struct {
	sources map[string]domainRepos.HistoryRepository
}

// NewHistoryRegistry creates an empty history registry.
func NewHistoryRegistry() *HistoryRegistry {
	return &HistoryRegistry{
		sources: make(map[string]domainRepos.HistoryRepository),
	}
}

// Register adds a history source under its name (e.g. "github").
func (r *HistoryRegistry) Register(source domainRepos.HistoryRepository) {
	r.sources[source.Name()] = source
}

// Get returns the history source with the given name.
func (r *HistoryRegistry) Get(name string) (domainRepos.HistoryRepository, error) {
	source, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown history source: %q", name)
	}
	return source, nil
}

// Names returns the sorted list of registered history source names.
func (r *HistoryRegistry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
