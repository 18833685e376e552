//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/autobump/internal/domain/repositories"
)

// OutputCall records a single invocation of SetOutput.
type OutputCall struct {
	Target string
	Name   string
	Value  string
}

// SpyOutputRepository implements repositories.OutputRepository and records every output.
type SpyOutputRepository struct {
	SetOutputErr error
	Calls        []OutputCall
}

var _ repositories.OutputRepository = (*SpyOutputRepository)(nil)

func (s *SpyOutputRepository) SetOutput(target, name, value string) error {
	s.Calls = append(s.Calls, OutputCall{Target: target, Name: name, Value: value})
	return s.SetOutputErr
}

// Value returns the last value set for name, and whether it was set at all.
func (s *SpyOutputRepository) Value(name string) (string, bool) {
	for i := len(s.Calls) - 1; i >= 0; i-- {
		if s.Calls[i].Name == name {
			return s.Calls[i].Value, true
		}
	}
	return "", false
}
