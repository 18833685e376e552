package entities

import (
	"os"

	"go.uber.org/dig"
)

// Environment looks up a process environment variable.
type Environment func(key string) string

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings are assembled per invocation by the controllers; only the
	// environment lookup they start from is shared.
	return container.Provide(func() Environment { return os.Getenv })
}
