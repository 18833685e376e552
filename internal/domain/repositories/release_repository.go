package repositories

import (
	"context"

	"github.com/rios0rios0/autobump/internal/domain/entities"
)

// ReleaseRepository records a bump in version control: commit, tag and push.
type ReleaseRepository interface {
	Publish(ctx context.Context, release entities.Release) error
}
