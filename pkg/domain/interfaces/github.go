package interfaces

import (
	"context"

	"github.com/m-mizutani/promote-release/pkg/domain/model"
)

// ReleaseClient defines the GitHub release operations used by the promoter
type ReleaseClient interface {
	// GetLatestRelease returns the most recent full or pre release of the repository
	GetLatestRelease(ctx context.Context, repo model.RepositoryCoordinates) (*model.Release, error)

	// UpdatePrerelease sets the prerelease flag of a release and leaves other fields unchanged
	UpdatePrerelease(ctx context.Context, repo model.RepositoryCoordinates, releaseID int64, prerelease bool) (*model.Release, error)
}
