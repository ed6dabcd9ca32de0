package interfaces

import (
	"context"

	"github.com/m-mizutani/promote-release/pkg/domain/model"
)

// PromoteUseCase defines the release promotion operation
type PromoteUseCase interface {
	// Promote clears the prerelease flag of the latest release if it is set
	Promote(ctx context.Context, repo model.RepositoryCoordinates) (*model.PromotionResult, error)
}
