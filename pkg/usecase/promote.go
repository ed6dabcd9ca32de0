package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/promote-release/pkg/domain/interfaces"
	"github.com/m-mizutani/promote-release/pkg/domain/model"
	"github.com/m-mizutani/promote-release/pkg/domain/types"
)

type promoteUseCase struct {
	releaseClient interfaces.ReleaseClient
}

// NewPromote creates a new instance of PromoteUseCase
func NewPromote(releaseClient interfaces.ReleaseClient) interfaces.PromoteUseCase {
	return &promoteUseCase{
		releaseClient: releaseClient,
	}
}

// Promote fetches the latest release and turns it into a full release if it is a prerelease.
// A release that is already a full release is left untouched and reported with Promoted=false.
func (uc *promoteUseCase) Promote(ctx context.Context, repo model.RepositoryCoordinates) (*model.PromotionResult, error) {
	logger := ctxlog.From(ctx)

	logger.Info("Getting latest release",
		"owner", repo.Owner,
		"repo", repo.Name,
	)

	latest, err := uc.releaseClient.GetLatestRelease(ctx, repo)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, goerr.New("no releases found",
			goerr.V("owner", repo.Owner),
			goerr.V("repo", repo.Name),
			goerr.T(types.ErrTagNotFound),
		)
	}

	logger.Debug("Latest release",
		"release_id", latest.ID,
		"name", latest.Name,
		"tag_name", latest.TagName,
		"prerelease", latest.Prerelease,
	)

	if !latest.Prerelease {
		logger.Warn("Latest release is not a prerelease, skipping",
			"release_id", latest.ID,
			"tag_name", latest.TagName,
		)
		return &model.PromotionResult{Release: latest, Promoted: false}, nil
	}

	logger.Info("Promoting prerelease",
		"release_id", latest.ID,
		"name", latest.Name,
		"tag_name", latest.TagName,
	)

	updated, updateErr := uc.releaseClient.UpdatePrerelease(ctx, repo, latest.ID, false)
	if updateErr != nil {
		return nil, updateErr
	}
	if updated == nil {
		return nil, goerr.New("failed to update the latest release",
			goerr.V("owner", repo.Owner),
			goerr.V("repo", repo.Name),
			goerr.V("release_id", latest.ID),
			goerr.T(types.ErrTagUpdate),
		)
	}

	logger.Debug("Updated release",
		"release_id", updated.ID,
		"prerelease", updated.Prerelease,
	)

	logger.Info("Promoted release",
		"release_id", latest.ID,
		"tag_name", latest.TagName,
	)

	return &model.PromotionResult{Release: latest, Promoted: true}, nil
}
