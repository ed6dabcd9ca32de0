package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/promote-release/pkg/domain/model"
	"github.com/m-mizutani/promote-release/pkg/domain/types"
	"github.com/m-mizutani/promote-release/pkg/usecase"
)

// MockReleaseClient is a mock implementation of ReleaseClient
type MockReleaseClient struct {
	getLatestReleaseFunc func(ctx context.Context, repo model.RepositoryCoordinates) (*model.Release, error)
	updatePrereleaseFunc func(ctx context.Context, repo model.RepositoryCoordinates, releaseID int64, prerelease bool) (*model.Release, error)

	getCalls    []model.RepositoryCoordinates
	updateCalls []MockUpdateCall
}

type MockUpdateCall struct {
	Repo       model.RepositoryCoordinates
	ReleaseID  int64
	Prerelease bool
}

func (m *MockReleaseClient) GetLatestRelease(ctx context.Context, repo model.RepositoryCoordinates) (*model.Release, error) {
	m.getCalls = append(m.getCalls, repo)
	if m.getLatestReleaseFunc != nil {
		return m.getLatestReleaseFunc(ctx, repo)
	}
	return nil, errors.New("mock not configured")
}

func (m *MockReleaseClient) UpdatePrerelease(ctx context.Context, repo model.RepositoryCoordinates, releaseID int64, prerelease bool) (*model.Release, error) {
	m.updateCalls = append(m.updateCalls, MockUpdateCall{Repo: repo, ReleaseID: releaseID, Prerelease: prerelease})
	if m.updatePrereleaseFunc != nil {
		return m.updatePrereleaseFunc(ctx, repo, releaseID, prerelease)
	}
	return nil, errors.New("mock not configured")
}

var testRepo = model.RepositoryCoordinates{Owner: "test-owner", Name: "test-repo"}

func TestPromoteUseCase_Promote_Prerelease(t *testing.T) {
	mockClient := &MockReleaseClient{
		getLatestReleaseFunc: func(ctx context.Context, repo model.RepositoryCoordinates) (*model.Release, error) {
			return &model.Release{ID: 42, Name: "v1.0.0", TagName: "v1.0.0", Prerelease: true}, nil
		},
		updatePrereleaseFunc: func(ctx context.Context, repo model.RepositoryCoordinates, releaseID int64, prerelease bool) (*model.Release, error) {
			return &model.Release{ID: releaseID, Name: "v1.0.0", TagName: "v1.0.0", Prerelease: prerelease}, nil
		},
	}

	uc := usecase.NewPromote(mockClient)
	result, err := uc.Promote(context.Background(), testRepo)

	gt.NoError(t, err)
	gt.True(t, result.Promoted)
	gt.Value(t, result.Release.ID).Equal(int64(42))

	gt.Number(t, len(mockClient.getCalls)).Equal(1)
	gt.Value(t, mockClient.getCalls[0]).Equal(testRepo)

	// Exactly one update with the fetched ID, clearing the flag
	gt.Number(t, len(mockClient.updateCalls)).Equal(1)
	gt.Value(t, mockClient.updateCalls[0].Repo).Equal(testRepo)
	gt.Value(t, mockClient.updateCalls[0].ReleaseID).Equal(int64(42))
	gt.False(t, mockClient.updateCalls[0].Prerelease)
}

func TestPromoteUseCase_Promote_NotPrerelease(t *testing.T) {
	mockClient := &MockReleaseClient{
		getLatestReleaseFunc: func(ctx context.Context, repo model.RepositoryCoordinates) (*model.Release, error) {
			return &model.Release{ID: 42, TagName: "v1.0.0", Prerelease: false}, nil
		},
	}

	uc := usecase.NewPromote(mockClient)
	result, err := uc.Promote(context.Background(), testRepo)

	gt.NoError(t, err)
	gt.False(t, result.Promoted)
	gt.Value(t, result.Release.ID).Equal(int64(42))
	gt.Number(t, len(mockClient.updateCalls)).Equal(0)
}

func TestPromoteUseCase_Promote_NoRelease(t *testing.T) {
	tests := []struct {
		name      string
		getLatest func(ctx context.Context, repo model.RepositoryCoordinates) (*model.Release, error)
	}{
		{
			name: "client reports not found",
			getLatest: func(ctx context.Context, repo model.RepositoryCoordinates) (*model.Release, error) {
				return nil, goerr.New("no releases found", goerr.T(types.ErrTagNotFound))
			},
		},
		{
			name: "client returns nothing",
			getLatest: func(ctx context.Context, repo model.RepositoryCoordinates) (*model.Release, error) {
				return nil, nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := &MockReleaseClient{getLatestReleaseFunc: tt.getLatest}

			uc := usecase.NewPromote(mockClient)
			result, err := uc.Promote(context.Background(), testRepo)

			gt.Error(t, err)
			gt.Value(t, result).Nil()
			gt.True(t, goerr.HasTag(err, types.ErrTagNotFound))
			gt.String(t, err.Error()).Contains("no releases found")
			gt.Number(t, len(mockClient.updateCalls)).Equal(0)
		})
	}
}

func TestPromoteUseCase_Promote_GetError(t *testing.T) {
	mockClient := &MockReleaseClient{
		getLatestReleaseFunc: func(ctx context.Context, repo model.RepositoryCoordinates) (*model.Release, error) {
			return nil, goerr.Wrap(errors.New("connection refused"), "failed to get latest release", goerr.T(types.ErrTagTransport))
		},
	}

	uc := usecase.NewPromote(mockClient)
	result, err := uc.Promote(context.Background(), testRepo)

	gt.Error(t, err)
	gt.Value(t, result).Nil()
	gt.True(t, goerr.HasTag(err, types.ErrTagTransport))
	gt.String(t, err.Error()).Contains("connection refused")
	gt.Number(t, len(mockClient.updateCalls)).Equal(0)
}

func TestPromoteUseCase_Promote_UpdateError(t *testing.T) {
	mockClient := &MockReleaseClient{
		getLatestReleaseFunc: func(ctx context.Context, repo model.RepositoryCoordinates) (*model.Release, error) {
			return &model.Release{ID: 42, Prerelease: true}, nil
		},
		updatePrereleaseFunc: func(ctx context.Context, repo model.RepositoryCoordinates, releaseID int64, prerelease bool) (*model.Release, error) {
			return nil, goerr.Wrap(errors.New("502 Bad Gateway"), "failed to update release", goerr.T(types.ErrTagTransport))
		},
	}

	uc := usecase.NewPromote(mockClient)
	result, err := uc.Promote(context.Background(), testRepo)

	gt.Error(t, err)
	gt.Value(t, result).Nil()
	gt.True(t, goerr.HasTag(err, types.ErrTagTransport))
	gt.String(t, err.Error()).Contains("502 Bad Gateway")
	gt.Number(t, len(mockClient.updateCalls)).Equal(1)
}

func TestPromoteUseCase_Promote_UpdateReturnsNothing(t *testing.T) {
	mockClient := &MockReleaseClient{
		getLatestReleaseFunc: func(ctx context.Context, repo model.RepositoryCoordinates) (*model.Release, error) {
			return &model.Release{ID: 42, Prerelease: true}, nil
		},
		updatePrereleaseFunc: func(ctx context.Context, repo model.RepositoryCoordinates, releaseID int64, prerelease bool) (*model.Release, error) {
			return nil, nil
		},
	}

	uc := usecase.NewPromote(mockClient)
	result, err := uc.Promote(context.Background(), testRepo)

	gt.Error(t, err)
	gt.Value(t, result).Nil()
	gt.True(t, goerr.HasTag(err, types.ErrTagUpdate))
	gt.String(t, err.Error()).Contains("failed to update the latest release")
}

func TestPromoteUseCase_Promote_Idempotent(t *testing.T) {
	// Fake remote state: the update flips the stored flag
	stored := &model.Release{ID: 42, TagName: "v1.0.0", Prerelease: true}
	mockClient := &MockReleaseClient{
		getLatestReleaseFunc: func(ctx context.Context, repo model.RepositoryCoordinates) (*model.Release, error) {
			copied := *stored
			return &copied, nil
		},
		updatePrereleaseFunc: func(ctx context.Context, repo model.RepositoryCoordinates, releaseID int64, prerelease bool) (*model.Release, error) {
			stored.Prerelease = prerelease
			copied := *stored
			return &copied, nil
		},
	}

	uc := usecase.NewPromote(mockClient)

	first, err := uc.Promote(context.Background(), testRepo)
	gt.NoError(t, err)
	gt.True(t, first.Promoted)

	second, err := uc.Promote(context.Background(), testRepo)
	gt.NoError(t, err)
	gt.False(t, second.Promoted)
	gt.Value(t, second.Release.ID).Equal(int64(42))

	gt.Number(t, len(mockClient.getCalls)).Equal(2)
	gt.Number(t, len(mockClient.updateCalls)).Equal(1)
}
