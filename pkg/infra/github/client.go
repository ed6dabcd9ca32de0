package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/promote-release/pkg/domain/interfaces"
	"github.com/m-mizutani/promote-release/pkg/domain/model"
	"github.com/m-mizutani/promote-release/pkg/domain/types"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the REST endpoint of github.com
const DefaultBaseURL = "https://api.github.com/"

type client struct {
	githubClient *github.Client
}

// config holds internal client configuration
type config struct {
	baseURL string
}

// Option is a functional option for client configuration
type Option func(*config)

// WithBaseURL sets the REST API base URL, e.g. for GitHub Enterprise Server
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// NewClient creates a new GitHub client authenticated with an access token
func NewClient(ctx context.Context, token string, opts ...Option) (interfaces.ReleaseClient, error) {
	if token == "" {
		return nil, goerr.New("GitHub token is required", goerr.T(types.ErrTagConfiguration))
	}

	cfg := &config{
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	baseURL, err := url.Parse(cfg.baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse GitHub API URL",
			goerr.V("url", cfg.baseURL),
			goerr.T(types.ErrTagConfiguration),
		)
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	githubClient := github.NewClient(oauth2.NewClient(ctx, ts))
	githubClient.BaseURL = baseURL

	return &client{
		githubClient: githubClient,
	}, nil
}

// latestPageSize bounds the single list read used to find the newest published release
const latestPageSize = 10

// GetLatestRelease returns the most recently created release that is not a draft.
// The releases/latest endpoint is not used because it never returns a prerelease.
func (c *client) GetLatestRelease(ctx context.Context, repo model.RepositoryCoordinates) (*model.Release, error) {
	releases, resp, err := c.githubClient.Repositories.ListReleases(ctx, repo.Owner, repo.Name, &github.ListOptions{
		PerPage: latestPageSize,
	})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, goerr.New("repository not found",
				goerr.V("owner", repo.Owner),
				goerr.V("repo", repo.Name),
				goerr.T(types.ErrTagNotFound),
			)
		}
		return nil, goerr.Wrap(err, "failed to get latest release",
			goerr.V("owner", repo.Owner),
			goerr.V("repo", repo.Name),
			goerr.T(types.ErrTagTransport),
		)
	}

	// Releases are ordered newest first; drafts are visible to writers but are not releases yet
	for _, release := range releases {
		if release.GetDraft() {
			continue
		}

		ctxlog.From(ctx).Debug("Fetched latest release", "release", release)
		return toRelease(release), nil
	}

	return nil, goerr.New("no releases found",
		goerr.V("owner", repo.Owner),
		goerr.V("repo", repo.Name),
		goerr.T(types.ErrTagNotFound),
	)
}

// UpdatePrerelease edits only the prerelease flag of the release
func (c *client) UpdatePrerelease(ctx context.Context, repo model.RepositoryCoordinates, releaseID int64, prerelease bool) (*model.Release, error) {
	release, _, err := c.githubClient.Repositories.EditRelease(ctx, repo.Owner, repo.Name, releaseID, &github.RepositoryRelease{
		Prerelease: github.Ptr(prerelease),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update release",
			goerr.V("owner", repo.Owner),
			goerr.V("repo", repo.Name),
			goerr.V("release_id", releaseID),
			goerr.T(types.ErrTagTransport),
		)
	}

	ctxlog.From(ctx).Debug("Updated release", "release", release)

	return toRelease(release), nil
}

// toRelease returns nil for an empty payload, which go-github decodes into a zero value
func toRelease(r *github.RepositoryRelease) *model.Release {
	if r == nil || r.ID == nil {
		return nil
	}

	return &model.Release{
		ID:         r.GetID(),
		Name:       r.GetName(),
		TagName:    r.GetTagName(),
		Prerelease: r.GetPrerelease(),
	}
}
