package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/promote-release/pkg/domain/interfaces"
	"github.com/m-mizutani/promote-release/pkg/domain/types"
	githubinfra "github.com/m-mizutani/promote-release/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API configuration
type GitHub struct {
	Token  string `masq:"secret"`
	APIURL string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub access token (repo-token input or GITHUB_TOKEN)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("INPUT_REPO-TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Value:       githubinfra.DefaultBaseURL,
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("GITHUB_API_URL"),
		},
	}
}

// Validate checks that an access token is available
func (c *GitHub) Validate() error {
	if c.Token == "" {
		return goerr.New("GitHub token is required: set repo-token input or GITHUB_TOKEN",
			goerr.T(types.ErrTagConfiguration),
		)
	}
	return nil
}

// NewClient validates the configuration and builds a release client
func (c *GitHub) NewClient(ctx context.Context) (interfaces.ReleaseClient, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return githubinfra.NewClient(ctx, c.Token, githubinfra.WithBaseURL(c.APIURL))
}
