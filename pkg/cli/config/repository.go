package config

import "github.com/urfave/cli/v3"

// Repository holds the Actions context used to locate the target repository
type Repository struct {
	Name      string
	EventPath string
}

// Flags returns CLI flags for repository configuration
func (c *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository",
			Usage:       "Target repository in owner/name form",
			Destination: &c.Name,
			Sources:     cli.EnvVars("GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "event-path",
			Usage:       "Path to the webhook event payload, used when repository is not set",
			Destination: &c.EventPath,
			Sources:     cli.EnvVars("GITHUB_EVENT_PATH"),
		},
	}
}
