package config

import "github.com/urfave/cli/v3"

// Actions holds GitHub Actions runner configuration
type Actions struct {
	OutputFile string
}

// Flags returns CLI flags for Actions runner configuration
func (c *Actions) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output-file",
			Usage:       "File step outputs are appended to",
			Destination: &c.OutputFile,
			Sources:     cli.EnvVars("GITHUB_OUTPUT"),
		},
	}
}
