package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/promote-release/pkg/cli/config"
	githubcontroller "github.com/m-mizutani/promote-release/pkg/controller/github"
	"github.com/m-mizutani/promote-release/pkg/infra/actions"
	"github.com/m-mizutani/promote-release/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// outputReleaseID is the step output consumed by downstream steps
const outputReleaseID = "releaseId"

func cmdPromote(w io.Writer) *cli.Command {
	var (
		githubCfg  config.GitHub
		repoCfg    config.Repository
		actionsCfg config.Actions
	)

	flags := append(githubCfg.Flags(), repoCfg.Flags()...)
	flags = append(flags, actionsCfg.Flags()...)

	return &cli.Command{
		Name:    "promote",
		Aliases: []string{"p"},
		Usage:   "Turn the latest release into a full release if it is a prerelease",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := ctxlog.From(ctx)

			// Credential is checked before anything touches the network
			if err := githubCfg.Validate(); err != nil {
				return err
			}

			reporter := actions.NewReporter(
				actions.WithWriter(w),
				actions.WithOutputFile(actionsCfg.OutputFile),
			)
			reporter.Mask(githubCfg.Token)

			logger.Debug("Configuration",
				slog.Any("github", githubCfg),
				slog.Any("repository", repoCfg),
				slog.Any("actions", actionsCfg),
			)

			repo, err := githubcontroller.ResolveRepository(ctx, repoCfg.Name, repoCfg.EventPath)
			if err != nil {
				return err
			}

			client, err := githubCfg.NewClient(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to create GitHub client")
			}

			result, err := usecase.NewPromote(client).Promote(ctx, repo)
			if err != nil {
				return err
			}

			if !result.Promoted {
				reporter.Warning("Latest release is not a prerelease, skipping.")
				return nil
			}

			releaseID := strconv.FormatInt(result.Release.ID, 10)
			if err := reporter.SetOutput(outputReleaseID, releaseID); err != nil {
				return goerr.Wrap(err, "release was promoted but the step output could not be set",
					goerr.V("release_id", releaseID),
				)
			}

			logger.Info("Set step output",
				slog.String("name", outputReleaseID),
				slog.String("value", releaseID),
			)

			return nil
		},
	}
}
