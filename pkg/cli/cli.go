package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/promote-release/pkg/cli/config"
	"github.com/m-mizutani/promote-release/pkg/domain/types"
	"github.com/m-mizutani/promote-release/pkg/infra/actions"
	"github.com/urfave/cli/v3"
)

// options holds internal CLI configuration
type options struct {
	writer io.Writer
}

// Option is a functional option for Run
type Option func(*options)

// WithWriter sets the destination of logs, workflow commands and help output
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// Run runs the CLI application
func Run(ctx context.Context, args []string, opts ...Option) error {
	o := &options{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	loggerCfg := config.Logger{Writer: o.writer}
	var logger *slog.Logger

	app := &cli.Command{
		Name:      "promote-release",
		Usage:     "Promote the latest GitHub prerelease to a full release",
		Version:   types.Version,
		Flags:     loggerCfg.Flags(),
		Writer:    o.writer,
		ErrWriter: o.writer,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		// A step invoked without a subcommand must not pass silently
		Action: func(ctx context.Context, c *cli.Command) error {
			return goerr.New("command is required",
				goerr.V("args", c.Args().Slice()),
				goerr.T(types.ErrTagConfiguration),
			)
		},
		Commands: []*cli.Command{
			cmdPromote(o.writer),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		actions.NewReporter(actions.WithWriter(o.writer)).Error(err.Error())
		return err
	}

	return nil
}
