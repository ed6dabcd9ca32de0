package actions

import (
	"fmt"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/promote-release/pkg/domain/interfaces"
	"github.com/sethvargo/go-githubactions"
)

// envOutput is the environment variable the runner uses to pass the step output file
const envOutput = "GITHUB_OUTPUT"

type reporter struct {
	action     *githubactions.Action
	outputFile string
}

// config holds internal reporter configuration
type config struct {
	writer     io.Writer
	outputFile string
}

// Option is a functional option for reporter configuration
type Option func(*config)

// WithWriter sets the destination of workflow commands
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.writer = w
	}
}

// WithOutputFile sets the file step outputs are appended to. Without it, outputs
// fall back to the legacy set-output command.
func WithOutputFile(path string) Option {
	return func(c *config) {
		c.outputFile = path
	}
}

// NewReporter creates a StepReporter that speaks GitHub Actions workflow commands
func NewReporter(opts ...Option) interfaces.StepReporter {
	cfg := &config{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Only the output file is resolved through the action; other lookups stay empty
	// so the reporter never depends on the process environment.
	getenv := func(key string) string {
		if key == envOutput {
			return cfg.outputFile
		}
		return ""
	}

	return &reporter{
		outputFile: cfg.outputFile,
		action: githubactions.New(
			githubactions.WithWriter(cfg.writer),
			githubactions.WithGetenv(getenv),
		),
	}
}

// SetOutput appends the output to the output file, or issues the legacy
// set-output command when no file is configured
func (r *reporter) SetOutput(name, value string) (err error) {
	if r.outputFile == "" {
		r.action.IssueCommand(&githubactions.Command{
			Name:       "set-output",
			Properties: githubactions.CommandProperties{"name": name},
			Message:    value,
		})
		return nil
	}

	// githubactions panics when the environment file cannot be written
	defer func() {
		if rec := recover(); rec != nil {
			err = goerr.New("failed to write step output",
				goerr.V("name", name),
				goerr.V("output_file", r.outputFile),
				goerr.V("cause", fmt.Sprint(rec)),
			)
		}
	}()

	r.action.SetOutput(name, value)
	return nil
}

func (r *reporter) Warning(msg string) {
	r.action.Warningf("%s", msg)
}

func (r *reporter) Error(msg string) {
	r.action.Errorf("%s", msg)
}

func (r *reporter) Mask(value string) {
	if value == "" {
		return
	}
	r.action.AddMask(value)
}
