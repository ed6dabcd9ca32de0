package github

import (
	"context"
	"encoding/json"
	"os"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/promote-release/pkg/domain/model"
	"github.com/m-mizutani/promote-release/pkg/domain/types"
)

// eventPayload is the part shared by every webhook event that concerns a repository
type eventPayload struct {
	Repo *github.Repository `json:"repository,omitempty"`
}

// ResolveRepository determines the target repository from the Actions context.
// An explicit "owner/name" wins; otherwise the repository of the triggering event is used.
func ResolveRepository(ctx context.Context, name, eventPath string) (model.RepositoryCoordinates, error) {
	logger := ctxlog.From(ctx)

	if name != "" {
		return model.ParseRepositoryCoordinates(name)
	}

	if eventPath == "" {
		return model.RepositoryCoordinates{}, goerr.New("repository is not specified: set GITHUB_REPOSITORY or GITHUB_EVENT_PATH",
			goerr.T(types.ErrTagConfiguration),
		)
	}

	logger.Debug("Resolving repository from event payload", "event_path", eventPath)

	repo, err := repositoryFromEvent(eventPath)
	if err != nil {
		return model.RepositoryCoordinates{}, err
	}

	return repo, nil
}

func repositoryFromEvent(eventPath string) (model.RepositoryCoordinates, error) {
	raw, err := os.ReadFile(eventPath)
	if err != nil {
		return model.RepositoryCoordinates{}, goerr.Wrap(err, "failed to read event payload",
			goerr.V("event_path", eventPath),
			goerr.T(types.ErrTagConfiguration),
		)
	}

	var payload eventPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return model.RepositoryCoordinates{}, goerr.Wrap(err, "failed to decode event payload",
			goerr.V("event_path", eventPath),
			goerr.T(types.ErrTagConfiguration),
		)
	}

	// Use Get*() helper methods for nil-safe field access
	owner := payload.Repo.GetOwner().GetLogin()
	name := payload.Repo.GetName()
	if owner == "" || name == "" {
		return model.RepositoryCoordinates{}, goerr.New("missing repository information in event payload",
			goerr.V("event_path", eventPath),
			goerr.V("owner", owner),
			goerr.V("repo", name),
			goerr.T(types.ErrTagConfiguration),
		)
	}

	return model.RepositoryCoordinates{Owner: owner, Name: name}, nil
}
