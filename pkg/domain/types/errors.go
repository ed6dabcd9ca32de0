package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures of a promotion run. Skipping a release that is
// already a full release is not an error and has no tag.
var (
	// ErrTagConfiguration marks missing or malformed configuration. No API call is made.
	ErrTagConfiguration = goerr.NewTag("configuration")

	// ErrTagNotFound marks a repository without any release.
	ErrTagNotFound = goerr.NewTag("not_found")

	// ErrTagTransport marks a failed read or write call to the GitHub API.
	ErrTagTransport = goerr.NewTag("transport")

	// ErrTagUpdate marks an update call that completed without returning the release.
	ErrTagUpdate = goerr.NewTag("update")
)
