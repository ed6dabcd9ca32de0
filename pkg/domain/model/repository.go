package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/promote-release/pkg/domain/types"
)

// RepositoryCoordinates identifies the target repository
type RepositoryCoordinates struct {
	Owner string // Repository owner (user or organization)
	Name  string // Repository name
}

// ParseRepositoryCoordinates parses "owner/name" into RepositoryCoordinates
func ParseRepositoryCoordinates(s string) (RepositoryCoordinates, error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return RepositoryCoordinates{}, goerr.New("repository must be in owner/name form",
			goerr.V("repository", s),
			goerr.T(types.ErrTagConfiguration),
		)
	}

	return RepositoryCoordinates{Owner: owner, Name: name}, nil
}

func (x RepositoryCoordinates) String() string {
	return x.Owner + "/" + x.Name
}
