// Package remote reads and writes remote config documents.
package remote

import (
	"context"
	"fmt"

	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
)

// DocumentService fetches a document with its version token and writes it back.
// Write fails with VersionConflictError if the document was modified since the fetch.
type DocumentService interface {
	Fetch(ctx context.Context, p project.Project) (*model.RemoteConfig, model.VersionToken, error)
	Write(ctx context.Context, p project.Project, cfg *model.RemoteConfig, token model.VersionToken) error
}

// VersionConflictError means the document was modified by someone else, the operation must be run again.
type VersionConflictError struct {
	Project string
}

// HTTPError is an unexpected response of the remote config API.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
}

func (e VersionConflictError) Error() string {
	return fmt.Sprintf(`remote config of the project "%s" was modified in the meantime, please run the command again`, e.Project)
}

func (e HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf(`request %s "%s" failed with status %d`, e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf(`request %s "%s" failed with status %d: %s`, e.Method, e.URL, e.StatusCode, e.Message)
}
