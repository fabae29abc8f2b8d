// Package rollout runs a step for each project of a multi-project operation.
// A failed or canceled project is logged and the loop continues with the next one.
// Projects saved before a failure are kept, there is no rollback.
package rollout

import (
	"context"
	"strings"

	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dialog"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

// ErrUnchanged can be returned by a step if there is nothing to save.
var ErrUnchanged = errors.New("nothing to save")

type Result struct {
	Saved     []string
	Unchanged []string
	Skipped   []string
	Failed    []string
}

// FailedError summarizes projects which were not saved because of an error.
type FailedError struct {
	Projects []string
}

func (e FailedError) Error() string {
	return `the operation failed for the projects: ` + strings.Join(e.Projects, ", ")
}

type StepFn func(ctx context.Context, p project.Project) error

// ForEach calls the step for each project sequentially.
// The error is FailedError if at least one step failed, canceled steps are not failures.
func ForEach(ctx context.Context, logger log.Logger, projects project.Projects, step StepFn) (Result, error) {
	result := Result{}
	for _, p := range projects {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		err := step(ctx, p)
		switch {
		case err == nil:
			result.Saved = append(result.Saved, p.Name)
		case errors.Is(err, ErrUnchanged):
			result.Unchanged = append(result.Unchanged, p.Name)
		case errors.Is(err, dialog.ErrCanceled):
			logger.Infof(ctx, `Project "%s" skipped.`, p.Name)
			result.Skipped = append(result.Skipped, p.Name)
		default:
			logger.Errorf(ctx, `Project "%s": %s`, p.Name, errors.Format(err))
			result.Failed = append(result.Failed, p.Name)
		}
	}

	if len(result.Failed) > 0 {
		return result, FailedError{Projects: result.Failed}
	}
	return result, nil
}
