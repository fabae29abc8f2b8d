package show

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/remote"
	"github.com/keboola/remote-config-modifier/internal/pkg/rollout"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/table"
	"github.com/keboola/remote-config-modifier/internal/pkg/telemetry"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

// maxParallelFetches limits concurrent requests to the remote config API.
const maxParallelFetches = 4

type Options struct {
	// Projects, if there is only one, an error aborts the operation.
	Projects project.Projects
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	DocumentService() remote.DocumentService
	Stdout() io.Writer
}

func Run(ctx context.Context, o Options, d dependencies) (err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "rcm.lib.operation.parameter.show")
	defer telemetry.EndSpan(span, &err)

	if len(o.Projects) == 0 {
		return errors.New("at least one project is required")
	}

	if len(o.Projects) == 1 {
		cfg, _, err := d.DocumentService().Fetch(ctx, o.Projects[0])
		if err != nil {
			return err
		}
		return render(d, o.Projects[0], cfg)
	}

	// Fetch in parallel, render in the projects order
	fetched := make([]fetchResult, len(o.Projects))
	grp := &errgroup.Group{}
	grp.SetLimit(maxParallelFetches)
	for i, p := range o.Projects {
		grp.Go(func() error {
			fetched[i].cfg, _, fetched[i].err = d.DocumentService().Fetch(ctx, p)
			return nil
		})
	}
	_ = grp.Wait()

	byName := make(map[string]fetchResult, len(o.Projects))
	for i, p := range o.Projects {
		byName[p.Name] = fetched[i]
	}

	_, err = rollout.ForEach(ctx, d.Logger(), o.Projects, func(_ context.Context, p project.Project) error {
		result := byName[p.Name]
		if result.err != nil {
			return result.err
		}
		return render(d, p, result.cfg)
	})
	return err
}

type fetchResult struct {
	cfg *model.RemoteConfig
	err error
}

func render(d dependencies, p project.Project, cfg *model.RemoteConfig) error {
	_, err := fmt.Fprintln(d.Stdout(), table.RemoteConfig(fmt.Sprintf(`Project "%s"`, p.Name), cfg, nil))
	return err
}
