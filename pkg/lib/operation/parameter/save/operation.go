package save

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/remote"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dialog"
	"github.com/keboola/remote-config-modifier/internal/pkg/telemetry"
)

type Options struct {
	Project project.Project
	Config  *model.RemoteConfig
	// Token from the fetch of the modified document.
	Token model.VersionToken
	// Preview is printed before the confirmation.
	Preview string
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Dialogs() *dialog.Dialogs
	DocumentService() remote.DocumentService
}

// Run prints the preview, asks for the confirmation and writes the document.
func Run(ctx context.Context, o Options, d dependencies) (err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "rcm.lib.operation.parameter.save")
	span.SetAttributes(attribute.String("project.name", o.Project.Name))
	defer telemetry.EndSpan(span, &err)

	if o.Preview != "" {
		d.Dialogs().Preview(o.Preview)
	}

	if err := d.Dialogs().ConfirmOrCancel(fmt.Sprintf(`Do you want to save changes to the project "%s"?`, o.Project.Name)); err != nil {
		return err
	}

	if err := d.DocumentService().Write(ctx, o.Project, o.Config, o.Token); err != nil {
		return err
	}

	d.Logger().Infof(ctx, `Changes saved to the project "%s".`, o.Project.Name)
	return nil
}
