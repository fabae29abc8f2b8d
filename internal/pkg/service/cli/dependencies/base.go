package dependencies

import (
	"io"

	"github.com/spf13/afero"

	"github.com/keboola/remote-config-modifier/internal/pkg/env"
	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/cmdconfig"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dialog"
	"github.com/keboola/remote-config-modifier/internal/pkg/telemetry"
)

// baseScope dependencies container implements BaseScope interface.
type baseScope struct {
	logger      log.Logger
	telemetry   telemetry.Telemetry
	fs          afero.Fs
	dialogs     *dialog.Dialogs
	globalFlags cmdconfig.GlobalFlags
	envs        env.Provider
	stdout      io.Writer
}

func newBaseScope(logger log.Logger, tel telemetry.Telemetry, fs afero.Fs, dialogs *dialog.Dialogs, flags cmdconfig.GlobalFlags, envs env.Provider, stdout io.Writer) *baseScope {
	return &baseScope{
		logger:      logger,
		telemetry:   tel,
		fs:          fs,
		dialogs:     dialogs,
		globalFlags: flags,
		envs:        envs,
		stdout:      stdout,
	}
}

func (v *baseScope) Logger() log.Logger {
	return v.logger
}

func (v *baseScope) Telemetry() telemetry.Telemetry {
	return v.telemetry
}

func (v *baseScope) Environment() env.Provider {
	return v.envs
}

func (v *baseScope) Fs() afero.Fs {
	return v.fs
}

func (v *baseScope) GlobalFlags() cmdconfig.GlobalFlags {
	return v.globalFlags
}

func (v *baseScope) Dialogs() *dialog.Dialogs {
	return v.dialogs
}

func (v *baseScope) Stdout() io.Writer {
	return v.stdout
}
