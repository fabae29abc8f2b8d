package dependencies

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/keboola/remote-config-modifier/internal/pkg/env"
	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/remote"
	"github.com/keboola/remote-config-modifier/internal/pkg/remote/memory"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/cmdconfig"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dialog"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/prompt/scripted"
	"github.com/keboola/remote-config-modifier/internal/pkg/telemetry"
)

// Mocked dependencies container implements RemoteScope, it is used in tests.
// Documents are stored in memory, dialogs are answered from the queue.
// The config directory is a temporary directory, the registry lock requires a real file system.
type Mocked struct {
	logger    log.DebugLogger
	telemetry telemetry.ForTest
	fs        afero.Fs
	prompt    *scripted.Prompt
	dialogs   *dialog.Dialogs
	documents *memory.Service
	registry  *project.Registry
	stdout    *bytes.Buffer
	flags     cmdconfig.GlobalFlags
}

func NewMocked(t *testing.T, answers ...any) *Mocked {
	t.Helper()
	logger := log.NewDebugLogger()
	fs := afero.NewOsFs()
	configDir := filepath.Join(t.TempDir(), "config")
	p := scripted.New(answers...)
	return &Mocked{
		logger:    logger,
		telemetry: telemetry.NewForTest(t),
		fs:        fs,
		prompt:    p,
		dialogs:   dialog.New(p),
		documents: memory.New(),
		registry:  project.NewRegistry(logger, fs, configDir),
		stdout:    &bytes.Buffer{},
		flags:     cmdconfig.GlobalFlags{ConfigDir: configDir},
	}
}

func (v *Mocked) Logger() log.Logger {
	return v.logger
}

func (v *Mocked) DebugLogger() log.DebugLogger {
	return v.logger
}

func (v *Mocked) Telemetry() telemetry.Telemetry {
	return v.telemetry
}

func (v *Mocked) TestTelemetry() telemetry.ForTest {
	return v.telemetry
}

func (v *Mocked) Environment() env.Provider {
	return env.Empty()
}

func (v *Mocked) Fs() afero.Fs {
	return v.fs
}

func (v *Mocked) GlobalFlags() cmdconfig.GlobalFlags {
	return v.flags
}

func (v *Mocked) Dialogs() *dialog.Dialogs {
	return v.dialogs
}

func (v *Mocked) Prompt() *scripted.Prompt {
	return v.prompt
}

func (v *Mocked) Stdout() io.Writer {
	return v.stdout
}

// Output returns everything printed to stdout and by the prompt.
func (v *Mocked) Output() string {
	return v.stdout.String() + v.prompt.Output()
}

func (v *Mocked) Registry() *project.Registry {
	return v.registry
}

func (v *Mocked) DocumentService() remote.DocumentService {
	return v.documents
}

func (v *Mocked) MockedDocuments() *memory.Service {
	return v.documents
}
