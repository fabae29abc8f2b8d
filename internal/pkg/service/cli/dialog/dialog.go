// Package dialog contains interactive dialogs of the CLI commands.
// Each dialog returns ErrCanceled if the operator interrupts a question.
package dialog

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/prompt"
	nopPrompt "github.com/keboola/remote-config-modifier/internal/pkg/service/cli/prompt/nop"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/testhelper/terminal"
)

var ErrCanceled = errors.New("operation was canceled")

type Dialogs struct {
	prompt.Prompt
}

func New(prompt prompt.Prompt) *Dialogs {
	return &Dialogs{Prompt: prompt}
}

func NewForTest(t *testing.T, interactive bool) (*Dialogs, terminal.Console) {
	t.Helper()

	if interactive {
		// Create virtual console
		console, err := terminal.New(t)
		require.NoError(t, err)

		// Create prompt
		p := cli.NewPrompt(console.Tty(), console.Tty(), console.Tty(), false)

		// Create dialogs
		return New(p), console
	}
	return New(nopPrompt.New()), nil
}

// ConfirmOrCancel returns ErrCanceled if the operator refused.
func (d *Dialogs) ConfirmOrCancel(label string) error {
	if !d.Prompt.Confirm(&prompt.Confirm{Label: label, Default: true}) {
		return ErrCanceled
	}
	return nil
}

func (d *Dialogs) ConfirmOverwrite(name string) error {
	return d.ConfirmOrCancel(color.YellowString(`Parameter "%s" already exists! Do you want to replace it?`, name))
}

// Preview prints a rendered table.
func (d *Dialogs) Preview(rendered string) {
	d.Printf("\n%s\n", rendered)
}

func (d *Dialogs) ask(q *prompt.Question) (string, error) {
	v, ok := d.Ask(q)
	if !ok {
		return "", ErrCanceled
	}
	// Non-interactive prompt returns the default value without validation.
	if q.Validator != nil {
		if err := q.Validator(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (d *Dialogs) selectIndex(s *prompt.SelectIndex) (int, error) {
	v, ok := d.SelectIndex(s)
	if !ok {
		return 0, ErrCanceled
	}
	return v, nil
}
