// Package interactive implements the prompt in a terminal using the survey library.
package interactive

import (
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"

	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/prompt"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

type Prompt struct {
	stdin  terminal.FileReader
	stdout terminal.FileWriter
	stderr io.Writer
}

func New(stdin terminal.FileReader, stdout terminal.FileWriter, stderr io.Writer) *Prompt {
	return &Prompt{stdin: stdin, stdout: stdout, stderr: stderr}
}

func (p *Prompt) IsInteractive() bool {
	return true
}

func (p *Prompt) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.stdout, format, a...)
}

func (p *Prompt) Confirm(c *prompt.Confirm) bool {
	result := c.Default
	err := survey.AskOne(&survey.Confirm{
		Message: formatLabel(c.Label),
		Help:    c.Description,
		Default: c.Default,
	}, &result, p.opts(nil)...)
	return p.handleError(err) && result
}

func (p *Prompt) Ask(q *prompt.Question) (result string, ok bool) {
	var question survey.Prompt
	if q.Hidden {
		question = &survey.Password{Message: formatLabel(q.Label), Help: q.Description}
	} else {
		question = &survey.Input{Message: formatLabel(q.Label), Help: q.Description, Default: q.Default}
	}

	err := survey.AskOne(question, &result, p.opts(q.Validator)...)
	return strings.TrimSpace(result), p.handleError(err)
}

func (p *Prompt) Select(s *prompt.Select) (value string, ok bool) {
	question := &survey.Select{
		Message: formatLabel(s.Label),
		Help:    s.Description,
		Options: s.Options,
	}
	if s.UseDefault {
		question.Default = s.Default
	}
	err := survey.AskOne(question, &value, p.opts(s.Validator)...)
	return value, p.handleError(err)
}

func (p *Prompt) SelectIndex(s *prompt.SelectIndex) (index int, ok bool) {
	question := &survey.Select{
		Message: formatLabel(s.Label),
		Help:    s.Description,
		Options: s.Options,
	}
	if s.UseDefault {
		question.Default = s.Default
	}
	err := survey.AskOne(question, &index, p.opts(s.Validator)...)
	return index, p.handleError(err)
}

func (p *Prompt) MultiSelect(s *prompt.MultiSelect) (result []string, ok bool) {
	question := &survey.MultiSelect{
		Message: formatLabel(s.Label),
		Help:    s.Description,
		Options: s.Options,
		Default: s.Default,
	}
	err := survey.AskOne(question, &result, p.opts(s.Validator)...)
	return result, p.handleError(err)
}

func (p *Prompt) MultiSelectIndex(s *prompt.MultiSelectIndex) (result []int, ok bool) {
	question := &survey.MultiSelect{
		Message: formatLabel(s.Label),
		Help:    s.Description,
		Options: s.Options,
		Default: s.Default,
	}
	err := survey.AskOne(question, &result, p.opts(s.Validator)...)
	return result, p.handleError(err)
}

func (p *Prompt) opts(validator prompt.ValidatorFunc) []survey.AskOpt {
	opts := []survey.AskOpt{survey.WithStdio(p.stdin, p.stdout, p.stderr), survey.WithShowCursor(true)}
	if validator != nil {
		opts = append(opts, survey.WithValidator(survey.Validator(validator)))
	}
	return opts
}

func (p *Prompt) handleError(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, terminal.InterruptErr):
		_, _ = fmt.Fprintln(p.stderr, color.YellowString("Interrupted."))
		return false
	default:
		_, _ = fmt.Fprintln(p.stderr, color.RedString("Error: %s", err))
		return false
	}
}

func formatLabel(label string) string {
	return strings.TrimSuffix(strings.TrimSpace(label), ":") + ":"
}
