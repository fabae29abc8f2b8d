package cli

import (
	"io"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"

	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/prompt"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/prompt/interactive"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/prompt/nop"
)

// NewPrompt returns the interactive prompt if stdin and stdout are terminals and interactivity is not disabled.
func NewPrompt(stdin terminal.FileReader, stdout terminal.FileWriter, stderr io.Writer, nonInteractive bool) prompt.Prompt {
	if !nonInteractive && isTerminal(stdin.Fd()) && isTerminal(stdout.Fd()) {
		return interactive.New(stdin, stdout, stderr)
	}
	return nop.New()
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
