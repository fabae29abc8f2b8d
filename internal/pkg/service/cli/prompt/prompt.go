// Package prompt defines the interactive prompt used by dialogs.
package prompt

import (
	"strings"

	"github.com/AlecAivazis/survey/v2/core"

	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

// ValidatorFunc validates the answer, the question is repeated on error.
type ValidatorFunc func(val any) error

type Prompt interface {
	IsInteractive() bool
	Printf(format string, a ...any)
	Confirm(c *Confirm) bool
	Ask(q *Question) (result string, ok bool)
	Select(s *Select) (value string, ok bool)
	SelectIndex(s *SelectIndex) (index int, ok bool)
	MultiSelect(s *MultiSelect) (result []string, ok bool)
	MultiSelectIndex(s *MultiSelectIndex) (result []int, ok bool)
}

type Confirm struct {
	Label       string
	Description string
	Default     bool
}

type Question struct {
	Label       string
	Description string
	Default     string
	Validator   ValidatorFunc
	Hidden      bool
}

type Select struct {
	Label       string
	Description string
	Options     []string
	Default     string
	UseDefault  bool
	Validator   ValidatorFunc
}

type SelectIndex struct {
	Label       string
	Description string
	Options     []string
	Default     int
	UseDefault  bool
	Validator   ValidatorFunc
}

type MultiSelect struct {
	Label       string
	Description string
	Options     []string
	Default     []string
	Validator   ValidatorFunc
}

type MultiSelectIndex struct {
	Label       string
	Description string
	Options     []string
	Default     []int
	Validator   ValidatorFunc
}

func ValueRequired(val any) error {
	if str, ok := val.(string); ok && len(strings.TrimSpace(str)) == 0 {
		return errors.New("value is required")
	}
	return nil
}

func AtLeastOneRequired(val any) error {
	if v, ok := val.([]core.OptionAnswer); ok && len(v) == 0 {
		return errors.New("at least one value is required")
	}
	if v, ok := val.([]int); ok && len(v) == 0 {
		return errors.New("at least one value is required")
	}
	return nil
}
