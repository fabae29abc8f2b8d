// Package scripted provides a prompt answering questions from a queue, it is used in tests.
package scripted

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AlecAivazis/survey/v2/core"
	"github.com/sasha-s/go-deadlock"

	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/prompt"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

// Cancel answer interrupts the question, the prompt returns ok=false or false for a confirmation.
var Cancel = cancel{}

type cancel struct{}

// Prompt pops one answer per question.
// Answer types:
//   - Confirm: bool
//   - Ask: string, an invalid answer is logged and the next answer is used
//   - Select, SelectIndex: option string or index int
//   - MultiSelect, MultiSelectIndex: []string options or []int indexes.
type Prompt struct {
	lock    *deadlock.Mutex
	answers []any
	asked   []string
	out     strings.Builder
}

func New(answers ...any) *Prompt {
	return &Prompt{lock: &deadlock.Mutex{}, answers: answers}
}

func (p *Prompt) Add(answers ...any) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.answers = append(p.answers, answers...)
}

// Asked returns labels of all questions.
func (p *Prompt) Asked() []string {
	p.lock.Lock()
	defer p.lock.Unlock()
	return slices.Clone(p.asked)
}

// Remaining returns the count of unused answers.
func (p *Prompt) Remaining() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return len(p.answers)
}

// Output returns printed messages and validation errors.
func (p *Prompt) Output() string {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.out.String()
}

func (p *Prompt) IsInteractive() bool {
	return true
}

func (p *Prompt) Printf(format string, a ...any) {
	p.lock.Lock()
	defer p.lock.Unlock()
	_, _ = fmt.Fprintf(&p.out, format, a...)
}

func (p *Prompt) Confirm(c *prompt.Confirm) bool {
	switch v := p.next(c.Label).(type) {
	case bool:
		return v
	case cancel:
		return false
	default:
		panic(errors.Errorf(`unexpected answer type %T for confirm "%s"`, v, c.Label))
	}
}

func (p *Prompt) Ask(q *prompt.Question) (result string, ok bool) {
	for {
		switch v := p.next(q.Label).(type) {
		case string:
			if q.Validator != nil {
				if err := q.Validator(v); err != nil {
					p.Printf("%s\n", err)
					continue
				}
			}
			return v, true
		case cancel:
			return "", false
		default:
			panic(errors.Errorf(`unexpected answer type %T for question "%s"`, v, q.Label))
		}
	}
}

func (p *Prompt) Select(s *prompt.Select) (value string, ok bool) {
	index, ok := p.selectIndex(s.Label, s.Options)
	if !ok {
		return "", false
	}
	return s.Options[index], true
}

func (p *Prompt) SelectIndex(s *prompt.SelectIndex) (index int, ok bool) {
	return p.selectIndex(s.Label, s.Options)
}

func (p *Prompt) MultiSelect(s *prompt.MultiSelect) (result []string, ok bool) {
	indexes, ok := p.multiSelectIndex(s.Label, s.Options, s.Validator)
	if !ok {
		return nil, false
	}
	for _, i := range indexes {
		result = append(result, s.Options[i])
	}
	return result, true
}

func (p *Prompt) MultiSelectIndex(s *prompt.MultiSelectIndex) (result []int, ok bool) {
	return p.multiSelectIndex(s.Label, s.Options, s.Validator)
}

func (p *Prompt) selectIndex(label string, options []string) (int, bool) {
	switch v := p.next(label).(type) {
	case int:
		if v < 0 || v >= len(options) {
			panic(errors.Errorf(`index %d is out of range of select "%s"`, v, label))
		}
		return v, true
	case string:
		return optionIndex(label, options, v), true
	case cancel:
		return 0, false
	default:
		panic(errors.Errorf(`unexpected answer type %T for select "%s"`, v, label))
	}
}

func (p *Prompt) multiSelectIndex(label string, options []string, validator prompt.ValidatorFunc) ([]int, bool) {
	for {
		var indexes []int
		switch v := p.next(label).(type) {
		case []int:
			indexes = v
		case []string:
			for _, option := range v {
				indexes = append(indexes, optionIndex(label, options, option))
			}
		case cancel:
			return nil, false
		default:
			panic(errors.Errorf(`unexpected answer type %T for multi select "%s"`, v, label))
		}

		if validator != nil {
			answers := make([]core.OptionAnswer, 0, len(indexes))
			for _, i := range indexes {
				answers = append(answers, core.OptionAnswer{Index: i, Value: options[i]})
			}
			if err := validator(answers); err != nil {
				p.Printf("%s\n", err)
				continue
			}
		}
		return indexes, true
	}
}

func (p *Prompt) next(label string) any {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.asked = append(p.asked, label)
	if len(p.answers) == 0 {
		panic(errors.Errorf(`no answer for the question "%s"`, label))
	}
	v := p.answers[0]
	p.answers = p.answers[1:]
	return v
}

func optionIndex(label string, options []string, option string) int {
	index := slices.Index(options, option)
	if index < 0 {
		panic(errors.Errorf(`option "%s" not found in select "%s", options: %s`, option, label, strings.Join(options, ", ")))
	}
	return index
}
