package dialog

import (
	"fmt"
	"slices"

	"github.com/fatih/color"

	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/propagation"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/prompt"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

const createNewGroup = "Create new group"

// AskGroup returns the target group of a move and the description used if the group is created.
// If the group name is set, the operator only confirms creation of a missing group.
func (d *Dialogs) AskGroup(cfg *model.RemoteConfig, group string) (name, description string, err error) {
	groups := cfg.GroupNames()
	if group != "" {
		if slices.Contains(groups, group) {
			return group, "", nil
		}
		if err := d.ConfirmOrCancel(color.YellowString(`Group "%s" does not exist! Do you want to create it?`, group)); err != nil {
			return "", "", err
		}
		description, err = d.ask(&prompt.Question{Label: "Enter group description (optional)"})
		return group, description, err
	}

	options := append(slices.Clone(groups), createNewGroup)
	index, err := d.selectIndex(&prompt.SelectIndex{Label: "Select the group you want to move the parameter to", Options: options})
	if err != nil {
		return "", "", err
	}
	if options[index] != createNewGroup {
		return options[index], "", nil
	}

	name, err = d.ask(&prompt.Question{
		Label: "Enter group name",
		Validator: func(val any) error {
			if err := prompt.ValueRequired(val); err != nil {
				return err
			}
			if slices.Contains(groups, val.(string)) {
				return errors.Errorf(`group "%s" already exists`, val)
			}
			return nil
		},
	})
	if err != nil {
		return "", "", err
	}
	description, err = d.ask(&prompt.Question{Label: "Enter group description (optional)"})
	return name, description, err
}

// AskPropagationMode selects one mode for all destination projects.
func (d *Dialogs) AskPropagationMode(destinations []string) (propagation.Mode, error) {
	if mode, fixed := propagation.ModeFor(len(destinations)); fixed {
		return mode, nil
	}

	modes := propagation.Modes()
	options := make([]string, 0, len(modes))
	for _, m := range modes {
		options = append(options, m.String())
	}
	index, err := d.selectIndex(&prompt.SelectIndex{
		Label:       "Select how the parameter is propagated to other projects",
		Description: fmt.Sprintf("Other projects: %v", destinations),
		Options:     options,
		Default:     int(propagation.DefaultAndConditional),
		UseDefault:  true,
	})
	if err != nil {
		return 0, err
	}
	return modes[index], nil
}
