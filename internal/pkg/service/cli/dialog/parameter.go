package dialog

import (
	"fmt"
	"slices"

	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/prompt"
)

const createNewCondition = "Create new condition"

type ParameterOptions struct {
	// Name is asked if empty.
	Name string
	// Description is asked if nil.
	Description *string
	// Current parameter, its values are offered as defaults.
	Current *model.Parameter
}

type ParameterResult struct {
	Name      string
	Parameter *model.Parameter
	// NewConditions were created by the operator, they must be added to the document.
	NewConditions []model.Condition
}

// AskParameter builds a parameter interactively.
// Conditional values can reference existing conditions of the document or newly created ones.
func (d *Dialogs) AskParameter(cfg *model.RemoteConfig, appIDs []string, o ParameterOptions) (ParameterResult, error) {
	current := o.Current
	if current == nil {
		current = &model.Parameter{}
	}

	name, err := d.AskParameterName(o.Name)
	if err != nil {
		return ParameterResult{}, err
	}

	var description string
	if o.Description != nil {
		description = *o.Description
	} else if description, err = d.ask(&prompt.Question{Label: "Enter description (optional)", Default: current.Description}); err != nil {
		return ParameterResult{}, err
	}

	valueType, err := d.askValueType(current.ValueType)
	if err != nil {
		return ParameterResult{}, err
	}

	defaultValue := ""
	if current.DefaultValue != nil && !current.DefaultValue.UseInAppDefault && current.ValueType == valueType {
		defaultValue = current.DefaultValue.Value
	}
	value, err := d.askValue("Enter default value", valueType, defaultValue)
	if err != nil {
		return ParameterResult{}, err
	}

	conditionalValues, newConditions, err := d.AskConditionalValues(cfg.Conditions, appIDs, valueType)
	if err != nil {
		return ParameterResult{}, err
	}

	v := model.NewValue(value)
	return ParameterResult{
		Name: name,
		Parameter: &model.Parameter{
			DefaultValue:      &v,
			ConditionalValues: conditionalValues,
			Description:       description,
			ValueType:         valueType,
		},
		NewConditions: newConditions,
	}, nil
}

// AskParameterName validates the name from a flag, or asks for it.
func (d *Dialogs) AskParameterName(name string) (string, error) {
	if name != "" {
		return name, ParameterNameValidator(name)
	}
	return d.ask(&prompt.Question{Label: "Enter parameter name", Validator: ParameterNameValidator})
}

// AskConditionalValues asks for values of existing or new conditions, until the operator stops.
func (d *Dialogs) AskConditionalValues(conditions []model.Condition, appIDs []string, valueType model.ValueType) (map[string]model.ParameterValue, []model.Condition, error) {
	values := make(map[string]model.ParameterValue)
	var created []model.Condition

	names := make([]string, 0, len(conditions))
	for _, c := range conditions {
		names = append(names, c.Name)
	}

	label := "Do you want to add a conditional value?"
	for d.Prompt.Confirm(&prompt.Confirm{Label: label}) {
		label = "Do you want to add another conditional value?"

		var options []string
		for _, name := range names {
			if _, found := values[name]; !found {
				options = append(options, name)
			}
		}
		options = append(options, createNewCondition)

		index, err := d.selectIndex(&prompt.SelectIndex{Label: "Select condition", Options: options})
		if err != nil {
			return nil, nil, err
		}

		name := options[index]
		if name == createNewCondition {
			condition, err := d.AskNewCondition(names, appIDs)
			if err != nil {
				return nil, nil, err
			}
			created = append(created, condition)
			names = append(names, condition.Name)
			name = condition.Name
		}

		value, err := d.askValue(fmt.Sprintf(`Enter value for condition "%s"`, name), valueType, "")
		if err != nil {
			return nil, nil, err
		}
		values[name] = model.NewValue(value)
	}

	if len(values) == 0 {
		return nil, nil, nil
	}
	return values, created, nil
}

// AskCustomValues asks for the default value and values of the selected conditions for one project.
// The result contains conditional values only for the selected conditions.
func (d *Dialogs) AskCustomValues(projectName string, p *model.Parameter) (*model.Parameter, error) {
	out := p.WithoutConditionalValues()

	defaultValue := ""
	if p.DefaultValue != nil {
		defaultValue = p.DefaultValue.Value
	}
	value, err := d.askValue(fmt.Sprintf(`Enter default value for the project "%s"`, projectName), p.ValueType, defaultValue)
	if err != nil {
		return nil, err
	}
	v := model.NewValue(value)
	out.DefaultValue = &v

	names := p.ConditionNames()
	if len(names) == 0 {
		return out, nil
	}

	all := make([]int, 0, len(names))
	for i := range names {
		all = append(all, i)
	}
	selected, ok := d.MultiSelectIndex(&prompt.MultiSelectIndex{
		Label:   fmt.Sprintf(`Select conditions for the project "%s"`, projectName),
		Options: names,
		Default: all,
	})
	if !ok {
		return nil, ErrCanceled
	}
	slices.Sort(selected)

	for _, i := range selected {
		name := names[i]
		value, err := d.askValue(fmt.Sprintf(`Enter value for condition "%s"`, name), p.ValueType, p.ConditionalValues[name].Value)
		if err != nil {
			return nil, err
		}
		if out.ConditionalValues == nil {
			out.ConditionalValues = make(map[string]model.ParameterValue)
		}
		out.ConditionalValues[name] = model.NewValue(value)
	}
	return out, nil
}
