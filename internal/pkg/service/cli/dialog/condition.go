package dialog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/keboola/remote-config-modifier/internal/pkg/expression"
	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/prompt"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

// AskNewCondition creates a condition from one or more rules joined by "&&".
func (d *Dialogs) AskNewCondition(existing []string, appIDs []string) (model.Condition, error) {
	name, err := d.ask(&prompt.Question{
		Label: "Enter condition name",
		Validator: func(val any) error {
			if err := prompt.ValueRequired(val); err != nil {
				return err
			}
			if slices.Contains(existing, strings.TrimSpace(val.(string))) {
				return errors.Errorf(`condition "%s" already exists`, val)
			}
			return nil
		},
	})
	if err != nil {
		return model.Condition{}, err
	}

	colors := model.TagColors()
	colorOptions := make([]string, 0, len(colors))
	for _, c := range colors {
		colorOptions = append(colorOptions, string(c))
	}
	colorIndex, err := d.selectIndex(&prompt.SelectIndex{Label: "Select tag color", Options: colorOptions, UseDefault: true})
	if err != nil {
		return model.Condition{}, err
	}

	var rules []expression.Rule
	for {
		rule, err := d.AskRule(appIDs)
		if err != nil {
			return model.Condition{}, err
		}
		rules = append(rules, rule)
		if !d.Prompt.Confirm(&prompt.Confirm{Label: "Do you want to add another rule joined by &&?"}) {
			break
		}
	}

	return model.Condition{
		Name:       strings.TrimSpace(name),
		Expression: expression.CompileAll(rules...),
		TagColor:   colors[colorIndex],
	}, nil
}

// AskRule asks for the dimension, the operator and the operand.
// Only operators legal for the dimension are offered.
func (d *Dialogs) AskRule(appIDs []string) (expression.Rule, error) {
	dimensions := expression.Dimensions()
	options := make([]string, 0, len(dimensions))
	for _, dim := range dimensions {
		options = append(options, dim.String())
	}
	index, err := d.selectIndex(&prompt.SelectIndex{Label: "Select rule", Options: options})
	if err != nil {
		return expression.Rule{}, err
	}

	rule := expression.Rule{Dimension: dimensions[index]}
	if rule.Dimension == expression.AppID || rule.Dimension.ScopedToApp() {
		if rule.AppID, err = d.askAppID(appIDs); err != nil {
			return expression.Rule{}, err
		}
	}
	if rule.Dimension == expression.AppID {
		rule.Operator = expression.Eq
		return rule, nil
	}

	label := strings.ToLower(rule.Dimension.String())
	if rule.Dimension.HasProperty() {
		if rule.Property, err = d.ask(&prompt.Question{Label: "Enter user property name", Validator: prompt.ValueRequired}); err != nil {
			return expression.Rule{}, err
		}
	}

	if rule.Operator, err = d.askOperator(rule.Dimension.Operators()); err != nil {
		return expression.Rule{}, err
	}

	if rule.Operator.MultiValue() {
		values, err := d.ask(&prompt.Question{
			Label:     fmt.Sprintf("Enter %s values separated by the comma", label),
			Validator: prompt.ValueRequired,
		})
		if err != nil {
			return expression.Rule{}, err
		}
		rule.Operand = splitValues(values)
		return rule, nil
	}

	var validator prompt.ValidatorFunc = prompt.ValueRequired
	if rule.Dimension == expression.DeviceDateTime {
		validator = DateTimeValidator
	}
	value, err := d.ask(&prompt.Question{Label: fmt.Sprintf("Enter %s", label), Validator: validator})
	if err != nil {
		return expression.Rule{}, err
	}
	rule.Operand = []string{strings.TrimSpace(value)}
	return rule, nil
}

func (d *Dialogs) askAppID(appIDs []string) (string, error) {
	switch len(appIDs) {
	case 0:
		return "", errors.New("the project has no app ID")
	case 1:
		return appIDs[0], nil
	default:
		index, err := d.selectIndex(&prompt.SelectIndex{Label: "Select App ID", Options: appIDs})
		if err != nil {
			return "", err
		}
		return appIDs[index], nil
	}
}

func (d *Dialogs) askOperator(operators []expression.Operator) (expression.Operator, error) {
	if len(operators) == 1 {
		return operators[0], nil
	}
	options := make([]string, 0, len(operators))
	for _, op := range operators {
		options = append(options, op.String())
	}
	index, err := d.selectIndex(&prompt.SelectIndex{Label: "Select operator", Options: options})
	if err != nil {
		return 0, err
	}
	return operators[index], nil
}

func splitValues(str string) []string {
	var out []string
	for _, v := range strings.Split(str, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
