package dialog

import (
	"strings"

	"github.com/relvacode/iso8601"
	"github.com/spf13/cast"
	"github.com/umisama/go-regexpcache"

	"github.com/keboola/remote-config-modifier/internal/pkg/encoding/json"
	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/prompt"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

const valueTypeLabel = "Enter value type. It can be one of the following: Boolean [b], Number [n], JSON [j], String [s]"

func ParameterNameValidator(val any) error {
	name, _ := val.(string)
	switch {
	case name == "":
		return errors.New("name must contain at least one character")
	case !regexpcache.MustCompile(`^[A-Za-z_]`).MatchString(name):
		return errors.New("parameter name must start with an underscore or English letter character [A-Z, a-z]")
	case !regexpcache.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`).MatchString(name):
		return errors.New("parameter name can only include English letter characters, numbers and underscore")
	default:
		return nil
	}
}

// ParseValueType accepts the full type name or its first letter, case-insensitive.
func ParseValueType(v string) (model.ValueType, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "b", "bool", "boolean":
		return model.ValueTypeBoolean, nil
	case "n", "number":
		return model.ValueTypeNumber, nil
	case "j", "json":
		return model.ValueTypeJSON, nil
	case "s", "string":
		return model.ValueTypeString, nil
	default:
		return "", errors.New("unexpected value, it can be one of the following: Boolean [b], Number [n], JSON [j], String [s]")
	}
}

func valueTypeLetter(v model.ValueType) string {
	switch v {
	case model.ValueTypeBoolean:
		return "b"
	case model.ValueTypeNumber:
		return "n"
	case model.ValueTypeJSON:
		return "j"
	case model.ValueTypeString:
		return "s"
	default:
		return ""
	}
}

// ValueValidator checks that the value can be parsed as the value type.
func ValueValidator(valueType model.ValueType) prompt.ValidatorFunc {
	return func(val any) error {
		str, _ := val.(string)
		switch valueType {
		case model.ValueTypeBoolean:
			if _, err := cast.ToBoolE(str); err != nil {
				return errors.New("value must be a boolean")
			}
		case model.ValueTypeNumber:
			if _, err := cast.ToFloat64E(strings.TrimSpace(str)); err != nil || strings.TrimSpace(str) == "" {
				return errors.New("value must be numeric")
			}
		case model.ValueTypeJSON:
			if !json.Valid(str) {
				return errors.New("invalid JSON")
			}
		}
		return nil
	}
}

func DateTimeValidator(val any) error {
	str, _ := val.(string)
	if _, err := iso8601.ParseString(strings.TrimSpace(str)); err != nil {
		return errors.New(`value must be a date time in the ISO 8601 format, for example "2025-01-31T12:00:00"`)
	}
	return nil
}

func (d *Dialogs) askValueType(defaultValue model.ValueType) (model.ValueType, error) {
	v, err := d.ask(&prompt.Question{
		Label:   valueTypeLabel,
		Default: valueTypeLetter(defaultValue),
		Validator: func(val any) error {
			_, err := ParseValueType(val.(string))
			return err
		},
	})
	if err != nil {
		return "", err
	}
	return ParseValueType(v)
}

func (d *Dialogs) askValue(label string, valueType model.ValueType, defaultValue string) (string, error) {
	return d.ask(&prompt.Question{
		Label:     label,
		Default:   defaultValue,
		Validator: ValueValidator(valueType),
	})
}
