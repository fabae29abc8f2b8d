// Package model contains the remote config document and its aggregate operations.
package model

import (
	"sort"

	"github.com/keboola/remote-config-modifier/internal/pkg/encoding/json"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

// VersionToken is the ETag returned by a fetch, a write must present it.
type VersionToken string

type ValueType string

const (
	ValueTypeUnspecified ValueType = "PARAMETER_VALUE_TYPE_UNSPECIFIED"
	ValueTypeBoolean     ValueType = "BOOLEAN"
	ValueTypeString      ValueType = "STRING"
	ValueTypeNumber      ValueType = "NUMBER"
	ValueTypeJSON        ValueType = "JSON"
)

// ValueTypes returns types offered when a parameter is created.
func ValueTypes() []ValueType {
	return []ValueType{ValueTypeBoolean, ValueTypeString, ValueTypeNumber, ValueTypeJSON}
}

type TagColor string

const (
	TagColorUnspecified TagColor = "CONDITION_DISPLAY_COLOR_UNSPECIFIED"
	TagColorBlue        TagColor = "BLUE"
	TagColorBrown       TagColor = "BROWN"
	TagColorCyan        TagColor = "CYAN"
	TagColorDeepOrange  TagColor = "DEEP_ORANGE"
	TagColorGreen       TagColor = "GREEN"
	TagColorIndigo      TagColor = "INDIGO"
	TagColorLime        TagColor = "LIME"
	TagColorOrange      TagColor = "ORANGE"
	TagColorPink        TagColor = "PINK"
	TagColorPurple      TagColor = "PURPLE"
	TagColorTeal        TagColor = "TEAL"
)

func TagColors() []TagColor {
	return []TagColor{
		TagColorBlue, TagColorBrown, TagColorCyan, TagColorDeepOrange, TagColorGreen, TagColorIndigo,
		TagColorLime, TagColorOrange, TagColorPink, TagColorPurple, TagColorTeal,
	}
}

// ParameterValue is either a literal value or the in-app default marker.
type ParameterValue struct {
	Value           string
	UseInAppDefault bool
}

type parameterValueJSON struct {
	Value           *string `json:"value,omitempty"`
	UseInAppDefault *bool   `json:"useInAppDefault,omitempty"`
}

type Parameter struct {
	DefaultValue      *ParameterValue           `json:"defaultValue,omitempty"`
	ConditionalValues map[string]ParameterValue `json:"conditionalValues,omitempty"`
	Description       string                    `json:"description,omitempty"`
	ValueType         ValueType                 `json:"valueType,omitempty"`
}

// Condition is identified by its name.
type Condition struct {
	Name       string   `json:"name"`
	Expression string   `json:"expression"`
	TagColor   TagColor `json:"tagColor,omitempty"`
}

type ParameterGroup struct {
	Description string                `json:"description,omitempty"`
	Parameters  map[string]*Parameter `json:"parameters,omitempty"`
}

// RemoteConfig is the whole document of one project.
type RemoteConfig struct {
	Conditions      []Condition                `json:"conditions,omitempty"`
	Parameters      map[string]*Parameter      `json:"parameters,omitempty"`
	ParameterGroups map[string]*ParameterGroup `json:"parameterGroups,omitempty"`
}

func NewValue(value string) ParameterValue {
	return ParameterValue{Value: value}
}

func InAppDefault() ParameterValue {
	return ParameterValue{UseInAppDefault: true}
}

func (v ParameterValue) String() string {
	if v.UseInAppDefault {
		return "(in-app default)"
	}
	return v.Value
}

func (v ParameterValue) MarshalJSON() ([]byte, error) {
	out := parameterValueJSON{}
	if v.UseInAppDefault {
		out.UseInAppDefault = &v.UseInAppDefault
	} else {
		out.Value = &v.Value
	}
	return json.Encode(out, false)
}

func (v *ParameterValue) UnmarshalJSON(data []byte) error {
	in := parameterValueJSON{}
	if err := json.Decode(data, &in); err != nil {
		return err
	}
	switch {
	case in.Value != nil:
		*v = NewValue(*in.Value)
	case in.UseInAppDefault != nil:
		*v = ParameterValue{UseInAppDefault: *in.UseInAppDefault}
	default:
		return errors.New(`parameter value must contain "value" or "useInAppDefault" key`)
	}
	return nil
}

// Clone returns a deep copy.
func (p *Parameter) Clone() *Parameter {
	if p == nil {
		return nil
	}
	out := *p
	if p.DefaultValue != nil {
		v := *p.DefaultValue
		out.DefaultValue = &v
	}
	out.ConditionalValues = nil
	if len(p.ConditionalValues) > 0 {
		out.ConditionalValues = make(map[string]ParameterValue, len(p.ConditionalValues))
		for k, v := range p.ConditionalValues {
			out.ConditionalValues[k] = v
		}
	}
	return &out
}

// WithoutConditionalValues returns a copy with the default value, description and type only.
func (p *Parameter) WithoutConditionalValues() *Parameter {
	out := p.Clone()
	out.ConditionalValues = nil
	return out
}

// ConditionNames returns sorted names of conditions referenced by conditional values.
func (p *Parameter) ConditionNames() []string {
	out := make([]string, 0, len(p.ConditionalValues))
	for name := range p.ConditionalValues {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
