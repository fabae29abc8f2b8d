// Package propagation ensures that conditions referenced by a parameter exist in each destination project.
//
// Each tracked condition carries the generation, the 1-based position of the last destination
// where the condition was observed in a freshly fetched document. A destination at position g
// receives only conditions with generation < g, so a condition is never created twice.
package propagation

import (
	"github.com/keboola/remote-config-modifier/internal/pkg/expression"
	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

type GenerationalCondition struct {
	Generation int
	Condition  model.Condition
}

type Tracker struct {
	order      []string
	conditions map[string]*GenerationalCondition
}

// NewTracker seeds generation 0 from the source conditions referenced by the parameter conditional values.
// Conditions keep the source document order.
func NewTracker(source *model.RemoteConfig, parameter *model.Parameter) *Tracker {
	t := &Tracker{conditions: make(map[string]*GenerationalCondition)}
	for _, condition := range source.Conditions {
		if _, found := parameter.ConditionalValues[condition.Name]; !found {
			continue
		}
		if _, found := t.conditions[condition.Name]; found {
			continue
		}
		t.order = append(t.order, condition.Name)
		t.conditions[condition.Name] = &GenerationalCondition{Generation: 0, Condition: condition}
	}
	return t
}

// Names returns names of the tracked conditions.
func (t *Tracker) Names() []string {
	return append([]string(nil), t.order...)
}

func (t *Tracker) Get(name string) (GenerationalCondition, bool) {
	v, found := t.conditions[name]
	if !found {
		return GenerationalCondition{}, false
	}
	return *v, true
}

// Extend appends to the destination document all tracked conditions it does not contain.
//
// The dest must be freshly fetched. Tracked conditions present in dest are bumped to the generation,
// the remaining ones with a lower generation get the app id replaced by a compatible one from appIDs
// and are appended. If only is not empty, only these conditions are appended.
// On error the dest is not modified.
func (t *Tracker) Extend(dest *model.RemoteConfig, generation int, appIDs []string, only ...string) ([]model.Condition, error) {
	for _, name := range dest.ConditionNames() {
		if v, found := t.conditions[name]; found {
			v.Generation = generation
		}
	}

	var filter map[string]bool
	if len(only) > 0 {
		filter = make(map[string]bool, len(only))
		for _, name := range only {
			filter[name] = true
		}
	}

	var missing []model.Condition
	errs := errors.NewMultiError()
	for _, name := range t.order {
		v := t.conditions[name]
		if v.Generation >= generation || (filter != nil && !filter[name]) {
			continue
		}

		condition := v.Condition
		expr, err := expression.ReplaceAppID(condition.Expression, appIDs)
		if err != nil {
			errs.AppendWithPrefixf(err, `cannot create condition "%s"`, condition.Name)
			continue
		}
		condition.Expression = expr
		missing = append(missing, condition)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	dest.Conditions = append(dest.Conditions, missing...)
	return missing, nil
}
