// Package project contains the registry of remote config projects stored in the user config directory.
package project

import (
	"context"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/keboola/remote-config-modifier/internal/pkg/expression"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
	validatorPkg "github.com/keboola/remote-config-modifier/internal/pkg/validator"
)

type Project struct {
	Name   string   `json:"name" yaml:"name" validate:"required"`
	Number string   `json:"project_number" yaml:"project_number" validate:"required,numeric"`
	AppIDs []string `json:"app_ids" yaml:"app_ids" validate:"dive,required,app_id"`
}

type Projects []Project

type NotFoundError struct {
	Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf(`project "%s" not found`, e.Name)
}

func (p Project) String() string {
	return p.Name
}

func (p Project) Validate(ctx context.Context) error {
	return newValidator().Validate(ctx, p)
}

func (v Projects) Names() []string {
	out := make([]string, 0, len(v))
	for _, p := range v {
		out = append(out, p.Name)
	}
	return out
}

func (v Projects) Get(name string) (Project, error) {
	for _, p := range v {
		if p.Name == name {
			return p, nil
		}
	}
	return Project{}, NotFoundError{Name: name}
}

// Select returns the projects the command runs for.
//   - single: only the named project
//   - main: all projects, the main project first
//   - otherwise: all projects in the registry order, the first one is the main project.
func (v Projects) Select(single, main string) (Projects, error) {
	if len(v) == 0 {
		return nil, errors.New(`no project is configured, please run "rcm config add" or "rcm config store"`)
	}

	if single != "" {
		p, err := v.Get(single)
		if err != nil {
			return nil, err
		}
		return Projects{p}, nil
	}

	out := slices.Clone(v)
	if main != "" {
		index := slices.IndexFunc(out, func(p Project) bool { return p.Name == main })
		if index < 0 {
			return nil, NotFoundError{Name: main}
		}
		out[0], out[index] = out[index], out[0]
	}
	return out, nil
}

func newValidator() *validatorPkg.Validator {
	return validatorPkg.New(validatorPkg.Rule{
		Tag: "app_id",
		Func: func(fl validator.FieldLevel) bool {
			_, ok := expression.Platform(fl.Field().String())
			return ok
		},
		ErrorMsg: `must be an app ID with a platform, for example "1:1234567890:ios:abc123"`,
	})
}
