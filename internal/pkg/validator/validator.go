// Package validator validates structs by the "validate" tags and formats errors as human-readable messages.
package validator

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslation "github.com/go-playground/validator/v10/translations/en"

	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

// Rule is a custom validation tag, ErrorMsg follows the field name in the error message.
type Rule struct {
	Tag      string
	Func     validator.Func
	ErrorMsg string
}

type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func New(rules ...Rule) *Validator {
	validate := validator.New()

	enLocale := en.New()
	translator, found := ut.New(enLocale, enLocale).GetTranslator("en")
	if !found {
		panic(errors.New("en translator was not found"))
	}
	if err := enTranslation.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(errors.Errorf("translator was not registered: %w", err))
	}

	for _, rule := range rules {
		if err := validate.RegisterValidation(rule.Tag, rule.Func); err != nil {
			panic(err)
		}
		registerTranslation(validate, translator, rule)
	}

	// Use JSON field name in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Validator{validate: validate, translator: translator}
}

// Validate validates a struct, a pointer to a struct or a slice of structs.
func (v *Validator) Validate(ctx context.Context, value any) error {
	return v.ValidateCtx(ctx, value, "dive", "")
}

// ValidateCtx validates the value, fieldName prefixes paths in error messages.
func (v *Validator) ValidateCtx(ctx context.Context, value any, tag string, fieldName string) error {
	var err error
	kind := reflect.Indirect(reflect.ValueOf(value)).Kind()
	if kind == reflect.Struct {
		err = v.validate.StructCtx(ctx, value)
	} else {
		err = v.validate.VarCtx(ctx, value, tag)
	}

	var validationErrs validator.ValidationErrors
	switch {
	case err == nil:
		return nil
	case errors.As(err, &validationErrs):
		return v.processErrors(validationErrs, fieldName)
	default:
		return err
	}
}

func (v *Validator) processErrors(errs validator.ValidationErrors, fieldName string) error {
	result := errors.NewMultiError()
	for _, e := range errs {
		path := processNamespace(e.Namespace())
		if fieldName != "" {
			if path == "" {
				path = fieldName
			} else {
				path = fieldName + "." + path
			}
		}
		msg := strings.TrimPrefix(e.Translate(v.translator), e.Field()+" ")
		if path == "" {
			result.Append(errors.New(msg))
		} else {
			result.Append(errors.Errorf(`"%s" %s`, path, msg))
		}
	}
	return result.ErrorOrNil()
}

// processNamespace removes the struct name, the first part of the namespace.
func processNamespace(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return ""
	}
	return path
}

func registerTranslation(validate *validator.Validate, translator ut.Translator, rule Rule) {
	err := validate.RegisterTranslation(
		rule.Tag,
		translator,
		func(ut ut.Translator) error {
			return ut.Add(rule.Tag, fmt.Sprintf("{0} %s", rule.ErrorMsg), true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, err := ut.T(rule.Tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
	if err != nil {
		panic(err)
	}
}
