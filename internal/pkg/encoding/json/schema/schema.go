// Package schema validates the remote config document before it is written.
package schema

import (
	"bytes"
	_ "embed"
	"sort"
	"strings"
	"sync"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/keboola/remote-config-modifier/internal/pkg/encoding/json"
	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

// pseudoSchemaFile - the embedded schema is registered as this resource.
const pseudoSchemaFile = "file:///remote_config.schema.json"

//go:embed remote_config.schema.json
var documentSchema []byte

var compiled = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return compileSchema(documentSchema)
})

type ValidationError struct {
	message string
}

type FieldValidationError struct {
	path    string
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func (e *FieldValidationError) Error() string {
	return `"` + e.path + `": ` + e.message
}

func (e *FieldValidationError) Path() string {
	return e.path
}

// ValidateDocument checks the document against the limits of the remote config API.
func ValidateDocument(cfg *model.RemoteConfig) error {
	content, err := json.Encode(cfg, false)
	if err != nil {
		return err
	}
	return ValidateContent(content)
}

func ValidateContent(content []byte) error {
	schema, err := compiled()
	if err != nil {
		return errors.PrefixError(err, "cannot compile remote config schema")
	}

	document := orderedmap.New()
	if err := json.Decode(content, &document); err != nil {
		return err
	}

	err = schema.Validate(document.ToMap())
	validationErrors := &jsonschema.ValidationError{}
	if errors.As(err, &validationErrors) {
		return processErrors(validationErrors.Causes)
	} else if err != nil {
		return err
	}
	return nil
}

func processErrors(errs []*jsonschema.ValidationError) error {
	sort.SliceStable(errs, func(i, j int) bool {
		return errs[i].InstanceLocation < errs[j].InstanceLocation
	})

	docErrs := errors.NewMultiError()
	for _, e := range errs {
		path := strings.TrimLeft(e.InstanceLocation, "/")
		path = strings.ReplaceAll(path, "/", ".")
		msg := strings.ReplaceAll(strings.ReplaceAll(e.Message, `'`, `"`), `n"t`, `n't`)

		switch {
		case len(e.Causes) > 0:
			if err := processErrors(e.Causes); err != nil {
				docErrs.Append(err)
			}
		case path == "":
			docErrs.Append(&ValidationError{message: msg})
		default:
			docErrs.Append(&FieldValidationError{path: path, message: msg})
		}
	}
	return docErrs.ErrorOrNil()
}

func compileSchema(s []byte) (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(pseudoSchemaFile, bytes.NewReader(s)); err != nil {
		return nil, err
	}
	return c.Compile(pseudoSchemaFile)
}
