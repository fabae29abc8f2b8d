// Package json wraps json-iterator with the standard library compatible configuration.
package json

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary // nolint: gochecknoglobals

func Encode(v any, pretty bool) ([]byte, error) {
	var data []byte
	var err error
	if pretty {
		data, err = api.MarshalIndent(v, "", "  ")
	} else {
		data, err = api.Marshal(v)
	}
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode JSON: "+err.Error())
	}
	return data, nil
}

func EncodeString(v any, pretty bool) (string, error) {
	data, err := Encode(v, pretty)
	return string(data), err
}

func MustEncodeString(v any, pretty bool) string {
	str, err := EncodeString(v, pretty)
	if err != nil {
		panic(err)
	}
	return str
}

func Decode(data []byte, v any) error {
	if err := api.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, "cannot decode JSON: "+err.Error())
	}
	return nil
}

func DecodeString(data string, v any) error {
	return Decode([]byte(data), v)
}

// Valid reports whether the string is a syntactically valid JSON document.
func Valid(data string) bool {
	return api.Valid([]byte(data))
}
