package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"todos/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var (
	errEmptyBody    = errors.New("request body is required")
	errTrailingData = errors.New("request body must contain a single JSON object")
)

func registerNotBlankValidation(field val.FieldLevel) bool {
	value := field.Field()

	if value.Kind() != reflect.String {
		return false
	}

	return strings.TrimSpace(value.String()) != ""
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report fields by their JSON name so messages match the request payload.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] //nolint:mnd
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	if err := validate.RegisterValidation("notblank", registerNotBlankValidation); err != nil {
		panic(err)
	}
}

// Validate decodes JSON from r into data and then validates the struct tags.
// Decoding and validation problems are both reported as 422 failures.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		if errors.Is(err, io.EOF) {
			err = errEmptyBody
		}

		return failure.Unprocessable(fmt.Sprintf("failed to decode request body: %s", err)) //nolint:wrapcheck
	}

	// Only whitespace may follow the object.
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return failure.Unprocessable(errTrailingData.Error()) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.Unprocessable(message(err)) //nolint:wrapcheck
	}

	return nil
}
