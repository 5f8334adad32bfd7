package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"exceptionlogger/src/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// DecodeJSONBody decodes the request body into dest and validates its struct tags.
// Any failure is returned as a validation error.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		details := map[string]string{"body": err.Error()}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			details = map[string]string{typeErr.Field: fmt.Sprintf("must be a %s", typeErr.Type.Kind())}
		}
		return apperror.Wrap(apperror.CodeValidation, err, "invalid request body").WithDetails(details)
	}

	return Struct(dest)
}

// Struct runs the `validate` tags of dest.
func Struct(dest any) error {
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *apperror.Error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return apperror.Wrap(apperror.CodeValidation, err, "validation failed").WithDetails(details)
	}
	return apperror.Wrap(apperror.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	return "is invalid"
}

// RequiredQuery returns the raw value of a query parameter that must be present.
func RequiredQuery(r *http.Request, key string) (string, error) {
	query := r.URL.Query()
	if !query.Has(key) {
		return "", missingQuery(key)
	}
	return query.Get(key), nil
}

// RequiredQueryInt64 returns a query parameter that must be present and integral.
func RequiredQueryInt64(r *http.Request, key string) (int64, error) {
	raw, err := RequiredQuery(r, key)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, apperror.Wrap(apperror.CodeValidation, err, fmt.Sprintf("query parameter %s must be an integer", key)).
			WithDetails(map[string]string{key: "must be an integer"})
	}
	return value, nil
}

func missingQuery(key string) *apperror.Error {
	return apperror.New(apperror.CodeValidation, fmt.Sprintf("missing required query parameter %s", key)).
		WithDetails(map[string]string{key: "is required"})
}
