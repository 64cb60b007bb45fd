// Package validation decodes untrusted JSON payloads into creation and
// partial-update records. The owning user id is always supplied by the
// caller and a "userId" key in any payload is rejected. Unknown fields
// are rejected on both create and update payloads.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error is a validation failure with a human-readable description of
// every violation found.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func invalid(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// ErrMissingUser is returned when a creation record is requested without
// an authenticated user id.
var ErrMissingUser = errors.New("validation: missing authenticated user id")

const ownerKey = "userId"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// time.Parse accepts a single-digit hour for "15".
	v.RegisterAlias("hhmm", "len=5,datetime=15:04")
	return v
}

// decode strictly decodes raw into dst and validates it. It returns the
// keys present in the payload with a non-null value.
func decode(raw []byte, dst interface{}) (int, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || len(bytes.TrimSpace(raw)) == 0 {
			return 0, invalid("malformed JSON body")
		}
		return 0, invalid("request body must be a JSON object")
	}
	if _, ok := fields[ownerKey]; ok {
		return 0, invalid("%s must not be supplied in the request body", ownerKey)
	}
	// encoding/json matches field names case-insensitively.
	known := jsonNames(reflect.TypeOf(dst))
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !known[k] {
			return 0, invalid("unknown field %s", k)
		}
	}

	present := 0
	for _, v := range fields {
		if string(bytes.TrimSpace(v)) != "null" {
			present++
		}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return 0, decodeError(err)
	}

	return present, nil
}

// check runs struct validation and converts the result into an *Error.
func check(dst interface{}) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating payload: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return &Error{Message: strings.Join(msgs, "; ")}
}

func jsonNames(t reflect.Type) map[string]bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	names := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			names[name] = true
		}
	}
	return names
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return invalid("%s must be %s", typeErr.Field, jsonKind(typeErr.Type))
	}
	if name, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		return invalid("unknown field %s", strings.Trim(name, `"`))
	}
	return invalid("malformed JSON body")
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "an integer"
	case reflect.String:
		return "a string"
	default:
		return "a valid " + t.Kind().String()
	}
}

var layoutNames = map[string]string{
	"15:04":      "HH:MM",
	"2006-01-02": "YYYY-MM-DD",
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "hhmm":
		return field + " must use the HH:MM format"
	case "datetime":
		return fmt.Sprintf("%s must use the %s format", field, layoutNames[fe.Param()])
	case "min":
		if fe.Kind() == reflect.String {
			return field + " must not be empty"
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
