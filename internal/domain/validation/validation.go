// Package validation enforces required fields on form payloads using struct tags.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
)

// ErrInvalid is matched by every *Error.
var ErrInvalid = errors.New("validation failed")

// Error lists field-level problems keyed by the field's JSON path,
// e.g. "personal.email".
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return fmt.Sprintf("%s: %s", ErrInvalid, strings.Join(keys, ", "))
}

func (e *Error) Unwrap() error { return ErrInvalid }

// Field returns the message for name. name may be a full path or its last segment.
func (e *Error) Field(name string) string {
	if e == nil {
		return ""
	}
	if msg, ok := e.Fields[name]; ok {
		return msg
	}
	for k, msg := range e.Fields {
		if strings.HasSuffix(k, "."+name) {
			return msg
		}
	}
	return ""
}

// Required builds an Error for a single missing field.
func Required(field string) *Error {
	return &Error{Fields: map[string]string{field: "is required"}}
}

// Fields extracts the field map from err, or nil.
func Fields(err error) map[string]string {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

var std = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("filext", fileExt)
	return v
}

// Struct validates s and returns nil or an *Error.
func Struct(s any) error {
	err := std.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		ns := fe.Namespace()
		if _, rest, ok := strings.Cut(ns, "."); ok {
			ns = rest
		}
		out.Fields[ns] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Bool {
			return "must be accepted"
		}
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url", "http_url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "filext":
		return "must be a " + strings.ReplaceAll(fe.Param(), " ", " or ") + " file"
	default:
		return "is invalid"
	}
}

// fileExt accepts empty values and names ending in one of the space separated
// extensions given as the tag parameter.
func fileExt(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return true
	}
	name = cases.Fold().String(name)
	for _, ext := range strings.Fields(fl.Param()) {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
