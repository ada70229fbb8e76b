package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	govalidator "github.com/go-playground/validator/v10"
)

// RegisterTagNames makes binding failures report json field names instead
// of Go struct field names. Call once at startup.
func RegisterTagNames() {
	v, ok := binding.Validator.Engine().(*govalidator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FieldErrors flattens a binding failure into a field -> message map.
// Non-validator errors (malformed JSON, wrong types) map to a single
// "body" entry.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs govalidator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, e := range verrs {
			out[e.Field()] = messageFor(e)
		}
		return out
	}
	out["body"] = err.Error()
	return out
}

func messageFor(e govalidator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("The minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("The maximum length is %s", e.Param())
	case "gte":
		return fmt.Sprintf("Value should be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("Value should be less than or equal to %s", e.Param())
	case "email":
		return "Value must be a valid email address"
	case "e164":
		return "Invalid phone number format. Use E.164 format."
	case "datetime":
		return fmt.Sprintf("Value must be a date in %s format", e.Param())
	default:
		return "This field is invalid"
	}
}
