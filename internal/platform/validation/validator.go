// Package validation configures gin's validator and turns binding errors into field messages.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RiskProfiles is the accepted set for goal risk profiles.
var RiskProfiles = []string{"conservative", "moderate", "aggressive"}

var initOnce sync.Once

// Init makes validation errors report JSON field names and registers the
// "riskprofile" tag. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
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
		_ = v.RegisterValidation("riskprofile", func(fl validator.FieldLevel) bool {
			return IsRiskProfile(fl.Field().String())
		})
	})
}

// IsRiskProfile reports whether s names a known risk profile, ignoring case.
func IsRiskProfile(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, p := range RiskProfiles {
		if s == p {
			return true
		}
	}
	return false
}

// ToDetails converts binding errors into a map[field]message suitable for the error body.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return map[string]string{"payload": "request body is empty"}
	}

	var se *json.SyntaxError
	if errors.As(err, &se) {
		return map[string]string{"payload": "invalid json"}
	}
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		field := ute.Field
		if field == "" {
			field = "payload"
		}
		return map[string]string{field: "must be a " + ute.Type.String()}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", param)
		}
		return "must be at least " + param
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", param)
		}
		return "must be at most " + param
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be greater than or equal to " + param
	case "riskprofile":
		return "must be one of " + strings.Join(RiskProfiles, ", ")
	default:
		return "failed on " + fe.Tag()
	}
}

var emailValidator = validator.New()

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return emailValidator.Var(s, "required,email") == nil
}
