package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"backoffice/internal/apperr"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report form field names instead of Go field names.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(f.Name)
			}
			return name
		})
	})
	return validate
}

// Struct validates v and converts the first failure into an apperr.Invalid.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return apperr.InvalidErr(messageForTag(fe.Field(), fe.Tag(), fe.Param()))
	}
	return apperr.InvalidErr("The submitted form is invalid.")
}

func messageForTag(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "email":
		return fmt.Sprintf("%s must be a valid e-mail address.", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", field, param)
	case "gtefield":
		return fmt.Sprintf("%s must not be before %s.", field, snake(param))
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}

// snake turns a Go field name such as StartDate into start_date.
func snake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
