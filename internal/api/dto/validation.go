package dto

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kingrain94/saas-platform-api/pkg/optional"
)

var (
	codePattern  = regexp.MustCompile(`^[A-Z0-9-]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

// RegisterValidations installs the custom rules used in binding tags and
// teaches v to look inside optional.Field values. Field names in errors are
// reported by their JSON names.
func RegisterValidations(v *validator.Validate) {
	_ = v.RegisterValidation("code", func(fl validator.FieldLevel) bool {
		return codePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	v.RegisterCustomTypeFunc(optionalValue,
		optional.Field[string]{},
		optional.Field[int]{},
		optional.Field[bool]{},
		optional.Field[decimal.Decimal]{},
		optional.Field[uuid.UUID]{},
	)

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
}

func optionalValue(field reflect.Value) any {
	if f, ok := field.Interface().(interface{ ValidationValue() any }); ok {
		return f.ValidationValue()
	}
	return nil
}

func IsValidCode(code string) bool {
	return codePattern.MatchString(code)
}
