package util

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"courtside.dev/backend/internal/constant"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("metric", metric)
	validate.RegisterValidation("chart", chart)

	// report fields by their wire names
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})

	return validate
}

func metric(fl validator.FieldLevel) bool {
	return lo.Contains(constant.Metrics, fl.Field().String())
}

func chart(fl validator.FieldLevel) bool {
	return lo.Contains(constant.Charts, fl.Field().String())
}
