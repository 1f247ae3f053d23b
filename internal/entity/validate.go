package entity

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	validate.RegisterValidation("age_restriction", func(fl validator.FieldLevel) bool {
		return AgeRestriction(fl.Field().Int()).Valid()
	})
	validate.RegisterValidation("edition_type", func(fl validator.FieldLevel) bool {
		return EditionType(fl.Field().Int()).Valid()
	})
}

// decimalValue lets numeric tags such as gte compare decimal fields.
func decimalValue(v reflect.Value) interface{} {
	d, ok := v.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	f, _ := d.Float64()
	return f
}

// Validate checks the struct tags of a Book, Author, Category or BookCategory.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		case "gte", "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be %s %s", fe.Field(), fe.Tag(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return fmt.Errorf("invalid %s: %s", reflect.Indirect(reflect.ValueOf(v)).Type().Name(), strings.Join(msgs, "; "))
}
