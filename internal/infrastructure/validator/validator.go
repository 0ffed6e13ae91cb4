package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/peiwenliu/sharecircle/internal/domain/apperr"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
	usecasecontract "github.com/peiwenliu/sharecircle/internal/usecase/contract"
)

// AppValidator validates entity structs before they reach the database.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the event and material category
// checks registered. Field names in error messages come from bson tags so
// they match the stored document fields.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("bson"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	v.RegisterValidation("eventcategory", eventCategoryFL)
	v.RegisterValidation("materialcategory", materialCategoryFL)
	return &AppValidator{validate: v}
}

// Struct validates s and reports the first failing field as a validation
// error.
func (av *AppValidator) Struct(s interface{}) error {
	err := av.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors, ok := err.(validator.ValidationErrors); ok {
		verrs = errors
	}
	if len(verrs) == 0 {
		return apperr.Wrap(apperr.KindValidation, "invalid input", err)
	}
	first := verrs[0]
	return apperr.Wrap(apperr.KindValidation, fmt.Sprintf("invalid value for field %q", first.Field()), err)
}

// eventCategoryFL accepts only the known event categories.
func eventCategoryFL(fl validator.FieldLevel) bool {
	return containsString(entity.EventCategories, fl.Field().String())
}

// materialCategoryFL accepts only the known material categories.
func materialCategoryFL(fl validator.FieldLevel) bool {
	return containsString(entity.MaterialCategories, fl.Field().String())
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
