package server

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"
)

// validateFilterSyntax rejects control characters other than the whitespace
// the filter tokenizer separates words with.
func validateFilterSyntax(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), func(r rune) bool {
		return unicode.IsControl(r) && !unicode.IsSpace(r)
	}) == -1
}

func NewValidator() (*validator.Validate, error) {
	validate := validator.New()

	// Report parameters the way clients spell them.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strcase.ToSnake(field.Name)
	})

	if err := validate.RegisterValidation("filterSyntax", validateFilterSyntax); err != nil {
		return nil, fmt.Errorf("validation registration for 'filterSyntax' failed: %w", err)
	}

	return validate, nil
}
