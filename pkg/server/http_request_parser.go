package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"

	"github.com/jobboard/jobfilter/pkg/contract"
)

type HTTPRequestParser struct {
	validator *validator.Validate
}

func NewHTTPRequestParser() (*HTTPRequestParser, error) {
	validator, err := NewValidator()
	if err != nil {
		return nil, err
	}

	return &HTTPRequestParser{
		validator: validator,
	}, nil
}

func (p *HTTPRequestParser) ParseBody(ctx *fiber.Ctx, input interface{}) *contract.Error {
	if err := ctx.BodyParser(input); err != nil {
		var unmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &unmarshalTypeError) {
			result := gjson.GetBytes(ctx.Body(), unmarshalTypeError.Field)

			value := result.Str
			if value == "" {
				value = result.Raw
			}

			return contract.NewError(
				contract.InvalidParameterValue,
				fmt.Sprintf("Invalid value %s for parameter '%s' supplied", value, unmarshalTypeError.Field),
			)
		}

		return contract.NewError(contract.BadRequest, err.Error())
	}

	if err := p.validator.Struct(input); err != nil {
		return newErrorFromValidationError(err)
	}

	return nil
}

func (p *HTTPRequestParser) ParseQuery(ctx *fiber.Ctx, input interface{}) *contract.Error {
	if err := ctx.QueryParser(input); err != nil {
		return contract.NewError(contract.BadRequest, err.Error())
	}

	if err := p.validator.Struct(input); err != nil {
		return newErrorFromValidationError(err)
	}

	return nil
}

func dereference(value interface{}) interface{} {
	valueOf := reflect.ValueOf(value)
	if valueOf.Kind() == reflect.Ptr {
		if valueOf.IsNil() {
			return nil
		}

		return valueOf.Elem().Interface()
	}

	return value
}

const maxReportedValueLength = 64

func abbreviate(value interface{}) string {
	text := fmt.Sprintf("%v", value)
	if len(text) > maxReportedValueLength {
		return text[:maxReportedValueLength] + "..."
	}

	return text
}

func newErrorFromValidationError(err error) *contract.Error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return contract.NewError(contract.InternalError, err.Error())
	}

	messages := make([]string, 0, len(validationErrors))

	for _, err := range validationErrors {
		field := err.Field()
		value := abbreviate(dereference(err.Value()))

		var message string

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("Missing value for required parameter '%s'", field)
		case "max":
			message = fmt.Sprintf("Parameter '%s' exceeds the maximum length of %s", field, err.Param())
		case "filterSyntax":
			message = fmt.Sprintf("Invalid value %q for parameter '%s', filters must be printable text", value, field)
		default:
			message = fmt.Sprintf("Invalid value %v for parameter '%s' supplied", value, field)
		}

		messages = append(messages, message)
	}

	return contract.NewError(contract.InvalidParameterValue, strings.Join(messages, ", "))
}
