package compiler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

/*

Values in a filter are untyped text. Known job fields and declared attributes
carry a semantic type which decides how the text is read before it reaches
the query builder:

	decimal / number   float64
	boolean            bool, from a permissive truthy/falsy vocabulary
	timestamp          time.Time
	date               normalized ISO text, attribute values are stored as text
	string / enum      unchanged

*/

type FieldType int

const (
	StringField FieldType = iota
	DecimalField
	BooleanField
	TimestampField
	EnumField
)

func (t FieldType) String() string {
	switch t {
	case StringField:
		return "string"
	case DecimalField:
		return "decimal"
	case BooleanField:
		return "boolean"
	case TimestampField:
		return "timestamp"
	case EnumField:
		return "enum"
	default:
		return "unknown"
	}
}

// FieldTypes maps scalar field names to their semantic type. It is only
// consulted for coercion, names missing from it are still compared.
type FieldTypes map[string]FieldType

func (f FieldTypes) Lookup(name string) (FieldType, bool) {
	fieldType, ok := f[name]
	return fieldType, ok
}

// JobFieldTypes is the registry for the columns of the jobs table.
func JobFieldTypes() FieldTypes {
	return FieldTypes{
		"title":        StringField,
		"description":  StringField,
		"company_name": StringField,
		"salary_min":   DecimalField,
		"salary_max":   DecimalField,
		"is_remote":    BooleanField,
		"job_type":     EnumField,
		"status":       EnumField,
		"published_at": TimestampField,
		"created_at":   TimestampField,
		"updated_at":   TimestampField,
	}
}

type AttributeType int

const (
	StringAttribute AttributeType = iota
	NumberAttribute
	BooleanAttribute
	DateAttribute
)

func (t AttributeType) String() string {
	switch t {
	case StringAttribute:
		return "string"
	case NumberAttribute:
		return "number"
	case BooleanAttribute:
		return "boolean"
	case DateAttribute:
		return "date"
	default:
		return "unknown"
	}
}

// ParseAttributeType reads a declared attribute type. Anything unrecognized
// is treated as a string attribute.
func ParseAttributeType(declared string) AttributeType {
	switch strings.ToLower(declared) {
	case "number":
		return NumberAttribute
	case "boolean":
		return BooleanAttribute
	case "date":
		return DateAttribute
	default:
		return StringAttribute
	}
}

// Attribute is a dynamically declared job attribute.
type Attribute struct {
	ID   uint
	Name string
	Type AttributeType
}

//nolint:gochecknoglobals
var (
	TruthyValues = []string{"1", "true", "on", "yes"}
	FalsyValues  = []string{"0", "false", "off", "no"}
)

type CoercionError struct {
	// Subject names the field or attribute the value was compared with.
	Subject string
	Type    string
	Value   string
	Err     error
}

func (e *CoercionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid %s value %q for %s", e.Type, e.Value, e.Subject)
	}

	return fmt.Sprintf("invalid %s value %q for %s: %v", e.Type, e.Value, e.Subject, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

func parseDecimal(value string) (float64, error) {
	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}

	return number, nil
}

func parseBoolean(value string) (bool, error) {
	lower := strings.ToLower(value)

	for _, truthy := range TruthyValues {
		if lower == truthy {
			return true, nil
		}
	}

	for _, falsy := range FalsyValues {
		if lower == falsy {
			return false, nil
		}
	}

	return false, fmt.Errorf("expected one of %v or %v", TruthyValues, FalsyValues)
}

//nolint:gochecknoglobals
var timeParser = &now.Config{
	TimeLocation: time.UTC,
	TimeFormats:  append(append([]string{}, now.TimeFormats...), time.RFC3339Nano),
}

func parseTimestamp(value string) (time.Time, error) {
	return timeParser.Parse(value)
}

// Dates are kept as text in attribute rows, compare them in ISO form.
func formatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}

	return t.Format(time.DateTime)
}

// CoerceField converts a raw value for a field of the given type.
func CoerceField(field string, fieldType FieldType, value string) (any, error) {
	var (
		coerced any
		err     error
	)

	switch fieldType {
	case DecimalField:
		coerced, err = parseDecimal(value)
	case BooleanField:
		coerced, err = parseBoolean(value)
	case TimestampField:
		coerced, err = parseTimestamp(value)
	default:
		return value, nil
	}

	if err != nil {
		return nil, &CoercionError{Subject: field, Type: fieldType.String(), Value: value, Err: err}
	}

	return coerced, nil
}

// CoerceAttribute converts a raw value for an attribute of the given type.
func CoerceAttribute(attribute string, attributeType AttributeType, value string) (any, error) {
	var (
		coerced any
		err     error
	)

	switch attributeType {
	case NumberAttribute:
		coerced, err = parseDecimal(value)
	case BooleanAttribute:
		coerced, err = parseBoolean(value)
	case DateAttribute:
		var t time.Time
		if t, err = parseTimestamp(value); err == nil {
			coerced = formatDate(t)
		}
	default:
		return value, nil
	}

	if err != nil {
		return nil, &CoercionError{
			Subject: "attribute:" + attribute,
			Type:    attributeType.String(),
			Value:   value,
			Err:     err,
		}
	}

	return coerced, nil
}
