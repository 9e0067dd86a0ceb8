package pave

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedFieldType = errors.New("unsupported field type")
	ErrNotAListField        = errors.New("field cannot hold multiple values")
)

///////////////////////////////////////////////////////////////////////////////
// Helpers
///////////////////////////////////////////////////////////////////////////////

// setFieldValue converts a single bound value into field.
//
// Currently supports:
//   - uuid.UUID
//   - encoding.TextUnmarshaler (every field value object)
//   - string, int, uint, float and bool kinds
//   - pointers to any of the above, allocated on demand
//   - list fields, which receive value as their only element
//
// field is left untouched on error.
func setFieldValue(field reflect.Value, value string) error {
	if field.Kind() == reflect.Ptr {
		elem := reflect.New(field.Type().Elem())
		if err := setFieldValue(elem.Elem(), value); err != nil {
			return err
		}
		field.Set(elem)
		return nil
	}

	if field.Type() == UUIDType {
		return setUUIDValue(field, value)
	}

	if unmarshaler, ok := textUnmarshaler(field); ok {
		return unmarshaler.UnmarshalText([]byte(value))
	}

	if isListField(field) {
		return setFieldValues(field, []string{value})
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setIntValue(field, value)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return setUintValue(field, value)
	case reflect.Float32, reflect.Float64:
		return setFloatValue(field, value)
	case reflect.Bool:
		return setBoolValue(field, value)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFieldType, field.Type())
	}
}

// setFieldValues converts every value of a list binding into field.
//
// Supports TextListUnmarshaler implementations, []string, slices of
// TextUnmarshaler elements, and pointers to those.
func setFieldValues(field reflect.Value, values []string) error {
	if field.Kind() == reflect.Ptr {
		elem := reflect.New(field.Type().Elem())
		if err := setFieldValues(elem.Elem(), values); err != nil {
			return err
		}
		field.Set(elem)
		return nil
	}

	if field.CanAddr() {
		if lu, ok := field.Addr().Interface().(TextListUnmarshaler); ok {
			return lu.UnmarshalTextList(values)
		}
	}

	if field.Kind() != reflect.Slice {
		return fmt.Errorf("%w: %s", ErrNotAListField, field.Type())
	}

	if field.Type() == StringSliceType {
		field.Set(reflect.ValueOf(slices.Clone(values)))
		return nil
	}

	out := reflect.MakeSlice(field.Type(), len(values), len(values))
	for i, v := range values {
		if err := setFieldValue(out.Index(i), v); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	field.Set(out)
	return nil
}

func isListField(field reflect.Value) bool {
	if field.Kind() == reflect.Slice {
		return true
	}
	return field.CanAddr() && field.Addr().Type().Implements(TextListUnmarshalType)
}

func textUnmarshaler(field reflect.Value) (encoding.TextUnmarshaler, bool) {
	if !field.CanAddr() {
		return nil, false
	}
	u, ok := field.Addr().Interface().(encoding.TextUnmarshaler)
	return u, ok
}

func setUUIDValue(field reflect.Value, value string) error {
	uuidValue, err := uuid.Parse(value)
	if err != nil {
		return fmt.Errorf("error converting value to UUID: %w", err)
	}
	field.Set(reflect.ValueOf(uuidValue))
	return nil
}

// setIntValue sets integer field values with overflow checking
func setIntValue(field reflect.Value, value string) error {
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("error converting value to int: %w", err)
	}

	if field.OverflowInt(intValue) {
		return fmt.Errorf("value %d overflows %s", intValue, field.Type())
	}

	field.SetInt(intValue)
	return nil
}

// setUintValue sets unsigned integer field values with overflow checking
func setUintValue(field reflect.Value, value string) error {
	uintValue, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fmt.Errorf("error converting value to uint: %w", err)
	}

	if field.OverflowUint(uintValue) {
		return fmt.Errorf("value %d overflows %s", uintValue, field.Type())
	}

	field.SetUint(uintValue)
	return nil
}

func setFloatValue(field reflect.Value, value string) error {
	floatValue, err := strconv.ParseFloat(value, field.Type().Bits())
	if err != nil {
		return fmt.Errorf("error converting value to float: %w", err)
	}

	field.SetFloat(floatValue)
	return nil
}

func setBoolValue(field reflect.Value, value string) error {
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("error converting value to bool: %w", err)
	}
	field.SetBool(boolValue)
	return nil
}

// zeroValue resets the struct dest points at, unexported fields included.
func zeroValue(dest any) error {
	value := reflect.ValueOf(dest)
	if value.Kind() != reflect.Ptr || value.IsNil() {
		return fmt.Errorf("cannot invalidate a non ptr or nil value")
	}
	elem := value.Elem()
	elem.Set(reflect.Zero(elem.Type()))
	return nil
}
