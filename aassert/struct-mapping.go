package aassert

import (
	"fmt"
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// NumFields asserts that the given struct has the expected number of exported fields.
// Exported fields of nested and embedded structs are counted as well.
//
// Use it to get notified when a struct, that is mapped by hand to another layer, changes.
func NumFields(t *testing.T, expected int, object any, msgAndArgs ...any) bool {
	t.Helper()

	elem, ok := structValue(object)
	if !ok {
		return assert.Fail(t, "invalid argument, it has to be a struct", msgAndArgs...)
	}

	if fields := countFields(elem.Type()); fields != expected {
		t.Log("The number of exported fields of `" + elem.Type().String() + "` changed.")
		t.Log("Ensure all functions mapping this struct and all test data are still correct,")
		t.Log("then update the expected count in `" + t.Name() + "`.")

		return assert.Fail(t, fmt.Sprintf("struct changed, it has: %d fields, expected: %d", fields, expected), msgAndArgs...)
	}

	return true
}

// SameFields asserts that both structs have exported fields with the same names,
// independent of their order and type.
func SameFields(t *testing.T, expected any, actual any, msgAndArgs ...any) bool {
	t.Helper()

	e, ok := structValue(expected)
	if !ok {
		return assert.Fail(t, "invalid argument, expected has to be a struct", msgAndArgs...)
	}

	a, ok := structValue(actual)
	if !ok {
		return assert.Fail(t, "invalid argument, actual has to be a struct", msgAndArgs...)
	}

	return assert.Equal(t, fieldNames(e.Type()), fieldNames(a.Type()), msgAndArgs...)
}

func structValue(object any) (reflect.Value, bool) {
	if object == nil {
		return reflect.Value{}, false
	}

	elem := reflect.Indirect(reflect.ValueOf(object))
	if elem.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	return elem, true
}

func countFields(typ reflect.Type) int {
	switch typ.Kind() { //nolint:exhaustive // only container types can hold fields
	case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Map:
		return countFields(typ.Elem())
	case reflect.Struct:
	default:
		return 0
	}

	var fields int

	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		fields++
		fields += countFields(field.Type)
	}

	return fields
}

func fieldNames(typ reflect.Type) []string {
	names := []string{}

	for i := range typ.NumField() {
		if typ.Field(i).IsExported() {
			names = append(names, typ.Field(i).Name)
		}
	}

	slices.Sort(names)

	return names
}
