package utils

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// ToStringSlice converts a scalar or a slice/array of scalars into its string forms.
// Nil values, nil pointers and empty slices produce no strings.
func ToStringSlice(v any) []string {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return []string{string(rv.Bytes())}
		}
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if s, ok := ToString(rv.Index(i).Interface()); ok {
				out = append(out, s)
			}
		}
		return out
	}
	if s, ok := ToString(rv.Interface()); ok {
		return []string{s}
	}
	return nil
}

// ToString formats a scalar value. ok is false for nil pointers.
func ToString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case time.Time:
		return t.Format(time.RFC3339), true
	case fmt.Stringer:
		return t.String(), true
	case encoding.TextMarshaler:
		b, err := t.MarshalText()
		if err != nil {
			return "", false
		}
		return string(b), true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		return ToString(rv.Elem().Interface())
	}
	return fmt.Sprint(v), true
}

// Ptr returns a pointer to v, for optional request fields.
func Ptr[T any](v T) *T {
	return &v
}
