package lensmeta

import (
	"reflect"
)

// AsObject returns v as a map[string]any. Maps keyed by string of any value
// type are copied into a fresh map; everything else is rejected.
func AsObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// AsSlice returns v as a []any. Typed slices and arrays are copied element by
// element; byte slices are not treated as arrays.
func AsSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []byte, nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// TypeName names the JSON type of v for messages ("string", "number",
// "boolean", "object", "array", "null").
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float32, float64, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, interface{ Float64() (float64, error) }:
		return "number"
	}
	if _, ok := AsObject(v); ok {
		return "object"
	}
	if _, ok := AsSlice(v); ok {
		return "array"
	}
	return reflect.TypeOf(v).String()
}
