// FILE: lixenwraith/railtie/value.go
package railtie

import (
	"fmt"
	"reflect"
	"strconv"
)

// Value is the tagged result of a dynamic lookup: either a terminal value or a *Namespace.
// The zero Value holds nil.
type Value struct {
	raw any
}

// ValueOf wraps a raw value.
func ValueOf(raw any) Value {
	return Value{raw: raw}
}

// Raw returns the stored value as-is.
func (v Value) Raw() any {
	return v.raw
}

// IsNil reports whether the value is nil.
func (v Value) IsNil() bool {
	return v.raw == nil
}

// IsNamespace reports whether the value is a nested namespace.
func (v Value) IsNamespace() bool {
	_, ok := v.raw.(*Namespace)
	return ok
}

// Namespace returns the nested namespace, if the value is one.
func (v Value) Namespace() (*Namespace, bool) {
	ns, ok := v.raw.(*Namespace)
	return ns, ok
}

// Get reads key from a namespace value. Terminal values have no keys.
func (v Value) Get(key string) (Value, bool) {
	ns, ok := v.Namespace()
	if !ok {
		return Value{}, false
	}
	return ns.Get(key)
}

// String converts the value to a string.
// Attempts conversion from common types if the stored value isn't already a string.
func (v Value) String() (string, error) {
	val := v.raw
	if val == nil {
		return "", nil // Treat nil as empty string for convenience
	}

	if strVal, ok := val.(string); ok {
		return strVal, nil
	}

	switch t := val.(type) {
	case *Namespace:
		return "", fmt.Errorf("cannot convert namespace to string: %w", ErrNotNamespace)
	case fmt.Stringer:
		return t.String(), nil
	case []byte:
		return string(t), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	case error:
		return t.Error(), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string", val)
	}
}

// Int64 converts the value to an int64.
// Attempts conversion from numeric types, parsable strings, and booleans.
func (v Value) Int64() (int64, error) {
	val := v.raw
	if val == nil {
		return 0, fmt.Errorf("value is nil, cannot convert to int64")
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		maxInt64 := int64(^uint64(0) >> 1)
		if u > uint64(maxInt64) {
			return 0, fmt.Errorf("cannot convert unsigned integer %d (type %T) to int64: overflow", u, val)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return int64(rv.Float()), nil
	case reflect.String:
		s := rv.String()
		i, err := strconv.ParseInt(s, 0, 64) // base 0 accepts "0xFF"
		if err == nil {
			return i, nil
		}
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return int64(f), nil
		}
		return 0, fmt.Errorf("cannot convert string %q to int64: %w", s, err)
	case reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to int64", val)
}

// Bool converts the value to a bool.
// Numbers convert as 0=false, non-zero=true; strings go through strconv.ParseBool.
func (v Value) Bool() (bool, error) {
	val := v.raw
	if val == nil {
		return false, fmt.Errorf("value is nil, cannot convert to bool")
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		s := rv.String()
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false, fmt.Errorf("cannot convert string %q to bool: %w", s, err)
		}
		return b, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool", val)
}

// Float64 converts the value to a float64.
func (v Value) Float64() (float64, error) {
	val := v.raw
	if val == nil {
		return 0, fmt.Errorf("value is nil, cannot convert to float64")
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.String:
		s := rv.String()
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to float64: %w", s, err)
		}
		return f, nil
	case reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to float64", val)
}
