// FILE: lixenwraith/railtie/namespace.go
package railtie

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Namespace is a nested option container. Plain maps assigned into it are
// promoted to child namespaces so chained access works at any depth.
//
// Reading a missing key does not create it; only the top-level Configuration
// vivifies unknown keys.
type Namespace struct {
	values map[string]any
}

// NewNamespace returns an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{values: make(map[string]any)}
}

// Promote builds a namespace from src, converting every nested
// map[string]any into a child namespace.
func Promote(src map[string]any) *Namespace {
	ns := NewNamespace()
	for key, value := range src {
		ns.Set(key, value)
	}
	return ns
}

// promote is the single conversion point for values entering a namespace or the store.
// Any map keyed by a string kind becomes a namespace, whatever its value type.
func promote(value any) any {
	switch m := value.(type) {
	case nil:
		return nil
	case *Namespace:
		return m
	case map[string]any:
		return Promote(m)
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return value
	}
	ns := NewNamespace()
	iter := rv.MapRange()
	for iter.Next() {
		ns.Set(iter.Key().String(), iter.Value().Interface())
	}
	return ns
}

// Set stores value under key and returns the stored value.
func (n *Namespace) Set(key string, value any) Value {
	stored := promote(value)
	n.values[key] = stored
	return Value{raw: stored}
}

// Get returns the value under key and whether it exists.
func (n *Namespace) Get(key string) (Value, bool) {
	v, ok := n.values[key]
	return Value{raw: v}, ok
}

// Fetch returns the value under key, or the zero Value if it is missing.
func (n *Namespace) Fetch(key string) Value {
	return Value{raw: n.values[key]}
}

// Require returns the value under key, failing when it is missing or nil.
func (n *Namespace) Require(key string) (Value, error) {
	v, ok := n.values[key]
	if !ok || v == nil {
		return Value{}, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return Value{raw: v}, nil
}

// Has reports whether key is set.
func (n *Namespace) Has(key string) bool {
	_, ok := n.values[key]
	return ok
}

// Delete removes key.
func (n *Namespace) Delete(key string) {
	delete(n.values, key)
}

// Len returns the number of keys.
func (n *Namespace) Len() int {
	return len(n.values)
}

// Keys returns the keys in sorted order.
func (n *Namespace) Keys() []string {
	keys := make([]string, 0, len(n.values))
	for k := range n.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Invoke applies an attribute-style call. A name ending in "=" with one
// argument assigns; a bare name with no arguments reads, returning the zero
// Value for unknown keys.
func (n *Namespace) Invoke(name string, args ...any) (Value, error) {
	key, assign, err := parseCall(name, args)
	if err != nil {
		return Value{}, err
	}
	if assign {
		return n.Set(key, args[0]), nil
	}
	return n.Fetch(key), nil
}

// Lookup reads a dot-separated path below this namespace without creating anything.
func (n *Namespace) Lookup(path string) (Value, bool) {
	return lookupPath(n, strings.Split(path, "."))
}

// ToMap exports the namespace as nested plain maps.
func (n *Namespace) ToMap() map[string]any {
	out := make(map[string]any, len(n.values))
	for k, v := range n.values {
		if child, ok := v.(*Namespace); ok {
			out[k] = child.ToMap()
			continue
		}
		out[k] = v
	}
	return out
}

// lookupPath walks segments through nested namespaces.
func lookupPath(ns *Namespace, segments []string) (Value, bool) {
	current := ns
	for i, segment := range segments {
		v, ok := current.values[segment]
		if !ok {
			return Value{}, false
		}
		if i == len(segments)-1 {
			return Value{raw: v}, true
		}
		child, isNS := v.(*Namespace)
		if !isNS {
			return Value{}, false
		}
		current = child
	}
	return Value{}, false
}

// parseCall splits an attribute-style call into its key and shape.
func parseCall(name string, args []any) (key string, assign bool, err error) {
	if strings.HasSuffix(name, "=") {
		key = strings.TrimSuffix(name, "=")
		assign = true
		if len(args) != 1 {
			return "", false, fmt.Errorf("%w for %s (given %d, expected 1)", ErrArity, name, len(args))
		}
	} else {
		key = name
		if len(args) != 0 {
			return "", false, fmt.Errorf("%w for %s (given %d, expected 0)", ErrArity, name, len(args))
		}
	}

	if !isValidKeySegment(key) {
		return "", false, fmt.Errorf("%w: %q", ErrInvalidKey, name)
	}
	return key, assign, nil
}
