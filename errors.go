// FILE: lixenwraith/railtie/errors.go
package railtie

import "errors"

// MaxValueSize caps a single string value taken from the environment.
const MaxValueSize = 1024 * 1024

var (
	// ErrArity is returned by Invoke when the argument count does not fit the call shape
	ErrArity = errors.New("wrong number of arguments")
	// ErrInvalidKey is returned for empty or malformed option keys
	ErrInvalidKey = errors.New("invalid option key")
	// ErrKeyNotFound is returned by Require when the key is missing or nil
	ErrKeyNotFound = errors.New("key not found")
	// ErrNotNamespace is returned when a dotted path crosses a value that is not a namespace
	ErrNotNamespace = errors.New("not a namespace")
	// ErrNilCallback is returned when a nil lifecycle hook is registered
	ErrNilCallback = errors.New("nil callback")
	// ErrUnknownFormat is returned when a payload format cannot be determined
	ErrUnknownFormat = errors.New("unknown config format")
	// ErrValueSize is returned when an environment value exceeds MaxValueSize
	ErrValueSize = errors.New("value exceeds maximum size")
)
