// FILE: lixenwraith/railtie/configuration.go
package railtie

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/railtie/lifecycle"
)

// Configuration is one extension's view of a Store. Any number of views can
// exist; they all read and write the same options and collections.
type Configuration struct {
	name  string
	store *Store
}

// New creates a view over the process-wide store.
func New(name string) *Configuration {
	return NewWithStore(name, Shared())
}

// NewWithStore creates a view over store.
func NewWithStore(name string, store *Store) *Configuration {
	if store == nil {
		store = Shared()
	}
	return &Configuration{name: name, store: store}
}

// EagerLoadNamespaces returns the eager-load list of the process-wide store.
func EagerLoadNamespaces() *List[EagerLoader] {
	return Shared().EagerLoadNamespaces()
}

// Name returns the extension name this view was created for.
func (c *Configuration) Name() string {
	return c.name
}

// Store returns the backing store.
func (c *Configuration) Store() *Store {
	return c.store
}

// EagerLoadNamespaces returns the modules eager loaded when eager loading is on.
func (c *Configuration) EagerLoadNamespaces() *List[EagerLoader] {
	return c.store.EagerLoadNamespaces()
}

// WatchableFiles returns the files watched for change.
func (c *Configuration) WatchableFiles() *List[string] {
	return c.store.WatchableFiles()
}

// WatchableDirs returns the directories watched for change. Each directory
// maps to the file extensions matched inside it.
func (c *Configuration) WatchableDirs() *DirSet {
	return c.store.WatchableDirs()
}

// AppMiddleware returns the proxy for editing the application's middleware.
// Recorded edits are replayed once the application stack exists.
func (c *Configuration) AppMiddleware() *MiddlewareProxy {
	return c.store.AppMiddleware()
}

// AppGenerators returns the generator defaults, first calling each fn with them.
func (c *Configuration) AppGenerators(fns ...func(*Generators)) *Generators {
	g := c.store.AppGenerators()
	for _, fn := range fns {
		if fn != nil {
			fn(g)
		}
	}
	return g
}

// BeforeConfiguration registers the first hook to run, before any initializer.
func (c *Configuration) BeforeConfiguration(fn lifecycle.HookFunc) error {
	return c.onLoad(lifecycle.BeforeConfiguration, fn)
}

// BeforeInitialize registers a hook run before frameworks initialize.
func (c *Configuration) BeforeInitialize(fn lifecycle.HookFunc) error {
	return c.onLoad(lifecycle.BeforeInitialize, fn)
}

// BeforeEagerLoad registers a hook that runs only when eager loading is enabled.
func (c *Configuration) BeforeEagerLoad(fn lifecycle.HookFunc) error {
	return c.onLoad(lifecycle.BeforeEagerLoad, fn)
}

// AfterInitialize registers the last hook to run, after frameworks initialize.
func (c *Configuration) AfterInitialize(fn lifecycle.HookFunc) error {
	return c.onLoad(lifecycle.AfterInitialize, fn)
}

func (c *Configuration) onLoad(phase lifecycle.Phase, fn lifecycle.HookFunc) error {
	if fn == nil {
		return fmt.Errorf("%w: %s", ErrNilCallback, phase)
	}
	c.store.logger.Debug("registering load hook", "railtie", c.name, "phase", phase.String())
	return c.store.hooks.OnLoad(phase, fn)
}

// ToPrepareBlocks returns the callbacks registered with ToPrepare.
func (c *Configuration) ToPrepareBlocks() *List[PrepareFunc] {
	return c.store.ToPrepareBlocks()
}

// ToPrepare queues fn to run before after_initialize hooks. A nil fn is ignored.
func (c *Configuration) ToPrepare(fn PrepareFunc) {
	if fn == nil {
		return
	}
	c.store.ToPrepareBlocks().Append(fn)
}

// RespondsTo reports whether name is a method of Configuration or an existing
// option key. Methods match by Go name ("WatchableFiles") or by snake_case
// accessor name ("watchable_files").
func (c *Configuration) RespondsTo(name string) bool {
	t := reflect.TypeOf(c)
	if _, ok := t.MethodByName(name); ok {
		return true
	}
	if strings.Contains(name, "_") {
		if _, ok := t.MethodByName(camelize(name)); ok {
			return true
		}
	}
	return c.store.has(name)
}

// Get returns the option stored under name. An unknown name gets an empty
// namespace stored under it, so chained writes never fail. A name that is not
// a valid option key (see Invoke) is never stored and reads as the zero Value.
func (c *Configuration) Get(name string) Value {
	if v, ok := c.store.options[name]; ok {
		return Value{raw: v}
	}
	if !isValidKeySegment(name) {
		c.store.logger.Warn("ignoring invalid option key", "railtie", c.name, "key", name)
		return Value{}
	}
	ns := NewNamespace()
	c.store.options[name] = ns
	c.store.logger.Debug("created option namespace", "railtie", c.name, "key", name)
	return Value{raw: ns}
}

// Set stores value under name, promoting plain maps to namespaces, and
// returns the stored value. An invalid key is not stored and the zero Value
// is returned; use SetPath or Invoke to get the error instead.
func (c *Configuration) Set(name string, value any) Value {
	if !isValidKeySegment(name) {
		c.store.logger.Warn("ignoring invalid option key", "railtie", c.name, "key", name)
		return Value{}
	}
	stored := promote(value)
	c.store.options[name] = stored
	return Value{raw: stored}
}

// Namespace returns the namespace under name, creating it when the name is
// unknown. It reports false if name holds a terminal value.
func (c *Configuration) Namespace(name string) (*Namespace, bool) {
	return c.Get(name).Namespace()
}

// Invoke applies an attribute-style call: "key=" with one argument assigns,
// "key" with none reads. Any other argument count is an error.
func (c *Configuration) Invoke(name string, args ...any) (Value, error) {
	key, assign, err := parseCall(name, args)
	if err != nil {
		return Value{}, err
	}
	if assign {
		return c.Set(key, args[0]), nil
	}
	return c.Get(key), nil
}

// Lookup reads a dot-separated option path without creating anything.
func (c *Configuration) Lookup(path string) (Value, bool) {
	segments := strings.Split(path, ".")
	root, ok := c.store.options[segments[0]]
	if !ok {
		return Value{}, false
	}
	if len(segments) == 1 {
		return Value{raw: root}, true
	}
	ns, isNS := root.(*Namespace)
	if !isNS {
		return Value{}, false
	}
	return lookupPath(ns, segments[1:])
}

// SetPath assigns value at a dot-separated path. The first segment is
// created on demand like Get; deeper segments must already be namespaces.
func (c *Configuration) SetPath(path string, value any) error {
	segments := strings.Split(path, ".")
	for _, segment := range segments {
		if !isValidKeySegment(segment) {
			return fmt.Errorf("%w: %q", ErrInvalidKey, path)
		}
	}

	if len(segments) == 1 {
		c.Set(segments[0], value)
		return nil
	}

	current, ok := c.Namespace(segments[0])
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotNamespace, segments[0])
	}
	for i, segment := range segments[1 : len(segments)-1] {
		next, ok := current.Fetch(segment).Namespace()
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotNamespace, strings.Join(segments[:i+2], "."))
		}
		current = next
	}
	current.Set(segments[len(segments)-1], value)
	return nil
}
