// FILE: lixenwraith/railtie/store.go
package railtie

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/lixenwraith/railtie/lifecycle"
)

// Store is the storage every Configuration view reads and writes. All views
// over one Store observe the same collections, which is how independently
// constructed extension configurations merge into one.
//
// A Store is meant to be populated during a sequential bootstrap; it does
// no locking of its own.
type Store struct {
	options map[string]any
	hooks   *lifecycle.Hooks
	logger  *slog.Logger

	eagerLoadNamespaces *List[EagerLoader]
	watchableFiles      *List[string]
	watchableDirs       *DirSet
	appMiddleware       *MiddlewareProxy
	appGenerators       *Generators
	toPrepareBlocks     *List[PrepareFunc]

	// number of to-prepare blocks already run
	prepared int
}

// StoreOption customizes a Store at construction.
type StoreOption func(*Store)

// WithLogger sets the logger used for debug records.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHooks sets the lifecycle engine hook registrations are forwarded to.
func WithHooks(hooks *lifecycle.Hooks) StoreOption {
	return func(s *Store) {
		if hooks != nil {
			s.hooks = hooks
		}
	}
}

// NewStore creates an isolated store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		options: make(map[string]any),
		hooks:   lifecycle.New(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	sharedStore *Store
	sharedOnce  sync.Once
)

// Shared returns the process-wide store, creating it on first use.
func Shared() *Store {
	sharedOnce.Do(func() {
		sharedStore = NewStore()
	})
	return sharedStore
}

// ResetShared drops the process-wide store. For tests only.
func ResetShared() {
	sharedOnce = sync.Once{}
	sharedStore = nil
}

// Hooks returns the lifecycle engine.
func (s *Store) Hooks() *lifecycle.Hooks {
	return s.hooks
}

// Logger returns the store logger.
func (s *Store) Logger() *slog.Logger {
	return s.logger
}

// EagerLoadNamespaces returns the modules to eager load.
func (s *Store) EagerLoadNamespaces() *List[EagerLoader] {
	if s.eagerLoadNamespaces == nil {
		s.eagerLoadNamespaces = &List[EagerLoader]{}
	}
	return s.eagerLoadNamespaces
}

// WatchableFiles returns the files watched for change.
func (s *Store) WatchableFiles() *List[string] {
	if s.watchableFiles == nil {
		s.watchableFiles = &List[string]{}
	}
	return s.watchableFiles
}

// WatchableDirs returns the directories watched for change, with their extensions.
func (s *Store) WatchableDirs() *DirSet {
	if s.watchableDirs == nil {
		s.watchableDirs = newDirSet()
	}
	return s.watchableDirs
}

// AppMiddleware returns the proxy collecting application middleware edits.
func (s *Store) AppMiddleware() *MiddlewareProxy {
	if s.appMiddleware == nil {
		s.appMiddleware = NewMiddlewareProxy()
	}
	return s.appMiddleware
}

// AppGenerators returns the generator defaults.
func (s *Store) AppGenerators() *Generators {
	if s.appGenerators == nil {
		s.appGenerators = NewGenerators()
	}
	return s.appGenerators
}

// ToPrepareBlocks returns the to-prepare callbacks.
func (s *Store) ToPrepareBlocks() *List[PrepareFunc] {
	if s.toPrepareBlocks == nil {
		s.toPrepareBlocks = &List[PrepareFunc]{}
	}
	return s.toPrepareBlocks
}

// drainToPrepare runs the to-prepare blocks not run before, in order.
// A block that fails is not marked and runs again on the next drain.
func (s *Store) drainToPrepare() error {
	blocks := s.ToPrepareBlocks().Items()
	for s.prepared < len(blocks) {
		if err := blocks[s.prepared](); err != nil {
			return err
		}
		s.prepared++
	}
	return nil
}

// SetLogger replaces the logger used for debug records. A nil logger is ignored.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Keys returns the option keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.options))
	for k := range s.options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Options exports the options as nested plain maps.
func (s *Store) Options() map[string]any {
	out := make(map[string]any, len(s.options))
	for k, v := range s.options {
		if ns, ok := v.(*Namespace); ok {
			out[k] = ns.ToMap()
			continue
		}
		out[k] = v
	}
	return out
}

func (s *Store) has(key string) bool {
	_, ok := s.options[key]
	return ok
}
