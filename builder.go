// FILE: lixenwraith/railtie/builder.go
package railtie

import (
	"fmt"
	"log/slog"
)

// ValidatorFunc validates a built Configuration.
// It receives the fully populated view and should return an error if validation fails.
type ValidatorFunc func(c *Configuration) error

type payload struct {
	data   []byte
	format Format
}

// Builder provides a fluent interface for building an extension's configuration
type Builder struct {
	name       string
	store      *Store
	logger     *slog.Logger
	defaults   map[string]any
	payloads   []payload
	envPrefix  string
	useEnv     bool
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a new configuration builder over the process-wide store
func NewBuilder() *Builder {
	return &Builder{
		validators: make([]ValidatorFunc, 0),
	}
}

// WithName sets the extension name of the view
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithStore builds the view over store instead of the process-wide store
func (b *Builder) WithStore(store *Store) *Builder {
	b.store = store
	return b
}

// WithLogger sets the logger of the store the view is built over, the
// process-wide store unless WithStore is used.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithDefaults sets options assigned only where the store has no value yet
func (b *Builder) WithDefaults(defaults map[string]any) *Builder {
	b.defaults = defaults
	return b
}

// WithData adds a serialized payload decoded after defaults, in call order
func (b *Builder) WithData(data []byte, format Format) *Builder {
	b.payloads = append(b.payloads, payload{data: data, format: format})
	return b
}

// WithFormat adds a payload whose format is given by name or file extension
func (b *Builder) WithFormat(data []byte, format string) *Builder {
	f, err := ParseFormat(format)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	return b.WithData(data, f)
}

// WithEnvPrefix enables environment overrides with the given prefix
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.envPrefix = prefix
	b.useEnv = true
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the Configuration with all specified options
func (b *Builder) Build() (*Configuration, error) {
	if b.err != nil {
		return nil, b.err
	}

	store := b.store
	if store == nil {
		store = Shared()
	}
	store.SetLogger(b.logger)
	cfg := NewWithStore(b.name, store)

	for key := range b.defaults {
		if !isValidKeySegment(key) {
			return nil, fmt.Errorf("invalid default: %w: %q", ErrInvalidKey, key)
		}
	}
	for key, value := range b.defaults {
		if !store.has(key) {
			cfg.Set(key, value)
		}
	}

	for i, p := range b.payloads {
		if err := cfg.Decode(p.data, p.format); err != nil {
			return nil, fmt.Errorf("failed to decode payload #%d: %w", i, err)
		}
	}

	if b.useEnv {
		if err := cfg.ApplyEnv(b.envPrefix); err != nil {
			return nil, fmt.Errorf("failed to apply environment: %w", err)
		}
	}

	for _, validator := range b.validators {
		if err := validator(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return cfg, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Configuration {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("railtie config build failed: %v", err))
	}
	return cfg
}
