// FILE: lixenwraith/railtie/boot.go
package railtie

import (
	"context"
	"fmt"

	"github.com/lixenwraith/railtie/lifecycle"
)

// BootOptions controls the boot sequence.
type BootOptions struct {
	// EagerLoad runs before_eager_load hooks and eager loads every registered namespace
	EagerLoad bool
}

// Boot drives the store's registrations against app in the fixed order:
// before_configuration, before_initialize, before_eager_load and eager
// loading (only with EagerLoad), to-prepare blocks, after_initialize.
// ctx is checked between steps. Each to-prepare block runs once per store,
// so booting again only runs blocks queued since the previous boot.
func Boot(ctx context.Context, store *Store, app any, opts BootOptions) error {
	log := store.logger

	steps := []struct {
		name string
		run  func() error
	}{
		{lifecycle.BeforeConfiguration.String(), func() error {
			return store.hooks.Run(lifecycle.BeforeConfiguration, app)
		}},
		{lifecycle.BeforeInitialize.String(), func() error {
			return store.hooks.Run(lifecycle.BeforeInitialize, app)
		}},
		{lifecycle.BeforeEagerLoad.String(), func() error {
			if !opts.EagerLoad {
				return nil
			}
			return store.hooks.Run(lifecycle.BeforeEagerLoad, app)
		}},
		{"eager_load", func() error {
			if !opts.EagerLoad {
				return nil
			}
			return store.EagerLoadNamespaces().Each(func(ns EagerLoader) error {
				return ns.EagerLoad()
			})
		}},
		{"to_prepare", store.drainToPrepare},
		{lifecycle.AfterInitialize.String(), func() error {
			return store.hooks.Run(lifecycle.AfterInitialize, app)
		}},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("boot interrupted before %s: %w", step.name, err)
		}
		log.Debug("boot phase", "phase", step.name)
		if err := step.run(); err != nil {
			return fmt.Errorf("boot phase %s: %w", step.name, err)
		}
	}
	return nil
}
