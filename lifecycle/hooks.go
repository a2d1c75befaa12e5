// FILE: lixenwraith/railtie/lifecycle/hooks.go

// Package lifecycle runs load hooks registered for the named bootstrap phases.
//
// Hooks registered before a phase runs are queued; hooks registered after a
// phase already ran are executed immediately against every base the phase
// ran with.
package lifecycle

import (
	"errors"
	"fmt"
)

// Phase identifies a bootstrap point at which load hooks fire.
type Phase int

const (
	// BeforeConfiguration fires first, before any initializer runs
	BeforeConfiguration Phase = iota
	// BeforeInitialize fires before frameworks initialize
	BeforeInitialize
	// BeforeEagerLoad fires only when eager loading is enabled
	BeforeEagerLoad
	// AfterInitialize fires last, after frameworks initialize
	AfterInitialize
)

// ErrNilHook is returned when a nil hook is registered.
var ErrNilHook = errors.New("lifecycle: nil hook")

// Phases returns all phases in firing order.
func Phases() []Phase {
	return []Phase{BeforeConfiguration, BeforeInitialize, BeforeEagerLoad, AfterInitialize}
}

func (p Phase) String() string {
	switch p {
	case BeforeConfiguration:
		return "before_configuration"
	case BeforeInitialize:
		return "before_initialize"
	case BeforeEagerLoad:
		return "before_eager_load"
	case AfterInitialize:
		return "after_initialize"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// HookFunc receives the base object the phase is run with, usually the application.
type HookFunc func(base any) error

// Hooks holds the per-phase hook queues and the bases each phase already ran with.
type Hooks struct {
	hooks  map[Phase][]HookFunc
	loaded map[Phase][]any
}

// New creates an empty hook engine.
func New() *Hooks {
	return &Hooks{
		hooks:  make(map[Phase][]HookFunc),
		loaded: make(map[Phase][]any),
	}
}

// OnLoad registers fn for phase. If the phase has already run, fn is also
// executed right away for each recorded base and the first error is returned.
func (h *Hooks) OnLoad(phase Phase, fn HookFunc) error {
	if fn == nil {
		return fmt.Errorf("%w for %s", ErrNilHook, phase)
	}

	h.hooks[phase] = append(h.hooks[phase], fn)

	for _, base := range h.loaded[phase] {
		if err := fn(base); err != nil {
			return fmt.Errorf("%s hook: %w", phase, err)
		}
	}
	return nil
}

// Run records base for phase and executes the queued hooks in registration order.
// Execution stops at the first failing hook.
func (h *Hooks) Run(phase Phase, base any) error {
	h.loaded[phase] = append(h.loaded[phase], base)

	for i, fn := range h.hooks[phase] {
		if err := fn(base); err != nil {
			return fmt.Errorf("%s hook #%d: %w", phase, i, err)
		}
	}
	return nil
}

// Count returns how many hooks are registered for phase.
func (h *Hooks) Count(phase Phase) int {
	return len(h.hooks[phase])
}

// Ran reports whether phase has been run at least once.
func (h *Hooks) Ran(phase Phase) bool {
	return len(h.loaded[phase]) > 0
}
