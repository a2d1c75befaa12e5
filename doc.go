// FILE: lixenwraith/railtie/doc.go

// Package railtie provides the configuration that extension modules (railties)
// register before the host application exists.
//
// Every Configuration is a view over a Store. Views created by different
// extensions share the same Store, so a value set by one extension is visible
// through every other view without an explicit merge step.
//
// Features:
//   - Open-ended options addressed by name, with nested namespaces
//   - Unknown top-level names vivify an empty namespace instead of failing
//   - Maps with string keys assigned as values are promoted to namespaces recursively
//   - Shared collections: eager-load namespaces, watchable files and dirs,
//     middleware edits, generator defaults, to-prepare callbacks
//   - Load hooks for before_configuration, before_initialize,
//     before_eager_load and after_initialize
//   - TOML, JSON and YAML payloads, environment overrides, struct scanning
//
// Quick Start:
//
//	cfg := railtie.New("my_engine")
//	ns, _ := cfg.Namespace("my_engine") // created on first access
//	ns.Set("pool", map[string]any{"size": 5})
//
//	cfg.WatchableFiles().Append("config/my_engine.yml")
//	cfg.AppMiddleware().InsertBefore("Session", "MyEngine::Auth")
//	cfg.ToPrepare(func() error { return reloadPlugins() })
//	_ = cfg.AfterInitialize(func(app any) error { return warmUp(app) })
//
// Later, the application reads the same values:
//
//	size, _ := railtie.New("app").Lookup("my_engine.pool.size")
//
// Namespaces:
// Only the top level vivifies. Reading a missing key inside a namespace
// returns the zero Value, so SetPath("a.b.c", v) requires "a.b" to exist.
//
// Concurrency:
// The store is populated during a sequential bootstrap and does no locking.
// Callers that register from several goroutines must serialize access.
package railtie
