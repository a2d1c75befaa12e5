// FILE: lixenwraith/railtie/example/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lixenwraith/railtie"
)

// Application stands in for the host application extensions configure.
type Application struct {
	Name  string
	Stack []string
}

// CacheSettings is the typed view of the cache namespace.
type CacheSettings struct {
	Store string        `toml:"store"`
	TTL   time.Duration `toml:"ttl"`
	Hosts []string      `toml:"hosts"`
}

const cacheDefaults = `
[cache]
store = "memory"
ttl = "5m"
hosts = "cache-1,cache-2"
`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store := railtie.NewStore(railtie.WithLogger(logger))

	// =========================================================================
	// PART 1: TWO EXTENSIONS REGISTER INTO ONE STORE
	// Each extension gets its own view; both land in the same options.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 1: Registering extensions...")

	cache, err := railtie.NewBuilder().
		WithName("cache").
		WithStore(store).
		WithData([]byte(cacheDefaults), railtie.FormatTOML).
		WithEnvPrefix("APP_").
		Build()
	if err != nil {
		log.Fatalf("❌ Cache extension failed: %v", err)
	}
	cache.WatchableDirs().Add("config/cache", "toml")
	cache.AppMiddleware().Use("CacheHeaders", "public")
	if err := cache.AfterInitialize(func(base any) error {
		app := base.(*Application)
		log.Printf("   cache ready for %s", app.Name)
		return nil
	}); err != nil {
		log.Fatalf("❌ %v", err)
	}

	auth := railtie.NewWithStore("auth", store)
	auth.Get("auth")
	if err := auth.SetPath("auth.session_key", "_app_session"); err != nil {
		log.Fatalf("❌ %v", err)
	}
	auth.AppMiddleware().InsertBefore("Router", "Authenticate")
	auth.AppGenerators(func(g *railtie.Generators) {
		g.Use("orm", "active_record", map[string]any{"migration": true})
	})
	auth.ToPrepare(func() error {
		log.Println("   auth: reloading policies")
		return nil
	})
	auth.EagerLoadNamespaces().Append(railtie.EagerLoaderFunc(func() error {
		log.Println("   auth: eager loading models")
		return nil
	}))
	if err := auth.BeforeInitialize(func(base any) error {
		base.(*Application).Stack = append(base.(*Application).Stack, "Router")
		return nil
	}); err != nil {
		log.Fatalf("❌ %v", err)
	}

	log.Printf("✅ Registered options: %v", store.Keys())

	// =========================================================================
	// PART 2: READING SETTINGS BACK
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Reading shared settings...")

	key, _ := cache.Lookup("auth.session_key")
	fmt.Printf("   session key seen from cache view: %v\n", key.Raw())

	var settings CacheSettings
	if err := auth.Scan("cache", &settings); err != nil {
		log.Fatalf("❌ Scan failed: %v", err)
	}
	fmt.Printf("   cache settings seen from auth view: %+v\n", settings)

	// =========================================================================
	// PART 3: BOOT
	// Hooks, eager loading and to-prepare blocks run in phase order.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Booting application...")

	app := &Application{Name: "blog"}
	if err := railtie.Boot(context.Background(), store, app, railtie.BootOptions{EagerLoad: true}); err != nil {
		log.Fatalf("❌ Boot failed: %v", err)
	}

	stack := &nameStack{names: app.Stack}
	if err := store.AppMiddleware().MergeInto(stack); err != nil {
		log.Fatalf("❌ Middleware replay failed: %v", err)
	}
	fmt.Printf("   middleware: %v\n", stack.names)

	log.Println("---")
	log.Println("✅ Final options:")
	if err := cache.Encode(os.Stdout, railtie.FormatYAML); err != nil {
		log.Fatalf("❌ Encode failed: %v", err)
	}
}

// nameStack is a minimal middleware stack tracking names only.
type nameStack struct {
	names []string
}

func (s *nameStack) find(name string) (int, error) {
	for i, n := range s.names {
		if n == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("middleware %s not in stack", name)
}

func (s *nameStack) insert(i int, name string) {
	s.names = append(s.names[:i], append([]string{name}, s.names[i:]...)...)
}

func (s *nameStack) Use(m railtie.Middleware)     { s.names = append(s.names, m.Name) }
func (s *nameStack) Unshift(m railtie.Middleware) { s.insert(0, m.Name) }

func (s *nameStack) InsertBefore(target string, m railtie.Middleware) error {
	i, err := s.find(target)
	if err != nil {
		return err
	}
	s.insert(i, m.Name)
	return nil
}

func (s *nameStack) InsertAfter(target string, m railtie.Middleware) error {
	i, err := s.find(target)
	if err != nil {
		return err
	}
	s.insert(i+1, m.Name)
	return nil
}

func (s *nameStack) Swap(target string, m railtie.Middleware) error {
	i, err := s.find(target)
	if err != nil {
		return err
	}
	s.names[i] = m.Name
	return nil
}

func (s *nameStack) Delete(target string) error {
	i, err := s.find(target)
	if err != nil {
		return err
	}
	s.names = append(s.names[:i], s.names[i+1:]...)
	return nil
}

func (s *nameStack) MoveBefore(target, name string) error {
	if err := s.Delete(name); err != nil {
		return err
	}
	return s.InsertBefore(target, railtie.Middleware{Name: name})
}

func (s *nameStack) MoveAfter(target, name string) error {
	if err := s.Delete(name); err != nil {
		return err
	}
	return s.InsertAfter(target, railtie.Middleware{Name: name})
}
