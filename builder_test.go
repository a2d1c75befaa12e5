// FILE: lixenwraith/railtie/builder_test.go
package railtie

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilder tests the builder pattern
func TestBuilder(t *testing.T) {
	t.Run("BasicBuilder", func(t *testing.T) {
		store := NewStore()
		cfg, err := NewBuilder().
			WithName("engine").
			WithStore(store).
			WithDefaults(map[string]any{
				"server": map[string]any{"host": "localhost", "port": 8080},
			}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "engine", cfg.Name())
		assert.Same(t, store, cfg.Store())

		host, ok := cfg.Lookup("server.host")
		require.True(t, ok)
		assert.Equal(t, "localhost", host.Raw())
	})

	t.Run("DefaultsDoNotOverwrite", func(t *testing.T) {
		store := NewStore()
		NewWithStore("first", store).Set("mode", "set-by-first")

		cfg, err := NewBuilder().
			WithStore(store).
			WithDefaults(map[string]any{"mode": "default", "fresh": 1}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "set-by-first", cfg.Get("mode").Raw())
		assert.Equal(t, 1, cfg.Get("fresh").Raw())
	})

	t.Run("PayloadsInOrder", func(t *testing.T) {
		cfg, err := NewBuilder().
			WithStore(NewStore()).
			WithDefaults(map[string]any{"level": "info"}).
			WithData([]byte(`level = "debug"`), FormatTOML).
			WithFormat([]byte(`{"level": "warn", "extra": true}`), ".json").
			Build()
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Get("level").Raw())
		assert.Equal(t, true, cfg.Get("extra").Raw())
	})

	t.Run("EnvPrefix", func(t *testing.T) {
		t.Setenv("BLD_LEVEL", "error")
		cfg, err := NewBuilder().
			WithStore(NewStore()).
			WithData([]byte("level: info\n"), FormatYAML).
			WithEnvPrefix("BLD_").
			Build()
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Get("level").Raw())
	})

	t.Run("LoggerKeepsSharedStore", func(t *testing.T) {
		ResetShared()
		t.Cleanup(ResetShared)

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		cfg, err := NewBuilder().WithName("logged").WithLogger(logger).Build()
		require.NoError(t, err)
		assert.Same(t, Shared(), cfg.Store())
		assert.Same(t, logger, Shared().Logger())

		cfg.Set("visible", true)
		assert.True(t, New("other").RespondsTo("visible"), "views built with a logger merge with other views")
	})

	t.Run("LoggerWithStore", func(t *testing.T) {
		store := NewStore()
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		cfg, err := NewBuilder().WithStore(store).WithLogger(logger).Build()
		require.NoError(t, err)
		assert.Same(t, store, cfg.Store())
		assert.Same(t, logger, store.Logger())

		previous := store.Logger()
		_, err = NewBuilder().WithStore(store).Build()
		require.NoError(t, err)
		assert.Same(t, previous, store.Logger(), "building without a logger keeps the current one")
	})
}

// TestBuilderErrors tests failure paths
func TestBuilderErrors(t *testing.T) {
	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := NewBuilder().
			WithStore(NewStore()).
			WithFormat([]byte(`a=1`), "ini").
			Build()
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("InvalidDefaultKey", func(t *testing.T) {
		store := NewStore()
		_, err := NewBuilder().
			WithStore(store).
			WithDefaults(map[string]any{"good": 1, "bad.key": 2}).
			Build()
		assert.ErrorIs(t, err, ErrInvalidKey)
		assert.Empty(t, store.Keys())
	})

	t.Run("BadPayload", func(t *testing.T) {
		_, err := NewBuilder().
			WithStore(NewStore()).
			WithData([]byte(`a = `), FormatTOML).
			Build()
		assert.ErrorContains(t, err, "payload #0")
	})

	t.Run("Validators", func(t *testing.T) {
		var order []int
		invalid := errors.New("port required")
		_, err := NewBuilder().
			WithStore(NewStore()).
			WithValidator(func(c *Configuration) error { order = append(order, 1); return nil }).
			WithValidator(nil).
			WithValidator(func(c *Configuration) error {
				order = append(order, 2)
				if _, ok := c.Lookup("server.port"); !ok {
					return invalid
				}
				return nil
			}).
			Build()
		assert.ErrorIs(t, err, invalid)
		assert.Equal(t, []int{1, 2}, order)
	})

	t.Run("MustBuildPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder().WithStore(NewStore()).WithFormat(nil, "xml").MustBuild()
		})
		assert.NotPanics(t, func() {
			NewBuilder().WithStore(NewStore()).MustBuild()
		})
	})
}
