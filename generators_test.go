// FILE: lixenwraith/railtie/generators_test.go
package railtie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerators tests generator defaults
func TestGenerators(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		g := NewGenerators()
		assert.True(t, g.ColorizeLogging)
		assert.False(t, g.APIOnly)
		assert.Contains(t, g.Options, "rails")
	})

	t.Run("SetWithAliases", func(t *testing.T) {
		g := NewGenerators()
		g.Set("test_unit", map[string]any{
			"fixture": false,
			"aliases": map[string]string{"fixture": "f"},
		})

		v, ok := g.Option("test_unit", "fixture")
		require.True(t, ok)
		assert.Equal(t, false, v)
		_, ok = g.Option("test_unit", "aliases")
		assert.False(t, ok, "aliases are not stored as options")
		assert.Equal(t, map[string]string{"fixture": "f"}, g.Aliases["test_unit"])
	})

	t.Run("Use", func(t *testing.T) {
		g := NewGenerators()
		g.Use("template_engine", "haml", nil)
		g.Use("orm", "sequel", map[string]any{"migration": true})

		engine, _ := g.Option("rails", "template_engine")
		assert.Equal(t, "haml", engine)
		migration, _ := g.Option("sequel", "migration")
		assert.Equal(t, true, migration)
		_, ok := g.Options["haml"]
		assert.False(t, ok)
	})

	t.Run("FallbackAndHide", func(t *testing.T) {
		g := NewGenerators()
		g.Fallback("shoulda", "test_unit")
		g.Hide("assets", "helper", "assets")
		assert.Equal(t, "test_unit", g.Fallbacks["shoulda"])
		assert.Equal(t, []string{"assets", "helper"}, g.HiddenNamespaces)
	})

	t.Run("UnknownOption", func(t *testing.T) {
		g := NewGenerators()
		_, ok := g.Option("nope", "x")
		assert.False(t, ok)
	})
}

// TestGeneratorsMergeInto tests that application settings win over extension defaults
func TestGeneratorsMergeInto(t *testing.T) {
	ext := NewGenerators()
	ext.Use("orm", "active_record", map[string]any{"migration": true, "timestamps": true})
	ext.Alias("rails", map[string]string{"test_framework": "t"})
	ext.Fallback("shoulda", "test_unit")
	ext.Templates = append(ext.Templates, "lib/templates")
	ext.Hide("assets")

	app := NewGenerators()
	app.Set("active_record", map[string]any{"migration": false})
	app.Alias("rails", map[string]string{"test_framework": "x"})

	ext.MergeInto(app)

	migration, _ := app.Option("active_record", "migration")
	assert.Equal(t, false, migration, "application value kept")
	timestamps, _ := app.Option("active_record", "timestamps")
	assert.Equal(t, true, timestamps, "extension default filled in")
	orm, _ := app.Option("rails", "orm")
	assert.Equal(t, "active_record", orm)
	assert.Equal(t, "x", app.Aliases["rails"]["test_framework"])
	assert.Equal(t, "test_unit", app.Fallbacks["shoulda"])
	assert.Equal(t, []string{"lib/templates"}, app.Templates)
	assert.Equal(t, []string{"assets"}, app.HiddenNamespaces)

	bare := &Generators{}
	assert.NotPanics(t, func() { ext.MergeInto(bare) })
	orm, _ = bare.Option("rails", "orm")
	assert.Equal(t, "active_record", orm)
}
