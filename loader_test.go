// FILE: lixenwraith/railtie/loader_test.go
package railtie

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMultiFormatDecoding tests decoding the same options from different formats
func TestMultiFormatDecoding(t *testing.T) {
	payloads := map[Format]string{
		FormatTOML: `
[server]
host = "toml-host"
port = 8080

[server.tls]
enabled = true
`,
		FormatJSON: `{
  "server": {
    "host": "json-host",
    "port": 8080,
    "tls": {"enabled": true}
  }
}`,
		FormatYAML: `
server:
  host: yaml-host
  port: 8080
  tls:
    enabled: true
`,
	}

	for format, data := range payloads {
		t.Run(string(format), func(t *testing.T) {
			cfg := NewWithStore("loader", NewStore())
			require.NoError(t, cfg.Decode([]byte(data), format))

			host, ok := cfg.Lookup("server.host")
			require.True(t, ok)
			assert.Equal(t, string(format)+"-host", host.Raw())

			port, ok := cfg.Lookup("server.port")
			require.True(t, ok)
			p, err := port.Int64()
			require.NoError(t, err)
			assert.Equal(t, int64(8080), p)

			tls, ok := cfg.Lookup("server.tls")
			require.True(t, ok)
			assert.True(t, tls.IsNamespace(), "nested tables are promoted")

			enabled, _ := cfg.Lookup("server.tls.enabled")
			b, err := enabled.Bool()
			require.NoError(t, err)
			assert.True(t, b)
		})
	}
}

// TestDecodeAutoDetect tests format detection from content
func TestDecodeAutoDetect(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Format
	}{
		{"JSON", `{"value": "from-json"}`, FormatJSON},
		{"TOML", `value = "from-toml"`, FormatTOML},
		{"YAML", "value: from-yaml\n", FormatYAML},
		{"Garbage", "{{{ not a config", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat([]byte(tt.data)))

			cfg := NewWithStore("auto", NewStore())
			err := cfg.Decode([]byte(tt.data), FormatAuto)
			if tt.want == "" {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "from-"+string(tt.want), cfg.Get("value").Raw())
		})
	}
}

// TestDecodeKeepsExistingKeys tests that decoding merges at the top level
func TestDecodeKeepsExistingKeys(t *testing.T) {
	cfg := NewWithStore("merge", NewStore())
	cfg.Set("kept", "yes")
	cfg.Set("replaced", "old")

	require.NoError(t, cfg.Decode([]byte(`replaced = "new"`), FormatTOML))
	assert.Equal(t, "yes", cfg.Get("kept").Raw())
	assert.Equal(t, "new", cfg.Get("replaced").Raw())
}

// TestDecodeInvalid tests parse failures per format
func TestDecodeInvalid(t *testing.T) {
	cfg := NewWithStore("invalid", NewStore())
	assert.ErrorContains(t, cfg.Decode([]byte(`key = `), FormatTOML), "TOML")
	assert.ErrorContains(t, cfg.Decode([]byte(`{"key":`), FormatJSON), "JSON")

	err := cfg.Decode([]byte(`{"fine": 1, "not valid": 2}`), FormatJSON)
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.False(t, cfg.RespondsTo("fine"), "a rejected payload assigns nothing")
	assert.ErrorContains(t, cfg.Decode([]byte("key: [unclosed"), FormatYAML), "YAML")
	assert.Empty(t, cfg.Store().Keys())
}

// TestEncode tests exporting options
func TestEncode(t *testing.T) {
	cfg := NewWithStore("encode", NewStore())
	cfg.Set("server", map[string]any{"host": "localhost", "port": 8080})
	cfg.Set("debug", true)

	t.Run("TOML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, cfg.Encode(&buf, FormatTOML))
		out := buf.String()
		assert.Contains(t, out, "debug = true")
		assert.Contains(t, out, "[server]")
		assert.Contains(t, out, `host = "localhost"`)

		round := NewWithStore("round", NewStore())
		require.NoError(t, round.Decode(buf.Bytes(), FormatTOML))
		host, _ := round.Lookup("server.host")
		assert.Equal(t, "localhost", host.Raw())
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, cfg.Encode(&buf, FormatJSON))
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, true, decoded["debug"])
		assert.Equal(t, "localhost", decoded["server"].(map[string]any)["host"])
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, cfg.Encode(&buf, FormatYAML))
		assert.True(t, strings.Contains(buf.String(), "host: localhost"))
	})

	t.Run("Unknown", func(t *testing.T) {
		var buf bytes.Buffer
		assert.ErrorIs(t, cfg.Encode(&buf, Format("ini")), ErrUnknownFormat)
	})
}

// TestParseFormat tests format names and extensions
func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"toml": FormatTOML,
		".tml": FormatTOML,
		"JSON": FormatJSON,
		".yml": FormatYAML,
		"yaml": FormatYAML,
		"":     FormatAuto,
		"auto": FormatAuto,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat(".ini")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

// TestApplyEnv tests environment overrides of existing leaves
func TestApplyEnv(t *testing.T) {
	t.Run("OverridesExistingLeaves", func(t *testing.T) {
		t.Setenv("RT_SERVER_HOST", "env-host")
		t.Setenv("RT_DEBUG", "true")
		t.Setenv("RT_LOG_LEVEL", `"warn"`)
		t.Setenv("RT_UNREGISTERED", "ignored")

		cfg := NewWithStore("env", NewStore())
		cfg.Set("server", map[string]any{"host": "localhost"})
		cfg.Set("debug", false)
		cfg.Set("log", map[string]any{"level": "info"})

		require.NoError(t, cfg.ApplyEnv("RT_"))

		host, _ := cfg.Lookup("server.host")
		assert.Equal(t, "env-host", host.Raw())
		assert.Equal(t, true, cfg.Get("debug").Raw())
		level, _ := cfg.Lookup("log.level")
		assert.Equal(t, "warn", level.Raw())
		assert.False(t, cfg.RespondsTo("unregistered"))
	})

	t.Run("DashesBecomeUnderscores", func(t *testing.T) {
		t.Setenv("RT_FEATURE_FLAGS_NEW_UI", "on")

		cfg := NewWithStore("env", NewStore())
		cfg.Set("feature-flags", map[string]any{"new-ui": "off"})
		require.NoError(t, cfg.ApplyEnv("RT_"))

		v, _ := cfg.Lookup("feature-flags.new-ui")
		assert.Equal(t, "on", v.Raw())
	})

	t.Run("ValueSizeLimit", func(t *testing.T) {
		t.Setenv("RT_BIG", strings.Repeat("x", MaxValueSize+1))

		cfg := NewWithStore("env", NewStore())
		cfg.Set("big", "small")
		assert.ErrorIs(t, cfg.ApplyEnv("RT_"), ErrValueSize)
		assert.Equal(t, "small", cfg.Get("big").Raw())
	})
}
