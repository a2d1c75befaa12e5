// FILE: lixenwraith/railtie/loader.go
package railtie

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a serialization format for option payloads.
type Format string

const (
	FormatAuto Format = "auto"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat normalizes a format name or file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "", "auto":
		return FormatAuto, nil
	case "toml", "tml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// DetectFormat attempts to detect format by parsing.
func DetectFormat(data []byte) Format {
	// Try JSON first (strict format)
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	// TOML before YAML: a flat "key: value" file is never valid TOML,
	// but "key = value" can be valid YAML scalar text
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return FormatYAML
	}

	return ""
}

// parsePayload decodes data into a nested map.
func parsePayload(data []byte, format Format) (map[string]any, error) {
	if format == "" || format == FormatAuto {
		format = DetectFormat(data)
	}

	parsed := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse TOML options: %w", err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&parsed); err != nil {
			return nil, fmt.Errorf("failed to parse JSON options: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse YAML options: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}
	return parsed, nil
}

// Decode parses data and assigns every top-level key through Set, so nested
// tables become namespaces. Existing keys not present in data are kept.
// A top-level key that is not a valid option key fails the whole payload.
func (c *Configuration) Decode(data []byte, format Format) error {
	parsed, err := parsePayload(data, format)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(parsed))
	for k := range parsed {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !isValidKeySegment(k) {
			return fmt.Errorf("%w: %q", ErrInvalidKey, k)
		}
	}
	for _, k := range keys {
		c.Set(k, parsed[k])
	}
	c.store.logger.Debug("decoded options", "railtie", c.name, "format", string(format), "keys", len(keys))
	return nil
}

// Encode writes all options as nested tables in the given format.
func (c *Configuration) Encode(w io.Writer, format Format) error {
	data := c.store.Options()

	switch format {
	case FormatTOML, FormatAuto, "":
		if err := toml.NewEncoder(w).Encode(data); err != nil {
			return fmt.Errorf("failed to marshal options to TOML: %w", err)
		}
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal options to JSON: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal options to YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML encoder: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}

// ApplyEnv overrides existing leaf options from environment variables.
// "group.key" is read from PREFIX_GROUP_KEY. Unset variables are skipped.
func (c *Configuration) ApplyEnv(prefix string) error {
	transform := defaultEnvTransform(prefix)

	// -- 1. Collect matching variables
	found := make(map[string]string)
	for path, value := range flattenMap(c.store.Options(), "") {
		if _, isMap := value.(map[string]any); isMap {
			continue
		}
		if raw, exists := os.LookupEnv(transform(path)); exists {
			if len(raw) > MaxValueSize {
				return fmt.Errorf("%w: %s", ErrValueSize, transform(path))
			}
			found[path] = raw
		}
	}

	// -- 2. Apply
	var errs []error
	for path, raw := range found {
		if err := c.SetPath(path, parseValue(raw)); err != nil {
			errs = append(errs, fmt.Errorf("env override %s: %w", path, err))
		}
	}
	if len(found) > 0 {
		c.store.logger.Debug("applied environment overrides", "railtie", c.name, "count", len(found))
	}
	return errors.Join(errs...)
}
