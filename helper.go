// FILE: lixenwraith/railtie/helper.go
package railtie

import "strings"

// flattenMap converts a nested map[string]any to a flat map[string]any with dot-notation paths.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		newPath := key
		if prefix != "" {
			newPath = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap && len(nestedMap) > 0 {
			for subPath, subValue := range flattenMap(nestedMap, newPath) {
				flat[subPath] = subValue
			}
		} else {
			flat[newPath] = value
		}
	}

	return flat
}

// isValidKeySegment checks if a single path segment is a valid option key.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	// Same alphabet as TOML bare keys: A-Za-z0-9_-
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isUnderscore := r == '_'
		isDash := r == '-'

		if !(isLetter || isDigit || isUnderscore || isDash) {
			return false
		}
	}
	return true
}

// parseValue attempts a basic parse of an environment string.
// Anything that is not a bool or quoted string stays a string; Scan converts later.
func parseValue(s string) any {
	if s == "true" {
		return true
	}
	if s == "false" {
		return false
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}

// defaultEnvTransform maps "group.key" to PREFIX_GROUP_KEY.
func defaultEnvTransform(prefix string) func(path string) string {
	return func(path string) string {
		env := strings.ReplaceAll(path, ".", "_")
		env = strings.ToUpper(strings.ReplaceAll(env, "-", "_"))
		if prefix != "" {
			env = prefix + env
		}
		return env
	}
}

// camelize maps a snake_case accessor name to its exported Go method name,
// e.g. "eager_load_namespaces" to "EagerLoadNamespaces".
func camelize(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
