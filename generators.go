// FILE: lixenwraith/railtie/generators.go
package railtie

// defaultGeneratorGroup holds the top-level generator choices (orm, test framework, ...).
const defaultGeneratorGroup = "rails"

// Generators holds code-generator defaults contributed by extensions.
// Values set here become defaults for the application unless it sets its own.
type Generators struct {
	Options          map[string]map[string]any
	Aliases          map[string]map[string]string
	Templates        []string
	Fallbacks        map[string]string
	HiddenNamespaces []string
	ColorizeLogging  bool
	APIOnly          bool
}

// NewGenerators returns generator defaults with logging colorized.
func NewGenerators() *Generators {
	return &Generators{
		Options:         map[string]map[string]any{defaultGeneratorGroup: {}},
		Aliases:         make(map[string]map[string]string),
		Fallbacks:       make(map[string]string),
		ColorizeLogging: true,
	}
}

// Set merges values into the options of group. An "aliases" entry holding a
// map[string]string is moved to the group's aliases instead.
func (g *Generators) Set(group string, values map[string]any) {
	opts := g.group(group)
	for k, v := range values {
		if k == "aliases" {
			if aliases, ok := v.(map[string]string); ok {
				g.Alias(group, aliases)
				continue
			}
		}
		opts[k] = v
	}
}

// Use selects namespace for a top-level generator kind, e.g. Use("orm", "active_record", nil),
// and merges values into that namespace's options.
func (g *Generators) Use(kind, namespace string, values map[string]any) {
	g.group(defaultGeneratorGroup)[kind] = namespace
	if values != nil {
		g.Set(namespace, values)
	}
}

// Option returns a single option of group.
func (g *Generators) Option(group, key string) (any, bool) {
	opts, ok := g.Options[group]
	if !ok {
		return nil, false
	}
	v, ok := opts[key]
	return v, ok
}

// Alias merges short option aliases for group.
func (g *Generators) Alias(group string, aliases map[string]string) {
	g.ensure()
	current, ok := g.Aliases[group]
	if !ok {
		current = make(map[string]string, len(aliases))
		g.Aliases[group] = current
	}
	for k, v := range aliases {
		current[k] = v
	}
}

// Fallback makes generator lookups for from fall back to to.
func (g *Generators) Fallback(from, to string) {
	g.ensure()
	g.Fallbacks[from] = to
}

// Hide removes namespaces from generator listings.
func (g *Generators) Hide(namespaces ...string) {
	for _, ns := range namespaces {
		if !containsString(g.HiddenNamespaces, ns) {
			g.HiddenNamespaces = append(g.HiddenNamespaces, ns)
		}
	}
}

// MergeInto copies these defaults into dst without overwriting anything dst already set.
func (g *Generators) MergeInto(dst *Generators) {
	dst.ensure()
	for group, opts := range g.Options {
		target := dst.group(group)
		for k, v := range opts {
			if _, set := target[k]; !set {
				target[k] = v
			}
		}
	}
	for group, aliases := range g.Aliases {
		current, ok := dst.Aliases[group]
		if !ok {
			current = make(map[string]string, len(aliases))
			dst.Aliases[group] = current
		}
		for k, v := range aliases {
			if _, set := current[k]; !set {
				current[k] = v
			}
		}
	}
	for from, to := range g.Fallbacks {
		if _, set := dst.Fallbacks[from]; !set {
			dst.Fallbacks[from] = to
		}
	}
	for _, tpl := range g.Templates {
		if !containsString(dst.Templates, tpl) {
			dst.Templates = append(dst.Templates, tpl)
		}
	}
	dst.Hide(g.HiddenNamespaces...)
}

func (g *Generators) ensure() {
	if g.Options == nil {
		g.Options = make(map[string]map[string]any)
	}
	if g.Aliases == nil {
		g.Aliases = make(map[string]map[string]string)
	}
	if g.Fallbacks == nil {
		g.Fallbacks = make(map[string]string)
	}
}

func (g *Generators) group(name string) map[string]any {
	g.ensure()
	opts, ok := g.Options[name]
	if !ok {
		opts = make(map[string]any)
		g.Options[name] = opts
	}
	return opts
}
