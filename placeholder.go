package s3props

import (
	"fmt"
	"strings"
)

// Source is a named provider of configuration values consulted during
// placeholder resolution.
type Source interface {
	Name() string
	Get(name string) (string, bool)
	Keys() []string
}

// Sources is an ordered list of sources. Earlier sources take precedence.
type Sources []Source

// Get returns the value from the first source that defines name.
func (s Sources) Get(name string) (string, bool) {
	for _, src := range s {
		if src == nil {
			continue
		}
		if v, ok := src.Get(name); ok {
			return v, true
		}
	}
	return "", false
}

const (
	DefaultPrefix         = "${"
	DefaultSuffix         = "}"
	DefaultValueSeparator = ":"
)

// Resolver substitutes ${name} and ${name:default} placeholders with values
// from its sources. Values and keys may themselves contain placeholders.
type Resolver struct {
	Sources            Sources
	Prefix             string
	Suffix             string
	ValueSeparator     string
	IgnoreUnresolvable bool
}

// NewResolver returns a resolver using the ${name:default} syntax.
func NewResolver(sources Sources) *Resolver {
	return &Resolver{
		Sources:        sources,
		Prefix:         DefaultPrefix,
		Suffix:         DefaultSuffix,
		ValueSeparator: DefaultValueSeparator,
	}
}

// ResolveString replaces every placeholder in value. An empty Prefix or
// Suffix falls back to the ${...} syntax.
func (r *Resolver) ResolveString(value string) (string, error) {
	rr := *r
	if rr.Prefix == "" {
		rr.Prefix = DefaultPrefix
	}
	if rr.Suffix == "" {
		rr.Suffix = DefaultSuffix
	}
	return rr.parse(value, make(map[string]struct{}))
}

func (r *Resolver) parse(value string, visited map[string]struct{}) (string, error) {
	start := strings.Index(value, r.Prefix)
	for start != -1 {
		end := r.endIndex(value, start)
		if end == -1 {
			break
		}

		original := value[start+len(r.Prefix) : end]
		if _, seen := visited[original]; seen {
			return "", fmt.Errorf("%w: %s%s%s", ErrCircularPlaceholder, r.Prefix, original, r.Suffix)
		}
		visited[original] = struct{}{}

		name, err := r.parse(original, visited)
		if err != nil {
			return "", err
		}

		resolved, ok := r.Sources.Get(name)
		if !ok && r.ValueSeparator != "" {
			if i := strings.Index(name, r.ValueSeparator); i != -1 {
				resolved, ok = r.Sources.Get(name[:i])
				if !ok {
					resolved, ok = name[i+len(r.ValueSeparator):], true
				}
			}
		}

		switch {
		case ok:
			if resolved, err = r.parse(resolved, visited); err != nil {
				return "", err
			}
			value = value[:start] + resolved + value[end+len(r.Suffix):]
			start = index(value, r.Prefix, start+len(resolved))
		case r.IgnoreUnresolvable:
			start = index(value, r.Prefix, end+len(r.Suffix))
		default:
			return "", fmt.Errorf("%w %q in value %q", ErrUnresolvablePlaceholder, name, value)
		}
		delete(visited, original)
	}
	return value, nil
}

// endIndex finds the suffix closing the placeholder at start, skipping over
// nested placeholders.
func (r *Resolver) endIndex(value string, start int) int {
	nestedPrefix := r.Prefix
	if strings.HasSuffix(r.Prefix, "{") && r.Suffix == "}" {
		nestedPrefix = "{"
	}
	nested := 0
	i := start + len(r.Prefix)
	for i < len(value) {
		switch {
		case strings.HasPrefix(value[i:], r.Suffix):
			if nested == 0 {
				return i
			}
			nested--
			i += len(r.Suffix)
		case strings.HasPrefix(value[i:], nestedPrefix):
			nested++
			i += len(nestedPrefix)
		default:
			i++
		}
	}
	return -1
}

func index(s, substr string, from int) int {
	if from >= len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i == -1 {
		return -1
	}
	return from + i
}
