package s3props

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSource map[string]string

func (m mapSource) Name() string { return "map" }

func (m mapSource) Get(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func (m mapSource) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func TestSources_Get(t *testing.T) {
	sources := Sources{
		mapSource{"a": "first"},
		nil,
		mapSource{"a": "second", "b": "only"},
	}

	v, ok := sources.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "first", v)

	v, ok = sources.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "only", v)

	_, ok = sources.Get("c")
	assert.False(t, ok)
}

func TestResolver_ResolveString(t *testing.T) {
	r := NewResolver(Sources{mapSource{
		"host":    "localhost",
		"port":    "5432",
		"url":     "postgres://${host}:${port}",
		"env":     "prod",
		"db.prod": "main",
		"empty":   "",
	}})

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"no placeholder", "plain text", "plain text"},
		{"single", "${host}", "localhost"},
		{"embedded", "http://${host}:${port}/", "http://localhost:5432/"},
		{"recursive value", "${url}/db", "postgres://localhost:5432/db"},
		{"nested key", "${db.${env}}", "main"},
		{"default unused", "${host:other}", "localhost"},
		{"default used", "${missing:fallback}", "fallback"},
		{"empty default", "${missing:}", ""},
		{"default with colon", "${missing:http://x}", "http://x"},
		{"default with placeholder", "${missing:${host}}", "localhost"},
		{"empty value", "[${empty}]", "[]"},
		{"unterminated", "${host", "${host"},
		{"repeated", "${host}-${host}", "localhost-localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ResolveString(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_Unresolvable(t *testing.T) {
	r := NewResolver(Sources{mapSource{"a": "1"}})

	_, err := r.ResolveString("x=${missing}")
	assert.ErrorIs(t, err, ErrUnresolvablePlaceholder)
	assert.Contains(t, err.Error(), "missing")

	r.IgnoreUnresolvable = true
	got, err := r.ResolveString("${a} ${missing} ${a}")
	require.NoError(t, err)
	assert.Equal(t, "1 ${missing} 1", got)
}

func TestResolver_Circular(t *testing.T) {
	r := NewResolver(Sources{mapSource{
		"a":    "${b}",
		"b":    "${a}",
		"self": "x${self}",
	}})

	_, err := r.ResolveString("${a}")
	assert.ErrorIs(t, err, ErrCircularPlaceholder)

	_, err = r.ResolveString("${self}")
	assert.ErrorIs(t, err, ErrCircularPlaceholder)
}

func TestResolver_CustomSyntax(t *testing.T) {
	r := &Resolver{
		Sources:        Sources{mapSource{"name": "world"}},
		Prefix:         "%{",
		Suffix:         "}",
		ValueSeparator: "|",
	}

	got, err := r.ResolveString("hello %{name}, ${name}, %{missing|there}")
	require.NoError(t, err)
	assert.Equal(t, "hello world, ${name}, there", got)
}

func TestResolver_ZeroSyntaxUsesDefaults(t *testing.T) {
	sources := Sources{mapSource{"a": "1"}}

	r := &Resolver{Sources: sources, IgnoreUnresolvable: true}
	got, err := r.ResolveString("x ${a} ${missing}")
	require.NoError(t, err)
	assert.Equal(t, "x 1 ${missing}", got)
	assert.Empty(t, r.Prefix)

	r = &Resolver{Sources: sources}
	got, err = r.ResolveString("x ${a}")
	require.NoError(t, err)
	assert.Equal(t, "x 1", got)

	_, err = r.ResolveString("${missing}")
	assert.ErrorIs(t, err, ErrUnresolvablePlaceholder)
	assert.Contains(t, err.Error(), `"missing"`)
}
