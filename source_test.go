package s3props

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Simple(t *testing.T) {
	src, err := Parse([]byte("key=value"))
	require.NoError(t, err)

	assert.Equal(t, SourceName, src.Name())
	v, ok := src.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	v, ok = src.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.Equal(t, 1, src.Len())
}

func TestParse_Format(t *testing.T) {
	text := "# comment\n" +
		"! also a comment\n" +
		"   # indented comment\n" +
		"\n" +
		"equals=one\n" +
		"colon:two\n" +
		"space three\n" +
		"  padded = four\n" +
		"multi=first \\\n" +
		"      second\n" +
		"escaped=tab\\there\\nline\n" +
		"unicode=caf\\u00e9\n" +
		"path=c:\\\\temp\n" +
		"placeholder=${other}\n" +
		"empty=\n"

	src, err := Parse([]byte(text))
	require.NoError(t, err)

	tests := []struct {
		key  string
		want string
	}{
		{"equals", "one"},
		{"colon", "two"},
		{"space", "three"},
		{"padded", "four"},
		{"multi", "first second"},
		{"escaped", "tab\there\nline"},
		{"unicode", "café"},
		{"path", "c:\\temp"},
		{"placeholder", "${other}"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok := src.Get(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}
	assert.ElementsMatch(t, []string{
		"equals", "colon", "space", "padded", "multi",
		"escaped", "unicode", "path", "placeholder", "empty",
	}, src.Keys())
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	src, err := Parse([]byte("a=1\nb=2\na=3\n"))
	require.NoError(t, err)

	v, ok := src.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	assert.Equal(t, 2, src.Len())
	assert.ElementsMatch(t, []string{"a", "b"}, src.Keys())
}

func TestParse_Encoding(t *testing.T) {
	latin1 := []byte{'k', '=', 'c', 'a', 'f', 0xe9}
	src, err := Parse(latin1)
	require.NoError(t, err)
	v, _ := src.Get("k")
	assert.Equal(t, "café", v)

	src, err = Parse([]byte("k=café"), WithParseEncoding(UTF8))
	require.NoError(t, err)
	v, _ = src.Get("k")
	assert.Equal(t, "café", v)
}

func TestParse_Empty(t *testing.T) {
	src, err := Parse(nil)
	require.NoError(t, err)
	assert.Zero(t, src.Len())
	assert.Empty(t, src.Keys())
}

func TestParse_Malformed(t *testing.T) {
	src, err := Parse([]byte("ok=1\nbad=\\uZZZZ\n"))
	assert.Nil(t, src)
	assert.ErrorIs(t, err, ErrParse)
}
