package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"tr", language.Turkish},
		{"de-AT", language.German},
		{"uk_UA", language.Ukrainian},
		{"es_ES.UTF-8", language.Spanish},
		{"en", language.English},
		{"", language.English},
		{"C", language.English},
		{"not a tag", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.in))
		})
	}
}

func TestCode(t *testing.T) {
	for _, tag := range Supported {
		assert.Len(t, Code(tag), 2, tag.String())
	}
	assert.Equal(t, "uk", Code(language.Ukrainian))
}

func TestEveryLocaleIsComplete(t *testing.T) {
	c := Default()
	for _, tag := range Supported {
		code := Code(tag)
		_, ok := c[code]
		require.True(t, ok, "no catalog for %s", code)
		assert.Empty(t, c.Missing(code), "labels missing in %s", code)
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "Doğru!", T(language.Turkish, "practice.correct"))
	assert.Equal(t, "Falsch: Haus", T(language.German, "practice.wrong", "Haus"))
	assert.Equal(t, "Next set (11-12)", T(language.English, "chain.next", 11, 12))

	l := NewLocalizer(language.Spanish)
	assert.Equal(t, language.Spanish, l.Tag())
	assert.Equal(t, "¡Correcto!", l.T("practice.correct"))
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("a: \"A\"\nb: \"B\"\n")},
		"locales/xx.yaml": {Data: []byte("a: \"X\"\n")},
	}
	c, err := LoadFromFS(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, c.Missing("xx"))

	_, err = LoadFromFS(fstest.MapFS{"locales/tr.yaml": {Data: []byte("a: \"A\"\n")}})
	assert.Error(t, err, "base locale is required")

	_, err = LoadFromFS(fstest.MapFS{})
	assert.Error(t, err)
}
