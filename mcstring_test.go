package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/CUSTIS-public/CUSTIS.i18n/culture"
	"github.com/CUSTIS-public/CUSTIS.i18n/fallback"
)

var (
	enUS = language.MustParse("en-US")
	frFR = language.MustParse("fr-FR")
	deDE = language.MustParse("de-DE")
)

func TestSetLocalized(t *testing.T) {
	v := New(language.English, "hello")

	t.Run("adds an entry", func(t *testing.T) {
		got := v.SetLocalized(language.French, "bonjour")
		assert.True(t, got.ContainsCulture(language.French))
		assert.Equal(t, 2, got.Len())
	})

	t.Run("overwrites an entry", func(t *testing.T) {
		got := v.SetLocalized(language.English, "hi")
		value, ok := got.GetStringExact(language.English)
		require.True(t, ok)
		assert.Equal(t, "hi", value)
		assert.Equal(t, 1, got.Len())
	})

	t.Run("receiver is untouched", func(t *testing.T) {
		_ = v.SetLocalized(language.English, "changed")
		_ = v.SetLocalized(language.German, "hallo")
		value, ok := v.GetStringExact(language.English)
		require.True(t, ok)
		assert.Equal(t, "hello", value)
		assert.Equal(t, 1, v.Len())
	})
}

func TestRemove(t *testing.T) {
	v := FromMap(map[language.Tag]string{
		language.English: "hello",
		language.French:  "bonjour",
	})

	got := v.Remove(language.French)
	assert.False(t, got.ContainsCulture(language.French))
	assert.True(t, got.ContainsCulture(language.English))

	t.Run("removing an absent culture is a no-op", func(t *testing.T) {
		assert.True(t, v.Remove(language.German).Equal(v))
	})

	t.Run("removing the last entry yields Empty", func(t *testing.T) {
		assert.True(t, New(language.English, "x").Remove(language.English).Equal(Empty))
	})

	t.Run("receiver is untouched", func(t *testing.T) {
		assert.True(t, v.ContainsCulture(language.French))
	})
}

func TestMerge(t *testing.T) {
	a := FromMap(map[language.Tag]string{
		language.English: "a-english",
		language.French:  "a-french",
	})
	b := FromMap(map[language.Tag]string{
		language.French: "b-french",
		language.German: "b-german",
	})

	merged := a.Merge(b)

	t.Run("union of cultures", func(t *testing.T) {
		assert.Equal(t, 3, merged.Len())
	})

	t.Run("receiver wins on collisions", func(t *testing.T) {
		value, ok := merged.GetStringExact(language.French)
		require.True(t, ok)
		assert.Equal(t, "a-french", value)
	})

	t.Run("other side fills the gaps", func(t *testing.T) {
		value, ok := merged.GetStringExact(language.German)
		require.True(t, ok)
		assert.Equal(t, "b-german", value)
	})

	t.Run("merge with Empty", func(t *testing.T) {
		assert.True(t, a.Merge(Empty).Equal(a))
		assert.True(t, Empty.Merge(a).Equal(a))
	})
}

func TestGetString(t *testing.T) {
	fallback.SetDefault(nil)

	v := FromMap(map[language.Tag]string{
		language.English: "hello",
		frFR:             "salut",
	})

	t.Run("exact hit", func(t *testing.T) {
		value, ok := v.GetString(language.English)
		require.True(t, ok)
		assert.Equal(t, "hello", value)
	})

	t.Run("hierarchy fallback", func(t *testing.T) {
		value, ok := v.GetString(enUS)
		require.True(t, ok)
		assert.Equal(t, "hello", value)
	})

	t.Run("not found", func(t *testing.T) {
		value, ok := v.GetString(deDE)
		assert.False(t, ok)
		assert.Equal(t, "", value)
	})

	t.Run("explicitly empty is still found", func(t *testing.T) {
		empty := New(language.German, "")
		value, ok := empty.GetString(deDE)
		require.True(t, ok)
		assert.Equal(t, "", value)
	})

	t.Run("empty value never resolves", func(t *testing.T) {
		_, ok := Empty.GetString(language.English)
		assert.False(t, ok)
	})
}

func TestGetCurrentString(t *testing.T) {
	fallback.SetDefault(nil)

	v := New(language.German, "hallo")

	culture.SetCurrent(deDE)
	value, ok := v.GetCurrentString()
	require.True(t, ok)
	assert.Equal(t, "hallo", value)

	culture.SetCurrent(frFR)
	_, ok = v.GetCurrentString()
	assert.False(t, ok, "not-found stays observable for the display culture")
	assert.Equal(t, "", v.String())
}

func TestGetStringWith(t *testing.T) {
	cfg, err := fallback.NewConfig([]string{"fr", "en"}, []string{"*"})
	require.NoError(t, err)

	v := New(language.English, "hello")

	t.Run("configured chain bridges cultures", func(t *testing.T) {
		value, ok := v.GetStringWith(cfg, frFR)
		require.True(t, ok)
		assert.Equal(t, "hello", value)
	})

	t.Run("empty wildcard means no expansion", func(t *testing.T) {
		_, ok := v.GetStringWith(cfg, deDE)
		assert.False(t, ok)
	})

	t.Run("nil resolver degrades to exact lookup", func(t *testing.T) {
		_, ok := v.GetStringWith(nil, enUS)
		assert.False(t, ok)
	})
}

func TestGetStringExact(t *testing.T) {
	fallback.SetDefault(nil)
	v := New(language.English, "hello")

	_, ok := v.GetStringExact(enUS)
	assert.False(t, ok, "exact lookup must ignore the resolver")

	value, ok := v.GetStringExact(language.English)
	require.True(t, ok)
	assert.Equal(t, "hello", value)
}

func TestStringFamily(t *testing.T) {
	fallback.SetDefault(nil)
	culture.SetCurrent(enUS)

	v := New(language.English, "hello")

	assert.Equal(t, "hello", v.String())
	assert.Equal(t, "hello", v.StringFor(enUS))
	assert.Equal(t, "", v.StringFor(deDE), "not-found coerces to empty")
	assert.Equal(t, "", Empty.String())

	cfg, err := fallback.NewConfig([]string{"de", "en"}, []string{"*"})
	require.NoError(t, err)
	assert.Equal(t, "hello", v.StringWith(cfg, deDE))
}

func TestIsEmptyAndIsWhiteSpace(t *testing.T) {
	t.Run("empty value", func(t *testing.T) {
		assert.True(t, Empty.IsEmpty())
		assert.True(t, Empty.IsWhiteSpace())
	})

	t.Run("whitespace only", func(t *testing.T) {
		v := New(language.English, "   ")
		assert.False(t, v.IsEmpty())
		assert.True(t, v.IsWhiteSpace())
	})

	t.Run("empty strings only", func(t *testing.T) {
		v := FromMap(map[language.Tag]string{
			language.English: "",
			language.French:  "",
		})
		assert.True(t, v.IsEmpty())
		assert.True(t, v.IsWhiteSpace())
	})

	t.Run("any real content", func(t *testing.T) {
		v := FromMap(map[language.Tag]string{
			language.English: "",
			language.French:  "x",
		})
		assert.False(t, v.IsEmpty())
		assert.False(t, v.IsWhiteSpace())
	})
}

func TestCultures(t *testing.T) {
	v := FromMap(map[language.Tag]string{
		deDE:             "hallo",
		language.English: "hello",
		frFR:             "salut",
	})

	var names []string
	for _, tag := range v.Cultures() {
		names = append(names, tag.String())
	}
	assert.Equal(t, []string{"de-DE", "en", "fr-FR"}, names, "sorted by canonical name")
	assert.Empty(t, Empty.Cultures())
}

func TestEqual(t *testing.T) {
	a := FromMap(map[language.Tag]string{
		language.English: "hello",
		language.French:  "bonjour",
	})

	t.Run("same entries built differently", func(t *testing.T) {
		b := New(language.French, "bonjour").SetLocalized(language.English, "hello")
		assert.True(t, a.Equal(b))
		assert.True(t, b.Equal(a))
	})

	t.Run("different value", func(t *testing.T) {
		b := a.SetLocalized(language.French, "salut")
		assert.False(t, a.Equal(b))
	})

	t.Run("different culture set", func(t *testing.T) {
		assert.False(t, a.Equal(a.Remove(language.French)))
	})

	t.Run("fallback plays no part", func(t *testing.T) {
		// en-US resolves to the same string on both sides, but raw
		// storage differs.
		b := a.SetLocalized(enUS, "hello")
		assert.False(t, a.Equal(b))
	})
}

func TestHash(t *testing.T) {
	a := FromMap(map[language.Tag]string{
		language.English: "hello",
		language.French:  "bonjour",
	})
	b := New(language.French, "bonjour").SetLocalized(language.English, "hello")

	assert.Equal(t, a.Hash(), b.Hash(), "equal values must hash equally")
	assert.Zero(t, Empty.Hash())
	assert.NotZero(t, New(language.English, "hello").Hash())
}

func TestImmutabilityUnderAllMutators(t *testing.T) {
	fallback.SetDefault(nil)

	v := FromMap(map[language.Tag]string{
		language.English: "hello",
		language.French:  "bonjour",
	})
	snapshot := FromMap(map[language.Tag]string{
		language.English: "hello",
		language.French:  "bonjour",
	})

	_ = v.SetLocalized(language.German, "hallo")
	_ = v.Remove(language.English)
	_ = v.Merge(New(language.German, "hallo"))
	_ = v.ToUpper()
	_ = v.ToLower()
	_ = v.PadLeft(20, '*')
	_ = v.PadRight(20, '*')
	_ = Format(v, "x")
	_ = Join(v, "a", "b")

	assert.True(t, v.Equal(snapshot))
}
