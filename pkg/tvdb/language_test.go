package tvdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLanguages(t *testing.T) {
	set := DefaultLanguages()
	assert.Equal(t, 23, set.Len())

	en, ok := set.Get("en")
	require.True(t, ok)
	assert.Equal(t, "en", en.Abbreviation)
	assert.Equal(t, "English", en.Name)
	assert.Equal(t, 7, en.ID)

	sv, ok := set.Get("sv")
	require.True(t, ok)
	assert.Equal(t, 8, sv.ID)

	assert.True(t, set.Contains("ja"))
	assert.False(t, set.Contains("xx"))
	_, ok = set.Get("xx")
	assert.False(t, ok)
}

func TestLanguageSetAllSorted(t *testing.T) {
	all := DefaultLanguages().All()
	require.Len(t, all, 23)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Abbreviation, all[i].Abbreviation)
	}
	assert.Equal(t, "cs", all[0].Abbreviation)
	assert.Equal(t, "zh", all[len(all)-1].Abbreviation)
}

func TestLanguageString(t *testing.T) {
	l := Language{Abbreviation: "en", Name: "English", ID: 7}
	assert.Equal(t, "<Language (English:en:7)>", l.String())
}
