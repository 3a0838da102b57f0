package translations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT_AllLocalesHaveNavKeys(t *testing.T) {
	for _, locale := range Supported {
		for _, key := range []string{"nav.home", "nav.about", "nav.projects", "nav.contact"} {
			value := T(locale, key)
			assert.NotEqual(t, key, value, "locale %s missing %s", locale, key)
		}
	}
}

func TestT_FallsBackToEnglish(t *testing.T) {
	// Key present in English only should still resolve for other locales
	assert.Equal(t, T(LocaleEnglish, "hero.greeting"), T(Locale("de"), "hero.greeting"))
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no.such.key", T(LocaleEnglish, "no.such.key"))
}

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		locale Locale
		want   Direction
	}{
		{LocaleArabic, DirectionRTL},
		{LocaleEnglish, DirectionLTR},
		{LocaleFrench, DirectionLTR},
		{LocaleSpanish, DirectionLTR},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DirectionOf(tt.locale), "locale %s", tt.locale)
	}
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported(LocaleFrench))
	assert.False(t, IsSupported(Locale("de")))
}

func TestCatalog_MergesEnglishGaps(t *testing.T) {
	catalog := Catalog(LocaleFrench)
	// Every English key must be present in the merged catalog
	for key := range Catalog(LocaleEnglish) {
		assert.Contains(t, catalog, key)
	}
}
