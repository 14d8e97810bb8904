package model_test

import (
	"testing"

	"pricex-backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestParseRegion(t *testing.T) {
	t.Run("empty defaults to north-america", func(t *testing.T) {
		region, ok := model.ParseRegion("")
		assert.True(t, ok)
		assert.Equal(t, model.RegionNorthAmerica, region)
	})

	t.Run("every known region is accepted", func(t *testing.T) {
		for _, region := range []string{
			"north-america", "south-america", "europe", "mena",
			"asia", "africa", "australia", "russia",
		} {
			_, ok := model.ParseRegion(region)
			assert.True(t, ok, region)
		}
	})

	t.Run("unknown region is rejected", func(t *testing.T) {
		_, ok := model.ParseRegion("atlantis")
		assert.False(t, ok)
	})
}

func TestParseLanguage(t *testing.T) {
	t.Run("empty defaults to en", func(t *testing.T) {
		language, ok := model.ParseLanguage("")
		assert.True(t, ok)
		assert.Equal(t, model.LanguageEN, language)
	})

	t.Run("known codes are accepted", func(t *testing.T) {
		for _, code := range []string{"en", "ar", "es", "fr", "it", "zh", "tr", "ru", "pt", "ur", "hi", "ko"} {
			_, ok := model.ParseLanguage(code)
			assert.True(t, ok, code)
		}
	})

	t.Run("unknown code is rejected", func(t *testing.T) {
		_, ok := model.ParseLanguage("xx")
		assert.False(t, ok)
	})
}
