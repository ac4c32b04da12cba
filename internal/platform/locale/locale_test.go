// Copyright (c) 2026 Faststamps. All rights reserved.

package locale_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faststamps/catalog-api/internal/platform/locale"
)

/*
TestSelect verifies that only the highest-weighted tag's primary subtag decides.
*/
func TestSelect(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   locale.Lang
	}{
		{"absent", "", locale.English},
		{"plain_english", "en", locale.English},
		{"plain_french", "fr", locale.French},
		{"french_region", "fr-CH", locale.French},
		{"french_wins_by_weight", "fr-CH, fr;q=0.9, en;q=0.8", locale.French},
		{"english_wins_by_weight", "fr;q=0.2, en;q=0.9", locale.English},
		{"lower_weighted_french_is_ignored", "de, fr;q=0.5", locale.English},
		{"unrelated_language", "ja-JP", locale.English},
		{"garbage", ";;;not a header;;;", locale.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.Select(tt.header))
		})
	}
}

/*
TestParseAcceptLanguage verifies weighted-list parsing order and failure modes.
*/
func TestParseAcceptLanguage(t *testing.T) {
	prefs := locale.ParseAcceptLanguage("en;q=0.5, fr")

	require.Len(t, prefs, 2)
	// Highest quality factor first, independent of header order.
	assert.Equal(t, "fr", prefs[0].Tag.String())
	assert.Greater(t, prefs[0].Weight, prefs[1].Weight)

	assert.Nil(t, locale.ParseAcceptLanguage(""))
	assert.Nil(t, locale.ParseAcceptLanguage("!!!"))
}

/*
TestFromRequest verifies header extraction from an HTTP request.
*/
func TestFromRequest(t *testing.T) {
	request := httptest.NewRequest("GET", "/stamps", nil)
	assert.Equal(t, locale.English, locale.FromRequest(request))

	request.Header.Set("Accept-Language", "fr")
	assert.Equal(t, locale.French, locale.FromRequest(request))
}
