// Copyright (c) 2026 Faststamps. All rights reserved.

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faststamps/catalog-api/internal/catalog"
	"github.com/faststamps/catalog-api/internal/platform/locale"
)

/*
TestCompileTitlePattern_Match exercises every form of the wildcard grammar.
*/
func TestCompileTitlePattern_Match(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		title   string
		want    bool
	}{
		{"exact_hit", "Ceres", "Ceres", true},
		{"exact_miss_on_substring", "Ceres", "Ceres type II", false},
		{"exact_is_case_sensitive", "ceres", "Ceres", false},

		{"prefix_hit", "Ce*", "Ceres", true},
		{"prefix_miss", "Ce*", "Marianne", false},
		{"prefix_empty_title", "Ce*", "", false},

		{"suffix_hit", "*nt", "Pont du Gard", false},
		{"suffix_hit_at_end", "*rd", "Pont du Gard", true},
		{"suffix_miss", "*nt", "Ceres", false},

		{"contains_hit", "*ont*", "Pont du Gard", true},
		{"contains_hit_in_middle", "*du*", "Pont du Gard", true},
		{"contains_miss", "*xyz*", "Pont du Gard", false},

		// A middle star anchors both fragments to the title's ends; it is
		// not an infix match, so overlapping fragments can both be satisfied.
		{"middle_star_hit", "C*s", "Ceres", true},
		{"middle_star_miss_on_suffix", "C*x", "Ceres", false},
		{"middle_star_miss_on_prefix", "X*s", "Ceres", false},
		{"middle_star_overlapping_fragments", "Ceres*Ceres", "Ceres", true},

		{"lone_star_matches_all", "*", "anything", true},
		{"empty_pattern_matches_all", "", "anything", true},
		{"lone_star_matches_empty_title", "*", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher, err := catalog.CompileTitlePattern(tt.pattern)
			require.NoError(t, err)

			assert.Equal(t, tt.want, matcher.Match(tt.title))
		})
	}
}

/*
TestCompileTitlePattern_MultipleStars verifies rejection of every multi-star
pattern except the contains form.
*/
func TestCompileTitlePattern_MultipleStars(t *testing.T) {
	for _, pattern := range []string{"**", "*a*b", "a*b*", "*a*b*", "a**b", "***"} {
		t.Run(pattern, func(t *testing.T) {
			_, err := catalog.CompileTitlePattern(pattern)

			require.ErrorIs(t, err, catalog.ErrMultipleWildcards)
			assert.Equal(t, "Multiple wildcard stars '*' in query is not supported.", err.Error())
		})
	}

	// The contains form is the sanctioned two-star pattern.
	_, err := catalog.CompileTitlePattern("*ent*")
	assert.NoError(t, err)
}

/*
TestSearchTitles verifies distinctness, sorting, and locale selection of results.
*/
func TestSearchTitles(t *testing.T) {
	stamps := testStamps()

	all, err := catalog.CompileTitlePattern("*")
	require.NoError(t, err)

	// Three Ceres records collapse into one title; results sort
	// lexicographically regardless of store order.
	titles := catalog.SearchTitles(stamps, all, locale.English)
	assert.Equal(t, []string{"Ceres", "Plane over Marseille", "Postage due"}, titles)

	titles = catalog.SearchTitles(stamps, all, locale.French)
	assert.Equal(t, []string{"Avion survolant Marseille.", "Chiffre-taxe.", "Cérès."}, titles)

	prefix, err := catalog.CompileTitlePattern("P*")
	require.NoError(t, err)
	titles = catalog.SearchTitles(stamps, prefix, locale.English)
	assert.Equal(t, []string{"Plane over Marseille", "Postage due"}, titles)

	none, err := catalog.CompileTitlePattern("Zeppelin*")
	require.NoError(t, err)
	assert.Empty(t, catalog.SearchTitles(stamps, none, locale.English))
}
