// Copyright (c) 2026 Faststamps. All rights reserved.

package catalog

import (
	"errors"
	"sort"
	"strings"

	"github.com/faststamps/catalog-api/internal/platform/locale"
	"github.com/faststamps/catalog-api/pkg/slice"
)

// Wildcard is the single wildcard character of the title search grammar.
const Wildcard = "*"

// TitleMatcher is a compiled wildcard pattern over localized stamp titles.
//
// The grammar knows exactly one wildcard star:
//
//	"Ce*"   titles starting with "Ce"
//	"*nt"   titles ending with "nt"
//	"*ent*" titles containing "ent"
//	"C*s"   titles starting with "C" and ending with "s"
//	"*"     every title (as does the empty pattern)
//	"Ceres" the exact title
//
// A star in the middle anchors both fragments independently to the title's
// ends; it is not an arbitrary-infix match.
type TitleMatcher struct {
	exact    string
	prefix   string
	suffix   string
	contains string
	all      bool
}

// CompileTitlePattern builds a matcher from a raw query pattern. At most
// one star is permitted, with a single exception: a star at each end
// ("*ent*") forms the contains pattern. Every other multi-star pattern is
// rejected; the caller maps the failure to a validation error.
func CompileTitlePattern(pattern string) (TitleMatcher, error) {
	if pattern == "" || pattern == Wildcard {
		return TitleMatcher{all: true}, nil
	}

	if len(pattern) > 2 && strings.HasPrefix(pattern, Wildcard) && strings.HasSuffix(pattern, Wildcard) {
		inner := pattern[1 : len(pattern)-1]
		if !strings.Contains(inner, Wildcard) {
			return TitleMatcher{contains: inner}, nil
		}
	}

	if strings.Count(pattern, Wildcard) > 1 {
		return TitleMatcher{}, ErrMultipleWildcards
	}

	switch {
	case strings.HasSuffix(pattern, Wildcard):
		return TitleMatcher{prefix: strings.TrimSuffix(pattern, Wildcard)}, nil
	case strings.HasPrefix(pattern, Wildcard):
		return TitleMatcher{suffix: strings.TrimPrefix(pattern, Wildcard)}, nil
	case strings.Contains(pattern, Wildcard):
		before, after, _ := strings.Cut(pattern, Wildcard)
		return TitleMatcher{prefix: before, suffix: after}, nil
	default:
		return TitleMatcher{exact: pattern}, nil
	}
}

// ErrMultipleWildcards rejects patterns with more than one star. Its text is
// returned to clients verbatim inside the validation error.
var ErrMultipleWildcards = errors.New("Multiple wildcard stars '*' in query is not supported.")

// Match reports whether a title satisfies the pattern.
func (m TitleMatcher) Match(title string) bool {
	switch {
	case m.all:
		return true
	case m.exact != "":
		return title == m.exact
	case m.contains != "":
		return strings.Contains(title, m.contains)
	default:
		return strings.HasPrefix(title, m.prefix) && strings.HasSuffix(title, m.suffix)
	}
}

// SearchTitles returns the distinct localized titles matching the pattern,
// sorted lexicographically. The result is stable across calls regardless of
// store iteration order.
func SearchTitles(stamps []*Stamp, matcher TitleMatcher, lang locale.Lang) []string {
	titles := slice.Map(stamps, func(s *Stamp) string { return s.Title(lang) })
	titles = slice.Filter(titles, matcher.Match)
	titles = slice.Unique(titles)
	sort.Strings(titles)
	return titles
}
