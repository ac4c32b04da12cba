// Copyright (c) 2026 Faststamps. All rights reserved.

/*
Package search assembles the paginated search-results pages consumed by the
web front end.

Where the catalogue listing endpoints expose raw filter/window primitives,
this package renders one fixed view: the non-variant stamps matching a title
query, cut into pages of a configured size, together with the full page-link
specification (current page, linked window, ellipsis and first/last flags)
the front end needs to draw a navigation bar.
*/
package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/faststamps/catalog-api/internal/catalog"
	"github.com/faststamps/catalog-api/internal/platform/locale"
	"github.com/faststamps/catalog-api/internal/platform/validate"
	"github.com/faststamps/catalog-api/pkg/pagination"
	"github.com/faststamps/catalog-api/pkg/slice"
)

// Results is one page of search results plus the metadata to navigate the rest.
type Results struct {
	// Query echoes the title query the page was computed for.
	Query string `json:"query"`

	// Count is the total number of matching records, variants included.
	Count int `json:"count"`

	// StampCount is the number of matching base stamps; pagination runs
	// over these. VariantCount is the remainder.
	StampCount   int `json:"stamp_count"`
	VariantCount int `json:"variant_count"`

	// Stamps is the current page's slice of matching base stamps.
	Stamps []*catalog.Stamp `json:"stamps"`

	// Pages describes the page-link bar for the full result set.
	Pages pagination.Spec `json:"pages"`
}

// Service computes search-results pages over the catalogue.
type Service struct {
	repo        catalog.Repository
	rpp         int
	linkedPages int
	logger      *slog.Logger
}

// NewService creates a search service. rpp is the fixed page size and
// linkedPages the maximum number of page links exposed per page.
func NewService(repo catalog.Repository, rpp, linkedPages int, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		rpp:         rpp,
		linkedPages: linkedPages,
		logger:      logger.With(slog.String("service", "search")),
	}
}

// Search computes the results page at the given offset.
//
// q is matched against the localized title exactly; an empty q matches the
// whole catalogue. start is the 0-based index of the page's first base stamp
// and must land on a page boundary — the page-spec engine treats a misaligned
// offset as a caller bug, so it is rejected here as a client error instead.
func (s *Service) Search(ctx context.Context, q string, start int, lang locale.Lang) (Results, error) {
	v := &validate.Validator{}
	v.Custom("start", start < 0, "Query parameter 'start' must be >= 0.")
	if !v.HasErrors() {
		v.Custom("start", start%s.rpp != 0,
			fmt.Sprintf("Query parameter 'start' must be a multiple of the page size (%d).", s.rpp))
	}
	if err := v.Err(); err != nil {
		return Results{}, err
	}

	filter := catalog.Filter{Title: q, Lang: lang}
	matched := filter.Apply(s.repo.All())

	// Variants never get their own result entry; they are reachable
	// through their base stamp's variant group.
	stamps := slice.Filter(matched, func(stamp *catalog.Stamp) bool {
		return !stamp.IsVariant()
	})

	lo := min(start, len(stamps))
	hi := min(start+s.rpp, len(stamps))

	return Results{
		Query:        q,
		Count:        len(matched),
		StampCount:   len(stamps),
		VariantCount: len(matched) - len(stamps),
		Stamps:       stamps[lo:hi],
		Pages: pagination.NewSpec(
			len(stamps), start, s.rpp, s.linkedPages,
			start > 0,
			start+s.rpp < len(stamps),
		),
	}, nil
}
