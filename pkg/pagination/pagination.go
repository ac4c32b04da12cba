// Copyright (c) 2026 Faststamps. All rights reserved.

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes two navigation styles:
//
//   - Window params: the `start`/`count` query parameters of the catalogue
//     list endpoints (1-based start position, optional count).
//   - Page specs: a full description of a page-link bar (current page, linked
//     page window, ellipsis and first/last flags) computed by [NewSpec] and
//     consumed by the web front end when rendering search results.
package pagination

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// # Window Parameters

var (
	// ErrStartOutOfRange is returned when the `start` query parameter is zero or negative.
	ErrStartOutOfRange = errors.New("Query parameter 'start' must be >= 1.")

	// ErrCountOutOfRange is returned when the `count` query parameter is zero or negative.
	ErrCountOutOfRange = errors.New("Query parameter 'count' must be >= 1.")
)

// Params holds the parsed `start` and `count` window from a request's query string.
//
// A zero field means the parameter was absent: Start defaults to the first
// element and Count to the full remainder.
type Params struct {
	// Start is the 1-based position of the first item to return. 0 = absent.
	Start int

	// Count is the maximum number of items to return. 0 = absent (all).
	Count int
}

// FromRequest parses the `start` and `count` query parameters.
//
// Absent parameters yield zero fields. Present parameters must be >= 1;
// anything else is a client error ([ErrStartOutOfRange], [ErrCountOutOfRange]).
func FromRequest(r *http.Request) (Params, error) {
	params := Params{}

	if raw := r.URL.Query().Get("start"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Params{}, ErrStartOutOfRange
		}
		params.Start = n
	}

	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Params{}, ErrCountOutOfRange
		}
		params.Count = n
	}

	return params, nil
}

// Window converts the params into a half-open slice interval [lo, hi)
// clamped to a result set of the given total size.
//
// The window is applied after filtering, so callers report the total
// matched count separately from the returned page.
func (p Params) Window(total int) (lo, hi int) {
	lo = 0
	if p.Start > 0 {
		lo = p.Start - 1
	}

	hi = total
	if p.Count > 0 {
		hi = lo + p.Count
	}

	if lo > total {
		lo = total
	}
	if hi > total {
		hi = total
	}

	return lo, hi
}

// # Page-Link Specification

// Spec describes how to render a page-navigation bar for a result set.
//
// It is a pure value computed per request by [NewSpec]; nothing caches or
// mutates it afterwards.
type Spec struct {
	// RPP is the number of results per page the spec was computed for.
	RPP int `json:"rpp"`

	// PageCount is the total number of pages (0 when the result set is empty).
	PageCount int `json:"page_count"`

	// CurrentPage is the 1-based page the `start` offset falls on (0 when empty).
	CurrentPage int `json:"current_page"`

	// LinkedPages is the inclusive window of page numbers to expose as links.
	LinkedPages []int `json:"linked_pages"`

	// NextPage and PreviousPage are pass-through rendering hints supplied by
	// the caller; they are not derived from the inputs.
	NextPage     bool `json:"next_page"`
	PreviousPage bool `json:"previous_page"`

	// FirstPage is true when page 1 is outside the linked window and deserves
	// its own dedicated link. LastPage is the symmetric flag for the final page.
	FirstPage bool `json:"first_page"`
	LastPage  bool `json:"last_page"`

	// LeftEllipsis is true when pages exist between the first-page link and
	// the linked window. RightEllipsis is the symmetric flag on the right.
	LeftEllipsis  bool `json:"left_ellipsis"`
	RightEllipsis bool `json:"right_ellipsis"`
}

// NewSpec computes the page-link specification for a result set.
//
// Inputs:
//   - count: total number of matching items (>= 0)
//   - start: 0-based index of the first item on the current page; must be a
//     multiple of rpp
//   - rpp: results per page (> 0)
//   - linkedPages: maximum number of page links to expose (>= 0); for an even
//     number the window is biased one extra page to the left of the current page
//   - previousPage, nextPage: pass-through rendering hints
//
// Precondition violations are caller bugs and panic rather than being
// silently coerced.
func NewSpec(count, start, rpp, linkedPages int, previousPage, nextPage bool) Spec {
	if count < 0 {
		panic(fmt.Sprintf("pagination: count must be >= 0, got %d", count))
	}
	if start < 0 {
		panic(fmt.Sprintf("pagination: start must be >= 0, got %d", start))
	}
	if rpp <= 0 {
		panic(fmt.Sprintf("pagination: rpp must be > 0, got %d", rpp))
	}
	if start%rpp != 0 {
		panic(fmt.Sprintf("pagination: start (%d) must be a multiple of rpp (%d)", start, rpp))
	}
	if linkedPages < 0 {
		panic(fmt.Sprintf("pagination: linkedPages must be >= 0, got %d", linkedPages))
	}

	// Degenerate case: nothing to paginate, nothing to link.
	if count == 0 {
		return Spec{RPP: rpp, LinkedPages: []int{}}
	}

	pageCount := (count-1)/rpp + 1
	currentPage := start/rpp + 1

	// Compute the inclusive [first, last] window of linked page numbers.
	first, last := 0, -1
	switch {
	case linkedPages >= pageCount:
		first, last = 1, pageCount
	case linkedPages == 0:
		// Empty window.
	case linkedPages == 1:
		first, last = currentPage, currentPage
	default:
		first = currentPage - linkedPages/2
		last = currentPage + linkedPages/2
		if linkedPages%2 == 0 {
			last--
		}
		// Shift the window back inside [1, pageCount] without shrinking it.
		if first <= 0 {
			last = last + 1 - first
			first = 1
		}
		if last > pageCount {
			first = first - (last - pageCount)
			last = pageCount
		}
	}

	linked := make([]int, 0, max(0, last-first+1))
	for page := first; page <= last; page++ {
		linked = append(linked, page)
	}

	spec := Spec{
		RPP:          rpp,
		PageCount:    pageCount,
		CurrentPage:  currentPage,
		LinkedPages:  linked,
		NextPage:     nextPage,
		PreviousPage: previousPage,
		FirstPage:    !containsPage(linked, 1),
		LastPage:     !containsPage(linked, pageCount),
	}
	spec.LeftEllipsis = len(linked) > 0 && linked[0] > 1
	spec.RightEllipsis = len(linked) > 0 && linked[len(linked)-1] < pageCount

	return spec
}

// containsPage reports whether the page number appears in the linked window.
func containsPage(pages []int, page int) bool {
	for _, p := range pages {
		if p == page {
			return true
		}
	}
	return false
}
