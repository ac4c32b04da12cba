// Copyright (c) 2026 Faststamps. All rights reserved.

package catalog

import (
	"slices"

	"github.com/faststamps/catalog-api/internal/platform/locale"
	"github.com/faststamps/catalog-api/pkg/slice"
)

// Filter narrows the catalogue down for a listing request.
//
// Every criterion is optional; a zero-valued field is a no-op. Localized
// criteria (Title, Colors, Value) compare against the attribute in Lang.
type Filter struct {
	// Title must equal the stamp's localized title exactly.
	Title string

	// Issued keeps stamps whose issue year is one of the given values.
	Issued []string

	// Colors keeps stamps whose localized color is one of the given values.
	Colors []string

	// Value must equal the stamp's localized printed value exactly.
	Value string

	// Types keeps stamps whose catalogue section is one of the given values.
	Types []string

	// Lang selects which language localized criteria compare against.
	Lang locale.Lang
}

// Apply runs the filter criteria over stamps in a fixed order: title,
// issued, color, value, type. The order is observable only through per-step
// timing, never through the result set, since every step is a pure subset
// operation.
//
// The input slice is never mutated; with no criteria set the input is
// returned as-is.
func (f Filter) Apply(stamps []*Stamp) []*Stamp {
	if f.Title != "" {
		stamps = slice.Filter(stamps, func(s *Stamp) bool {
			return s.Title(f.Lang) == f.Title
		})
	}
	if len(f.Issued) > 0 {
		stamps = slice.Filter(stamps, func(s *Stamp) bool {
			return slices.Contains(f.Issued, s.Issued)
		})
	}
	if len(f.Colors) > 0 {
		stamps = slice.Filter(stamps, func(s *Stamp) bool {
			return slices.Contains(f.Colors, s.Color(f.Lang))
		})
	}
	if f.Value != "" {
		stamps = slice.Filter(stamps, func(s *Stamp) bool {
			return s.Value(f.Lang) == f.Value
		})
	}
	if len(f.Types) > 0 {
		stamps = slice.Filter(stamps, func(s *Stamp) bool {
			return slices.Contains(f.Types, s.ID.Type)
		})
	}
	return stamps
}
