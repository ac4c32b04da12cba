// Copyright (c) 2026 Faststamps. All rights reserved.

/*
Package catalog defines the core domain of the Faststamps catalogue.

It manages the read-only collection of stamp records: an in-memory store
indexed by the Yvert-Tellier composite identifier, the resolver that turns a
textual identifier into a record plus its variant group, the filter pipeline
behind the /stamps listing, and the wildcard title search.

Core Responsibility:

  - Store: immutable, indexed record set loaded once at startup.
  - Resolver: composite-identifier parsing and variant-group lookup.
  - Discovery: locale-aware filtering and single-wildcard text search.

All entities are immutable after load; every query allocates only
request-scoped data.
*/
package catalog

import (
	"errors"
	"strings"

	"github.com/faststamps/catalog-api/internal/platform/locale"
)

// IDSeparator joins the parts of a textual stamp identifier ("Poste-1-a").
//
// There is no escaping rule: a type or catalogue number that itself contains
// the separator cannot be round-tripped. This is a known limitation of the
// identifier format, pinned by a test rather than silently repaired.
const IDSeparator = "-"

// ErrMalformedID is returned when a textual identifier does not consist of
// 2 or 3 separator-joined parts. It is distinct from [ErrNotFound] so that
// logging and tests can tell a bad identifier from an absent record, even
// though both surface to clients as a plain 404.
var ErrMalformedID = errors.New("catalog: malformed stamp identifier")

// # Composite Identifier

// StampID uniquely identifies a stamp in the catalogue.
//
// An empty Variant denotes the base stamp of its group.
type StampID struct {
	// Type is the catalogue section, e.g. "Poste" or "Pour la poste Aérienne".
	Type string `json:"type"`

	// Number is the Yvert-Tellier catalogue number, e.g. "1". Kept as a
	// string: numbers like "101A" exist and arithmetic is never needed.
	Number string `json:"yt_no"`

	// Variant is the variant code ("a", "b", ...) or "" for the base stamp.
	Variant string `json:"yt_variant"`
}

// ParseStampID parses a textual identifier of the form T-N or T-N-V.
//
// Any other part count yields [ErrMalformedID].
func ParseStampID(raw string) (StampID, error) {
	parts := strings.Split(raw, IDSeparator)
	switch len(parts) {
	case 2:
		return StampID{Type: parts[0], Number: parts[1]}, nil
	case 3:
		return StampID{Type: parts[0], Number: parts[1], Variant: parts[2]}, nil
	default:
		return StampID{}, ErrMalformedID
	}
}

// String re-encodes the identifier, omitting an empty variant part.
func (id StampID) String() string {
	if id.Variant == "" {
		return id.Type + IDSeparator + id.Number
	}
	return id.Type + IDSeparator + id.Number + IDSeparator + id.Variant
}

// GroupKey returns the (type, number) pair shared by all stamps of a group.
func (id StampID) GroupKey() GroupKey {
	return GroupKey{Type: id.Type, Number: id.Number}
}

// GroupKey identifies an item group: a base stamp plus its variants.
type GroupKey struct {
	Type   string
	Number string
}

// # Core Entities

// Stamp is a single catalogue record (possibly a variant).
//
// Textual attributes exist in both English and French; which one a response
// uses is decided per request by [locale.Lang]. Records are immutable once
// loaded.
type Stamp struct {
	ID  StampID `json:"id"`
	URL string  `json:"url"` // e.g. "stamps/Poste-1-a"

	TitleEN string `json:"title_en"` // e.g. "Ceres"
	TitleFR string `json:"title_fr"` // e.g. "Cérès."

	ColorEN string `json:"color_en"` // e.g. "Yellow bistre"
	ColorFR string `json:"color_fr"` // e.g. "bistre-jaune"

	ValueEN string `json:"value_en"` // e.g. "10 French centime"
	ValueFR string `json:"value_fr"` // e.g. "10 c."

	DescriptionFR        string `json:"description_fr"`
	Issued               string `json:"issued"` // issue year, e.g. "1850"
	Years                string `json:"years"`  // series period, e.g. "1849-1850"
	PerforatedDimensions string `json:"perforated_dimensions"`

	// Image is the file name of the stamp's image inside the configured
	// images directory.
	Image string `json:"image"`
}

// Title returns the display title in the requested language.
func (s *Stamp) Title(lang locale.Lang) string {
	if lang == locale.French {
		return s.TitleFR
	}
	return s.TitleEN
}

// Color returns the descriptive color in the requested language.
func (s *Stamp) Color(lang locale.Lang) string {
	if lang == locale.French {
		return s.ColorFR
	}
	return s.ColorEN
}

// Value returns the printed value in the requested language.
func (s *Stamp) Value(lang locale.Lang) string {
	if lang == locale.French {
		return s.ValueFR
	}
	return s.ValueEN
}

// IsVariant reports whether the stamp is a variant rather than the base
// stamp of its group.
func (s *Stamp) IsVariant() bool {
	return s.ID.Variant != ""
}

// StampWithVariants is a resolved stamp enriched with its full item group.
//
// Variants maps variant code to sibling record and includes the resolved
// stamp itself. It is nil when the group has exactly one member, which
// serializes as an explicit JSON null.
type StampWithVariants struct {
	Stamp
	Variants map[string]*Stamp `json:"variants"`
}
