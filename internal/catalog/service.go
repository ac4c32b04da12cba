// Copyright (c) 2026 Faststamps. All rights reserved.

package catalog

import (
	"context"
	"log/slog"
	"sort"

	"github.com/faststamps/catalog-api/internal/platform/locale"
	"github.com/faststamps/catalog-api/pkg/pagination"
	"github.com/faststamps/catalog-api/pkg/slice"
)

// Service exposes the catalogue query operations.
//
// All methods are pure reads over the immutable store and are safe for
// concurrent use.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a catalogue service backed by the given repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With(slog.String("service", "catalog")),
	}
}

// ListStamps applies the filter and then the start/count window.
//
// The returned total is the size of the filtered set before windowing, so
// callers can paginate correctly.
func (s *Service) ListStamps(ctx context.Context, filter Filter, window pagination.Params) (total int, page []*Stamp) {
	matched := filter.Apply(s.repo.All())
	lo, hi := window.Window(len(matched))
	return len(matched), matched[lo:hi]
}

// GetStamp resolves a textual identifier to its record and variant group.
//
// The variants map includes the resolved stamp itself and is nil when the
// group has a single member. Malformed identifiers and absent records are
// reported through distinct errors; both read as a 404 to clients.
func (s *Service) GetStamp(ctx context.Context, rawID string) (*StampWithVariants, error) {
	id, err := ParseStampID(rawID)
	if err != nil {
		return nil, err
	}

	stamp, err := s.repo.Lookup(id)
	if err != nil {
		return nil, err
	}

	group := s.repo.Siblings(id.Type, id.Number)
	var variants map[string]*Stamp
	if len(group) > 1 {
		variants = make(map[string]*Stamp, len(group))
		for _, sibling := range group {
			variants[sibling.ID.Variant] = sibling
		}
	}

	return &StampWithVariants{Stamp: *stamp, Variants: variants}, nil
}

// ImageName resolves an identifier and returns the record's image file name,
// relative to the configured images directory.
func (s *Service) ImageName(ctx context.Context, rawID string) (string, error) {
	id, err := ParseStampID(rawID)
	if err != nil {
		return "", err
	}

	stamp, err := s.repo.Lookup(id)
	if err != nil {
		return "", err
	}
	return stamp.Image, nil
}

// SearchTitles evaluates a wildcard pattern against localized titles and
// returns the distinct matches, sorted.
func (s *Service) SearchTitles(ctx context.Context, pattern string, lang locale.Lang) ([]string, error) {
	matcher, err := CompileTitlePattern(pattern)
	if err != nil {
		return nil, err
	}
	return SearchTitles(s.repo.All(), matcher, lang), nil
}

// ListYears returns the distinct issue years, sorted.
func (s *Service) ListYears(ctx context.Context) []string {
	return s.distinct(func(stamp *Stamp) string { return stamp.Issued })
}

// ListColors returns the distinct localized colors, sorted.
func (s *Service) ListColors(ctx context.Context, lang locale.Lang) []string {
	return s.distinct(func(stamp *Stamp) string { return stamp.Color(lang) })
}

// ListValues returns the distinct localized printed values, sorted.
func (s *Service) ListValues(ctx context.Context, lang locale.Lang) []string {
	return s.distinct(func(stamp *Stamp) string { return stamp.Value(lang) })
}

func (s *Service) distinct(attr func(*Stamp) string) []string {
	values := slice.Unique(slice.Map(s.repo.All(), attr))
	sort.Strings(values)
	return values
}
