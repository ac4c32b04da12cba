// Copyright (c) 2026 Faststamps. All rights reserved.

package catalog_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faststamps/catalog-api/internal/catalog"
	"github.com/faststamps/catalog-api/internal/platform/locale"
	"github.com/faststamps/catalog-api/pkg/pagination"
)

func newTestService(t *testing.T) *catalog.Service {
	t.Helper()
	return catalog.NewService(newTestStore(t), slog.Default())
}

/*
TestService_ListStamps verifies the total reflects the filtered set before windowing.
*/
func TestService_ListStamps(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	total, page := service.ListStamps(ctx, catalog.Filter{}, pagination.Params{})
	assert.Equal(t, 5, total)
	assert.Len(t, page, 5)

	// The window shrinks the page, never the reported total.
	total, page = service.ListStamps(ctx, catalog.Filter{}, pagination.Params{Start: 2, Count: 2})
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "Poste-1-a", page[0].ID.String())
	assert.Equal(t, "Poste-1-b", page[1].ID.String())

	// Filters narrow the total itself.
	total, page = service.ListStamps(ctx, catalog.Filter{Title: "Ceres"}, pagination.Params{Count: 1})
	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, "Poste-1", page[0].ID.String())

	// A window past the end yields an empty page.
	total, page = service.ListStamps(ctx, catalog.Filter{}, pagination.Params{Start: 100})
	assert.Equal(t, 5, total)
	assert.Empty(t, page)
}

/*
TestService_GetStamp verifies resolution of a stamp with its variant group.
*/
func TestService_GetStamp(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	// A member of a group of three carries the full group, itself included.
	stamp, err := service.GetStamp(ctx, "Poste-1-a")
	require.NoError(t, err)
	assert.Equal(t, "a", stamp.ID.Variant)
	require.Len(t, stamp.Variants, 3)
	assert.Equal(t, "Poste-1", stamp.Variants[""].ID.String())
	assert.Equal(t, "Poste-1-a", stamp.Variants["a"].ID.String())
	assert.Equal(t, "Poste-1-b", stamp.Variants["b"].ID.String())

	// The base stamp resolves to the same group.
	base, err := service.GetStamp(ctx, "Poste-1")
	require.NoError(t, err)
	assert.Len(t, base.Variants, 3)

	// A group of one has no variants map at all.
	lone, err := service.GetStamp(ctx, "Taxe-3")
	require.NoError(t, err)
	assert.Nil(t, lone.Variants)
}

/*
TestService_GetStamp_Failures verifies malformed and absent identifiers stay distinct.
*/
func TestService_GetStamp_Failures(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.GetStamp(ctx, "not an identifier")
	assert.ErrorIs(t, err, catalog.ErrMalformedID)

	_, err = service.GetStamp(ctx, "Poste-999")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

/*
TestService_ImageName verifies identifier-to-image resolution.
*/
func TestService_ImageName(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	name, err := service.ImageName(ctx, "Poste-1-b")
	require.NoError(t, err)
	assert.Equal(t, "poste-1-b.jpg", name)

	_, err = service.ImageName(ctx, "Poste-999")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

/*
TestService_SearchTitles verifies the wildcard search endpoint path end to end.
*/
func TestService_SearchTitles(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	titles, err := service.SearchTitles(ctx, "C*", locale.English)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ceres"}, titles)

	_, err = service.SearchTitles(ctx, "C**", locale.English)
	assert.ErrorIs(t, err, catalog.ErrMultipleWildcards)
}

/*
TestService_DistinctAttributes verifies years, colors, and values are
deduplicated, sorted, and localized where applicable.
*/
func TestService_DistinctAttributes(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	assert.Equal(t, []string{"1850", "1851", "1871", "1930"}, service.ListYears(ctx))

	assert.Equal(t,
		[]string{"Bistre brown", "Dark brown and green", "Yellow bistre", "Yellow bistre verge"},
		service.ListColors(ctx, locale.English))
	assert.Equal(t,
		[]string{"bistre-brun", "bistre-jaune", "bistre-jaune vergé", "brun-foncé et vert"},
		service.ListColors(ctx, locale.French))

	assert.Equal(t,
		[]string{"1.50 French franc", "10 French centime", "25 French centime"},
		service.ListValues(ctx, locale.English))
}
