// Copyright (c) 2026 Faststamps. All rights reserved.

package search_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faststamps/catalog-api/internal/search"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	service := search.NewService(newTestStore(t), 10, 5, slog.Default())
	return search.NewHandler(service).Routes()
}

/*
TestHandler_Search verifies the happy path, envelope shape, and Content-Language.
*/
func TestHandler_Search(t *testing.T) {
	handler := newTestHandler(t)

	request := httptest.NewRequest("GET", "/?q=Ceres&start=10", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "en", recorder.Header().Get("Content-Language"))

	var envelope struct {
		Data search.Results `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	results := envelope.Data
	assert.Equal(t, "Ceres", results.Query)
	assert.Equal(t, 25, results.StampCount)
	assert.Len(t, results.Stamps, 10)
	assert.Equal(t, 2, results.Pages.CurrentPage)
}

/*
TestHandler_Search_BadStart verifies non-numeric and misaligned offsets are 400s.
*/
func TestHandler_Search_BadStart(t *testing.T) {
	handler := newTestHandler(t)

	for _, url := range []string{"/?start=abc", "/?start=-10", "/?start=3"} {
		request := httptest.NewRequest("GET", url, nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code, url)
		assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR")
	}
}
