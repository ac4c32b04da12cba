// Copyright (c) 2026 Faststamps. All rights reserved.

package search

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/faststamps/catalog-api/internal/platform/constants"
	"github.com/faststamps/catalog-api/internal/platform/locale"
	"github.com/faststamps/catalog-api/internal/platform/respond"
	"github.com/faststamps/catalog-api/internal/platform/validate"
)

// Handler implements the HTTP layer for the search domain.
type Handler struct {
	service *Service
}

// NewHandler constructs a new search [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the search domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.search)

	return router
}

/*
GET /api/v1/search.

Description: Returns one page of title-search results with page-link metadata.

Request:
  - Query `q`: exact localized title to match; absent matches every stamp.
  - Query `start`: 0-based offset of the page's first stamp; must be a
    multiple of the page size. Absent means 0.
  - Header `Accept-Language`: selects the language `q` compares against.

Response:
  - 200: Results: Success
  - 400: `start` is negative, misaligned, or not a number
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	params := request.URL.Query()

	start := 0
	if raw := params.Get("start"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respond.Error(writer, request,
				validate.RequiredError("start", "Query parameter 'start' must be an integer."))
			return
		}
		start = n
	}

	lang := locale.FromRequest(request)

	results, err := handler.service.Search(request.Context(), params.Get("q"), start, lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set(constants.HeaderContentLanguage, string(lang))
	respond.OK(writer, results)
}
