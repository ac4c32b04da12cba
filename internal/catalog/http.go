// Copyright (c) 2026 Faststamps. All rights reserved.

package catalog

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/faststamps/catalog-api/internal/platform/apperr"
	"github.com/faststamps/catalog-api/internal/platform/constants"
	"github.com/faststamps/catalog-api/internal/platform/ctxutil"
	"github.com/faststamps/catalog-api/internal/platform/locale"
	requestutil "github.com/faststamps/catalog-api/internal/platform/request"
	"github.com/faststamps/catalog-api/internal/platform/respond"
	"github.com/faststamps/catalog-api/pkg/pagination"
	"github.com/faststamps/catalog-api/pkg/query"
)

// Handler implements the HTTP layer for the catalogue domain.
// It translates web requests into domain service calls.
type Handler struct {
	service   *Service
	imagesDir string
}

// NewHandler constructs a new catalogue [Handler] with its service dependency.
// imagesDir is the directory the image endpoint serves stamp files from.
func NewHandler(service *Service, imagesDir string) *Handler {
	return &Handler{service: service, imagesDir: imagesDir}
}

// Routes returns a [chi.Router] configured with the catalogue domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// # Stamp Endpoints
	router.Get("/stamps", handler.listStamps)
	router.Get("/stamps/{stampID}", handler.getStamp)
	router.Get("/stamps/{stampID}/image", handler.getStampImage)

	// # Attribute Discovery Endpoints
	router.Get("/stamp_titles", handler.listTitles)
	router.Get("/stamp_years", handler.listYears)
	router.Get("/stamp_colors", handler.listColors)
	router.Get("/stamp_values", handler.listValues)

	return router
}

// StampList is the response body of the stamp listing endpoint.
//
// Count is the number of stamps matching the filters, before the start/count
// window is applied, so clients can paginate.
type StampList struct {
	Count  int      `json:"count"`
	Stamps []*Stamp `json:"stamps"`
}

// StringValuesList is the response body of the attribute discovery endpoints.
type StringValuesList struct {
	Count  int      `json:"count"`
	Values []string `json:"values"`
}

/*
GET /api/v1/stamps.

Description: Lists catalogue stamps, optionally narrowed by filters and a window.

Request:
  - Query `title`, `value`: exact match on the localized attribute.
  - Query `issued`, `color`, `category`: comma-separated membership lists.
  - Query `start` (>= 1), `count` (>= 1): window over the filtered set.
  - Header `Accept-Language`: selects the language filters compare against.

Response:
  - 200: StampList: Success
  - 400: `start` or `count` out of range
*/
func (handler *Handler) listStamps(writer http.ResponseWriter, request *http.Request) {
	window, err := pagination.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError(err.Error()))
		return
	}

	params := request.URL.Query()
	lang := locale.FromRequest(request)
	filter := Filter{
		Title:  params.Get("title"),
		Issued: query.StringSlice(params.Get("issued")),
		Colors: query.StringSlice(params.Get("color")),
		Value:  params.Get("value"),
		Types:  query.StringSlice(params.Get("category")),
		Lang:   lang,
	}

	total, page := handler.service.ListStamps(request.Context(), filter, window)

	writer.Header().Set(constants.HeaderContentLanguage, string(lang))
	respond.OK(writer, StampList{Count: total, Stamps: page})
}

/*
GET /api/v1/stamps/{stampID}.

Description: Retrieves a single stamp together with its full variant group.

Request:
  - Path `stampID`: 2 or 3 hyphen-joined identifier parts, e.g. "Poste-1-a".

Response:
  - 200: StampWithVariants: Success (`variants` is null for a group of one)
  - 404: Identifier is malformed or matches no record
*/
func (handler *Handler) getStamp(writer http.ResponseWriter, request *http.Request) {
	rawID := requestutil.Param(request, "stampID")

	stamp, err := handler.service.GetStamp(request.Context(), rawID)
	if err != nil {
		respond.Error(writer, request, handler.resolveError(request, rawID, err))
		return
	}

	respond.OK(writer, stamp)
}

/*
GET /api/v1/stamps/{stampID}/image.

Description: Serves the stamp's image file from the configured images directory.

Request:
  - Path `stampID`: 2 or 3 hyphen-joined identifier parts.

Response:
  - 200: image bytes (content type sniffed from the file)
  - 404: Identifier is malformed, matches no record, or the file is absent
*/
func (handler *Handler) getStampImage(writer http.ResponseWriter, request *http.Request) {
	rawID := requestutil.Param(request, "stampID")

	name, err := handler.service.ImageName(request.Context(), rawID)
	if err != nil {
		respond.Error(writer, request, handler.resolveError(request, rawID, err))
		return
	}
	if name == "" {
		respond.Error(writer, request, apperr.NotFound("Stamp image"))
		return
	}

	// ServeFile rejects paths containing ".." before touching the filesystem.
	http.ServeFile(writer, request, filepath.Join(handler.imagesDir, name))
}

/*
GET /api/v1/stamp_titles.

Description: Searches distinct localized stamp titles with a single-wildcard pattern.

Request:
  - Query `q`: wildcard pattern ("Ce*", "*nt", "*ent*", "C*s", "*" or exact).
    Absent means all titles.
  - Header `Accept-Language`: selects the language searched.

Response:
  - 200: StringValuesList: Sorted distinct matching titles
  - 400: More than one wildcard star in `q`
*/
func (handler *Handler) listTitles(writer http.ResponseWriter, request *http.Request) {
	lang := locale.FromRequest(request)

	titles, err := handler.service.SearchTitles(request.Context(), request.URL.Query().Get("q"), lang)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError(err.Error()))
		return
	}

	writer.Header().Set(constants.HeaderContentLanguage, string(lang))
	respond.OK(writer, StringValuesList{Count: len(titles), Values: titles})
}

/*
GET /api/v1/stamp_years.

Description: Lists the distinct issue years present in the catalogue.

Response:
  - 200: StringValuesList: Success
*/
func (handler *Handler) listYears(writer http.ResponseWriter, request *http.Request) {
	years := handler.service.ListYears(request.Context())
	respond.OK(writer, StringValuesList{Count: len(years), Values: years})
}

/*
GET /api/v1/stamp_colors.

Description: Lists the distinct localized stamp colors present in the catalogue.

Response:
  - 200: StringValuesList: Success
*/
func (handler *Handler) listColors(writer http.ResponseWriter, request *http.Request) {
	lang := locale.FromRequest(request)
	colors := handler.service.ListColors(request.Context(), lang)

	writer.Header().Set(constants.HeaderContentLanguage, string(lang))
	respond.OK(writer, StringValuesList{Count: len(colors), Values: colors})
}

/*
GET /api/v1/stamp_values.

Description: Lists the distinct localized printed values present in the catalogue.

Response:
  - 200: StringValuesList: Success
*/
func (handler *Handler) listValues(writer http.ResponseWriter, request *http.Request) {
	lang := locale.FromRequest(request)
	values := handler.service.ListValues(request.Context(), lang)

	writer.Header().Set(constants.HeaderContentLanguage, string(lang))
	respond.OK(writer, StringValuesList{Count: len(values), Values: values})
}

// resolveError maps resolver failures onto the external 404. Malformed
// identifiers and absent records stay distinguishable in the debug log.
func (handler *Handler) resolveError(request *http.Request, rawID string, err error) error {
	logger := ctxutil.GetLogger(request.Context())
	switch {
	case errors.Is(err, ErrMalformedID):
		logger.DebugContext(request.Context(), "stamp_id_malformed", slog.String("stamp_id", rawID))
		return apperr.NotFound("Stamp")
	case errors.Is(err, ErrNotFound):
		logger.DebugContext(request.Context(), "stamp_not_found", slog.String("stamp_id", rawID))
		return apperr.NotFound("Stamp")
	default:
		return err
	}
}
