// Copyright (c) 2026 Faststamps. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction, ensuring
handlers do not depend on chi directly.
*/
package requestutil

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}
