package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that did not match any registered pattern,
// keeping metric cardinality bounded.
const unmatchedRoute = "unmatched"

// routePattern returns the chi pattern the request matched, such as
// "/api/v1/registrations/{id}/account". Only meaningful after the router
// has served the request.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}

// registrationID returns the {id} path parameter, or "" outside the
// registration routes.
func registrationID(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.URLParam("id")
}
