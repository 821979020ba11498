// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod builds the handler registered via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 by default when a path matches a route but the method
// does not. The API hides its route table from probing instead: a wrong
// method on an existing path gets the same 404 an unknown path would.
// Only exact pattern matches are inspected; parameterised segments are
// not expanded during the lookup.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
