// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/clip-keeper/internal/app"
	"github.com/MKhiriev/clip-keeper/internal/utils"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. It answers
// 405 with a JSON error body and an Allow header listing the methods that
// are registered for the requested path.
//
// The lookup walks every route of router, subrouters included, and compares
// the full pattern with [http.Request.URL.Path]. Parameterised segments are
// not expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if route == r.URL.Path {
				allowed = append(allowed, method)
			}
			return nil
		})

		if len(allowed) > 0 {
			sort.Strings(allowed)
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}
