// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package ui serves the rendered shell pages. All data access happens from
// the browser against the JSON API, the templates only carry the page
// structure.
package ui

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/chatterfix/internal/logging"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type pageData struct {
	Title string
}

type API struct {
	logger logging.LoggerInterface
}

func NewAPI(logger logging.LoggerInterface) *API {
	return &API{
		logger: logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/", a.index)
	mux.Get("/login", a.login)
	mux.Get("/dashboard", a.dashboard)
}

func (a *API) index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	a.render(w, "login.html", pageData{Title: "ChatterFix"})
}

// dashboard serves the shell unauthenticated. The page's own requests hit
// the session-guarded API and bounce the visitor to /login on 401.
func (a *API) dashboard(w http.ResponseWriter, r *http.Request) {
	a.render(w, "dashboard.html", pageData{Title: "ChatterFix"})
}

func (a *API) render(w http.ResponseWriter, name string, data pageData) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		a.logger.Errorf("Failed to render %s: %v", name, err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
