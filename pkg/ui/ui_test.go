// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ui

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package ui -destination ./mock_logger.go -source=../../internal/logging/interfaces.go

func serve(t *testing.T, target string) *http.Response {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	api := NewAPI(NewMockLoggerInterface(ctrl))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	mux.ServeHTTP(w, req)

	return w.Result()
}

func TestLoginPage(t *testing.T) {
	res := serve(t, "/login")
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected an HTML content type, got %q", ct)
	}

	body, _ := io.ReadAll(res.Body)
	page := string(body)
	if !strings.Contains(page, `action="/auth/login"`) {
		t.Error("expected the login form to post to /auth/login")
	}
	if !strings.Contains(page, "/auth/try-demo") {
		t.Error("expected the demo button to call /auth/try-demo")
	}
}

func TestDashboardPage(t *testing.T) {
	res := serve(t, "/dashboard")
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, res.StatusCode)
	}

	body, _ := io.ReadAll(res.Body)
	page := string(body)
	for _, endpoint := range []string{"/api/v1/work-orders", "/api/v1/assets", "/api/v1/parts/low-stock", "/api/v1/ai/chat", "/auth/demo-status"} {
		if !strings.Contains(page, endpoint) {
			t.Errorf("expected the dashboard to reference %s", endpoint)
		}
	}
	if !strings.Contains(page, `window.location = "/login"`) {
		t.Error("expected the dashboard to bounce to /login on 401")
	}
}

func TestIndexRedirects(t *testing.T) {
	res := serve(t, "/")
	defer res.Body.Close()

	if res.StatusCode != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != "/dashboard" {
		t.Errorf("expected redirect to /dashboard, got %q", loc)
	}
}
