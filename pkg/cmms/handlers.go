// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmms

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/chatterfix/internal/validation"
	"github.com/canonical/chatterfix/pkg/authentication"
)

type API struct {
	service   ServiceInterface
	validator validation.ValidatorInterface
}

func NewAPI(service ServiceInterface, validator validation.ValidatorInterface) *API {
	return &API{
		service:   service,
		validator: validator,
	}
}

// RegisterSessionEndpoints mounts the resource routes. The router is expected
// to already carry the session middleware.
func (a *API) RegisterSessionEndpoints(router chi.Router) {
	router.Route("/api/v1/work-orders", func(r chi.Router) {
		r.Get("/", a.listWorkOrders)
		r.Post("/", a.createWorkOrder)
		r.Get("/{id}", a.getWorkOrder)
		r.Put("/{id}", a.updateWorkOrder)
		r.Post("/{id}/status", a.transitionWorkOrder)
		r.Delete("/{id}", a.deleteWorkOrder)
	})

	router.Route("/api/v1/assets", func(r chi.Router) {
		r.Get("/", a.listAssets)
		r.Post("/", a.createAsset)
		r.Get("/{id}", a.getAsset)
		r.Put("/{id}", a.updateAsset)
		r.Delete("/{id}", a.deleteAsset)
	})

	router.Route("/api/v1/parts", func(r chi.Router) {
		r.Get("/", a.listParts)
		r.Get("/low-stock", a.listLowStockParts)
		r.Post("/", a.createPart)
		r.Get("/{id}", a.getPart)
		r.Put("/{id}", a.updatePart)
		r.Post("/{id}/adjust-stock", a.adjustStock)
		r.Delete("/{id}", a.deletePart)
	})

	router.Route("/api/v1/pm-rules", func(r chi.Router) {
		r.Get("/", a.listPMRules)
		r.Post("/", a.createPMRule)
		r.Post("/run-due", a.runDuePMRules)
		r.Get("/{id}", a.getPMRule)
		r.Put("/{id}", a.updatePMRule)
		r.Delete("/{id}", a.deletePMRule)
	})
}

func (a *API) principal(w http.ResponseWriter, r *http.Request) (*authentication.Principal, bool) {
	p, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	return p, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "Resource not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "Permission denied", http.StatusForbidden)
	case errors.Is(err, ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrLimitExceeded):
		http.Error(w, "Plan limit exceeded", http.StatusBadRequest)
	case errors.Is(err, ErrInsufficientStock):
		http.Error(w, "Stock cannot drop below zero", http.StatusBadRequest)
	case errors.Is(err, ErrPartNumberTaken):
		http.Error(w, "Part number already in use", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidReference):
		http.Error(w, "Referenced resource does not exist", http.StatusBadRequest)
	default:
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}

// Work orders

func (a *API) createWorkOrder(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(WorkOrderRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	wo, err := a.service.CreateWorkOrder(r.Context(), p, req)
	if err != nil {
		writeError(w, err, "Failed to create work order")
		return
	}

	writeJSON(w, http.StatusCreated, wo)
}

func (a *API) listWorkOrders(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	size, _ := strconv.ParseInt(q.Get("size"), 10, 64)

	list, err := a.service.ListWorkOrders(r.Context(), p, q.Get("status"), page, size)
	if err != nil {
		writeError(w, err, "Failed to list work orders")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (a *API) getWorkOrder(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	wo, err := a.service.GetWorkOrder(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "Failed to get work order")
		return
	}

	writeJSON(w, http.StatusOK, wo)
}

func (a *API) updateWorkOrder(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(WorkOrderRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	wo, err := a.service.UpdateWorkOrder(r.Context(), p, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, err, "Failed to update work order")
		return
	}

	writeJSON(w, http.StatusOK, wo)
}

func (a *API) transitionWorkOrder(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(TransitionRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	wo, err := a.service.TransitionWorkOrder(r.Context(), p, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeError(w, err, "Failed to transition work order")
		return
	}

	writeJSON(w, http.StatusOK, wo)
}

func (a *API) deleteWorkOrder(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteWorkOrder(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		writeError(w, err, "Failed to delete work order")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Assets

func (a *API) createAsset(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(AssetRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	asset, err := a.service.CreateAsset(r.Context(), p, req)
	if err != nil {
		writeError(w, err, "Failed to create asset")
		return
	}

	writeJSON(w, http.StatusCreated, asset)
}

func (a *API) listAssets(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	list, err := a.service.ListAssets(r.Context(), p)
	if err != nil {
		writeError(w, err, "Failed to list assets")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (a *API) getAsset(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	asset, err := a.service.GetAsset(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "Failed to get asset")
		return
	}

	writeJSON(w, http.StatusOK, asset)
}

func (a *API) updateAsset(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(AssetRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	asset, err := a.service.UpdateAsset(r.Context(), p, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, err, "Failed to update asset")
		return
	}

	writeJSON(w, http.StatusOK, asset)
}

func (a *API) deleteAsset(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteAsset(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		writeError(w, err, "Failed to delete asset")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Parts

func (a *API) createPart(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(PartRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	part, err := a.service.CreatePart(r.Context(), p, req)
	if err != nil {
		writeError(w, err, "Failed to create part")
		return
	}

	writeJSON(w, http.StatusCreated, part)
}

func (a *API) listParts(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	list, err := a.service.ListParts(r.Context(), p)
	if err != nil {
		writeError(w, err, "Failed to list parts")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (a *API) listLowStockParts(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	list, err := a.service.ListLowStockParts(r.Context(), p)
	if err != nil {
		writeError(w, err, "Failed to list low stock parts")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (a *API) getPart(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	part, err := a.service.GetPart(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "Failed to get part")
		return
	}

	writeJSON(w, http.StatusOK, part)
}

func (a *API) updatePart(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(PartRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	part, err := a.service.UpdatePart(r.Context(), p, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, err, "Failed to update part")
		return
	}

	writeJSON(w, http.StatusOK, part)
}

func (a *API) adjustStock(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(StockAdjustment)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	part, err := a.service.AdjustStock(r.Context(), p, chi.URLParam(r, "id"), req.Delta)
	if err != nil {
		writeError(w, err, "Failed to adjust stock")
		return
	}

	writeJSON(w, http.StatusOK, part)
}

func (a *API) deletePart(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	if err := a.service.DeletePart(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		writeError(w, err, "Failed to delete part")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PM schedule rules

func (a *API) createPMRule(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(PMRuleRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rule, err := a.service.CreatePMRule(r.Context(), p, req)
	if err != nil {
		writeError(w, err, "Failed to create PM rule")
		return
	}

	writeJSON(w, http.StatusCreated, rule)
}

func (a *API) listPMRules(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	list, err := a.service.ListPMRules(r.Context(), p)
	if err != nil {
		writeError(w, err, "Failed to list PM rules")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (a *API) getPMRule(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	rule, err := a.service.GetPMRule(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "Failed to get PM rule")
		return
	}

	writeJSON(w, http.StatusOK, rule)
}

func (a *API) updatePMRule(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(PMRuleRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rule, err := a.service.UpdatePMRule(r.Context(), p, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, err, "Failed to update PM rule")
		return
	}

	writeJSON(w, http.StatusOK, rule)
}

func (a *API) deletePMRule(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	if err := a.service.DeletePMRule(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		writeError(w, err, "Failed to delete PM rule")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) runDuePMRules(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	result, err := a.service.RunDuePMRules(r.Context(), p)
	if err != nil {
		writeError(w, err, "Failed to run PM rules")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
