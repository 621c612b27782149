// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bienes-raices/internal/app"
	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/service"
	"github.com/MKhiriev/go-bienes-raices/internal/utils"
	"github.com/MKhiriev/go-bienes-raices/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CatalogService.ListCategories(r.Context())
	if err != nil {
		h.internalError(w, r, err, "*Handler.listCategories")
		return
	}

	h.respond(w, r, http.StatusOK, categories)
}

func (h *Handler) listPrices(w http.ResponseWriter, r *http.Request) {
	prices, err := h.services.CatalogService.ListPrices(r.Context())
	if err != nil {
		h.internalError(w, r, err, "*Handler.listPrices")
		return
	}

	h.respond(w, r, http.StatusOK, prices)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.CatalogService.Home(r.Context())
	if err != nil {
		h.internalError(w, r, err, "*Handler.home")
		return
	}

	h.respond(w, r, http.StatusOK, models.HomeResponse{HomePage: page, Session: visitor(r)})
}

func (h *Handler) categoryProperties(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.respond(w, r, http.StatusNotFound, models.MessageResponse{Message: app.MsgCategoryNotFound})
		return
	}

	category, properties, err := h.services.CatalogService.PropertiesByCategory(r.Context(), id)
	if errors.Is(err, service.ErrCategoryNotFound) {
		h.respond(w, r, statusFromError(err), models.MessageResponse{Message: app.MsgCategoryNotFound})
		return
	}
	if err != nil {
		h.internalError(w, r, err, "*Handler.categoryProperties")
		return
	}

	h.respond(w, r, http.StatusOK, models.CategoryResponse{
		Category:   category,
		Properties: properties,
		Session:    visitor(r),
	})
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	var request models.SearchRequest
	if err := utils.DecodeJSON(r.Body, &request); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.search").Msg("invalid JSON was passed")
		h.respond(w, r, http.StatusBadRequest, models.MessageResponse{Message: app.MsgInvalidRequest})
		return
	}

	properties, err := h.services.CatalogService.Search(r.Context(), request.Term)
	if errors.Is(err, service.ErrEmptySearchTerm) {
		h.respond(w, r, statusFromError(err), models.MessageResponse{Errors: []string{app.MsgEmptySearchTerm}})
		return
	}
	if err != nil {
		h.internalError(w, r, err, "*Handler.search")
		return
	}

	h.respond(w, r, http.StatusOK, models.SearchResponse{
		Term:       request.Term,
		Properties: properties,
		Session:    visitor(r),
	})
}

// visitor returns the session attached by the identify middleware, or nil
// for anonymous visitors.
func visitor(r *http.Request) *models.SessionResponse {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return nil
	}
	return &models.SessionResponse{UserID: session.UserID, Name: session.Name}
}
