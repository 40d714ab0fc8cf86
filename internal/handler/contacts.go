// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oscode/platform-go/internal/model"
	"github.com/oscode/platform-go/internal/store"
)

// AdminListContacts handles GET /api/admin/contact-forms: all submissions,
// newest first.
func (h *Handler) AdminListContacts(w http.ResponseWriter, r *http.Request) {
	opts := &store.FindOptions{Sort: "-created_at"}
	listEntities[model.ContactSubmission](h, w, r, model.CollectionContacts, store.Filter{}, opts)
}

// DeleteContact handles DELETE /api/admin/contact-forms/{id}. Submissions
// carry no app-assigned id, so the route id is the store identity.
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.deleteEntity(w, r, model.CollectionContacts, "Contact form", store.Filter{"_id": store.DocID(id)})
}
