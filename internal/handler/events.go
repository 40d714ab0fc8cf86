// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/oscode/platform-go/internal/model"
	"github.com/oscode/platform-go/internal/store"
)

// CreateEventRequest is the admin event creation payload.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Venue       string `json:"venue"`
	EventType   string `json:"event_type"`
	IsActive    *bool  `json:"is_active"`
}

// EventPatch is the admin event update payload. Only non-nil fields are
// written; id and created_at are never patchable.
type EventPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Venue       *string `json:"venue"`
	EventType   *string `json:"event_type"`
	IsActive    *bool   `json:"is_active"`
}

func (p EventPatch) fields() store.Filter {
	patch := store.Filter{}
	setString(patch, "title", p.Title)
	setString(patch, "description", p.Description)
	setString(patch, "date", p.Date)
	setString(patch, "time", p.Time)
	setString(patch, "venue", p.Venue)
	setString(patch, "event_type", p.EventType)
	setBool(patch, "is_active", p.IsActive)
	return patch
}

// AdminListEvents handles GET /api/admin/events: active and inactive.
func (h *Handler) AdminListEvents(w http.ResponseWriter, r *http.Request) {
	listEntities[model.Event](h, w, r, model.CollectionEvents, store.Filter{}, nil)
}

// CreateEvent handles POST /api/admin/events.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Title == "" || req.Description == "" || req.Date == "" || req.Time == "" || req.Venue == "" {
		WriteBadRequest(w, "title, description, date, time and venue are required")
		return
	}

	event := model.Event{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		EventType:   req.EventType,
		IsActive:    req.IsActive == nil || *req.IsActive,
		CreatedAt:   time.Now(),
	}
	if event.EventType == "" {
		event.EventType = model.DefaultEventType
	}

	if _, err := h.docs.Insert(r.Context(), model.CollectionEvents, event); err != nil {
		WriteInternalError(w, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Event created", "id": event.ID})
}

// UpdateEvent handles PUT /api/admin/events/{id}.
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var patch EventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return
	}
	h.updateEntity(w, r, model.CollectionEvents, "Event", chi.URLParam(r, "id"), patch.fields())
}

// DeleteEvent handles DELETE /api/admin/events/{id}.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	h.deleteEntity(w, r, model.CollectionEvents, "Event", store.Filter{"id": chi.URLParam(r, "id")})
}

// setString adds a patch field when the pointer is non-nil.
func setString(patch store.Filter, key string, v *string) {
	if v != nil {
		patch[key] = *v
	}
}

// setBool adds a patch field when the pointer is non-nil.
func setBool(patch store.Filter, key string, v *bool) {
	if v != nil {
		patch[key] = *v
	}
}
