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

// CreateMentorRequest is the admin mentor creation payload.
type CreateMentorRequest struct {
	Name        string `json:"name"`
	Expertise   string `json:"expertise"`
	Company     string `json:"company"`
	Bio         string `json:"bio"`
	LinkedinURL string `json:"linkedin_url"`
	IsActive    *bool  `json:"is_active"`
}

// MentorPatch is the admin mentor update payload.
type MentorPatch struct {
	Name        *string `json:"name"`
	Expertise   *string `json:"expertise"`
	Company     *string `json:"company"`
	Bio         *string `json:"bio"`
	LinkedinURL *string `json:"linkedin_url"`
	IsActive    *bool   `json:"is_active"`
}

func (p MentorPatch) fields() store.Filter {
	patch := store.Filter{}
	setString(patch, "name", p.Name)
	setString(patch, "expertise", p.Expertise)
	setString(patch, "company", p.Company)
	setString(patch, "bio", p.Bio)
	setString(patch, "linkedin_url", p.LinkedinURL)
	setBool(patch, "is_active", p.IsActive)
	return patch
}

// AdminListMentors handles GET /api/admin/mentors: active and inactive.
func (h *Handler) AdminListMentors(w http.ResponseWriter, r *http.Request) {
	listEntities[model.Mentor](h, w, r, model.CollectionMentors, store.Filter{}, nil)
}

// CreateMentor handles POST /api/admin/mentors.
func (h *Handler) CreateMentor(w http.ResponseWriter, r *http.Request) {
	var req CreateMentorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Name == "" || req.Expertise == "" {
		WriteBadRequest(w, "name and expertise are required")
		return
	}

	mentor := model.Mentor{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Expertise:   req.Expertise,
		Company:     req.Company,
		Bio:         req.Bio,
		LinkedinURL: req.LinkedinURL,
		IsActive:    req.IsActive == nil || *req.IsActive,
		CreatedAt:   time.Now(),
	}

	if _, err := h.docs.Insert(r.Context(), model.CollectionMentors, mentor); err != nil {
		WriteInternalError(w, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Mentor created", "id": mentor.ID})
}

// UpdateMentor handles PUT /api/admin/mentors/{id}.
func (h *Handler) UpdateMentor(w http.ResponseWriter, r *http.Request) {
	var patch MentorPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return
	}
	h.updateEntity(w, r, model.CollectionMentors, "Mentor", chi.URLParam(r, "id"), patch.fields())
}

// DeleteMentor handles DELETE /api/admin/mentors/{id}.
func (h *Handler) DeleteMentor(w http.ResponseWriter, r *http.Request) {
	h.deleteEntity(w, r, model.CollectionMentors, "Mentor", store.Filter{"id": chi.URLParam(r, "id")})
}
