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

// CreateTeamMemberRequest is the admin team member creation payload.
type CreateTeamMemberRequest struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Year        string `json:"year"`
	Department  string `json:"department"`
	Bio         string `json:"bio"`
	ImageURL    string `json:"image_url"`
	LinkedinURL string `json:"linkedin_url"`
	GithubURL   string `json:"github_url"`
	Email       string `json:"email"`
	IsActive    *bool  `json:"is_active"`
}

// TeamMemberPatch is the admin team member update payload.
type TeamMemberPatch struct {
	Name        *string `json:"name"`
	Role        *string `json:"role"`
	Year        *string `json:"year"`
	Department  *string `json:"department"`
	Bio         *string `json:"bio"`
	ImageURL    *string `json:"image_url"`
	LinkedinURL *string `json:"linkedin_url"`
	GithubURL   *string `json:"github_url"`
	Email       *string `json:"email"`
	IsActive    *bool   `json:"is_active"`
}

func (p TeamMemberPatch) fields() store.Filter {
	patch := store.Filter{}
	setString(patch, "name", p.Name)
	setString(patch, "role", p.Role)
	setString(patch, "year", p.Year)
	setString(patch, "department", p.Department)
	setString(patch, "bio", p.Bio)
	setString(patch, "image_url", p.ImageURL)
	setString(patch, "linkedin_url", p.LinkedinURL)
	setString(patch, "github_url", p.GithubURL)
	setString(patch, "email", p.Email)
	setBool(patch, "is_active", p.IsActive)
	return patch
}

// AdminListTeamMembers handles GET /api/admin/team-members: active and
// inactive.
func (h *Handler) AdminListTeamMembers(w http.ResponseWriter, r *http.Request) {
	listEntities[model.TeamMember](h, w, r, model.CollectionTeamMembers, store.Filter{}, nil)
}

// CreateTeamMember handles POST /api/admin/team-members.
func (h *Handler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Name == "" || req.Role == "" {
		WriteBadRequest(w, "name and role are required")
		return
	}

	member := model.TeamMember{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Role:        req.Role,
		Year:        req.Year,
		Department:  req.Department,
		Bio:         req.Bio,
		ImageURL:    req.ImageURL,
		LinkedinURL: req.LinkedinURL,
		GithubURL:   req.GithubURL,
		Email:       req.Email,
		IsActive:    req.IsActive == nil || *req.IsActive,
		CreatedAt:   time.Now(),
	}

	if _, err := h.docs.Insert(r.Context(), model.CollectionTeamMembers, member); err != nil {
		WriteInternalError(w, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Team member created", "id": member.ID})
}

// UpdateTeamMember handles PUT /api/admin/team-members/{id}.
func (h *Handler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	var patch TeamMemberPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return
	}
	h.updateEntity(w, r, model.CollectionTeamMembers, "Team member", chi.URLParam(r, "id"), patch.fields())
}

// DeleteTeamMember handles DELETE /api/admin/team-members/{id}.
func (h *Handler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	h.deleteEntity(w, r, model.CollectionTeamMembers, "Team member", store.Filter{"id": chi.URLParam(r, "id")})
}
