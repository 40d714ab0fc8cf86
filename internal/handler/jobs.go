// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/oscode/platform-go/internal/model"
	"github.com/oscode/platform-go/internal/store"
)

// CreateJobRequest is the admin job creation payload.
type CreateJobRequest struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	JobType      string   `json:"job_type"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	ApplyURL     string   `json:"apply_url"`
	IsActive     *bool    `json:"is_active"`
}

// AdminListJobs handles GET /api/admin/jobs: active and inactive.
func (h *Handler) AdminListJobs(w http.ResponseWriter, r *http.Request) {
	listEntities[model.Job](h, w, r, model.CollectionJobs, store.Filter{}, nil)
}

// CreateJob handles POST /api/admin/jobs. Jobs have no admin update or
// delete route; deactivation happens through reposting.
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Title == "" || req.Company == "" {
		WriteBadRequest(w, "title and company are required")
		return
	}

	job := model.Job{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		JobType:      req.JobType,
		Description:  req.Description,
		Requirements: req.Requirements,
		ApplyURL:     req.ApplyURL,
		IsActive:     req.IsActive == nil || *req.IsActive,
		CreatedAt:    time.Now(),
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}

	if _, err := h.docs.Insert(r.Context(), model.CollectionJobs, job); err != nil {
		WriteInternalError(w, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Job created", "id": job.ID})
}
