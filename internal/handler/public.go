// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/oscode/platform-go/internal/model"
	"github.com/oscode/platform-go/internal/store"
)

// teamMembersFloor is returned as the public member count when the true
// count is zero. Deliberate presentation policy carried over from the
// original site, not a bug.
const teamMembersFloor = 50

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	FormType string `json:"form_type"`
}

// SubmitContact handles POST /api/contact. Unauthenticated.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return
	}

	missing := firstMissing(map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"subject": req.Subject,
		"message": req.Message,
	})
	if missing != "" {
		WriteBadRequest(w, "Missing required field: "+missing)
		return
	}

	submission := model.ContactSubmission{
		Name:      h.sanitizer.Sanitize(req.Name),
		Email:     h.sanitizer.Sanitize(req.Email),
		Subject:   h.sanitizer.Sanitize(req.Subject),
		Message:   h.sanitizer.Sanitize(req.Message),
		FormType:  req.FormType,
		CreatedAt: time.Now(),
	}
	if submission.FormType == "" {
		submission.FormType = model.DefaultFormType
	}

	id, err := h.docs.Insert(r.Context(), model.CollectionContacts, submission)
	if err != nil {
		WriteInternalError(w, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Contact form submitted successfully",
		"id":      id,
	})
}

// PublicEvents handles GET /api/events: active events only.
func (h *Handler) PublicEvents(w http.ResponseWriter, r *http.Request) {
	listEntities[model.Event](h, w, r, model.CollectionEvents, store.Filter{"is_active": true}, nil)
}

// PublicJobs handles GET /api/jobs: active jobs only.
func (h *Handler) PublicJobs(w http.ResponseWriter, r *http.Request) {
	listEntities[model.Job](h, w, r, model.CollectionJobs, store.Filter{"is_active": true}, nil)
}

// PublicMentors handles GET /api/mentors: active mentors only.
func (h *Handler) PublicMentors(w http.ResponseWriter, r *http.Request) {
	listEntities[model.Mentor](h, w, r, model.CollectionMentors, store.Filter{"is_active": true}, nil)
}

// PublicTeamMembers handles GET /api/team-members: active members only.
func (h *Handler) PublicTeamMembers(w http.ResponseWriter, r *http.Request) {
	listEntities[model.TeamMember](h, w, r, model.CollectionTeamMembers, store.Filter{"is_active": true}, nil)
}

// PublicStatsResponse is the aggregate site statistics payload.
type PublicStatsResponse struct {
	TotalEvents      int64 `json:"total_events"`
	ActiveJobs       int64 `json:"active_jobs"`
	MentorsAvailable int64 `json:"mentors_available"`
	TotalMembers     int64 `json:"total_members"`
}

// PublicStats handles GET /api/stats: counts of active records per type.
// The four counts are independent reads, issued concurrently.
func (h *Handler) PublicStats(w http.ResponseWriter, r *http.Request) {
	active := store.Filter{"is_active": true}
	var stats PublicStatsResponse

	g, ctx := errgroup.WithContext(r.Context())
	counts := []struct {
		collection string
		dest       *int64
	}{
		{model.CollectionEvents, &stats.TotalEvents},
		{model.CollectionJobs, &stats.ActiveJobs},
		{model.CollectionMentors, &stats.MentorsAvailable},
		{model.CollectionTeamMembers, &stats.TotalMembers},
	}
	for _, c := range counts {
		c := c
		g.Go(func() error {
			n, err := h.docs.Count(ctx, c.collection, active)
			if err != nil {
				return err
			}
			*c.dest = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		WriteInternalError(w, err.Error())
		return
	}

	if stats.TotalMembers == 0 {
		stats.TotalMembers = teamMembersFloor
	}
	WriteJSON(w, http.StatusOK, stats)
}

// firstMissing returns the name of the first empty required field, checked
// in a stable order.
func firstMissing(fields map[string]string) string {
	for _, name := range []string{"name", "email", "subject", "message"} {
		if fields[name] == "" {
			return name
		}
	}
	return ""
}
