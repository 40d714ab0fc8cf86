// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the HTTP handlers for the platform's public and
// admin JSON APIs.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/microcosm-cc/bluemonday"

	"github.com/oscode/platform-go/internal/auth"
	"github.com/oscode/platform-go/internal/middleware"
	"github.com/oscode/platform-go/internal/store"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	docs        store.Store
	gate        *auth.Gate
	sanitizer   *bluemonday.Policy
	uploadsDir  string
	frontendDir string
}

// New creates the API handler.
func New(docs store.Store, gate *auth.Gate, uploadsDir, frontendDir string) *Handler {
	return &Handler{
		docs:        docs,
		gate:        gate,
		sanitizer:   bluemonday.StrictPolicy(),
		uploadsDir:  uploadsDir,
		frontendDir: frontendDir,
	}
}

// Routes assembles the full HTTP surface: public API, guarded admin API,
// uploaded images, and the SPA fallback.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Route("/api", func(r chi.Router) {
		// Public surface
		r.Post("/contact", h.SubmitContact)
		r.Get("/events", h.PublicEvents)
		r.Get("/jobs", h.PublicJobs)
		r.Get("/mentors", h.PublicMentors)
		r.Get("/team-members", h.PublicTeamMembers)
		r.Get("/stats", h.PublicStats)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)

			// Everything else requires a live session.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSession(h.gate))

				r.Get("/verify", h.Verify)
				r.Get("/dashboard-stats", h.DashboardStats)
				r.Post("/upload-image", h.UploadImage)

				r.Get("/team-members", h.AdminListTeamMembers)
				r.Post("/team-members", h.CreateTeamMember)
				r.Put("/team-members/{id}", h.UpdateTeamMember)
				r.Delete("/team-members/{id}", h.DeleteTeamMember)

				r.Get("/events", h.AdminListEvents)
				r.Post("/events", h.CreateEvent)
				r.Put("/events/{id}", h.UpdateEvent)
				r.Delete("/events/{id}", h.DeleteEvent)

				r.Get("/mentors", h.AdminListMentors)
				r.Post("/mentors", h.CreateMentor)
				r.Put("/mentors/{id}", h.UpdateMentor)
				r.Delete("/mentors/{id}", h.DeleteMentor)

				// Jobs expose list and create only.
				r.Get("/jobs", h.AdminListJobs)
				r.Post("/jobs", h.CreateJob)

				r.Get("/contact-forms", h.AdminListContacts)
				r.Delete("/contact-forms/{id}", h.DeleteContact)
			})
		})
	})

	r.Get("/uploads/*", h.ServeUpload)
	r.NotFound(h.ServeFrontend)

	return r
}

// listEntities writes all documents in a collection matching filter as a
// bare JSON array.
func listEntities[T any](h *Handler, w http.ResponseWriter, r *http.Request, collection string, filter store.Filter, opts *store.FindOptions) {
	var items []T
	if err := h.docs.Find(r.Context(), collection, filter, opts, &items); err != nil {
		WriteInternalError(w, err.Error())
		return
	}
	if items == nil {
		items = []T{}
	}
	WriteJSON(w, http.StatusOK, items)
}

// updateEntity applies a partial patch to the entity with the given app id
// and reports 404 when the store matches nothing.
func (h *Handler) updateEntity(w http.ResponseWriter, r *http.Request, collection, entityName, id string, patch store.Filter) {
	if len(patch) == 0 {
		WriteBadRequest(w, "No fields to update")
		return
	}

	matched, err := h.docs.UpdateOne(r.Context(), collection, store.Filter{"id": id}, patch)
	if err != nil {
		WriteInternalError(w, err.Error())
		return
	}
	if matched == 0 {
		WriteNotFound(w, entityName+" not found")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": entityName + " updated"})
}

// deleteEntity removes the entity matching filter and reports 404 when the
// store deletes nothing.
func (h *Handler) deleteEntity(w http.ResponseWriter, r *http.Request, collection, entityName string, filter store.Filter) {
	deleted, err := h.docs.DeleteOne(r.Context(), collection, filter)
	if err != nil {
		WriteInternalError(w, err.Error())
		return
	}
	if deleted == 0 {
		WriteNotFound(w, entityName+" not found")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": entityName + " deleted"})
}
