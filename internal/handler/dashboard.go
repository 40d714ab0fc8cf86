// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/oscode/platform-go/internal/model"
	"github.com/oscode/platform-go/internal/store"
)

// Bounds for the dashboard recent-activity lists.
const (
	recentContactsLimit = 5
	recentEventsLimit   = 3
)

// DashboardCounts holds the per-collection totals shown on the admin
// dashboard.
type DashboardCounts struct {
	TotalEvents      int64 `json:"total_events"`
	ActiveEvents     int64 `json:"active_events"`
	TotalJobs        int64 `json:"total_jobs"`
	TotalMentors     int64 `json:"total_mentors"`
	TotalTeamMembers int64 `json:"total_team_members"`
	TotalContacts    int64 `json:"total_contacts"`
}

// DashboardStatsResponse is a non-transactional snapshot across the content
// collections: staleness between the underlying reads is acceptable for an
// operator dashboard.
type DashboardStatsResponse struct {
	Stats          DashboardCounts           `json:"stats"`
	RecentContacts []model.ContactSubmission `json:"recent_contacts"`
	RecentEvents   []model.Event             `json:"recent_events"`
}

// DashboardStats handles GET /api/admin/dashboard-stats. The underlying
// reads are independent and read-only, so they are issued concurrently.
func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	var resp DashboardStatsResponse

	g, ctx := errgroup.WithContext(r.Context())
	counts := []struct {
		collection string
		filter     store.Filter
		dest       *int64
	}{
		{model.CollectionEvents, store.Filter{}, &resp.Stats.TotalEvents},
		{model.CollectionEvents, store.Filter{"is_active": true}, &resp.Stats.ActiveEvents},
		{model.CollectionJobs, store.Filter{}, &resp.Stats.TotalJobs},
		{model.CollectionMentors, store.Filter{}, &resp.Stats.TotalMentors},
		{model.CollectionTeamMembers, store.Filter{}, &resp.Stats.TotalTeamMembers},
		{model.CollectionContacts, store.Filter{}, &resp.Stats.TotalContacts},
	}
	for _, c := range counts {
		c := c
		g.Go(func() error {
			n, err := h.docs.Count(ctx, c.collection, c.filter)
			if err != nil {
				return err
			}
			*c.dest = n
			return nil
		})
	}
	g.Go(func() error {
		opts := &store.FindOptions{Sort: "-created_at", Limit: recentContactsLimit}
		return h.docs.Find(ctx, model.CollectionContacts, store.Filter{}, opts, &resp.RecentContacts)
	})
	g.Go(func() error {
		opts := &store.FindOptions{Sort: "-created_at", Limit: recentEventsLimit}
		return h.docs.Find(ctx, model.CollectionEvents, store.Filter{}, opts, &resp.RecentEvents)
	})

	if err := g.Wait(); err != nil {
		WriteInternalError(w, err.Error())
		return
	}

	if resp.RecentContacts == nil {
		resp.RecentContacts = []model.ContactSubmission{}
	}
	if resp.RecentEvents == nil {
		resp.RecentEvents = []model.Event{}
	}
	WriteJSON(w, http.StatusOK, resp)
}
