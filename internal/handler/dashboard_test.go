package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oscode/platform-go/internal/model"
)

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		env.seedEvent(t, fmt.Sprintf("e%d", i), fmt.Sprintf("Event %d", i), i%2 == 0, base.Add(time.Duration(i)*time.Hour))
	}
	for i := 0; i < 7; i++ {
		_, err := env.docs.Insert(ctx, model.CollectionContacts, model.ContactSubmission{
			Name: fmt.Sprintf("Contact %d", i), Email: "c@x.com", Subject: "s", Message: "m",
			FormType: model.DefaultFormType, CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	_, err := env.docs.Insert(ctx, model.CollectionJobs, model.Job{ID: "j1"})
	require.NoError(t, err)
	_, err = env.docs.Insert(ctx, model.CollectionMentors, model.Mentor{ID: "m1"})
	require.NoError(t, err)

	rec := env.do(t, http.MethodGet, "/api/admin/dashboard-stats?session_id="+env.token, nil)
	assertStatus(t, rec, http.StatusOK)

	var resp DashboardStatsResponse
	decode(t, rec, &resp)

	assert.Equal(t, int64(4), resp.Stats.TotalEvents)
	assert.Equal(t, int64(2), resp.Stats.ActiveEvents)
	assert.Equal(t, int64(1), resp.Stats.TotalJobs)
	assert.Equal(t, int64(1), resp.Stats.TotalMentors)
	assert.Equal(t, int64(0), resp.Stats.TotalTeamMembers)
	assert.Equal(t, int64(7), resp.Stats.TotalContacts)

	require.Len(t, resp.RecentContacts, 5, "recent contacts bounded at 5")
	assert.Equal(t, "Contact 6", resp.RecentContacts[0].Name, "newest first")
	assert.Equal(t, "Contact 2", resp.RecentContacts[4].Name)

	require.Len(t, resp.RecentEvents, 3, "recent events bounded at 3")
	assert.Equal(t, "e3", resp.RecentEvents[0].ID)
}

func TestDashboardStatsEmptyStore(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/admin/dashboard-stats?session_id="+env.token, nil)
	assertStatus(t, rec, http.StatusOK)

	var resp DashboardStatsResponse
	decode(t, rec, &resp)
	assert.Zero(t, resp.Stats.TotalEvents)
	assert.NotNil(t, resp.RecentContacts)
	assert.Empty(t, resp.RecentContacts)
	assert.Empty(t, resp.RecentEvents)
}
