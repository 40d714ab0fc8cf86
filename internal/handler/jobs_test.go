package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oscode/platform-go/internal/model"
)

func TestCreateAndListJobs(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/admin/jobs?session_id="+env.token, map[string]any{
		"title": "Backend Engineer", "company": "Acme", "location": "Remote",
		"job_type": "full-time", "description": "Go services",
		"requirements": []string{"Go", "MongoDB"}, "apply_url": "https://acme.example/jobs/1",
	})
	assertStatus(t, rec, http.StatusOK)

	var resp map[string]string
	decode(t, rec, &resp)
	require.NotEmpty(t, resp["id"])

	rec = env.do(t, http.MethodGet, "/api/admin/jobs?session_id="+env.token, nil)
	assertStatus(t, rec, http.StatusOK)

	var jobs []model.Job
	decode(t, rec, &jobs)
	require.Len(t, jobs, 1)
	assert.Equal(t, resp["id"], jobs[0].ID)
	assert.Equal(t, []string{"Go", "MongoDB"}, jobs[0].Requirements)
	assert.True(t, jobs[0].IsActive)
}

func TestCreateJobValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/admin/jobs?session_id="+env.token, map[string]any{
		"title": "No company",
	})
	assertStatus(t, rec, http.StatusBadRequest)
}

func TestJobsHaveNoUpdateOrDeleteRoutes(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/admin/jobs/j1?session_id="+env.token, map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/admin/jobs/j1?session_id="+env.token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
