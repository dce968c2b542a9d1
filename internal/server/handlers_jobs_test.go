package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/careerhub/internal/jobsearch"
)

func TestHandleJobSearch_Success(t *testing.T) {
	s, _, _, searcher, _, _ := newTestServer(t)
	searcher.listings = []jobsearch.Listing{
		{JobID: "j1", EmployerName: "Acme", JobTitle: "Engineer"},
	}

	body := `{"query": "engineer", "location": "Toronto", "datePosted": "week", "employmentTypes": ["FULLTIME"]}`
	rec := httptest.NewRecorder()
	s.handleJobSearch(rec, authedRequest(t, http.MethodPost, "/v1/jobs/search", body, uuid.New()))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Listings []jobsearch.Listing `json:"listings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Listings, 1)
	assert.Equal(t, "j1", resp.Listings[0].JobID)

	assert.Equal(t, "engineer", searcher.lastFilters.Query)
	assert.Equal(t, "Toronto", searcher.lastFilters.Location)
	assert.Equal(t, jobsearch.WindowWeek, searcher.lastFilters.DatePosted)
}

func TestHandleJobSearch_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing query", `{"location": "Toronto"}`},
		{"bad window", `{"query": "engineer", "datePosted": "yesterday"}`},
		{"bad employment type", `{"query": "engineer", "employmentTypes": ["GIG"]}`},
		{"malformed json", `{"query":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _, _, _, _ := newTestServer(t)

			rec := httptest.NewRecorder()
			s.handleJobSearch(rec, authedRequest(t, http.MethodPost, "/v1/jobs/search", tt.body, uuid.New()))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleJobSearch_UpstreamFailure(t *testing.T) {
	s, _, _, searcher, _, _ := newTestServer(t)
	searcher.err = assert.AnError

	rec := httptest.NewRecorder()
	s.handleJobSearch(rec, authedRequest(t, http.MethodPost, "/v1/jobs/search", `{"query": "engineer"}`, uuid.New()))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
