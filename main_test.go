package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ms-discovery/internal/config"
)

func TestRun_MissingAPIKeyStopsBeforeAnyRequest(t *testing.T) {
	var hits int32
	r := chi.NewRouter()
	r.Get("/discovery/v2/events.json", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	})
	server := httptest.NewServer(r)
	defer server.Close()

	t.Setenv("TICKETMASTER_API_KEY", "")
	t.Setenv("TICKETMASTER_BASE_URL", server.URL)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr)

	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
	assert.Empty(t, stdout.String())
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestRun_PrintsReportForDefaultArtists(t *testing.T) {
	var keywords []string
	r := chi.NewRouter()
	r.Get("/discovery/v2/events.json", func(w http.ResponseWriter, r *http.Request) {
		keywords = append(keywords, r.URL.Query().Get("keyword"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page": {"totalElements": 0}}`))
	})
	server := httptest.NewServer(r)
	defer server.Close()

	t.Setenv("TICKETMASTER_API_KEY", "k")
	t.Setenv("TICKETMASTER_BASE_URL", server.URL)
	t.Setenv("LOG_FORMAT", "json")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), &stdout, &stderr))

	assert.Equal(t, config.DefaultArtists, keywords)
	assert.Contains(t, stdout.String(), "Searching for events by Rebecca Black...")
	assert.Contains(t, stdout.String(), "No events found for any artist")
	assert.Contains(t, stderr.String(), `"category":"APP"`)
}
