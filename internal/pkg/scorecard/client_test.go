package scorecard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *url.Values) {
	t.Helper()

	captured := &url.Values{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = r.URL.Query()
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"}, zerolog.Nop())
	return client, captured
}

func serveJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestSearch_RequestParameters(t *testing.T) {
	client, captured := newTestClient(t, serveJSON(`{"metadata":{"total":0,"page":0,"per_page":25},"results":[]}`))

	_, err := client.Search(context.Background(), SearchParams{Query: "alabama", State: "AL", Page: 2})
	require.NoError(t, err)

	assert.Equal(t, "test-key", captured.Get("api_key"))
	assert.Equal(t, "alabama", captured.Get("school.name"))
	assert.Equal(t, "AL", captured.Get("school.state"))
	assert.Equal(t, "2", captured.Get("page"))
	assert.Equal(t, "25", captured.Get("per_page"))
	assert.Equal(t, "latest.student.size:desc", captured.Get("sort"))
	assert.Contains(t, captured.Get("fields"), "school.name")
	assert.Contains(t, captured.Get("fields"), "latest.student.size")
}

func TestSearch_OmitsEmptyFilters(t *testing.T) {
	client, captured := newTestClient(t, serveJSON(`{"metadata":{},"results":[]}`))

	_, err := client.Search(context.Background(), SearchParams{})
	require.NoError(t, err)

	assert.False(t, captured.Has("school.name"))
	assert.False(t, captured.Has("school.state"))
}

func TestSearch_RemapsResults(t *testing.T) {
	body := `{
		"metadata": {"total": 1, "page": 0, "per_page": 25},
		"results": [{
			"id": 100654,
			"school.name": "Alabama A & M University",
			"school.ownership": 1,
			"latest.student.size": 5196
		}]
	}`
	client, _ := newTestClient(t, serveJSON(body))

	result, err := client.Search(context.Background(), SearchParams{Query: "alabama"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Metadata.Total)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "Alabama A & M University", *result.Results[0].Name)
	assert.Equal(t, "Public", result.Results[0].OrganizationType)
	assert.Equal(t, int64(5196), *result.Results[0].Size)
}

func TestSearch_UpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Search(context.Background(), SearchParams{})

	require.ErrorIs(t, err, apperrors.ErrUpstreamFailure)
}

func TestGetSchool_ByID(t *testing.T) {
	body := `{"metadata":{"total":1},"results":[{"id":100654,"school.name":"Alabama A & M University"}]}`
	client, captured := newTestClient(t, serveJSON(body))

	school, err := client.GetSchool(context.Background(), "100654")
	require.NoError(t, err)

	assert.Equal(t, "100654", captured.Get("id"))
	assert.Equal(t, int64(100654), *school.UnitID)
}

func TestGetSchool_ZeroResultsIsNotFound(t *testing.T) {
	client, _ := newTestClient(t, serveJSON(`{"metadata":{"total":0},"results":[]}`))

	_, err := client.GetSchool(context.Background(), "999999")

	require.ErrorIs(t, err, apperrors.ErrSchoolNotFound)
}

func TestGetSchool_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, serveJSON(`not json`))

	_, err := client.GetSchool(context.Background(), "100654")

	require.ErrorIs(t, err, apperrors.ErrUpstreamFailure)
}
