package http_utils_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	http_utils "github.com/benmeehan/journal-client/pkg/httpUtils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		segments []string
		expected string
	}{
		{
			name:     "plain segments",
			base:     "http://localhost",
			segments: []string{"api", "devices", "register", "org-1"},
			expected: "http://localhost/api/devices/register/org-1",
		},
		{
			name:     "base with path and trailing slash",
			base:     "http://localhost:8080/journal/",
			segments: []string{"api", "devices"},
			expected: "http://localhost:8080/journal/api/devices",
		},
		{
			name:     "segment is escaped",
			base:     "http://localhost",
			segments: []string{"register", "a/b c"},
			expected: "http://localhost/register/a%2Fb%20c",
		},
		{
			name:     "parent segment is not resolved",
			base:     "http://localhost",
			segments: []string{"api", "devices", "register", ".."},
			expected: "http://localhost/api/devices/register/%2E%2E",
		},
		{
			name:     "current segment is not resolved",
			base:     "http://localhost",
			segments: []string{"api", "devices", "register", "."},
			expected: "http://localhost/api/devices/register/%2E",
		},
		{
			name:     "dots inside a segment are kept",
			base:     "http://localhost",
			segments: []string{"register", "acme..east"},
			expected: "http://localhost/register/acme..east",
		},
		{
			name:     "empty segments are skipped",
			base:     "http://localhost/",
			segments: []string{"", "api", ""},
			expected: "http://localhost/api",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := http_utils.BuildEndpoint(tt.base, tt.segments...)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBuildEndpoint_InvalidBase(t *testing.T) {
	_, err := http_utils.BuildEndpoint("://bad", "api")
	assert.Error(t, err)
}

func TestPostJSON_SetsHeadersAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"hello":"world"}`, string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`created`))
	}))
	defer server.Close()

	resp, err := http_utils.PostJSON(context.Background(), server.Client(), server.URL, []byte(`{"hello":"world"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.True(t, http_utils.IsSuccess(resp.StatusCode))

	body, err := http_utils.ReadBody(resp)
	assert.NoError(t, err)
	assert.Equal(t, "created", body)
}

func TestPostJSON_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := http_utils.PostJSON(context.Background(), http.DefaultClient, url, []byte(`{}`))
	assert.ErrorContains(t, err, "failed to send HTTP request")
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, http_utils.IsSuccess(http.StatusOK))
	assert.True(t, http_utils.IsSuccess(http.StatusNoContent))
	assert.False(t, http_utils.IsSuccess(http.StatusMultipleChoices))
	assert.False(t, http_utils.IsSuccess(http.StatusBadRequest))
	assert.False(t, http_utils.IsSuccess(http.StatusInternalServerError))
}
