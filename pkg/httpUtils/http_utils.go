package http_utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const contentTypeJSON = "application/json"

// BuildEndpoint appends path segments to base. Each segment is escaped and the
// result is not cleaned, so caller supplied values such as an organisation ID
// cannot alter the path. Empty segments are skipped.
func BuildEndpoint(base string, segments ...string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %v", base, err)
	}

	escaped := make([]string, 0, len(segments))
	for _, s := range segments {
		if s == "" {
			continue
		}
		escaped = append(escaped, escapeSegment(s))
	}

	rawPath := strings.TrimSuffix(u.EscapedPath(), "/") + "/" + strings.Join(escaped, "/")
	path, err := url.PathUnescape(rawPath)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %v", rawPath, err)
	}
	u.Path = path
	u.RawPath = rawPath

	return u.String(), nil
}

// escapeSegment escapes s as a single path segment. Dot segments are
// percent-encoded since PathEscape keeps them and servers resolve them.
func escapeSegment(s string) string {
	switch s {
	case ".":
		return "%2E"
	case "..":
		return "%2E%2E"
	}
	return url.PathEscape(s)
}

// PostJSON sends body to endpoint as a JSON POST and asks for a JSON reply.
// The caller owns the returned response body.
func PostJSON(ctx context.Context, client *http.Client, endpoint string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send HTTP request: %w", err)
	}

	return resp, nil
}

// IsSuccess reports whether the status code is in the 2xx range.
func IsSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// ReadBody reads the whole response body as text.
func ReadBody(resp *http.Response) (string, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(data), nil
}
