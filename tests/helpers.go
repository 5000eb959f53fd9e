//go:build integration
// +build integration

package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"gepe-server/internal/observability"
	"gepe-server/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	baseURL string
	logger  *observability.Logger
)

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// setupTestStore returns the store backing the in-process server, for tests
// that need to seed or inspect rows directly.
func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	if testDeps == nil || testDeps.Store == nil {
		t.Fatal("test server not initialized")
	}
	return testDeps.Store
}

// makeRequest performs an HTTP request and returns the response and body
func makeRequest(t *testing.T, method, path string, body interface{}, headers map[string]string) (*http.Response, []byte) {
	client := &http.Client{Timeout: 10 * time.Second}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	// Set default headers
	req.Header.Set("Content-Type", "application/json")

	// Add custom headers
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return resp, respBody
}

// parseJSONResponse unmarshals JSON response into the provided interface
func parseJSONResponse(t *testing.T, body []byte, v interface{}) {
	err := json.Unmarshal(body, v)
	if err != nil {
		t.Fatalf("Failed to parse JSON response: %v\nBody: %s", err, string(body))
	}
}

// assertStatusCode checks if the response status code matches expected
func assertStatusCode(t *testing.T, resp *http.Response, expected int) {
	if resp.StatusCode != expected {
		t.Errorf("Expected status code %d, got %d", expected, resp.StatusCode)
	}
}

// assertResponseHeader checks if a response header has the expected value
func assertResponseHeader(t *testing.T, resp *http.Response, key, expected string) {
	actual := resp.Header.Get(key)
	if actual != expected {
		t.Errorf("Expected header %s to be %s, got %s", key, expected, actual)
	}
}

// generateTestEmail generates a unique test email address
func generateTestEmail() string {
	return fmt.Sprintf("test-%s@example.com", uuid.New().String()[:8])
}

// generateTestName builds a unique name with the given prefix, for resources
// whose names or slugs must not collide across test runs.
func generateTestName(prefix string) string {
	return fmt.Sprintf("%s %s", prefix, uuid.New().String()[:8])
}

// --- Testify-based Assertion Helpers ---

// APIResponse wraps an HTTP response for fluent assertions.
type APIResponse struct {
	t          *testing.T
	Response   *http.Response
	Body       []byte
	parsedJSON map[string]interface{}
}

// NewAPIResponse creates a new APIResponse wrapper.
func NewAPIResponse(t *testing.T, resp *http.Response, body []byte) *APIResponse {
	t.Helper()
	return &APIResponse{t: t, Response: resp, Body: body}
}

// RequireStatus asserts the response has the expected status code (fails test immediately if not).
func (r *APIResponse) RequireStatus(expected int) *APIResponse {
	r.t.Helper()
	require.Equal(r.t, expected, r.Response.StatusCode,
		"unexpected status code, body: %s", string(r.Body))
	return r
}

// AssertStatus asserts the response has the expected status code.
func (r *APIResponse) AssertStatus(expected int) *APIResponse {
	r.t.Helper()
	assert.Equal(r.t, expected, r.Response.StatusCode,
		"unexpected status code, body: %s", string(r.Body))
	return r
}

// JSON parses the response body as a JSON object and returns the parsed map.
func (r *APIResponse) JSON() map[string]interface{} {
	r.t.Helper()
	if r.parsedJSON == nil {
		r.parsedJSON = make(map[string]interface{})
		require.NoError(r.t, json.Unmarshal(r.Body, &r.parsedJSON),
			"failed to parse JSON response: %s", string(r.Body))
	}
	return r.parsedJSON
}

// JSONArray parses the response body as a JSON array.
func (r *APIResponse) JSONArray() []interface{} {
	r.t.Helper()
	var parsed []interface{}
	require.NoError(r.t, json.Unmarshal(r.Body, &parsed),
		"failed to parse JSON array response: %s", string(r.Body))
	return parsed
}

// AssertJSONField asserts a field exists and has the expected value.
func (r *APIResponse) AssertJSONField(field string, expected interface{}) *APIResponse {
	r.t.Helper()
	data := r.JSON()
	assert.Contains(r.t, data, field, "field %s not found in response", field)
	if expected != nil {
		assert.Equal(r.t, expected, data[field], "field %s has unexpected value", field)
	}
	return r
}

// AssertJSONFieldExists asserts a field exists (value can be anything).
func (r *APIResponse) AssertJSONFieldExists(field string) *APIResponse {
	r.t.Helper()
	data := r.JSON()
	assert.Contains(r.t, data, field, "field %s not found in response", field)
	return r
}

// AssertJSONFieldNotNil asserts a field exists and is not nil.
func (r *APIResponse) AssertJSONFieldNotNil(field string) *APIResponse {
	r.t.Helper()
	data := r.JSON()
	assert.Contains(r.t, data, field, "field %s not found in response", field)
	assert.NotNil(r.t, data[field], "field %s is nil", field)
	return r
}

// AssertError asserts the response contains an error field. When an expected
// message is given, the error field must equal it.
func (r *APIResponse) AssertError(expected ...string) *APIResponse {
	r.t.Helper()
	data := r.JSON()
	assert.Contains(r.t, data, "error", "expected error field in response")
	if len(expected) > 0 {
		assert.Equal(r.t, expected[0], data["error"],
			"unexpected error message, body: %s", string(r.Body))
	}
	return r
}

// AssertErrorCode asserts the response carries the given machine-readable
// error code.
func (r *APIResponse) AssertErrorCode(expected string) *APIResponse {
	r.t.Helper()
	data := r.JSON()
	assert.Equal(r.t, expected, data["code"], "unexpected error code, body: %s", string(r.Body))
	return r
}

// --- Request Builder ---

// APIRequest helps build and execute API requests.
type APIRequest struct {
	t       *testing.T
	method  string
	path    string
	body    interface{}
	headers map[string]string
}

// NewRequest creates a new API request builder.
func NewRequest(t *testing.T, method, path string) *APIRequest {
	t.Helper()
	return &APIRequest{
		t:       t,
		method:  method,
		path:    path,
		headers: make(map[string]string),
	}
}

// WithBody sets the request body.
func (r *APIRequest) WithBody(body interface{}) *APIRequest {
	r.body = body
	return r
}

// WithHeader adds a header to the request.
func (r *APIRequest) WithHeader(key, value string) *APIRequest {
	r.headers[key] = value
	return r
}

// Do executes the request and returns an APIResponse.
func (r *APIRequest) Do() *APIResponse {
	r.t.Helper()
	resp, body := makeRequest(r.t, r.method, r.path, r.body, r.headers)
	return NewAPIResponse(r.t, resp, body)
}

// --- Convenience Functions ---

// GET creates a GET request.
func GET(t *testing.T, path string) *APIRequest {
	return NewRequest(t, http.MethodGet, path)
}

// POST creates a POST request.
func POST(t *testing.T, path string) *APIRequest {
	return NewRequest(t, http.MethodPost, path)
}

// PUT creates a PUT request.
func PUT(t *testing.T, path string) *APIRequest {
	return NewRequest(t, http.MethodPut, path)
}

// DELETE creates a DELETE request.
func DELETE(t *testing.T, path string) *APIRequest {
	return NewRequest(t, http.MethodDelete, path)
}

// PATCH creates a PATCH request.
func PATCH(t *testing.T, path string) *APIRequest {
	return NewRequest(t, http.MethodPatch, path)
}
