// Package integration provides helpers and integration tests for the travel
// assistant. Integration tests verify that components work together correctly:
// HTTP handlers, the search pipeline, the catalog, and the agent shell.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/travel-assistant/travel-assistant-service/internal/adapter/http"
	"github.com/travel-assistant/travel-assistant-service/internal/agent"
	"github.com/travel-assistant/travel-assistant-service/internal/catalog"
	"github.com/travel-assistant/travel-assistant-service/internal/infrastructure/timeutil"
	"github.com/travel-assistant/travel-assistant-service/internal/search"
	"github.com/travel-assistant/travel-assistant-service/test/testutil"
)

// fixedNow pins the extractor's current-year default for every integration
// test so month-only queries resolve to 2026.
const fixedNow = "2026-06-15T10:00:00Z"

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Catalog *catalog.Catalog
	Agent   *agent.Agent
}

// NewTestServer creates a test server over the shared testdata catalog.
func NewTestServer(t *testing.T, opts ...agent.Option) *TestServer {
	t.Helper()

	cat, err := catalog.Load(testutil.TestDataPath(t, "flights.json"))
	if err != nil {
		t.Fatalf("Failed to load test catalog: %v", err)
	}

	return newTestServer(cat, opts...)
}

// NewTestServerWithCatalog creates a test server over a caller-built catalog.
func NewTestServerWithCatalog(cat *catalog.Catalog, opts ...agent.Option) *TestServer {
	return newTestServer(cat, opts...)
}

func newTestServer(cat *catalog.Catalog, opts ...agent.Option) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	clock := timeutil.NewMockClockFromString(fixedNow)
	searcher := search.NewSearcher(cat, clock, search.DefaultMaxResults)
	a := agent.New(searcher, opts...)

	handler := httpAdapter.NewAssistantHandler(searcher, a)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Catalog: cat,
		Agent:   a,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a structured search request.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// QueryRequest posts a free-text flight query.
func (ts *TestServer) QueryRequest(query string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/query",
		Body:   map[string]string{"query": query},
	})
}

// ChatRequest posts a conversational turn.
func (ts *TestServer) ChatRequest(message string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/assistant/chat",
		Body:   map[string]string{"message": message},
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a SearchResponseDTO.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}
