// Package mocks provides test doubles for the quotes endpoint and for
// anything that fetches quotes.
package mocks

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// MockRoundTripper is a mock implementation of http.RoundTripper.
// Responses and Errors are keyed by request URL. Unknown URLs get a 404.
type MockRoundTripper struct {
	Responses map[string]*http.Response
	Errors    map[string]error

	mu       sync.Mutex
	requests []*http.Request
}

// RoundTrip implements the http.RoundTripper interface.
func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	url := req.URL.String()
	if err, ok := m.Errors[url]; ok {
		return nil, err
	}
	if resp, ok := m.Responses[url]; ok {
		// Create a new reader for the body each time, as it can be read only once.
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		out := *resp
		out.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		out.Request = req
		return &out, nil
	}
	return &http.Response{
		StatusCode: http.StatusNotFound,
		Body:       io.NopCloser(bytes.NewBufferString("Not Found")),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

// Requests returns the requests seen so far.
func (m *MockRoundTripper) Requests() []*http.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*http.Request(nil), m.requests...)
}

// NewMockClient creates a new http.Client with a MockRoundTripper.
func NewMockClient(responses map[string]*http.Response) *http.Client {
	return &http.Client{
		Transport: &MockRoundTripper{
			Responses: responses,
		},
	}
}

// JSONResponse builds a response with the given status and JSON body.
func JSONResponse(status int, body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     header,
	}
}
