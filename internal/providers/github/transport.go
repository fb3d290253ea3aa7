package github

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sync"
)

// bodyRecorder keeps a copy of the last response body so the GraphQL
// errors array can be reported in full after the client has consumed it.
type bodyRecorder struct {
	next http.RoundTripper

	mu   sync.Mutex
	last []byte
}

func (r *bodyRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := r.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	r.mu.Lock()
	r.last = body
	r.mu.Unlock()

	return resp, nil
}

func (r *bodyRecorder) reset() {
	r.mu.Lock()
	r.last = nil
	r.mu.Unlock()
}

func (r *bodyRecorder) lastBody() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// GraphQLError is one entry of a response's errors array.
type GraphQLError struct {
	Type      string `json:"type,omitempty"`
	Path      []any  `json:"path,omitempty"`
	Locations []struct {
		Line   int `json:"line"`
		Column int `json:"column"`
	} `json:"locations,omitempty"`
	Message string `json:"message"`
}

// responseErrors returns the errors array of body, or nil when body is not
// a GraphQL response or carries no errors.
func responseErrors(body []byte) []GraphQLError {
	var out struct {
		Errors []GraphQLError `json:"errors"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil
	}
	return out.Errors
}
