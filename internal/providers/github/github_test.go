package github

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statsResponse = `{
  "data": {
    "user": {
      "contributionsCollection": {
        "contributionCalendar": {
          "totalContributions": 42,
          "weeks": [
            {"contributionDays": [
              {"contributionCount": 0, "date": "2024-03-03"},
              {"contributionCount": 5, "date": "2024-03-04"}
            ]},
            {"contributionDays": [
              {"contributionCount": 2, "date": "2024-03-10"}
            ]}
          ]
        }
      },
      "repositories": {
        "nodes": [
          {"name": "devcards", "languages": {"edges": [
            {"size": 1200, "node": {"name": "Go", "color": "#00ADD8"}},
            {"size": 40, "node": {"name": "Dockerfile", "color": null}}
          ]}},
          {"name": "notes", "languages": {"edges": []}}
        ]
      }
    }
  }
}`

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]any `json:"variables"`
}

func TestFetch_DecodesSnapshot(t *testing.T) {
	var (
		gotAuth string
		gotReq  graphqlRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotReq)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, statsResponse)
	}))
	defer srv.Close()

	p := New("s3cret", srv.URL)
	snap, err := p.Fetch(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, "Bearer s3cret", gotAuth)
	assert.Equal(t, "octocat", gotReq.Variables["username"])
	assert.Contains(t, gotReq.Query, "contributionCalendar")
	assert.Contains(t, gotReq.Query, "repositories(first: 100, ownerAffiliations: OWNER, isFork: false")

	assert.Equal(t, "octocat", snap.Username)
	assert.Equal(t, 42, snap.Calendar.TotalContributions)
	require.Len(t, snap.Calendar.Weeks, 2)
	require.Len(t, snap.Calendar.Weeks[0].Days, 2)
	assert.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), snap.Calendar.Weeks[0].Days[1].Date)
	assert.Equal(t, 5, snap.Calendar.Weeks[0].Days[1].Count)

	require.Len(t, snap.Repositories, 2)
	require.Len(t, snap.Repositories[0].Languages, 2)
	assert.Equal(t, "Go", snap.Repositories[0].Languages[0].Name)
	assert.Equal(t, int64(1200), snap.Repositories[0].Languages[0].Size)
	assert.Empty(t, snap.Repositories[0].Languages[1].Color)
	assert.Empty(t, snap.Repositories[1].Languages)
}

func TestFetch_GraphQLErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data": null, "errors": [{"message": "Could not resolve to a User with the login of 'ghost'."}]}`)
	}))
	defer srv.Close()

	_, err := New("tok", srv.URL).Fetch(context.Background(), "ghost")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "ghost", apiErr.Handle)
	assert.Contains(t, err.Error(), "Could not resolve")
	require.Len(t, apiErr.Errors, 1)
}

func TestFetch_GraphQLErrorsKeepsFullPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data": null, "errors": [
			{"type": "NOT_FOUND", "path": ["user"], "message": "first problem"},
			{"message": "second problem"}
		]}`)
	}))
	defer srv.Close()

	_, err := New("tok", srv.URL).Fetch(context.Background(), "ghost")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Len(t, apiErr.Errors, 2)
	assert.Equal(t, "NOT_FOUND", apiErr.Errors[0].Type)
	assert.Equal(t, []any{"user"}, apiErr.Errors[0].Path)
	assert.Equal(t, "second problem", apiErr.Errors[1].Message)

	msg := err.Error()
	assert.Contains(t, msg, "first problem")
	assert.Contains(t, msg, "second problem")
	assert.Contains(t, msg, "NOT_FOUND")
	assert.Contains(t, msg, `"path":["user"]`)
}

func TestFetch_TransportErrorHasNoPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := New("tok", srv.URL).Fetch(context.Background(), "octocat")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Empty(t, apiErr.Errors)
}

func TestFetch_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewWithClient(srv.Client(), srv.URL).Fetch(context.Background(), "octocat")
	assert.Error(t, err)
}

func TestFetch_BadDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data": {"user": {"contributionsCollection": {"contributionCalendar": {"totalContributions": 1, "weeks": [{"contributionDays": [{"contributionCount": 1, "date": "yesterday"}]}]}}, "repositories": {"nodes": []}}}}`)
	}))
	defer srv.Close()

	_, err := NewWithClient(srv.Client(), srv.URL).Fetch(context.Background(), "octocat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yesterday")
}
