package gateway

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/standups-report/internal/domain"
)

func TestStandupsGateway_FetchTimeline(t *testing.T) {
	testCases := []struct {
		name           string
		query          domain.TimelineQuery
		handlerFunc    func(w http.ResponseWriter, r *http.Request)
		expected       []domain.StatusEntry
		expectError    bool
		expectedErrMsg string
	}{
		{
			name:  "single day",
			query: domain.TimelineQuery{Project: "perf-tw", Date: "2016-01-04"},
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v2/projects/perf-tw/timeline/", r.URL.Path)
				assert.Equal(t, "2016-01-04", r.URL.Query().Get("date"))
				assert.Empty(t, r.URL.Query().Get("start"))
				fmt.Fprint(w, `[
					{"id": 1, "content": "fixed bug 54321", "user": {"name": "bob", "username": "bobby"}},
					{"id": 2, "content": "reviews", "user": {"name": "", "username": "alice"}}
				]`)
			},
			expected: []domain.StatusEntry{
				{Author: "bob", Content: "fixed bug 54321"},
				{Author: "alice", Content: "reviews"},
			},
		},
		{
			name:  "date range",
			query: domain.TimelineQuery{Project: "perf-tw", Start: "2016-01-04", End: "2016-01-08"},
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "2016-01-04", r.URL.Query().Get("start"))
				assert.Equal(t, "2016-01-08", r.URL.Query().Get("end"))
				assert.Empty(t, r.URL.Query().Get("date"))
				fmt.Fprint(w, `[]`)
			},
			expected: []domain.StatusEntry{},
		},
		{
			name:  "error case - API returns an error",
			query: domain.TimelineQuery{Project: "missing", Date: "2016-01-04"},
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, `{"error": "project not found"}`)
			},
			expectError:    true,
			expectedErrMsg: "API error (status 404)",
		},
		{
			name:  "error case - undecodable body",
			query: domain.TimelineQuery{Project: "perf-tw", Date: "2016-01-04"},
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"not": "a list"}`)
			},
			expectError:    true,
			expectedErrMsg: "failed to decode response",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tc.handlerFunc))
			defer server.Close()
			gateway := NewStandupsGateway(server.Client(), server.URL, log.New(io.Discard, "", 0))

			entries, err := gateway.FetchTimeline(context.Background(), tc.query)
			if tc.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErrMsg)
				assert.Nil(t, entries)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, entries)
			}
		})
	}
}
