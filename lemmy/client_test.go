package lemmy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodestar-social/lodestar/util"
)

// TestMakeParams tests the makeParams function.
func TestMakeParams(t *testing.T) {
	testCases := []struct {
		name     string
		input    map[string]any
		expected string
	}{
		{
			name:     "Empty input",
			input:    map[string]any{},
			expected: "",
		},
		{
			name: "Mixed values",
			input: map[string]any{
				"page":            int64(2),
				"unresolved_only": true,
			},
			expected: "page=2&unresolved_only=true",
		},
		{
			name: "Slice of strings",
			input: map[string]any{
				"type": []string{"a", "b"},
			},
			expected: "type=a&type=b",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := makeParams(tc.input)
			if result != tc.expected {
				t.Errorf("got '%q', want '%q'", result, tc.expected)
			}
		})
	}
}

func testClient(srv *httptest.Server) *Client {
	return &Client{
		Client: util.TestingHTTPClient(),
		Host:   srv.URL,
		Auth:   &AuthInfo{Jwt: "test-token"},
	}
}

func TestClientDoQuery(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("GET", r.Method)
		assert.Equal("/api/v3/comment/report/list", r.URL.Path)
		assert.Equal("true", r.URL.Query().Get("unresolved_only"))
		assert.Equal("Bearer test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(ListCommentReportsResponse{
			CommentReports: []CommentReportView{
				{CommentReport: CommentReport{ID: 7, Reason: "spam"}},
			},
		})
	}))
	defer srv.Close()

	c := testClient(srv)
	reports, err := c.ListCommentReports(context.Background(), 1, 20, true, nil)
	require.NoError(err)
	require.Len(reports, 1)
	assert.Equal(int64(7), reports[0].CommentReport.ID)
}

func TestClientListPostReports(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("GET", r.Method)
		assert.Equal("/api/v3/post/report/list", r.URL.Path)
		assert.Equal("3", r.URL.Query().Get("community_id"))
		json.NewEncoder(w).Encode(ListPostReportsResponse{
			PostReports: []PostReportView{
				{PostReport: PostReport{ID: 11, OriginalPostName: "spam post"}},
			},
		})
	}))
	defer srv.Close()

	c := testClient(srv)
	communityID := int64(3)
	reports, err := c.ListPostReports(context.Background(), 1, 20, true, &communityID)
	require.NoError(err)
	require.Len(reports, 1)
	assert.Equal(int64(11), reports[0].PostReport.ID)
}

func TestClientDoUpdate(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("PUT", r.Method)
		assert.Equal("/api/v3/comment/report/resolve", r.URL.Path)
		assert.Equal("application/json", r.Header.Get("Content-Type"))
		var req ResolveCommentReportRequest
		require.NoError(json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(int64(42), req.ReportID)
		assert.True(req.Resolved)
		json.NewEncoder(w).Encode(CommentReportResponse{
			CommentReportView: CommentReportView{
				CommentReport: CommentReport{ID: req.ReportID, Resolved: req.Resolved},
			},
		})
	}))
	defer srv.Close()

	c := testClient(srv)
	view, err := c.ResolveCommentReport(context.Background(), 42, true)
	require.NoError(err)
	assert.True(view.CommentReport.Resolved)
}

func TestClientErrorDecoding(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIError{ErrStr: "couldnt_find_comment"})
	}))
	defer srv.Close()

	c := testClient(srv)
	_, err := c.RemoveComment(context.Background(), 5, true, nil)
	require.Error(err)

	var le *Error
	require.True(errors.As(err, &le))
	assert.Equal(http.StatusBadRequest, le.StatusCode)
	assert.False(le.IsThrottled())

	var ae *APIError
	require.True(errors.As(err, &ae))
	assert.Equal("couldnt_find_comment", ae.ErrStr)
}

func TestClientThrottleHeaders(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ratelimit-limit", "30")
		w.Header().Set("ratelimit-remaining", "0")
		w.Header().Set("ratelimit-reset", "1700000000")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(APIError{ErrStr: "rate_limit_error"})
	}))
	defer srv.Close()

	c := testClient(srv)
	err := c.PurgeComment(context.Background(), 9, nil)
	require.Error(err)

	var le *Error
	require.True(errors.As(err, &le))
	assert.True(le.IsThrottled())
	require.NotNil(le.Ratelimit)
	assert.Equal(30, le.Ratelimit.Limit)
	assert.Equal(0, le.Ratelimit.Remaining)
}

func TestPurgeSuccessFlag(t *testing.T) {
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(SuccessResponse{Success: false})
	}))
	defer srv.Close()

	c := testClient(srv)
	err := c.PurgePerson(context.Background(), 3, nil)
	require.Error(err)
}
