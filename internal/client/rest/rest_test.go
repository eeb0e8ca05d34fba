package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/goalline/internal/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SendsRequestAndDecodes(t *testing.T) {
	var got *http.Request
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"n1","note":"hello"}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/api/v1/")
	var out struct {
		ID   string `json:"id"`
		Note string `json:"note"`
	}
	err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/notes",
		Query:  url.Values{"x": {"1"}},
		Body:   map[string]string{"match_id": "m1", "note": "hello"},
		Token:  "tok",
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, "n1", out.ID)
	assert.Equal(t, "/api/v1/notes", got.URL.Path)
	assert.Equal(t, "x=1", got.URL.RawQuery)
	assert.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	_, perr := uuid.Parse(got.Header.Get("X-Request-ID"))
	assert.NoError(t, perr)
	assert.Equal(t, map[string]string{"match_id": "m1", "note": "hello"}, gotBody)
}

func TestDo_NoTokenNoAuthHeader(t *testing.T) {
	var auth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth.Store(r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).Do(context.Background(), Request{Method: http.MethodGet, Path: "/competitions"}, nil))
	assert.Equal(t, "", auth.Load())
}

func TestDo_FreshRequestIDPerCall(t *testing.T) {
	seen := map[string]bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get("X-Request-ID")] = true
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	for i := 0; i < 3; i++ {
		require.NoError(t, c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"}, nil))
	}
	assert.Len(t, seen, 3)
}

func TestDo_APIErrors(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantCode string
		sentinel error
	}{
		{"top-level message", 422, `{"message":"Note text is required"}`, "Note text is required", "", common.ErrValidation},
		{"nested envelope", 404, `{"error":{"code":"NOT_FOUND","message":"Match not found"}}`, "Match not found", "NOT_FOUND", common.ErrNotFound},
		{"string error", 401, `{"error":"Invalid credentials"}`, "Invalid credentials", "", common.ErrUnauthorized},
		{"forbidden", 403, `{"error":{"code":"FORBIDDEN","message":"Not your note"}}`, "Not your note", "FORBIDDEN", common.ErrUnauthorized},
		{"plain text body", 500, `Internal Server Error`, "request failed: 500 Internal Server Error", "", nil},
		{"empty body", 400, ``, "request failed: 400 Bad Request", "", common.ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			err := New(srv.URL).Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"}, nil)
			require.Error(t, err)

			var apiErr *common.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.wantCode, apiErr.Code)
			assert.EqualError(t, err, tc.wantMsg)
			if tc.sentinel != nil {
				assert.ErrorIs(t, err, tc.sentinel)
			}
			assert.NotErrorIs(t, err, common.ErrUnavailable)
		})
	}
}

func TestDo_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := srv.URL
	srv.Close()

	err := New(addr).Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"}, nil)
	require.ErrorIs(t, err, common.ErrUnavailable)
	assert.EqualError(t, err, "server unavailable")
}

func TestDo_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(srv.URL).Do(ctx, Request{Method: http.MethodGet, Path: "/x"}, nil)
	require.ErrorIs(t, err, common.ErrUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDo_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[1,2`))
	}))
	defer srv.Close()

	var out []int
	err := New(srv.URL).Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestDo_Breaker(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	t.Run("backend errors never trip", func(t *testing.T) {
		c := New(srv.URL, WithBreaker(2, time.Minute))
		for i := 0; i < 5; i++ {
			err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"}, nil)
			var apiErr *common.APIError
			require.True(t, errors.As(err, &apiErr))
		}
		assert.Equal(t, int32(5), hits.Load())
	})

	t.Run("transport failures trip and fail fast", func(t *testing.T) {
		var dials atomic.Int32
		hc := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			dials.Add(1)
			return nil, errors.New("connection refused")
		})}

		c := New("http://unused", WithHTTPClient(hc), WithBreaker(2, time.Minute))
		for i := 0; i < 4; i++ {
			err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"}, nil)
			require.ErrorIs(t, err, common.ErrUnavailable)
		}
		assert.Equal(t, int32(2), dials.Load(), "open breaker must not reach the transport")
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestSegment(t *testing.T) {
	assert.Equal(t, "a%2Fb", Segment("a/b"))
	assert.Equal(t, "m%201", Segment("m 1"))
}

func TestNew_TrimsBaseURL(t *testing.T) {
	assert.Equal(t, "http://h/api/v1", New("http://h/api/v1///").BaseURL())
}
