package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *BaseClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c := NewBaseClient(srv.URL + "/")
	c.SetHTTPClient(srv.Client())
	c.SetLogger(zerolog.Nop())
	return c
}

func TestMakeRequestSendsJSONAndHeaders(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotBody   map[string]interface{}
		gotHeader http.Header
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotHeader = r.Method, r.URL.Path, r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	c.SetHeader("Authorization", "Bearer token")

	resp, err := c.Post(context.Background(), "/api/v1/things", map[string]interface{}{"name": "x"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/v1/things", gotPath)
	assert.Equal(t, "x", gotBody["name"])
	assert.Equal(t, "application/json", gotHeader.Get("Content-Type"))
	assert.Equal(t, "Bearer token", gotHeader.Get("Authorization"))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
	assert.Equal(t, resp.RequestID, gotHeader.Get(RequestIDHeader))
	_, err = uuid.Parse(resp.RequestID)
	assert.NoError(t, err)
}

func TestMakeRequestReturnsNon2xxAsResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"nameInUse"}`))
	})

	resp, err := c.Put(context.Background(), "/x", struct{}{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "nameInUse")
}

func TestGetSendsNoBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, int64(0), r.ContentLength)
		w.WriteHeader(http.StatusOK)
	})

	resp, err := c.Get(context.Background(), "/x")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Body)
}

func TestRequestIDsAreUnique(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	first, err := c.Delete(context.Background(), "/x")
	require.NoError(t, err)
	second, err := c.Delete(context.Background(), "/x")
	require.NoError(t, err)
	assert.NotEqual(t, first.RequestID, second.RequestID)
}

func TestMakeRequestHonoursContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Get(ctx, "/slow")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMakeRequestRejectsUnencodablePayload(t *testing.T) {
	c := NewBaseClient("http://127.0.0.1:0")
	_, err := c.Post(context.Background(), "/x", make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode request body")
}

func TestNewBaseClientTrimsTrailingSlash(t *testing.T) {
	assert.Equal(t, "http://localhost:8080", NewBaseClient("http://localhost:8080/").BaseURL())
}
