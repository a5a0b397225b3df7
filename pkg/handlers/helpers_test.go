package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"video-share/pkg/auth"
	"video-share/pkg/models"
	"video-share/pkg/store"
)

// fakeVerifier stands in for Google during tests.
type fakeVerifier struct {
	identity *auth.Identity
	err      error
}

func (f *fakeVerifier) Verify(ctx context.Context, rawToken string) (*auth.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}

type testEnv struct {
	handler *Handler
	router  *gin.Engine
	videos  store.VideoStore
	users   store.UserStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := store.NewMemoryUserStore()
	videos := store.NewMemoryVideoStore()
	require.NoError(t, store.Seed(videos, time.Now()))

	tokens := auth.NewManager("test_secret", time.Hour)
	h := New(users, videos, tokens)

	r := gin.New()
	h.Routes(r)
	return &testEnv{handler: h, router: r, videos: videos, users: users}
}

// do performs a request with an optional JSON body and bearer token.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

// register creates an account and returns the issued token.
func (e *testEnv) register(t *testing.T, email, password, username string) string {
	t.Helper()
	rec := e.do(t, "POST", "/auth/register", "", gin.H{
		"email": email, "password": password, "username": username,
	})
	require.Equal(t, 200, rec.Code, rec.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	decodeJSON(t, rec, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (e *testEnv) listVideos(t *testing.T) []models.Video {
	t.Helper()
	rec := e.do(t, "GET", "/videos", "", nil)
	require.Equal(t, 200, rec.Code)
	var videos []models.Video
	decodeJSON(t, rec, &videos)
	return videos
}
