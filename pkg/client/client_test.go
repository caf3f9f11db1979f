package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestLoadSession_MissingFile(t *testing.T) {
	s, err := LoadSession(sessionPath(t))
	require.NoError(t, err)
	require.False(t, s.Authenticated())
}

func TestLoadSession_CorruptFile(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := LoadSession(path)
	require.NoError(t, err)
	require.False(t, s.Authenticated())
}

func TestLogin_PersistsSession(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user":         map[string]interface{}{"id": 1, "username": "ana", "email": "ana@example.com"},
			"access_token": "tok-123",
		})
	})

	path := sessionPath(t)
	session, err := LoadSession(path)
	require.NoError(t, err)

	c := New(srv.URL, session)
	user, err := c.Login("ana@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "ana", user.Username)
	require.True(t, session.Authenticated())

	// Reloading from disk restores the same state.
	reloaded, err := LoadSession(path)
	require.NoError(t, err)
	require.Equal(t, "tok-123", reloaded.Token)
	require.Equal(t, "ana", reloaded.User.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
	})

	session, err := LoadSession(sessionPath(t))
	require.NoError(t, err)

	c := New(srv.URL, session)
	_, err = c.Login("ana@example.com", "wrong")

	// Anonymous 401 is a plain API error, not session expiry.
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "Invalid email or password", apiErr.Message)
	require.False(t, session.Authenticated())
}

func TestExpiredToken_ClearsSession(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid or expired token"})
	})

	path := sessionPath(t)
	session := &Session{Token: "stale", path: path}
	require.NoError(t, session.Save())

	c := New(srv.URL, session)
	_, err := c.Me()
	require.ErrorIs(t, err, ErrSessionExpired)
	require.False(t, session.Authenticated())

	// The session file is gone too.
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestAuthorizedRequest_SendsBearer(t *testing.T) {
	var gotAuth string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"id": 1, "username": "ana"})
	})

	session := &Session{Token: "tok-123"}
	c := New(srv.URL, session)
	_, err := c.Me()
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
}

func TestToggleLike_ParsesResult(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/pins/7/like", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{"liked": true, "likes_count": 4})
	})

	c := New(srv.URL, &Session{Token: "tok"})
	result, err := c.ToggleLike(7)
	require.NoError(t, err)
	require.True(t, result.Liked)
	require.Equal(t, int64(4), result.LikesCount)
}

func TestSavePin_SendsBoardID(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]uint
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, uint(3), body["board_id"])
		json.NewEncoder(w).Encode(map[string]bool{"saved": true})
	})

	c := New(srv.URL, &Session{Token: "tok"})
	result, err := c.SavePin(7, 3)
	require.NoError(t, err)
	require.True(t, result.Saved)
}

func TestSearchPins_BuildsQuery(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/pins/search", r.URL.Path)
		require.Equal(t, "sunset", r.URL.Query().Get("q"))
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "10", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []interface{}{},
			"meta": map[string]interface{}{"total": 0, "page": 2, "limit": 10, "total_pages": 0, "query": "sunset"},
		})
	})

	c := New(srv.URL, &Session{})
	page, err := c.SearchPins("sunset", 2, 10)
	require.NoError(t, err)
	require.Equal(t, "sunset", page.Meta.Query)
	require.Empty(t, page.Data)
}
