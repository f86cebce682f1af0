package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthHandlers(sessions ...string) *AuthHandlers {
	svc := newStubAuthService()
	for _, id := range sessions {
		s := editorSession()
		s.ID = id
		svc.sessions[id] = s
	}
	return &AuthHandlers{Svc: svc, Logger: testLogger()}
}

func cookieByName(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthLogin(t *testing.T) {
	h := newAuthHandlers()

	w := httptest.NewRecorder()
	h.Login(w, httptest.NewRequest("GET", "/auth/login?redirect_uri=/projects/p1", nil))

	assert.Equal(t, 302, w.Code)
	assert.Equal(t, "https://idp.example.com/auth?state=s1", w.Header().Get("Location"))

	state := cookieByName(t, w, "oauth_state")
	require.NotNil(t, state)
	assert.Equal(t, "s1", state.Value)
	assert.True(t, state.HttpOnly)

	nonce := cookieByName(t, w, "oauth_nonce")
	require.NotNil(t, nonce)
	assert.Equal(t, "n1", nonce.Value)

	redirect := cookieByName(t, w, "post_login_redirect")
	require.NotNil(t, redirect)
	assert.Equal(t, "/projects/p1", redirect.Value)
}

func TestAuthLogin_UnsafeRedirectFallsBackToRoot(t *testing.T) {
	h := newAuthHandlers()

	w := httptest.NewRecorder()
	h.Login(w, httptest.NewRequest("GET", "/auth/login?redirect_uri=https://evil.example.com/", nil))

	redirect := cookieByName(t, w, "post_login_redirect")
	require.NotNil(t, redirect)
	assert.Equal(t, "/", redirect.Value)
}

func TestAuthCallback(t *testing.T) {
	h := newAuthHandlers()

	r := httptest.NewRequest("GET", "/auth/callback?code=c1&state=s1", nil)
	r.AddCookie(&http.Cookie{Name: "oauth_state", Value: "s1"})
	r.AddCookie(&http.Cookie{Name: "oauth_nonce", Value: "n1"})
	r.AddCookie(&http.Cookie{Name: "post_login_redirect", Value: "/projects/p1"})
	w := httptest.NewRecorder()
	h.Callback(w, r)

	assert.Equal(t, 302, w.Code)
	assert.Equal(t, "/projects/p1", w.Header().Get("Location"))

	session := cookieByName(t, w, "session_id")
	require.NotNil(t, session)
	assert.Equal(t, "sess-1", session.Value)
	assert.True(t, session.HttpOnly)

	// Temporary OAuth cookies are cleared
	state := cookieByName(t, w, "oauth_state")
	require.NotNil(t, state)
	assert.Equal(t, -1, state.MaxAge)
}

func TestAuthCallback_StateMismatch(t *testing.T) {
	h := newAuthHandlers()

	r := httptest.NewRequest("GET", "/auth/callback?code=c1&state=tampered", nil)
	r.AddCookie(&http.Cookie{Name: "oauth_state", Value: "s1"})
	r.AddCookie(&http.Cookie{Name: "oauth_nonce", Value: "n1"})
	w := httptest.NewRecorder()
	h.Callback(w, r)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_state")
}

func TestAuthCallback_MissingParams(t *testing.T) {
	h := newAuthHandlers()

	t.Run("missing code", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Callback(w, httptest.NewRequest("GET", "/auth/callback?state=s1", nil))
		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "missing_code")
	})

	t.Run("missing state", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Callback(w, httptest.NewRequest("GET", "/auth/callback?code=c1", nil))
		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "missing_state")
	})

	t.Run("missing nonce cookie", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/auth/callback?code=c1&state=s1", nil)
		r.AddCookie(&http.Cookie{Name: "oauth_state", Value: "s1"})
		w := httptest.NewRecorder()
		h.Callback(w, r)
		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "missing_nonce")
	})
}

func TestAuthCallback_ExchangeFailure(t *testing.T) {
	h := newAuthHandlers()

	r := httptest.NewRequest("GET", "/auth/callback?code=bad-code&state=s1", nil)
	r.AddCookie(&http.Cookie{Name: "oauth_state", Value: "s1"})
	r.AddCookie(&http.Cookie{Name: "oauth_nonce", Value: "n1"})
	w := httptest.NewRecorder()
	h.Callback(w, r)

	assert.Equal(t, 500, w.Code)
	assert.Contains(t, w.Body.String(), "login_completion_failed")
}

func TestAuthLogout(t *testing.T) {
	h := newAuthHandlers("sess-1")

	r := httptest.NewRequest("POST", "/auth/logout?redirect_uri=/projects/p1", nil)
	r.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-1"})
	w := httptest.NewRecorder()
	h.Logout(w, r)

	assert.Equal(t, 302, w.Code)
	assert.Equal(t, "/auth/signed-out?redirect_uri=%2Fprojects%2Fp1", w.Header().Get("Location"))

	cleared := cookieByName(t, w, "session_id")
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)
}

func TestAuthLogout_HTMXGetsJSON(t *testing.T) {
	h := newAuthHandlers("sess-1")

	r := httptest.NewRequest("POST", "/auth/logout", nil)
	r.Header.Set("Hx-Request", "true")
	r.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-1"})
	w := httptest.NewRecorder()
	h.Logout(w, r)

	assert.Equal(t, 200, w.Code)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "success", payload["status"])
	assert.Contains(t, payload["redirect_to"], "/auth/signed-out")
}

func TestAuthStatus(t *testing.T) {
	h := newAuthHandlers("sess-1")

	t.Run("authenticated", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/auth/status", nil)
		r.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-1"})
		w := httptest.NewRecorder()
		h.Status(w, r)

		require.Equal(t, 200, w.Code)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
		assert.Equal(t, true, payload["authenticated"])
	})

	t.Run("no cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Status(w, httptest.NewRequest("GET", "/auth/status", nil))

		require.Equal(t, 200, w.Code)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
		assert.Equal(t, false, payload["authenticated"])
	})

	t.Run("stale session clears the cookie", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/auth/status", nil)
		r.AddCookie(&http.Cookie{Name: "session_id", Value: "gone"})
		w := httptest.NewRecorder()
		h.Status(w, r)

		require.Equal(t, 200, w.Code)
		cleared := cookieByName(t, w, "session_id")
		require.NotNil(t, cleared)
		assert.Equal(t, -1, cleared.MaxAge)
	})
}
