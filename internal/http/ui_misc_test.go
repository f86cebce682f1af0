package httpx

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	h, _ := newUIHandlers(t)

	w := httptest.NewRecorder()
	h.Index(w, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "Kinship")
}

func TestIndex_UnknownPathIs404(t *testing.T) {
	h, _ := newUIHandlers(t)

	r := httptest.NewRequest("GET", "/definitely-not-a-page", nil)
	r.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	h.Index(w, r)

	assert.Equal(t, 404, w.Code)
}

func TestOpenProject(t *testing.T) {
	h, _ := newUIHandlers(t)

	t.Run("redirects to the overview", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.OpenProject(w, httptest.NewRequest("GET", "/projects?id=p1", nil))

		assert.Equal(t, 303, w.Code)
		assert.Equal(t, "/projects/p1", w.Header().Get("Location"))
	})

	t.Run("escapes the project id", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.OpenProject(w, httptest.NewRequest("GET", "/projects?id=a%2Fb", nil))

		assert.Equal(t, "/projects/a%2Fb", w.Header().Get("Location"))
	})

	t.Run("blank id returns home", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.OpenProject(w, httptest.NewRequest("GET", "/projects?id=", nil))

		assert.Equal(t, 303, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("htmx request gets a client-side redirect", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/projects?id=p1", nil)
		r.Header.Set("Hx-Request", "true")
		w := httptest.NewRecorder()
		h.OpenProject(w, r)

		assert.Equal(t, 204, w.Code)
		assert.Equal(t, "/projects/p1", w.Header().Get("Hx-Redirect"))
	})
}

func TestSignedOut(t *testing.T) {
	h, _ := newUIHandlers(t)

	w := httptest.NewRecorder()
	h.SignedOut(w, httptest.NewRequest("GET", "/auth/signed-out?redirect_uri=/projects/p1", nil))

	require.Equal(t, 200, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Sign in")
	assert.Contains(t, body, "/projects/p1")
}

func TestSignedOut_UnsafeRedirectFallsBack(t *testing.T) {
	h, _ := newUIHandlers(t)

	w := httptest.NewRecorder()
	h.SignedOut(w, httptest.NewRequest("GET", "/auth/signed-out?redirect_uri=https://evil.example.com/", nil))

	require.Equal(t, 200, w.Code)
	assert.NotContains(t, w.Body.String(), "evil.example.com")
}

func TestNotFound_BrowserGetsHTML(t *testing.T) {
	h, _ := newUIHandlers(t)

	r := httptest.NewRequest("GET", "/projects/nope", nil)
	r.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	h.NotFound(w, r)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "404")
	assert.Contains(t, body, "Sign in", "anonymous visitors get a login link")
}

func TestNotFound_AuthenticatedBrowserHasNoLoginLink(t *testing.T) {
	h, _ := newUIHandlers(t)

	r := httptest.NewRequest("GET", "/projects/nope", nil)
	r.Header.Set("Accept", "text/html")
	r = withSession(r, editorSession())
	w := httptest.NewRecorder()
	h.NotFound(w, r)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Back to start")
}

func TestNotFound_APIGetsJSON(t *testing.T) {
	h, _ := newUIHandlers(t)

	r := httptest.NewRequest("GET", "/api-ish", nil)
	r.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	h.NotFound(w, r)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var payload map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "not_found", payload["error"])
}
