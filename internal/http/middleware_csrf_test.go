package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfHandler() http.Handler {
	return CSRFProtection(CSRFConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("token:" + GetCSRFToken(r)))
	}))
}

func csrfCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == DefaultCSRFCookieName {
			return c
		}
	}
	t.Fatal("csrf cookie not set")
	return nil
}

func TestCSRFProtection_GetIssuesToken(t *testing.T) {
	handler := csrfHandler()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, 200, w.Code)
	cookie := csrfCookieFrom(t, w)
	assert.NotEmpty(t, cookie.Value)
	assert.False(t, cookie.HttpOnly, "token must be readable for htmx headers")
	assert.Equal(t, "token:"+cookie.Value, w.Body.String(), "same token exposed to templates")
}

func TestCSRFProtection_ReusesExistingCookie(t *testing.T) {
	handler := csrfHandler()

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "existing-token"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Empty(t, w.Result().Cookies(), "no new cookie when one is present")
	assert.Equal(t, "token:existing-token", w.Body.String())
}

func TestCSRFProtection_PostWithoutTokenRejected(t *testing.T) {
	handler := csrfHandler()

	r := httptest.NewRequest("POST", "/projects/p1/notes", nil)
	r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "cookie-token"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, 403, w.Code)
}

func TestCSRFProtection_PostWithHeaderToken(t *testing.T) {
	handler := csrfHandler()

	r := httptest.NewRequest("POST", "/projects/p1/notes", nil)
	r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "cookie-token"})
	r.Header.Set(DefaultCSRFHeaderName, "cookie-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, 200, w.Code)
}

func TestCSRFProtection_PostWithMismatchedHeaderRejected(t *testing.T) {
	handler := csrfHandler()

	r := httptest.NewRequest("POST", "/projects/p1/notes", nil)
	r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "cookie-token"})
	r.Header.Set(DefaultCSRFHeaderName, "some-other-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, 403, w.Code)
}

func TestCSRFProtection_PostWithFormToken(t *testing.T) {
	handler := csrfHandler()

	form := url.Values{"csrf_token": {"cookie-token"}, "text": {"a note"}}
	r := httptest.NewRequest("POST", "/projects/p1/notes", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "cookie-token"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, 200, w.Code)
}

func TestCSRFProtection_FormTokenIgnoredForJSONBody(t *testing.T) {
	handler := csrfHandler()

	r := httptest.NewRequest("POST", "/projects/p1/notes", strings.NewReader(`{"csrf_token":"cookie-token"}`))
	r.Header.Set("Content-Type", "application/json")
	r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "cookie-token"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, 403, w.Code, "only form-encoded bodies are parsed for the token")
}

func TestCSRFProtection_SecureCookieBehindProxy(t *testing.T) {
	handler := csrfHandler()

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.True(t, csrfCookieFrom(t, w).Secure)
}

func TestRequiresCSRFValidation(t *testing.T) {
	assert.False(t, requiresCSRFValidation(http.MethodGet))
	assert.False(t, requiresCSRFValidation(http.MethodHead))
	assert.False(t, requiresCSRFValidation(http.MethodOptions))
	assert.True(t, requiresCSRFValidation(http.MethodPost))
	assert.True(t, requiresCSRFValidation(http.MethodDelete))
}

func TestIsForwardedHTTPS(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.False(t, isForwardedHTTPS(r))

	r.Header.Set("X-Forwarded-Proto", "https")
	assert.True(t, isForwardedHTTPS(r))

	r.Header.Set("X-Forwarded-Proto", "http, https")
	assert.True(t, isForwardedHTTPS(r), "comma-separated protocol lists are handled")

	r.Header.Set("X-Forwarded-Proto", "http")
	assert.False(t, isForwardedHTTPS(r))
}
