package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	chiMid "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mokfembam/portfolio/internal/i18n"
	"github.com/mokfembam/portfolio/internal/observability"
	"github.com/mokfembam/portfolio/locales"
)

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

func TestSessionIssuesAndVerifiesCookie(t *testing.T) {
	var seen *SessionData
	h := Session(SessionOptions{SigningKey: "secret"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetSession(r)
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	c := sessionCookie(t, rec)
	require.NotNil(t, c)
	require.True(t, c.HttpOnly)
	_, err := uuid.Parse(seen.ID)
	require.NoError(t, err)
	firstID := seen.ID

	// valid cookie is reused and not rewritten
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, firstID, seen.ID)
	require.Nil(t, sessionCookie(t, rec))

	// tampered cookie is discarded
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: c.Value + "x"})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.NotEqual(t, firstID, seen.ID)
	require.NotNil(t, sessionCookie(t, rec))
}

func TestSessionCookieWrittenWithoutBody(t *testing.T) {
	h := Session(SessionOptions{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/", nil))
	require.NotNil(t, sessionCookie(t, rec))
}

func TestLocalePrecedence(t *testing.T) {
	bundle, err := i18n.Load(locales.FS, "en", []string{"en", "fr"})
	require.NoError(t, err)

	var lang string
	h := Session(SessionOptions{SigningKey: "k"})(Locale(bundle)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang = Lang(r)
	})))

	cases := []struct {
		name   string
		target string
		accept string
		cookie string
		want   string
	}{
		{name: "default", target: "/", want: "en"},
		{name: "accept-language", target: "/", accept: "fr-FR,fr;q=0.9", want: "fr"},
		{name: "cookie beats header", target: "/", accept: "fr", cookie: "en", want: "en"},
		{name: "query beats all", target: "/?hl=FR", accept: "en", cookie: "en", want: "fr"},
		{name: "unsupported query ignored", target: "/?hl=ja", accept: "fr", want: "fr"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: localeCookieName, Value: tc.cookie})
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			require.Equal(t, tc.want, lang)
			require.Equal(t, tc.want, rec.Header().Get("Content-Language"))
		})
	}
}

func TestHTMXHelpers(t *testing.T) {
	var isHX bool
	h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isHX = IsHTMX(r.Context())
		PushURL(w, "/?category=Mobile")
		require.NoError(t, Trigger(w, "portfolio:scroll", map[string]string{"target": "about"}))
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.True(t, isHX)
	require.Equal(t, "/?category=Mobile", rec.Header().Get("HX-Push-Url"))
	var payload map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &payload))
	require.Equal(t, "about", payload["portfolio:scroll"]["target"])
}

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	WriteError(rec, req, http.StatusBadRequest, "bad")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	req = req.WithContext(WithHTMX(req.Context(), true))
	rec = httptest.NewRecorder()
	WriteError(rec, req, http.StatusNotFound, "missing")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"missing","status":404}`, rec.Body.String())
	require.Equal(t, "none", rec.Header().Get("HX-Reswap"))
}

func TestAssetsWithCacheETag(t *testing.T) {
	fsys := fstest.MapFS{"app.css": {Data: []byte("body{}")}}
	h := http.StripPrefix("/assets", AssetsWithCache(fsys))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/app.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	require.Contains(t, rec.Header().Get("Cache-Control"), "max-age")

	req := httptest.NewRequest(http.MethodGet, "/assets/app.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/assets/app.css", nil)
	req.Header.Set("If-None-Match", `"stale", `+strings.TrimPrefix(etag, "W/"))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)
}

func TestEtagMatches(t *testing.T) {
	require.False(t, etagMatches("", `W/"a"`))
	require.True(t, etagMatches("*", `W/"a"`))
	require.True(t, etagMatches(`"b", W/"a"`, `W/"a"`))
	require.False(t, etagMatches(`"b"`, `W/"a"`))
}

func TestLoggerRecordsRequest(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := chiMid.RequestID(Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observability.FromContext(r.Context()).Info("inside")
		w.WriteHeader(http.StatusTeapot)
	})))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "inside", entries[0].Message)
	require.NotEmpty(t, entries[0].ContextMap()["request_id"])
	require.Equal(t, "request", entries[1].Message)
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.EqualValues(t, http.StatusTeapot, entries[1].ContextMap()["status"])
	require.Equal(t, "/x", entries[1].ContextMap()["path"])
}

func TestResponseRecorderRunsHookOnce(t *testing.T) {
	calls := 0
	rec := httptest.NewRecorder()
	rw := NewResponseRecorder(rec)
	rw.SetBeforeWrite(func(w http.ResponseWriter) { calls++ })
	_, _ = rw.Write([]byte("a"))
	_, _ = rw.Write([]byte("b"))
	rw.WriteHeader(http.StatusInternalServerError)
	require.Equal(t, 1, calls)
	require.Equal(t, http.StatusOK, rw.Status())
	require.True(t, rw.Wrote())
}

func TestCurrentURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cv", nil)
	req.Header.Set("HX-Current-URL", "http://example.com/?category=Mobile")
	_, ok := CurrentURL(req)
	require.False(t, ok, "plain requests ignore the header")

	req = req.WithContext(WithHTMX(req.Context(), true))
	u, ok := CurrentURL(req)
	require.True(t, ok)
	require.Equal(t, "/", u.Path)
	require.Equal(t, "Mobile", u.Query().Get("category"))

	req.Header.Del("HX-Current-URL")
	_, ok = CurrentURL(req)
	require.False(t, ok)
}
