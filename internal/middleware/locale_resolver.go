package middleware

import (
	"context"
	"net/http"

	"github.com/mokfembam/portfolio/internal/i18n"
)

const localeCookieName = "hl"

// Locale resolves and stores the preferred language in the session and cookie `hl`.
// Precedence: ?hl= query, session, hl cookie, Accept-Language.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// make fallback available to request context for helpers
			ctx := context.WithValue(r.Context(), ctxKeyLocaleFB, bundle.Fallback())
			r = r.WithContext(ctx)
			s := GetSession(r)
			if q := r.URL.Query().Get("hl"); q != "" {
				if lang, ok := bundle.Normalize(q); ok {
					if s.Locale != lang {
						s.Locale = lang
						s.MarkDirty()
					}
					http.SetCookie(w, &http.Cookie{Name: localeCookieName, Value: lang, Path: "/", SameSite: http.SameSiteLaxMode})
				}
			}
			if s.Locale != "" && !bundle.IsSupported(s.Locale) {
				s.Locale = ""
			}
			if s.Locale == "" {
				if c, err := r.Cookie(localeCookieName); err == nil && c.Value != "" {
					if lang, ok := bundle.Normalize(c.Value); ok {
						s.Locale = lang
					}
				}
				if s.Locale == "" {
					s.Locale = bundle.Resolve(r.Header.Get("Accept-Language"))
				}
				s.MarkDirty()
			}
			w.Header().Set("Content-Language", s.Locale)
			w.Header().Add("Vary", "Accept-Language")
			w.Header().Add("Vary", "Cookie")
			next.ServeHTTP(w, r)
		})
	}
}

// Lang returns current lang from session, the bundle fallback, or "en".
func Lang(r *http.Request) string {
	if s := GetSession(r); s != nil && s.Locale != "" {
		return s.Locale
	}
	if v := r.Context().Value(ctxKeyLocaleFB); v != nil {
		if fb, ok := v.(string); ok && fb != "" {
			return fb
		}
	}
	return "en"
}
