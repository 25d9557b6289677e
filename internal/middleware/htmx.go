package middleware

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// HTMX marks requests coming from htmx so handlers/middlewares can adapt responses
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := r.Header.Get("HX-Request") == "true"
		ctx := WithHTMX(r.Context(), is)
		// fragments and full pages share URLs
		w.Header().Add("Vary", "HX-Request")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PushURL asks htmx to push url onto the browser history.
func PushURL(w http.ResponseWriter, url string) {
	w.Header().Set("HX-Push-Url", url)
}

// CurrentURL returns the page URL htmx reports in HX-Current-URL. It is only
// present on htmx requests.
func CurrentURL(r *http.Request) (*url.URL, bool) {
	if !IsHTMX(r.Context()) {
		return nil, false
	}
	raw := r.Header.Get("HX-Current-URL")
	if raw == "" {
		return nil, false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	return u, true
}

// Trigger sets an HX-Trigger header firing event with detail on the client.
func Trigger(w http.ResponseWriter, event string, detail any) error {
	b, err := json.Marshal(map[string]any{event: detail})
	if err != nil {
		return err
	}
	w.Header().Set("HX-Trigger", string(b))
	return nil
}

type errorResponse struct {
	Error     string `json:"error"`
	Status    int    `json:"status"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteError writes msg with code. htmx callers get a JSON body and no swap;
// plain navigations get text.
func WriteError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if IsHTMX(r.Context()) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("HX-Reswap", "none")
		w.WriteHeader(code)
		id, _ := RequestID(r.Context())
		_ = json.NewEncoder(w).Encode(errorResponse{Error: msg, Status: code, RequestID: id})
		return
	}
	http.Error(w, msg, code)
}
