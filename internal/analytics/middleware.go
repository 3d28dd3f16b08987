package analytics

import (
	"net"
	"net/http"
	"path"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

var skipPrefixes = []string{"/static/", "/api/", "/favicon"}

// Tracked reports whether a request path counts as a page view
func Tracked(p string) bool {
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(p, prefix) {
			return false
		}
	}
	// asset files such as /projects/tick.png
	return path.Ext(p) == ""
}

// Middleware records successful GET page views. Requests carrying DNT: 1
// are never recorded.
func (s *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.Header.Get("DNT") == "1" || !Tracked(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		if status := ww.Status(); status != 0 && status >= http.StatusBadRequest {
			return
		}
		if err := s.Record(r.Context(), clientIP(r), r.UserAgent(), r.URL.Path); err != nil {
			log.Error().Err(err).Str("path", r.URL.Path).Msg("")
		}
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
