package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/sentencegolf/internal/config"
)

// CORS answers preflight requests and sets Access-Control headers for
// allowed origins. "*" in AllowedOrigins allows any origin; the request's
// origin is echoed back either way.
func CORS(cfg config.CORSConfig) Middleware {
	allowAny := false
	origins := make(map[string]struct{})
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			allowAny = true
		default:
			origins[o] = struct{}{}
		}
	}
	maxAge := strconv.Itoa(cfg.MaxAge)

	allowed := func(origin string) bool {
		if allowAny {
			return true
		}
		_, ok := origins[origin]
		return ok
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			w.Header().Add("Vary", "Origin")
			if origin != "" && allowed(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
