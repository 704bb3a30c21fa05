package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/laborcard-backend/internal/config"
)

// exposedHeaders lets browser clients read the request ID and the name of a
// downloaded workbook.
const exposedHeaders = "X-Request-Id, Content-Disposition"

// CORS answers preflight requests and tags responses for allowed origins.
// An OPTIONS request without Access-Control-Request-Method is not a
// preflight and is passed on.
func CORS(cfg config.CORSConfig) Middleware {
	allowAny, origins := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			_, listed := origins[origin]
			allowed := origin != "" && (allowAny || listed)
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if allowed {
					h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
					h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
					h.Set("Access-Control-Max-Age", maxAge)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func parseOrigins(list string) (allowAny bool, set map[string]struct{}) {
	set = make(map[string]struct{})
	for _, o := range strings.Split(list, ",") {
		switch o = strings.TrimSpace(o); o {
		case "":
		case "*":
			allowAny = true
		default:
			set[strings.TrimSuffix(o, "/")] = struct{}{}
		}
	}
	return allowAny, set
}
