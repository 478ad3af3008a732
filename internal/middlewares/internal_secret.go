package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/sbilibin2017/blog-ms/internal/logger"
)

// InternalSecretHeader carries the secret shared between services.
const InternalSecretHeader = "X-Internal-Secret"

// InternalSecretMiddleware admits only requests carrying the shared secret.
// An empty secret disables the check.
func InternalSecretMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(InternalSecretHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				logger.FromContext(r.Context()).Warnw("rejected request without internal secret",
					"uri", r.RequestURI, "remote", r.RemoteAddr)
				writeMessage(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
