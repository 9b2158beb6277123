package middleware

import (
	"net/http"

	"surf-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// APIKey guards the admin surface. The configured value is a bcrypt hash
// of the key; the plain key is never stored.
func APIKey(keyHash string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-Key")
			if key == "" {
				utils.ResponseUnauthorized(w, "Missing API key")
				return
			}

			if keyHash == "" {
				logger.Error("Admin API key hash not configured")
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
				logger.Warn("Rejected admin request with bad API key",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr),
				)
				utils.ResponseUnauthorized(w, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
