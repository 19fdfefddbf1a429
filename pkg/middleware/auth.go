package middleware

import (
	"net/http"
	"strings"

	"phi-inspection/pkg/apperror"
	"phi-inspection/pkg/token"
	"phi-inspection/pkg/utils"

	"go.uber.org/zap"
)

// Auth verifies the bearer JWT and seeds the request context with the caller identity.
// Any failure stops the chain with 401 before the handler runs.
func Auth(cfg utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
			if authHeader == "" {
				utils.ResponseError(w, apperror.Unauthorized("Missing authorization token"))
				return
			}

			scheme, raw, found := strings.Cut(authHeader, " ")
			raw = strings.TrimSpace(raw)
			if !found || !strings.EqualFold(scheme, "Bearer") || raw == "" {
				utils.ResponseError(w, apperror.Unauthorized("Invalid token format. Use: Bearer <token>"))
				return
			}

			claims, err := token.Parse(cfg, raw)
			if err != nil {
				logger.Warn("Rejected bearer token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseError(w, apperror.Unauthorized("Invalid or expired token"))
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Name, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
