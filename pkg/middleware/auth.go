package middleware

import (
	"net/http"
	"strings"

	"skyyatra/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type identityClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity reads the hosted auth provider's HS256 bearer token when one is
// sent. Requests without a token pass through anonymous; services decide
// whether an identity is required. A token that is present but invalid is
// rejected.
func Identity(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || raw == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims := &identityClaims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid || claims.Subject == "" {
				logger.Warn("Rejected bearer token",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.Subject, claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminBasic guards the dashboard routes with HTTP basic auth checked by
// authenticate.
func AdminBasic(authenticate func(email, password string) bool, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, password, ok := r.BasicAuth()
			if !ok || !authenticate(email, password) {
				logger.Warn("Admin check: rejected credentials",
					zap.String("email", email),
					zap.String("path", r.URL.Path))
				w.Header().Set("WWW-Authenticate", `Basic realm="skyyatra-admin"`)
				utils.ResponseUnauthorized(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
