package transport

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/utils/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

// portalClaims is the token shape our identity provider issues. Tokens are
// verified here, never minted: issuing credentials lives outside this service.
type portalClaims struct {
	Role       string `json:"role"`
	CustomerID uint64 `json:"customer_id,omitempty"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token on every non-public route and
// stores actor, role and tenant scope in the request context.
func AuthMiddleware(jwtSecret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			tokenString := strings.TrimPrefix(auth, "Bearer ")

			claims := &portalClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			if claims.Role != constant.RoleAdmin && claims.Role != constant.RolePartner {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			actorID, err := parseSubject(claims.Subject)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.ActorIDKey, actorID)
			ctx = context.WithValue(ctx, constant.RoleKey, claims.Role)
			if claims.Role == constant.RolePartner {
				ctx = context.WithValue(ctx, constant.CustomerIDKey, claims.CustomerID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no bearer token required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/healthz" {
		return true
	}

	return false
}

func parseSubject(sub string) (uint64, error) {
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, jwt.ErrTokenInvalidSubject
	}
	return id, nil
}
