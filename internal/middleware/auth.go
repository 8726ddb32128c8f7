// Package middleware contains http middlewares.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/acolhe/acolhe/internal/api"
)

type userKey struct{}

var errNoSubject = errors.New("token has no subject")

// Authenticator puts caller's id from bearer token into request's context.
// Requests without token pass as anonymous, requests with invalid token are rejected.
func Authenticator(secret []byte) func(http.Handler) http.Handler {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimPrefix(h, "Bearer ")
			if token == h {
				api.WriteError(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			id, err := subject(parser, token, secret)
			if err != nil {
				log.WithError(err).Debug("failed to authenticate")
				api.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
		})
	}
}

// RequireUser rejects anonymous requests.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserID(r.Context()) == "" {
			api.WriteError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// WithUserID returns context carrying caller's id.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userKey{}, id)
}

// UserID returns caller's id or empty string for anonymous caller.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userKey{}).(string)
	return id
}

func subject(p *jwt.Parser, token string, secret []byte) (string, error) {
	var claims jwt.RegisteredClaims

	if _, err := p.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}); err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if claims.Subject == "" {
		return "", errNoSubject
	}

	return claims.Subject, nil
}
