package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("super-secret-jwt-token")

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.RegisteredClaims) string {
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestAuthenticator(t *testing.T) {
	valid := jwt.RegisteredClaims{
		Subject:   "5b1f7d0e-8f5c-4b61-b6a2-3c1f0a9e7d42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	tt := []struct {
		name   string
		header string
		status int
		user   string
	}{
		{
			name:   "anonymous",
			status: http.StatusOK,
		},
		{
			name:   "valid",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, secret, valid),
			status: http.StatusOK,
			user:   valid.Subject,
		},
		{
			name:   "not bearer",
			header: "Basic dXNlcjpwYXNz",
			status: http.StatusUnauthorized,
		},
		{
			name:   "wrong secret",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), valid),
			status: http.StatusUnauthorized,
		},
		{
			name: "expired",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{
				Subject:   "user",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			}),
			status: http.StatusUnauthorized,
		},
		{
			name: "no subject",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}),
			status: http.StatusUnauthorized,
		},
		{
			name:   "wrong method",
			header: "Bearer " + sign(t, jwt.SigningMethodHS512, secret, valid),
			status: http.StatusUnauthorized,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			var user string
			h := Authenticator(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user = UserID(r.Context())
			}))

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.user, user)
		})
	}
}

func TestRequireUser(t *testing.T) {
	h := RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), "user")))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
