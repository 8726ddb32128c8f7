package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	tt := []struct {
		name   string
		p      []Pinger
		status int
		body   string
	}{
		{
			name:   "no pingers",
			status: http.StatusOK,
			body:   `{"version":"dev","commit":"undefined","errors":{}}`,
		},
		{
			name: "healthy",
			p: []Pinger{
				SubjectPinger("postgres", func(ctx context.Context) error { return nil }),
			},
			status: http.StatusOK,
			body:   `{"version":"dev","commit":"undefined","errors":{}}`,
		},
		{
			name: "failed",
			p: []Pinger{
				SubjectPinger("postgres", func(ctx context.Context) error { return errors.New("connection refused") }),
				SubjectPinger("other", func(ctx context.Context) error { return nil }),
			},
			status: http.StatusServiceUnavailable,
			body:   `{"version":"dev","commit":"undefined","errors":{"postgres":"connection refused"}}`,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/health", nil)

			Handler(time.Second, tc.p...)(w, r)

			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func TestHandler_Timeout(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/health", nil)

	Handler(10*time.Millisecond, SubjectPinger("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))(w, r)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "deadline exceeded")
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, "dev-undefined", GetVersion())
}
